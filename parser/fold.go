package parser

import "github.com/leoprover/go-tptp/ast"

// binaryOpFromKind maps a lexed punctuation Kind to its ast.BinaryConnective.
func binaryOpFromKind(k Kind) ast.BinaryConnective {
	switch k {
	case Pipe:
		return ast.Or
	case Amp:
		return ast.And
	case Iff:
		return ast.Iff
	case Implies:
		return ast.Implies
	case ImpliedBy:
		return ast.ImpliedBy
	case Xor:
		return ast.Xor
	case Nor:
		return ast.Nor
	case Nand:
		return ast.Nand
	case At:
		return ast.Apply
	case Greater:
		return ast.MapsTo
	case Star:
		return ast.ProductTy
	case PlusTok:
		return ast.SumTy
	case Assign:
		return ast.Assign
	case MetaEquals:
		return ast.MetaEquals
	}
	panic("binaryOpFromKind: not a binary operator kind")
}

func isAssociativeKind(k Kind) bool { return k == Pipe || k == Amp }
func isNonAssocBinaryKind(k Kind) bool {
	switch k {
	case Iff, Implies, ImpliedBy, Xor, Nor, Nand, Assign:
		return true
	}
	return false
}

// rightFold builds op(e0, op(e1, op(e2, ...))) from a flat chain collected
// left to right, implementing the right-associative reduction required for
// |, & and the > mapping-type constructor.
func rightFold(exprs []ast.Expr, op ast.BinaryConnective) ast.Expr {
	result := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		result = &ast.BinaryFormula{Op: op, Left: exprs[i], Right: result}
	}
	return result
}

// leftFold builds op(op(op(e0, e1), e2), ...) from a flat chain, for THF's
// @ application and the * / + type constructors.
func leftFold(exprs []ast.Expr, op ast.BinaryConnective) ast.Expr {
	result := exprs[0]
	for i := 1; i < len(exprs); i++ {
		result = &ast.BinaryFormula{Op: op, Left: result, Right: exprs[i]}
	}
	return result
}
