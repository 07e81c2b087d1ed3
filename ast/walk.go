package ast

// Children returns the direct child nodes of n, in source order. It is the
// traversal primitive used by Walk and Symbols; adding a new Expr variant
// means adding one case here.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *FunctionTerm:
		cs := make([]Node, len(v.Args))
		for i, a := range v.Args {
			cs[i] = a
		}
		return cs
	case *QuantifiedFormula:
		var cs []Node
		for _, tv := range v.Vars {
			if tv.Type != nil {
				cs = append(cs, tv.Type)
			}
		}
		return append(cs, v.Body)
	case *UnaryFormula:
		return []Node{v.Body}
	case *BinaryFormula:
		return []Node{v.Left, v.Right}
	case *Equation:
		return []Node{v.Left, v.Right}
	case *Tuple:
		cs := make([]Node, len(v.Elements))
		for i, e := range v.Elements {
			cs[i] = e
		}
		return cs
	case *Sequent:
		return []Node{v.LHS, v.RHS}
	case *ConditionalFormula:
		return []Node{v.Cond, v.Then, v.Else}
	case *LetFormula:
		var cs []Node
		for _, t := range v.Types {
			cs = append(cs, t)
		}
		for _, b := range v.Bindings {
			cs = append(cs, b)
		}
		return append(cs, v.Body)
	case *TypingExpr:
		return []Node{v.Name, v.Type}
	case *QuantifiedType:
		var cs []Node
		for _, tv := range v.Vars {
			if tv.Type != nil {
				cs = append(cs, tv.Type)
			}
		}
		return append(cs, v.Inner)
	case *NonclassicalPolyaryFormula:
		var cs []Node
		if v.Op.Index != nil {
			cs = append(cs, v.Op.Index)
		}
		for _, p := range v.Op.Params {
			cs = append(cs, p.Value)
		}
		for _, a := range v.Args {
			cs = append(cs, a)
		}
		return cs
	case *Clause:
		cs := make([]Node, len(v.Literals))
		for i, l := range v.Literals {
			cs[i] = l
		}
		return cs
	case *TCFFormula:
		var cs []Node
		for _, tv := range v.Vars {
			if tv.Type != nil {
				cs = append(cs, tv.Type)
			}
		}
		return append(cs, v.Clause)
	case *THFAnnotated:
		return []Node{v.Formula}
	case *TFFAnnotated:
		return []Node{v.Formula}
	case *FOFAnnotated:
		return []Node{v.Formula}
	case *TPIAnnotated:
		return []Node{v.Formula}
	case *CNFAnnotated:
		return []Node{v.Formula}
	case *TCFAnnotated:
		return []Node{v.Formula}
	case *Problem:
		cs := make([]Node, len(v.Formulas))
		for i, f := range v.Formulas {
			cs[i] = f
		}
		return cs
	default:
		// *Variable, Number variants, *DistinctObjectExpr, *ConnectiveTerm:
		// all leaves.
		return nil
	}
}

// Walk performs a pre-order traversal of n, calling visit for every node
// including n itself. If visit returns false for a node, that node's
// children are skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}
