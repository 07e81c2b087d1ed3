package ast

import (
	"math/big"
	"strings"
)

// Number is the sealed family of TPTP numeric literals: Integer, Rational
// and Real. There is no suitable third-party big-integer library in the
// reference corpus (none of the example repos import one; math/big is the
// standard, idiomatic choice for arbitrary-precision arithmetic in Go and
// is used here as the one stdlib exception documented in DESIGN.md).
type Number interface {
	Node
	Expr
	number()
	// Text returns the canonical textual form of the number.
	Text() string
}

// IntegerNumber is a signed arbitrary-precision integer literal.
type IntegerNumber struct {
	terminal
	Value *big.Int
}

func NewIntegerNumber(tok Token, v *big.Int) *IntegerNumber {
	return &IntegerNumber{terminal: terminal{Tok: tok}, Value: v}
}

func (*IntegerNumber) number()  {}
func (*IntegerNumber) exprNode() {}

func (n *IntegerNumber) Text() string { return n.Value.String() }

// RationalNumber is p/q with q > 0, stored exactly as parsed (the parser
// does not reduce the fraction to lowest terms; that would be numeric
// evaluation, an explicit non-goal).
type RationalNumber struct {
	terminal
	Num   *big.Int
	Denom *big.Int
}

func NewRationalNumber(tok Token, num, denom *big.Int) *RationalNumber {
	return &RationalNumber{terminal: terminal{Tok: tok}, Num: num, Denom: denom}
}

func (*RationalNumber) number()  {}
func (*RationalNumber) exprNode() {}

func (n *RationalNumber) Text() string {
	return n.Num.String() + "/" + n.Denom.String()
}

// RealNumber is whole[.decimal][E|e exponent], stored as its three textual
// components plus the exponent's integer value. The exponent defaults to 1
// when absent from the source, matching the canonical-form rule:
// "w.dEe (with E when exponent != 1)".
type RealNumber struct {
	terminal
	Negative bool
	Whole    string // digits only, no sign
	Decimal  string // digits after the point; "" if the literal had none
	Exponent *big.Int
}

func NewRealNumber(tok Token, negative bool, whole, decimal string, exponent *big.Int) *RealNumber {
	if exponent == nil {
		exponent = big.NewInt(1)
	}
	return &RealNumber{
		terminal: terminal{Tok: tok},
		Negative: negative,
		Whole:    whole,
		Decimal:  decimal,
		Exponent: exponent,
	}
}

func (*RealNumber) number()  {}
func (*RealNumber) exprNode() {}

func (n *RealNumber) Text() string {
	var sb strings.Builder
	if n.Negative {
		sb.WriteByte('-')
	}
	sb.WriteString(n.Whole)
	if n.Decimal != "" {
		sb.WriteByte('.')
		sb.WriteString(n.Decimal)
	}
	if n.Exponent.Cmp(big.NewInt(1)) != 0 {
		sb.WriteByte('E')
		sb.WriteString(n.Exponent.String())
	}
	return sb.String()
}

var (
	_ Number = (*IntegerNumber)(nil)
	_ Number = (*RationalNumber)(nil)
	_ Number = (*RealNumber)(nil)
)
