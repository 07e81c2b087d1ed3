package ast

import "strings"

// Clause is a non-empty disjunction of literals.
// Each literal is one of: a positive atomic formula (*FunctionTerm), a
// negative atomic formula (*UnaryFormula with Op == Negation), or an
// equation (*Equation, whose own Negated flag distinguishes = from !=).
type Clause struct {
	Literals []Expr
}

func NewClause(literals []Expr) *Clause {
	return &Clause{Literals: literals}
}

func (c *Clause) Start() Position {
	if len(c.Literals) == 0 {
		return NoPosition
	}
	return c.Literals[0].Start()
}

func (c *Clause) End() Position {
	if len(c.Literals) == 0 {
		return NoPosition
	}
	return c.Literals[len(c.Literals)-1].End()
}

func (c *Clause) String() string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = exprString(l)
	}
	return strings.Join(parts, "|")
}

// TCFFormula is an optional universal variable prefix followed by a CNF
// clause.
type TCFFormula struct {
	QuantTok *Token // nil if there is no "! [vars]:" prefix
	Vars     []TypedVariable
	Clause   *Clause
}

func (t *TCFFormula) Start() Position {
	if t.QuantTok != nil {
		return t.QuantTok.Pos
	}
	return t.Clause.Start()
}

func (t *TCFFormula) End() Position { return t.Clause.End() }

func (t *TCFFormula) String() string {
	if t.QuantTok == nil {
		return t.Clause.String()
	}
	vars := make([]string, len(t.Vars))
	for i, v := range t.Vars {
		if v.Type != nil {
			vars[i] = v.Name.Name + ":" + exprString(v.Type)
		} else {
			vars[i] = v.Name.Name
		}
	}
	return "![" + strings.Join(vars, ",") + "]:(" + t.Clause.String() + ")"
}
