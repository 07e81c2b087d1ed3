package ast

import (
	"fmt"
	"strings"
)

// Expr is the sealed expression family shared by every dialect's formula,
// term and type grammar: a single unified representation, since all six
// dialects share the same leaf grammar (functors, variables, numbers,
// distinct objects) and differ only in which combinations the parser is
// willing to build for a given dialect. Each dialect's public entry point
// still returns its own named result type (THFFormula, TFFFormula, ...),
// which are aliases of Expr; see DESIGN.md for the grounding of this
// decision.
type Expr interface {
	Node
	exprNode()
}

// Per-dialect names for Expr, matching the external interface each dialect
// exposes. They are aliases rather than distinct types because the grammar
// productions they stand for share a single implementation.
type (
	THFFormula = Expr
	TFFFormula = Expr
	FOFFormula = Expr
)

// FunctionTerm is a functor applied to zero or more arguments: a bare atom
// when Args is empty, f(a, b, ...) otherwise. It is used for predicate and
// function atoms in every dialect and for applied type constructors
// (e.g. list(int)) in TFF/THF.
type FunctionTerm struct {
	FunctorTok Token
	Functor    string
	Args       []Expr
	CloseTok   Token // position of the closing ')'; equal to FunctorTok if Args is empty
}

func NewFunctionTerm(functorTok Token, functor string, args []Expr, closeTok Token) *FunctionTerm {
	return &FunctionTerm{FunctorTok: functorTok, Functor: functor, Args: args, CloseTok: closeTok}
}

func (*FunctionTerm) exprNode() {}
func (f *FunctionTerm) Start() Position { return f.FunctorTok.Pos }
func (f *FunctionTerm) End() Position {
	if len(f.Args) == 0 {
		return f.FunctorTok.Pos
	}
	return f.CloseTok.Pos
}

func (f *FunctionTerm) String() string {
	if len(f.Args) == 0 {
		return formatFunctor(f.Functor)
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = exprString(a)
	}
	return formatFunctor(f.Functor) + "(" + strings.Join(parts, ",") + ")"
}

// QuantifiedFormula binds one or more typed variables over Body.
type QuantifiedFormula struct {
	QuantTok Token
	Quant    Quantifier
	Vars     []TypedVariable
	Body     Expr
}

func (*QuantifiedFormula) exprNode() {}
func (q *QuantifiedFormula) Start() Position { return q.QuantTok.Pos }
func (q *QuantifiedFormula) End() Position   { return q.Body.End() }

func (q *QuantifiedFormula) String() string {
	vars := make([]string, len(q.Vars))
	for i, v := range q.Vars {
		if v.Type != nil {
			vars[i] = v.Name.Name + ":" + exprString(v.Type)
		} else {
			vars[i] = v.Name.Name
		}
	}
	return string(q.Quant) + "[" + strings.Join(vars, ",") + "]:" + exprString(q.Body)
}

// UnaryFormula applies a unary connective (only negation, today) to Body.
type UnaryFormula struct {
	OpTok Token
	Op    UnaryConnective
	Body  Expr
}

func (*UnaryFormula) exprNode() {}
func (u *UnaryFormula) Start() Position { return u.OpTok.Pos }
func (u *UnaryFormula) End() Position   { return u.Body.End() }

func (u *UnaryFormula) String() string {
	return string(u.Op) + exprString(u.Body)
}

// BinaryFormula is an infix application of op to Left and Right. Binary
// formulas are parenthesized on output; := and == instead parenthesize
// each operand individually, with no parens around the whole. MapsTo is
// printed bare, with no parens at all: a mapping type reads back from its
// flat form, and only an explicit product/sum type on the left carries its
// own parens.
type BinaryFormula struct {
	Op    BinaryConnective
	Left  Expr
	Right Expr
}

func (*BinaryFormula) exprNode() {}
func (b *BinaryFormula) Start() Position { return b.Left.Start() }
func (b *BinaryFormula) End() Position   { return b.Right.End() }

func (b *BinaryFormula) String() string {
	switch b.Op {
	case Assign, MetaEquals:
		return "(" + exprString(b.Left) + ") " + string(b.Op) + " (" + exprString(b.Right) + ")"
	case MapsTo:
		return exprString(b.Left) + string(b.Op) + exprString(b.Right)
	default:
		return "(" + exprString(b.Left) + string(b.Op) + exprString(b.Right) + ")"
	}
}

// Equation is t = t or t != t.
type Equation struct {
	Left    Expr
	Right   Expr
	Negated bool
}

func (*Equation) exprNode() {}
func (e *Equation) Start() Position { return e.Left.Start() }
func (e *Equation) End() Position   { return e.Right.End() }

func (e *Equation) String() string {
	op := "="
	if e.Negated {
		op = "!="
	}
	return exprString(e.Left) + op + exprString(e.Right)
}

// Tuple is a bracketed list [e1, e2, ...], used by TFX/THF for tuple terms
// and as the left/right sides of a Sequent.
type Tuple struct {
	OpenTok  Token
	Elements []Expr
	CloseTok Token
}

func (*Tuple) exprNode() {}
func (t *Tuple) Start() Position { return t.OpenTok.Pos }
func (t *Tuple) End() Position   { return t.CloseTok.Pos }

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = exprString(e)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Sequent is lhsTuple --> rhsTuple (TFX/THF extension).
type Sequent struct {
	LHS *Tuple
	RHS *Tuple
}

func (*Sequent) exprNode() {}
func (s *Sequent) Start() Position { return s.LHS.Start() }
func (s *Sequent) End() Position   { return s.RHS.End() }

func (s *Sequent) String() string {
	return exprString(s.LHS) + " --> " + exprString(s.RHS)
}

// ConditionalFormula is $ite(cond, then, else) (TFX/FOOL extension).
type ConditionalFormula struct {
	KeywordTok Token
	Cond       Expr
	Then       Expr
	Else       Expr
	CloseTok   Token
}

func (*ConditionalFormula) exprNode() {}
func (c *ConditionalFormula) Start() Position { return c.KeywordTok.Pos }
func (c *ConditionalFormula) End() Position   { return c.CloseTok.Pos }

func (c *ConditionalFormula) String() string {
	return "$ite(" + exprString(c.Cond) + "," + exprString(c.Then) + "," + exprString(c.Else) + ")"
}

// LetFormula is $let(types, bindings, body) (TFX/FOOL extension).
// Types holds the declared types of bound symbols (TypingExpr values, as
// Expr), Bindings holds their definitions as parsed (a binding written with
// := is a BinaryFormula{Op: Assign}, one written with = an Equation).
type LetFormula struct {
	KeywordTok Token
	Types      []Expr
	Bindings   []Expr
	Body       Expr
	CloseTok   Token
}

func (*LetFormula) exprNode() {}
func (l *LetFormula) Start() Position { return l.KeywordTok.Pos }
func (l *LetFormula) End() Position   { return l.CloseTok.Pos }

func (l *LetFormula) String() string {
	types := make([]string, len(l.Types))
	for i, t := range l.Types {
		types[i] = exprString(t)
	}
	bindings := make([]string, len(l.Bindings))
	for i, b := range l.Bindings {
		bindings[i] = exprString(b)
	}
	typesStr := strings.Join(types, ",")
	if len(l.Types) > 1 {
		typesStr = "[" + typesStr + "]"
	}
	bindingsStr := strings.Join(bindings, ",")
	if len(l.Bindings) > 1 {
		bindingsStr = "[" + bindingsStr + "]"
	}
	return "$let(" + typesStr + "," + bindingsStr + "," + exprString(l.Body) + ")"
}

// TypingExpr is "name : type", used both as a top-level Typing statement
// and inside $let's type list.
type TypingExpr struct {
	Name Expr
	Type Expr
}

func (*TypingExpr) exprNode() {}
func (t *TypingExpr) Start() Position { return t.Name.Start() }
func (t *TypingExpr) End() Position   { return t.Type.End() }

func (t *TypingExpr) String() string {
	return exprString(t.Name) + ":" + exprString(t.Type)
}

// QuantifiedType is !> [vars]: inner, TFF's quantified mapping type.
type QuantifiedType struct {
	QuantTok Token
	Vars     []TypedVariable
	Inner    Expr
}

func (*QuantifiedType) exprNode() {}
func (q *QuantifiedType) Start() Position { return q.QuantTok.Pos }
func (q *QuantifiedType) End() Position   { return q.Inner.End() }

func (q *QuantifiedType) String() string {
	vars := make([]string, len(q.Vars))
	for i, v := range q.Vars {
		if v.Type != nil {
			vars[i] = v.Name.Name + ":" + exprString(v.Type)
		} else {
			vars[i] = v.Name.Name
		}
	}
	return "!>[" + strings.Join(vars, ",") + "]:" + exprString(q.Inner)
}

// ConnectiveTerm is a bare connective symbol used in term position (THF's
// "connective as term" unit).
type ConnectiveTerm struct {
	terminal
	Symbol string
}

func NewConnectiveTerm(tok Token, symbol string) *ConnectiveTerm {
	return &ConnectiveTerm{terminal: terminal{Tok: tok}, Symbol: symbol}
}

func (*ConnectiveTerm) exprNode() {}
func (c *ConnectiveTerm) String() string { return c.Symbol }

// NonclassicalOpKind distinguishes the three short forms from the general
// named long form.
type NonclassicalOpKind int

const (
	NonclassicalBox NonclassicalOpKind = iota
	NonclassicalDiamond
	NonclassicalCone
	NonclassicalNamed
)

// NonclassicalParam is one key := value entry of a long-form operator.
type NonclassicalParam struct {
	Key   string
	Value Expr
}

// NonclassicalOp identifies a non-classical modal/epistemic/provability
// operator: its kind, optional index, and (for the long form) its name and
// parameters.
type NonclassicalOp struct {
	Kind   NonclassicalOpKind
	Name   string // the long form's spelling: "$box"/"$dia"/"$cone", or the named operator's own name
	Index  Expr   // nil if unindexed
	Params []NonclassicalParam
}

func (op NonclassicalOp) canonicalName() string {
	switch op.Kind {
	case NonclassicalBox:
		return "$box"
	case NonclassicalDiamond:
		return "$dia"
	case NonclassicalCone:
		return "$cone"
	default:
		return op.Name
	}
}

// NewShortFormOp builds the NonclassicalOp for one of the three short-form
// operators ([.], <.>, /.\), setting Name to the same canonical name the
// long form's {$box}/{$dia}/{$cone} spelling would parse to, so that a
// short-form parse and a long-form parse of the same operator compare
// Equal.
func NewShortFormOp(kind NonclassicalOpKind, index Expr) NonclassicalOp {
	op := NonclassicalOp{Kind: kind, Index: index}
	op.Name = op.canonicalName()
	return op
}

// nonclassicalShortForm holds the bracketing for Box/Diamond/Cone's short
// form, keyed by kind; NonclassicalNamed has no short form.
var nonclassicalShortForm = map[NonclassicalOpKind]string{
	NonclassicalBox:     "[.]",
	NonclassicalDiamond: "<.>",
	NonclassicalCone:    `/.\`,
}

// NonclassicalPolyaryFormula is {op(index?, params...)} @ arg @ arg ...,
// or one of the three short forms on input. An unindexed Box/Diamond/Cone
// is re-emitted in its short form; an indexed one still needs the long
// form's "(#idx)" slot, so it is re-emitted as {$box(#idx)} @ arg.
type NonclassicalPolyaryFormula struct {
	OpenTok Token
	Op      NonclassicalOp
	Args    []Expr
}

func (*NonclassicalPolyaryFormula) exprNode() {}
func (n *NonclassicalPolyaryFormula) Start() Position { return n.OpenTok.Pos }
func (n *NonclassicalPolyaryFormula) End() Position {
	if len(n.Args) == 0 {
		return n.OpenTok.Pos
	}
	return n.Args[len(n.Args)-1].End()
}

func (n *NonclassicalPolyaryFormula) String() string {
	if sym, ok := nonclassicalShortForm[n.Op.Kind]; ok && n.Op.Index == nil {
		var sb strings.Builder
		sb.WriteString(sym)
		for _, a := range n.Args {
			sb.WriteByte(' ')
			sb.WriteString(exprString(a))
		}
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(n.Op.canonicalName())
	if n.Op.Index != nil || len(n.Op.Params) > 0 {
		sb.WriteByte('(')
		first := true
		if n.Op.Index != nil {
			sb.WriteByte('#')
			sb.WriteString(exprString(n.Op.Index))
			first = false
		}
		for _, p := range n.Op.Params {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(p.Key)
			sb.WriteString(":=")
			sb.WriteString(exprString(p.Value))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte('}')
	for _, a := range n.Args {
		sb.WriteString(" @ ")
		sb.WriteString(exprString(a))
	}
	return sb.String()
}

// exprString renders any Expr: numbers, variables and distinct objects have
// no String method and are handled here (Number.Text, the variable's name,
// formatDistinctObject); everything else defines String() alongside its
// type above.
func exprString(e Expr) string {
	switch v := e.(type) {
	case Number:
		return v.Text()
	case *Variable:
		return v.Name
	case *DistinctObjectExpr:
		return formatDistinctObject(v.Value)
	case fmt.Stringer:
		return v.String()
	default:
		return "<unknown-expr>"
	}
}
