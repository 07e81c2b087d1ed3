package ast

import "strings"

// GeneralTerm is the open-ended annotation vocabulary used in an annotated
// formula's source and info slots. It is either a
// colon-separated chain of GeneralData (the colon is a right-associative
// pairing operator, so a chain of length > 2 nests on the right), a chain
// with an optional trailing GeneralList, or a bare GeneralList.
type GeneralTerm interface {
	Node
	generalTerm()
}

// GeneralDataTerm wraps a single GeneralData leaf as a GeneralTerm.
type GeneralDataTerm struct {
	Data GeneralData
}

func (*GeneralDataTerm) generalTerm()      {}
func (g *GeneralDataTerm) Start() Position { return g.Data.Start() }
func (g *GeneralDataTerm) End() Position   { return g.Data.End() }
func (g *GeneralDataTerm) String() string  { return generalDataString(g.Data) }

// GeneralColonTerm is "left : right", the right-associative colon pairing
// that GeneralTerm's doc comment describes.
type GeneralColonTerm struct {
	Left  GeneralTerm
	Right GeneralTerm
}

func (*GeneralColonTerm) generalTerm()      {}
func (g *GeneralColonTerm) Start() Position { return g.Left.Start() }
func (g *GeneralColonTerm) End() Position   { return g.Right.End() }
func (g *GeneralColonTerm) String() string {
	return generalTermString(g.Left) + ":" + generalTermString(g.Right)
}

// GeneralList is a bracketed, comma-separated list of GeneralTerm values.
type GeneralList struct {
	OpenTok  Token
	Elements []GeneralTerm
	CloseTok Token
}

func (*GeneralList) generalTerm()      {}
func (l *GeneralList) Start() Position { return l.OpenTok.Pos }
func (l *GeneralList) End() Position   { return l.CloseTok.Pos }
func (l *GeneralList) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = generalTermString(e)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func generalTermString(t GeneralTerm) string {
	if t == nil {
		return ""
	}
	if s, ok := t.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

// GeneralData is the leaf vocabulary of a GeneralTerm: a function
// application, a bound meta-variable, a number, a distinct object, or an
// embedded dialect-tagged formula/term.
type GeneralData interface {
	Node
	generalData()
}

func (*IntegerNumber) generalData()       {}
func (*RationalNumber) generalData()      {}
func (*RealNumber) generalData()          {}
func (*DistinctObjectExpr) generalData()  {}

var (
	_ GeneralData = (*IntegerNumber)(nil)
	_ GeneralData = (*DistinctObjectExpr)(nil)
)

// MetaFunction is f(arg1, arg2, ...) in annotation position; a bare MetaFunction
// with no args is a plain atomic word.
type MetaFunction struct {
	FunctorTok Token
	Functor    string
	Args       []GeneralTerm
	CloseTok   Token
}

func (*MetaFunction) generalData()      {}
func (m *MetaFunction) Start() Position { return m.FunctorTok.Pos }
func (m *MetaFunction) End() Position {
	if len(m.Args) == 0 {
		return m.FunctorTok.Pos
	}
	return m.CloseTok.Pos
}

func (m *MetaFunction) String() string {
	if len(m.Args) == 0 {
		return formatFunctor(m.Functor)
	}
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		parts[i] = generalTermString(a)
	}
	return formatFunctor(m.Functor) + "(" + strings.Join(parts, ",") + ")"
}

// MetaVariable is a bound variable appearing in annotation position.
type MetaVariable struct {
	*Variable
}

func (MetaVariable) generalData() {}

// GeneralFormulaData is $thf(...), $tff(...), $fof(...), $cnf(...) or
// $fot(...): a dialect-tagged sub-formula or term embedded in annotation
// position.
type GeneralFormulaData struct {
	KeywordTok Token
	Dialect    string // "$thf", "$tff", "$fof", "$cnf", or "$fot"
	Formula    Expr
	CloseTok   Token
}

func (*GeneralFormulaData) generalData()      {}
func (g *GeneralFormulaData) Start() Position { return g.KeywordTok.Pos }
func (g *GeneralFormulaData) End() Position   { return g.CloseTok.Pos }
func (g *GeneralFormulaData) String() string {
	return g.Dialect + "(" + exprString(g.Formula) + ")"
}

func generalDataString(d GeneralData) string {
	if s, ok := d.(interface{ String() string }); ok {
		return s.String()
	}
	switch v := d.(type) {
	case Number:
		return v.Text()
	case *DistinctObjectExpr:
		return formatDistinctObject(v.Value)
	case MetaVariable:
		return v.Name
	}
	return "<unknown-general-data>"
}

var (
	_ GeneralTerm = (*GeneralDataTerm)(nil)
	_ GeneralTerm = (*GeneralColonTerm)(nil)
	_ GeneralTerm = (*GeneralList)(nil)
	_ GeneralData = (*MetaFunction)(nil)
	_ GeneralData = MetaVariable{}
	_ GeneralData = (*GeneralFormulaData)(nil)
)
