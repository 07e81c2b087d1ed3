package ast

import "strings"

// MetaOrigin is the Meta key the parser always sets on every annotated
// formula: the (line, column) of its leading dialect keyword.
const MetaOrigin = "origin"

// Meta is the mutable side-map attached to every annotated formula. It is
// deliberately excluded from structural equality comparisons (ast.Equal).
// The parser only ever writes MetaOrigin; callers are free to add further
// keys.
type Meta struct {
	values map[string]any
}

func NewMeta() *Meta {
	return &Meta{values: make(map[string]any)}
}

func (m *Meta) Set(key string, value any) {
	m.values[key] = value
}

func (m *Meta) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Origin returns the (line, column) stored under MetaOrigin, or NoPosition
// if it was never set.
func (m *Meta) Origin() Position {
	if v, ok := m.Get(MetaOrigin); ok {
		if pos, ok := v.(Position); ok {
			return pos
		}
	}
	return NoPosition
}

// Role is an annotated formula's role (e.g. "axiom", "conjecture") plus an
// optional structured sub-role appended after a '-'.
type Role struct {
	Name    string
	SubRole GeneralTerm // nil if none
}

func (r Role) String() string {
	if r.SubRole != nil {
		return r.Name + "-" + generalTermString(r.SubRole)
	}
	return r.Name
}

// Annotations is the optional (source, info...) pair following an
// annotated formula's body.
type Annotations struct {
	Source GeneralTerm
	Info   []GeneralTerm
}

func (a *Annotations) String() string {
	if a == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(generalTermString(a.Source))
	for _, info := range a.Info {
		sb.WriteByte(',')
		sb.WriteString(generalTermString(info))
	}
	return sb.String()
}

// AnnotatedFormula is implemented by the six per-dialect annotated-formula
// wrapper types.
type AnnotatedFormula interface {
	Node
	FormulaName() string
	FormulaRole() Role
	FormulaAnnotations() *Annotations
	FormulaMeta() *Meta
	Dialect() string
	annotatedFormula()
}

// annotatedBase holds the bookkeeping shared by every dialect's annotated
// formula wrapper.
type annotatedBase struct {
	KeywordTok Token
	Name       string
	RoleVal    Role
	Anno       *Annotations
	MetaVal    *Meta
	CloseTok   Token
}

func newAnnotatedBase(keyword Token, name string, role Role, anno *Annotations, meta *Meta, close Token) annotatedBase {
	if meta == nil {
		meta = NewMeta()
	}
	return annotatedBase{KeywordTok: keyword, Name: name, RoleVal: role, Anno: anno, MetaVal: meta, CloseTok: close}
}

func (a annotatedBase) Start() Position               { return a.KeywordTok.Pos }
func (a annotatedBase) End() Position                 { return a.CloseTok.Pos }
func (a annotatedBase) FormulaName() string            { return a.Name }
func (a annotatedBase) FormulaRole() Role               { return a.RoleVal }
func (a annotatedBase) FormulaAnnotations() *Annotations { return a.Anno }
func (a annotatedBase) FormulaMeta() *Meta              { return a.MetaVal }

func formatAnnotated(dialect string, base annotatedBase, formula string) string {
	var sb strings.Builder
	sb.WriteString(dialect)
	sb.WriteByte('(')
	sb.WriteString(base.Name)
	sb.WriteByte(',')
	sb.WriteString(base.RoleVal.String())
	sb.WriteByte(',')
	sb.WriteString(formula)
	if base.Anno != nil {
		sb.WriteByte(',')
		sb.WriteString(base.Anno.String())
	}
	sb.WriteString(").")
	return sb.String()
}

// THFAnnotated is a thf(...) annotated formula. Formula is a TypingExpr for
// a typing statement, a *Sequent for a sequent, or any other Expr for a
// logical formula.
type THFAnnotated struct {
	annotatedBase
	Formula Expr
}

func (*THFAnnotated) annotatedFormula() {}
func (*THFAnnotated) Dialect() string   { return "thf" }
func (f *THFAnnotated) String() string  { return formatAnnotated("thf", f.annotatedBase, exprString(f.Formula)) }

// TFFAnnotated is a tff(...) annotated formula.
type TFFAnnotated struct {
	annotatedBase
	Formula Expr
}

func (*TFFAnnotated) annotatedFormula() {}
func (*TFFAnnotated) Dialect() string   { return "tff" }
func (f *TFFAnnotated) String() string  { return formatAnnotated("tff", f.annotatedBase, exprString(f.Formula)) }

// FOFAnnotated is a fof(...) annotated formula.
type FOFAnnotated struct {
	annotatedBase
	Formula Expr
}

func (*FOFAnnotated) annotatedFormula() {}
func (*FOFAnnotated) Dialect() string   { return "fof" }
func (f *FOFAnnotated) String() string  { return formatAnnotated("fof", f.annotatedBase, exprString(f.Formula)) }

// TPIAnnotated is a tpi(...) annotated formula: syntactically FOF wrapped
// under a different keyword.
type TPIAnnotated struct {
	annotatedBase
	Formula Expr
}

func (*TPIAnnotated) annotatedFormula() {}
func (*TPIAnnotated) Dialect() string   { return "tpi" }
func (f *TPIAnnotated) String() string  { return formatAnnotated("tpi", f.annotatedBase, exprString(f.Formula)) }

// CNFAnnotated is a cnf(...) annotated formula; its body is a single clause.
type CNFAnnotated struct {
	annotatedBase
	Formula *Clause
}

func (*CNFAnnotated) annotatedFormula() {}
func (*CNFAnnotated) Dialect() string   { return "cnf" }
func (f *CNFAnnotated) String() string  { return formatAnnotated("cnf", f.annotatedBase, f.Formula.String()) }

// TCFAnnotated is a tcf(...) annotated formula: an optional universal
// variable prefix followed by a clause.
type TCFAnnotated struct {
	annotatedBase
	Formula *TCFFormula
}

func (*TCFAnnotated) annotatedFormula() {}
func (*TCFAnnotated) Dialect() string   { return "tcf" }
func (f *TCFAnnotated) String() string  { return formatAnnotated("tcf", f.annotatedBase, f.Formula.String()) }

var (
	_ AnnotatedFormula = (*THFAnnotated)(nil)
	_ AnnotatedFormula = (*TFFAnnotated)(nil)
	_ AnnotatedFormula = (*FOFAnnotated)(nil)
	_ AnnotatedFormula = (*TPIAnnotated)(nil)
	_ AnnotatedFormula = (*CNFAnnotated)(nil)
	_ AnnotatedFormula = (*TCFAnnotated)(nil)
)

// NewTHFAnnotated, NewTFFAnnotated, ... construct annotated formulas with
// their keyword/name/role/formula/annotations/closing '.' already known and
// a fresh Meta with MetaOrigin set to the keyword's position.
func newMetaWithOrigin(keyword Token) *Meta {
	m := NewMeta()
	m.Set(MetaOrigin, keyword.Pos)
	return m
}

func NewTHFAnnotated(keyword Token, name string, role Role, formula Expr, anno *Annotations, close Token) *THFAnnotated {
	return &THFAnnotated{annotatedBase: newAnnotatedBase(keyword, name, role, anno, newMetaWithOrigin(keyword), close), Formula: formula}
}

func NewTFFAnnotated(keyword Token, name string, role Role, formula Expr, anno *Annotations, close Token) *TFFAnnotated {
	return &TFFAnnotated{annotatedBase: newAnnotatedBase(keyword, name, role, anno, newMetaWithOrigin(keyword), close), Formula: formula}
}

func NewFOFAnnotated(keyword Token, name string, role Role, formula Expr, anno *Annotations, close Token) *FOFAnnotated {
	return &FOFAnnotated{annotatedBase: newAnnotatedBase(keyword, name, role, anno, newMetaWithOrigin(keyword), close), Formula: formula}
}

func NewTPIAnnotated(keyword Token, name string, role Role, formula Expr, anno *Annotations, close Token) *TPIAnnotated {
	return &TPIAnnotated{annotatedBase: newAnnotatedBase(keyword, name, role, anno, newMetaWithOrigin(keyword), close), Formula: formula}
}

func NewCNFAnnotated(keyword Token, name string, role Role, formula *Clause, anno *Annotations, close Token) *CNFAnnotated {
	return &CNFAnnotated{annotatedBase: newAnnotatedBase(keyword, name, role, anno, newMetaWithOrigin(keyword), close), Formula: formula}
}

func NewTCFAnnotated(keyword Token, name string, role Role, formula *TCFFormula, anno *Annotations, close Token) *TCFAnnotated {
	return &TCFAnnotated{annotatedBase: newAnnotatedBase(keyword, name, role, anno, newMetaWithOrigin(keyword), close), Formula: formula}
}
