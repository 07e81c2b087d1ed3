package parser

import "github.com/leoprover/go-tptp/ast"

// ParseAnnotated parses a single annotated formula of any dialect,
// dispatching on its leading keyword.
func ParseAnnotated(src string) (ast.AnnotatedFormula, error) {
	p := New(src)
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	if t.Kind != LowerWord || !isDialectKeyword(t.Text) {
		return nil, wrongTokenErr(t, "thf, tff, fof, tpi, cnf, or tcf")
	}
	af, err := p.parseAnnotatedFormula(t.Text)
	if err != nil {
		return nil, err
	}
	if err := p.checkEOF(); err != nil {
		return nil, err
	}
	return af, nil
}

func parseAnnotatedAs[T ast.AnnotatedFormula](src, dialect string) (T, error) {
	var zero T
	p := New(src)
	t, err := p.cur()
	if err != nil {
		return zero, err
	}
	if t.Kind != LowerWord || t.Text != dialect {
		return zero, wrongTokenErr(t, dialect)
	}
	af, err := p.parseAnnotatedFormula(dialect)
	if err != nil {
		return zero, err
	}
	if err := p.checkEOF(); err != nil {
		return zero, err
	}
	typed, ok := af.(T)
	if !ok {
		return zero, wrongTokenErr(t, dialect)
	}
	return typed, nil
}

// ParseAnnotatedTHF, ParseAnnotatedTFF, ... parse a single annotated
// formula of exactly the named dialect.
func ParseAnnotatedTHF(src string) (*ast.THFAnnotated, error) { return parseAnnotatedAs[*ast.THFAnnotated](src, "thf") }
func ParseAnnotatedTFF(src string) (*ast.TFFAnnotated, error) { return parseAnnotatedAs[*ast.TFFAnnotated](src, "tff") }
func ParseAnnotatedFOF(src string) (*ast.FOFAnnotated, error) { return parseAnnotatedAs[*ast.FOFAnnotated](src, "fof") }
func ParseAnnotatedTCF(src string) (*ast.TCFAnnotated, error) { return parseAnnotatedAs[*ast.TCFAnnotated](src, "tcf") }
func ParseAnnotatedCNF(src string) (*ast.CNFAnnotated, error) { return parseAnnotatedAs[*ast.CNFAnnotated](src, "cnf") }
func ParseAnnotatedTPI(src string) (*ast.TPIAnnotated, error) { return parseAnnotatedAs[*ast.TPIAnnotated](src, "tpi") }
