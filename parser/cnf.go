package parser

import "github.com/leoprover/go-tptp/ast"

// ParseCNF is the bare cnf clause entry point.
func ParseCNF(src string) (*ast.Clause, error) {
	p := New(src)
	c, err := p.parseCNFClause()
	if err != nil {
		return nil, err
	}
	if err := p.checkEOF(); err != nil {
		return nil, err
	}
	return c, nil
}

// parseCNFClause is a non-empty disjunction of literals separated by '|'.
func (p *Parser) parseCNFClause() (*ast.Clause, error) {
	var lits []ast.Expr
	for {
		lit, err := p.parseCNFLiteral()
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
		if ok, err := p.at(Pipe); err != nil {
			return nil, err
		} else if ok {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return ast.NewClause(lits), nil
}

// parseCNFLiteral is: a positive atom, a negated atom, or an equation. Terms
// used inside are functor applications, variables, distinct objects and
// numbers -- no numeric operators, no quantifiers.
func (p *Parser) parseCNFLiteral() (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	if t.Kind == Tilde {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		atom, err := p.parseSimpleTerm()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryFormula{OpTok: t.AsASTToken(), Op: ast.Negation, Body: atom}, nil
	}
	left, err := p.parseSimpleTerm()
	if err != nil {
		return nil, err
	}
	return p.maybeEquation(left, p.parseSimpleTerm)
}
