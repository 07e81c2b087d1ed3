package parser

import "github.com/leoprover/go-tptp/ast"

// parseFunctionTerm parses functor[(arg, arg, ...)] with args produced by
// argParser, shared by every dialect's term grammar.
func (p *Parser) parseFunctionTerm(argParser func() (ast.Expr, error)) (*ast.FunctionTerm, error) {
	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	ft := &ast.FunctionTerm{FunctorTok: t.AsASTToken(), Functor: functorText(t), CloseTok: t.AsASTToken()}
	if ok, err := p.at(LParen); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		for {
			arg, err := argParser()
			if err != nil {
				return nil, err
			}
			ft.Args = append(ft.Args, arg)
			if ok, err := p.at(Comma); err != nil {
				return nil, err
			} else if ok {
				if _, err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		close, err := p.expect(RParen)
		if err != nil {
			return nil, err
		}
		ft.CloseTok = close.AsASTToken()
	}
	return ft, nil
}

// maybeEquation checks for a trailing '=' or '!=' after left and, if
// present, consumes one more unit via parseRHS to build an Equation.
func (p *Parser) maybeEquation(left ast.Expr, parseRHS func() (ast.Expr, error)) (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	if t.Kind != EqualsTok && t.Kind != NotEquals {
		return left, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	right, err := parseRHS()
	if err != nil {
		return nil, err
	}
	return &ast.Equation{Left: left, Right: right, Negated: t.Kind == NotEquals}, nil
}

// parseSimpleTerm parses a plain term: variable, number, distinct object,
// or functor application -- the common leaf grammar shared by FOF, CNF and
// TCF.
func (p *Parser) parseSimpleTerm() (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch {
	case t.Kind == UpperWord:
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		return v, nil
	case isNumberKind(t.Kind):
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return numberFromToken(t), nil
	case t.Kind == DoubleQuoted:
		return p.parseDistinctObject()
	case isFunctorStart(t.Kind):
		return p.parseFunctionTerm(p.parseSimpleTerm)
	}
	return nil, wrongTokenErr(t, "term")
}
