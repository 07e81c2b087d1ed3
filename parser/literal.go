package parser

import "github.com/leoprover/go-tptp/ast"

// numberFromToken builds the right ast.Number variant from a lexed
// Int/Rational/Real token.
func numberFromToken(t Token) ast.Number {
	astTok := t.AsASTToken()
	switch t.Kind {
	case Int:
		return ast.NewIntegerNumber(astTok, t.IntVal)
	case Rational:
		return ast.NewRationalNumber(astTok, t.RatNum, t.RatDenom)
	case Real:
		return ast.NewRealNumber(astTok, t.Negative, t.RealWhole, t.RealDecimal, t.RealExponent)
	}
	panic("numberFromToken: not a number token")
}

func isNumberKind(k Kind) bool { return k == Int || k == Rational || k == Real }

// parseVariable consumes an UpperWord as a bound/free variable reference.
func (p *Parser) parseVariable() (*ast.Variable, error) {
	t, err := p.expect(UpperWord)
	if err != nil {
		return nil, err
	}
	return ast.NewVariable(t.AsASTToken(), t.Text), nil
}

// parseDistinctObject consumes a DoubleQuoted token.
func (p *Parser) parseDistinctObject() (*ast.DistinctObjectExpr, error) {
	t, err := p.expect(DoubleQuoted)
	if err != nil {
		return nil, err
	}
	return ast.NewDistinctObjectExpr(t.AsASTToken(), t.Text), nil
}

// functorText returns the decoded functor name for a LowerWord, DollarWord,
// DollarDollarWord or SingleQuoted token -- the four token kinds that can
// start an atom/functor.
func functorText(t Token) string { return t.Text }

func isFunctorStart(k Kind) bool {
	switch k {
	case LowerWord, DollarWord, DollarDollarWord, SingleQuoted:
		return true
	}
	return false
}

// parseTypedVariableList parses a comma-separated, non-empty list of
// "Var[:type]?" entries, without the surrounding brackets.
func (p *Parser) parseTypedVariableList(parseType func() (ast.Expr, error)) ([]ast.TypedVariable, error) {
	var out []ast.TypedVariable
	for {
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		tv := ast.TypedVariable{Name: v}
		if ok, err := p.at(Colon); err != nil {
			return nil, err
		} else if ok {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			typ, err := parseType()
			if err != nil {
				return nil, err
			}
			tv.Type = typ
		}
		out = append(out, tv)
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
	return out, nil
}
