package parser

import "github.com/leoprover/go-tptp/ast"

// ParseFOF is the bare fof formula entry point (no annotations).
func ParseFOF(src string) (ast.FOFFormula, error) {
	p := New(src)
	f, err := p.parseFOFLogicFormula()
	if err != nil {
		return nil, err
	}
	if err := p.checkEOF(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseFOFLogicFormula is fof_logic_formula: a unit formula followed by an
// optional binary tail.
func (p *Parser) parseFOFLogicFormula() (ast.Expr, error) {
	left, err := p.parseFOFUnitFormula()
	if err != nil {
		return nil, err
	}
	return p.parseFOFBinaryTail(left)
}

func (p *Parser) parseFOFBinaryTail(left ast.Expr) (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch {
	case isAssociativeKind(t.Kind):
		op := binaryOpFromKind(t.Kind)
		chain := []ast.Expr{left}
		for {
			t2, err := p.cur()
			if err != nil {
				return nil, err
			}
			if t2.Kind != t.Kind {
				break
			}
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			next, err := p.parseFOFUnitFormula()
			if err != nil {
				return nil, err
			}
			chain = append(chain, next)
		}
		return rightFold(chain, op), nil
	case isNonAssocBinaryKind(t.Kind):
		op := binaryOpFromKind(t.Kind)
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFOFUnitFormula()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryFormula{Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

// fofNoTyping rejects a colon where FOF variables never carry a type.
func (p *Parser) fofNoTyping() (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	return nil, constraintErr(t, "FOF variables may not be typed")
}

func (p *Parser) parseFOFUnitFormula() (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case Bang, Question:
		return p.parseFOFQuantified()
	case Tilde:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.parseFOFUnitFormula()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryFormula{OpTok: t.AsASTToken(), Op: ast.Negation, Body: body}, nil
	case LParen:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseFOFLogicFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	left, err := p.parseSimpleTerm()
	if err != nil {
		return nil, err
	}
	return p.maybeEquation(left, p.parseSimpleTerm)
}

func (p *Parser) parseFOFQuantified() (ast.Expr, error) {
	q, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LBracket); err != nil {
		return nil, err
	}
	vars, err := p.parseTypedVariableList(p.fofNoTyping)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	body, err := p.parseFOFUnitFormula()
	if err != nil {
		return nil, err
	}
	quant := ast.Forall
	if q.Kind == Question {
		quant = ast.Exists
	}
	return &ast.QuantifiedFormula{QuantTok: q.AsASTToken(), Quant: quant, Vars: vars, Body: body}, nil
}
