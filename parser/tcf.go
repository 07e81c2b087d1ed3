package parser

import "github.com/leoprover/go-tptp/ast"

// ParseTCF is the bare tcf entry point:
// an optional universal prefix followed by a CNF clause.
func ParseTCF(src string) (*ast.TCFFormula, error) {
	p := New(src)
	f, err := p.parseTCFFormula()
	if err != nil {
		return nil, err
	}
	if err := p.checkEOF(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseTCFFormula parses an optional universal prefix "! [typed-vars]:"
// followed by a CNF clause.
func (p *Parser) parseTCFFormula() (*ast.TCFFormula, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	if t.Kind != Bang {
		c, err := p.parseCNFClause()
		if err != nil {
			return nil, err
		}
		return &ast.TCFFormula{Clause: c}, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LBracket); err != nil {
		return nil, err
	}
	vars, err := p.parseTypedVariableList(p.parseTFFAtomicType)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	hasParen, err := p.at(LParen)
	if err != nil {
		return nil, err
	}
	if hasParen {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}
	c, err := p.parseCNFClause()
	if err != nil {
		return nil, err
	}
	if hasParen {
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
	}
	tok := t.AsASTToken()
	return &ast.TCFFormula{QuantTok: &tok, Vars: vars, Clause: c}, nil
}
