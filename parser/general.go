package parser

import "github.com/leoprover/go-tptp/ast"

// parseRole parses role := lower-word ('-' general-term)?.
func (p *Parser) parseRole() (ast.Role, error) {
	t, err := p.expectLowerWord()
	if err != nil {
		return ast.Role{}, err
	}
	role := ast.Role{Name: t.Text}
	if ok, err := p.at(Minus); err != nil {
		return ast.Role{}, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return ast.Role{}, err
		}
		sub, err := p.parseGeneralTerm()
		if err != nil {
			return ast.Role{}, err
		}
		role.SubRole = sub
	}
	return role, nil
}

// parseGeneralTerm implements general_data (: general_data)* (: general_list)? | general_list,
// recursively, which naturally yields the right-associative colon chain.
func (p *Parser) parseGeneralTerm() (ast.GeneralTerm, error) {
	if ok, err := p.at(LBracket); err != nil {
		return nil, err
	} else if ok {
		return p.parseGeneralList()
	}

	data, err := p.parseGeneralData()
	if err != nil {
		return nil, err
	}
	left := &ast.GeneralDataTerm{Data: data}

	if ok, err := p.at(Colon); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseGeneralTerm()
		if err != nil {
			return nil, err
		}
		return &ast.GeneralColonTerm{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseGeneralList() (*ast.GeneralList, error) {
	open, err := p.expect(LBracket)
	if err != nil {
		return nil, err
	}
	var elems []ast.GeneralTerm
	if ok, err := p.at(RBracket); err != nil {
		return nil, err
	} else if !ok {
		for {
			e, err := p.parseGeneralTerm()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
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
	}
	close, err := p.expect(RBracket)
	if err != nil {
		return nil, err
	}
	return &ast.GeneralList{OpenTok: open.AsASTToken(), Elements: elems, CloseTok: close.AsASTToken()}, nil
}

var generalFormulaDialects = map[string]string{
	"$thf": "$thf", "$tff": "$tff", "$fof": "$fof", "$cnf": "$cnf", "$fot": "$fot",
}

func (p *Parser) parseGeneralData() (ast.GeneralData, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch {
	case isNumberKind(t.Kind):
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return numberFromToken(t), nil
	case t.Kind == DoubleQuoted:
		return p.parseDistinctObject()
	case t.Kind == UpperWord:
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		return ast.MetaVariable{Variable: v}, nil
	case t.Kind == DollarWord && isGeneralFormulaKeyword(t.Text):
		return p.parseGeneralFormulaData()
	case isFunctorStart(t.Kind):
		return p.parseMetaFunction()
	}
	return nil, unexpectedToken(t, "general term")
}

func isGeneralFormulaKeyword(s string) bool {
	_, ok := generalFormulaDialects[s]
	return ok
}

func (p *Parser) parseGeneralFormulaData() (*ast.GeneralFormulaData, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	formula, err := p.parseEmbeddedDialectFormula(kw.Text)
	if err != nil {
		return nil, err
	}
	close, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	return &ast.GeneralFormulaData{
		KeywordTok: kw.AsASTToken(), Dialect: kw.Text, Formula: formula, CloseTok: close.AsASTToken(),
	}, nil
}

// parseEmbeddedDialectFormula dispatches $thf/$tff/$fof/$cnf/$fot's payload
// to the matching dialect's bare-formula entry point.
func (p *Parser) parseEmbeddedDialectFormula(dialect string) (ast.Expr, error) {
	switch dialect {
	case "$thf":
		return p.parseTHFLogicFormula()
	case "$tff":
		return p.parseTFFLogicFormulaOrTerm(false)
	case "$fof", "$fot":
		return p.parseFOFLogicFormula()
	case "$cnf":
		c, err := p.parseCNFClause()
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	panic("unreachable dialect: " + dialect)
}

func (p *Parser) parseMetaFunction() (*ast.MetaFunction, error) {
	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	m := &ast.MetaFunction{FunctorTok: t.AsASTToken(), Functor: functorText(t), CloseTok: t.AsASTToken()}
	if ok, err := p.at(LParen); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		for {
			arg, err := p.parseGeneralTerm()
			if err != nil {
				return nil, err
			}
			m.Args = append(m.Args, arg)
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
		m.CloseTok = close.AsASTToken()
	}
	return m, nil
}

// parseAnnotations parses the optional ", source [, info-list]" tail that
// follows an annotated formula's body.
func (p *Parser) parseAnnotations() (*ast.Annotations, error) {
	if ok, err := p.at(Comma); err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	source, err := p.parseGeneralTerm()
	if err != nil {
		return nil, err
	}
	anno := &ast.Annotations{Source: source}
	for {
		ok, err := p.at(Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		info, err := p.parseGeneralTerm()
		if err != nil {
			return nil, err
		}
		anno.Info = append(anno.Info, info)
	}
	return anno, nil
}

func unexpectedToken(t Token, expected string) error {
	return wrongTokenErr(t, expected)
}
