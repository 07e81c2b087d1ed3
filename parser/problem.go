package parser

import "github.com/leoprover/go-tptp/ast"

// ParseProblem parses a whole TPTP file: tptpFile := (comment* (include |
// annotatedFormula))*. Leading comments are attached to whichever token
// immediately follows them (see Lexer.Next); here they are filed into
// FormulaComments by formula name, or onto the Include node.
func ParseProblem(src string) (*ast.Problem, error) {
	p := New(src)
	prob := ast.NewProblem()
	for {
		t, err := p.cur()
		if err != nil {
			return nil, err
		}
		if t.Kind == EOF {
			break
		}
		switch {
		case t.Kind == LowerWord && t.Text == "include":
			inc, err := p.parseInclude()
			if err != nil {
				return nil, err
			}
			inc.LeadingComments = t.Comments
			prob.Includes = append(prob.Includes, inc)
		case t.Kind == LowerWord && isDialectKeyword(t.Text):
			af, err := p.parseAnnotatedFormula(t.Text)
			if err != nil {
				return nil, err
			}
			prob.Formulas = append(prob.Formulas, af)
			if len(t.Comments) > 0 {
				prob.FormulaComments[af.FormulaName()] = t.Comments
			}
		default:
			return nil, wrongTokenErr(t, "include, thf, tff, fof, tpi, cnf, or tcf")
		}
	}
	return prob, nil
}

func isDialectKeyword(s string) bool {
	switch s {
	case "thf", "tff", "fof", "tpi", "cnf", "tcf":
		return true
	}
	return false
}

// parseInclude parses include('filename'[, [id1, id2, ...]]). The selector
// is recorded but never expanded.
func (p *Parser) parseInclude() (*ast.Include, error) {
	kw, err := p.advance() // the "include" keyword itself
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	fileTok, err := p.expect(SingleQuoted)
	if err != nil {
		return nil, err
	}
	inc := &ast.Include{KeywordTok: kw.AsASTToken(), Filename: fileTok.Text}
	if ok, err := p.at(Comma); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(LBracket); err != nil {
			return nil, err
		}
		for {
			idTok, err := p.expectOneOf(LowerWord, UpperWord, SingleQuoted)
			if err != nil {
				return nil, err
			}
			inc.Selector = append(inc.Selector, idTok.Text)
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
		if _, err := p.expect(RBracket); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, err
	}
	close, err := p.expect(Dot)
	if err != nil {
		return nil, err
	}
	inc.CloseTok = close.AsASTToken()
	return inc, nil
}

// parseAnnotatedFormula parses keyword(name, role, formula [, source
// [, info...]]). for whichever dialect keyword was just peeked.
func (p *Parser) parseAnnotatedFormula(dialect string) (ast.AnnotatedFormula, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	nameTok, err := p.expectOneOf(LowerWord, Int)
	if err != nil {
		return nil, err
	}
	name := nameTok.Text
	if nameTok.Kind == Int {
		name = nameTok.IntVal.String()
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	role, err := p.parseRole()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}

	switch dialect {
	case "thf":
		formula, err := p.parseTHFFormula()
		if err != nil {
			return nil, err
		}
		anno, close, err := p.finishAnnotated()
		if err != nil {
			return nil, err
		}
		return ast.NewTHFAnnotated(kw.AsASTToken(), name, role, formula, anno, close), nil
	case "tff":
		formula, err := p.parseTFFFormula()
		if err != nil {
			return nil, err
		}
		anno, close, err := p.finishAnnotated()
		if err != nil {
			return nil, err
		}
		return ast.NewTFFAnnotated(kw.AsASTToken(), name, role, formula, anno, close), nil
	case "fof":
		formula, err := p.parseFOFLogicFormula()
		if err != nil {
			return nil, err
		}
		anno, close, err := p.finishAnnotated()
		if err != nil {
			return nil, err
		}
		return ast.NewFOFAnnotated(kw.AsASTToken(), name, role, formula, anno, close), nil
	case "tpi":
		formula, err := p.parseFOFLogicFormula()
		if err != nil {
			return nil, err
		}
		anno, close, err := p.finishAnnotated()
		if err != nil {
			return nil, err
		}
		return ast.NewTPIAnnotated(kw.AsASTToken(), name, role, formula, anno, close), nil
	case "cnf":
		clause, err := p.parseCNFClause()
		if err != nil {
			return nil, err
		}
		anno, close, err := p.finishAnnotated()
		if err != nil {
			return nil, err
		}
		return ast.NewCNFAnnotated(kw.AsASTToken(), name, role, clause, anno, close), nil
	case "tcf":
		formula, err := p.parseTCFFormula()
		if err != nil {
			return nil, err
		}
		anno, close, err := p.finishAnnotated()
		if err != nil {
			return nil, err
		}
		return ast.NewTCFAnnotated(kw.AsASTToken(), name, role, formula, anno, close), nil
	}
	panic("unreachable dialect: " + dialect)
}

// finishAnnotated parses the shared tail of every annotated formula: the
// optional (source, info...) annotations, the closing ')' and the final
// '.'.
func (p *Parser) finishAnnotated() (*ast.Annotations, ast.Token, error) {
	anno, err := p.parseAnnotations()
	if err != nil {
		return nil, ast.Token{}, err
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, ast.Token{}, err
	}
	dot, err := p.expect(Dot)
	if err != nil {
		return nil, ast.Token{}, err
	}
	return anno, dot.AsASTToken(), nil
}
