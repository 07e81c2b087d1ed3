package parser

import "github.com/leoprover/go-tptp/ast"

// ParseTFF is the bare tff formula entry point. TFX's extra productions (tuples, $ite, $let, sequents, the
// := and == operators) are always available rather than gated behind a
// separate flag: they are a non-conflicting superset of classic TFF's
// grammar, so a single implementation covers both, the same simplification
// already applied to the dialect-wide Expr unification (see DESIGN.md).
func ParseTFF(src string) (ast.TFFFormula, error) {
	p := New(src)
	f, err := p.parseTFFFormula()
	if err != nil {
		return nil, err
	}
	if err := p.checkEOF(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseTFFFormula is the top-level tff formula slot: an atom directly
// followed by ':' is a Typing statement;
// anything else is tff_logic_formula_or_term.
func (p *Parser) parseTFFFormula() (ast.Expr, error) {
	t0, err := p.cur()
	if err != nil {
		return nil, err
	}
	if isFunctorStart(t0.Kind) || t0.Kind == UpperWord {
		t1, err := p.peek(1)
		if err != nil {
			return nil, err
		}
		if t1.Kind == Colon {
			return p.parseTFFTyping()
		}
	}
	return p.parseTFFLogicFormulaOrTerm(false)
}

// parseTFFLogicFormulaOrTerm is tff_logic_formula_or_term: a unit, an
// optional binary tail, and an optional trailing '==' meta-identity.
// insideEquality mirrors THF's
// acceptEqualityLike flag at the TFF level: FOOL/TFX booleans are
// term-shaped, so no additional restriction is needed here the way THF
// restricts unitary terms; the parameter exists so callers parsing a
// known-term position (e.g. $let binding targets) can be explicit, but the
// grammar itself does not currently need to branch on it.
func (p *Parser) parseTFFLogicFormulaOrTerm(insideEquality bool) (ast.Expr, error) {
	left, err := p.parseTFFUnitFormulaOrTerm()
	if err != nil {
		return nil, err
	}
	result, err := p.parseTFFBinaryTail(left)
	if err != nil {
		return nil, err
	}
	if ok, err := p.at(MetaEquals); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTFFUnitFormulaOrTerm()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryFormula{Op: ast.MetaEquals, Left: result, Right: rhs}, nil
	}
	return result, nil
}

func (p *Parser) parseTFFBinaryTail(left ast.Expr) (ast.Expr, error) {
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
			next, err := p.parseTFFUnitFormulaOrTerm()
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
		right, err := p.parseTFFUnitFormulaOrTerm()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryFormula{Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseTFFUnitFormulaOrTerm() (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case Bang, Question:
		return p.parseTFFQuantified()
	case Tilde:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.parseTFFUnitFormulaOrTerm()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryFormula{OpTok: t.AsASTToken(), Op: ast.Negation, Body: body}, nil
	case LParen:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseTFFLogicFormulaOrTerm(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return inner, nil
	case LBracket:
		next, err := p.peek(1)
		if err != nil {
			return nil, err
		}
		if next.Kind == Dot || next.Kind == Hash {
			return p.parseNonclassical(p.tffNonclassicalArg)
		}
		return p.parseTFFTupleOrSequent()
	case LBrace, Less, Slash:
		return p.parseNonclassical(p.tffNonclassicalArg)
	case DollarWord:
		switch t.Text {
		case "$ite":
			return p.parseTFFConditional()
		case "$let":
			return p.parseTFFLet()
		}
	}
	left, err := p.parseSimpleTerm()
	if err != nil {
		return nil, err
	}
	return p.maybeEquation(left, p.parseSimpleTerm)
}

// tffNonclassicalArg is the unit-formula parser non-classical operators use
// for their parameter values and arguments when parsed in TFF; an index
// after '#' is a plain term read by parseSimpleTerm.
func (p *Parser) tffNonclassicalArg() (ast.Expr, error) { return p.parseTFFUnitFormulaOrTerm() }

func (p *Parser) parseTFFQuantified() (ast.Expr, error) {
	q, err := p.advance()
	if err != nil {
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
	body, err := p.parseTFFUnitFormulaOrTerm()
	if err != nil {
		return nil, err
	}
	quant := ast.Forall
	if q.Kind == Question {
		quant = ast.Exists
	}
	return &ast.QuantifiedFormula{QuantTok: q.AsASTToken(), Quant: quant, Vars: vars, Body: body}, nil
}

// parseTFFTupleOrSequent parses a bracketed tuple and, if '-->' follows,
// extends it into a Sequent.
func (p *Parser) parseTFFTupleOrSequent() (ast.Expr, error) {
	lhs, err := p.parseTFFTuple()
	if err != nil {
		return nil, err
	}
	if ok, err := p.at(Arrow); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTFFTuple()
		if err != nil {
			return nil, err
		}
		return &ast.Sequent{LHS: lhs, RHS: rhs}, nil
	}
	return lhs, nil
}

func (p *Parser) parseTFFTuple() (*ast.Tuple, error) {
	open, err := p.expect(LBracket)
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if ok, err := p.at(RBracket); err != nil {
		return nil, err
	} else if !ok {
		for {
			e, err := p.parseTFFLogicFormulaOrTerm(false)
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
	return &ast.Tuple{OpenTok: open.AsASTToken(), Elements: elems, CloseTok: close.AsASTToken()}, nil
}

func (p *Parser) parseTFFConditional() (*ast.ConditionalFormula, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseTFFLogicFormulaOrTerm(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	then, err := p.parseTFFLogicFormulaOrTerm(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	els, err := p.parseTFFLogicFormulaOrTerm(false)
	if err != nil {
		return nil, err
	}
	close, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalFormula{KeywordTok: kw.AsASTToken(), Cond: cond, Then: then, Else: els, CloseTok: close.AsASTToken()}, nil
}

func (p *Parser) parseTFFLet() (*ast.LetFormula, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	types, err := p.parseLetList(p.parseTFFTyping)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	bindings, err := p.parseLetList(func() (ast.Expr, error) { return p.parseTFFLogicFormulaOrTerm(false) })
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	body, err := p.parseTFFLogicFormulaOrTerm(false)
	if err != nil {
		return nil, err
	}
	close, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	return &ast.LetFormula{KeywordTok: kw.AsASTToken(), Types: types, Bindings: bindings, Body: body, CloseTok: close.AsASTToken()}, nil
}

// parseLetList parses either a single item or a bracketed comma-separated
// list of items, used for both $let's types and bindings slots.
func (p *Parser) parseLetList(parseOne func() (ast.Expr, error)) ([]ast.Expr, error) {
	if ok, err := p.at(LBracket); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		var items []ast.Expr
		for {
			item, err := parseOne()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
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
		return items, nil
	}
	item, err := parseOne()
	if err != nil {
		return nil, err
	}
	return []ast.Expr{item}, nil
}

func (p *Parser) parseTFFTyping() (ast.Expr, error) {
	name, err := p.parseSimpleTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseTFFTopLevelType()
	if err != nil {
		return nil, err
	}
	return &ast.TypingExpr{Name: name, Type: typ}, nil
}

// parseTFFTopLevelType is tffTopLevelType: a
// quantified type, or a (possibly mapping) atomic/tuple/product type.
func (p *Parser) parseTFFTopLevelType() (ast.Expr, error) {
	if ok, err := p.at(TyForall); err != nil {
		return nil, err
	} else if ok {
		return p.parseQuantifiedType()
	}
	left, err := p.parseTFFTypeUnit()
	if err != nil {
		return nil, err
	}
	if ok, err := p.at(Greater); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTFFTopLevelType()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryFormula{Op: ast.MapsTo, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseQuantifiedType() (*ast.QuantifiedType, error) {
	q, err := p.advance()
	if err != nil {
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
	inner, err := p.parseTFFTopLevelType()
	if err != nil {
		return nil, err
	}
	return &ast.QuantifiedType{QuantTok: q.AsASTToken(), Vars: vars, Inner: inner}, nil
}

// parseTFFTypeUnit parses a parenthesized product chain (optionally
// followed by a '>' mapping tail inside the same parentheses) or a plain
// atomic type; nested parentheses are handled by recursion.
func (p *Parser) parseTFFTypeUnit() (ast.Expr, error) {
	if ok, err := p.at(LParen); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseTFFProductChain()
		if err != nil {
			return nil, err
		}
		if ok, err := p.at(Greater); err != nil {
			return nil, err
		} else if ok {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			right, err := p.parseTFFTopLevelType()
			if err != nil {
				return nil, err
			}
			inner = &ast.BinaryFormula{Op: ast.MapsTo, Left: inner, Right: right}
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parseTFFAtomicType()
}

func (p *Parser) parseTFFProductChain() (ast.Expr, error) {
	first, err := p.parseTFFTypeUnit()
	if err != nil {
		return nil, err
	}
	chain := []ast.Expr{first}
	for {
		ok, err := p.at(Star)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseTFFTypeUnit()
		if err != nil {
			return nil, err
		}
		chain = append(chain, next)
	}
	if len(chain) == 1 {
		return chain[0], nil
	}
	return leftFold(chain, ast.ProductTy), nil
}

// parseTFFAtomicType is atomic types: a functor
// optionally applied to a parenthesized list of atomic types, a type
// variable, or a tuple type.
func (p *Parser) parseTFFAtomicType() (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch {
	case t.Kind == UpperWord:
		return p.parseVariable()
	case t.Kind == LBracket:
		return p.parseTFFTupleType()
	case isFunctorStart(t.Kind):
		return p.parseFunctionTerm(p.parseTFFAtomicType)
	}
	return nil, wrongTokenErr(t, "type")
}

func (p *Parser) parseTFFTupleType() (*ast.Tuple, error) {
	open, err := p.expect(LBracket)
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if ok, err := p.at(RBracket); err != nil {
		return nil, err
	} else if !ok {
		for {
			e, err := p.parseTFFAtomicType()
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
	return &ast.Tuple{OpenTok: open.AsASTToken(), Elements: elems, CloseTok: close.AsASTToken()}, nil
}
