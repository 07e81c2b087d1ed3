package parser

import "github.com/leoprover/go-tptp/ast"

// ParseTHF is the bare thf formula entry point. It performs the top-level
// disambiguation (typing / tuple-or-sequent / logic formula) that the
// annotated-formula parser also uses.
func ParseTHF(src string) (ast.THFFormula, error) {
	p := New(src)
	f, err := p.parseTHFFormula()
	if err != nil {
		return nil, err
	}
	if err := p.checkEOF(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseTHFFormula is top-level dispatch: an atom
// followed by ':' is a Typing statement; an unparenthesized '[' not
// starting the non-classical short forms is a tuple that may extend into
// a Sequent; anything else is a logic formula.
func (p *Parser) parseTHFFormula() (ast.Expr, error) {
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
			return p.parseTHFTyping()
		}
	}
	if t0.Kind == LBracket {
		next, err := p.peek(1)
		if err != nil {
			return nil, err
		}
		if next.Kind != Dot && next.Kind != Hash {
			return p.parseTHFTupleOrSequent()
		}
	}
	return p.parseTHFLogicFormula()
}

func (p *Parser) parseTHFTyping() (*ast.TypingExpr, error) {
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

func (p *Parser) parseTHFTupleOrSequent() (ast.Expr, error) {
	lhs, err := p.parseTHFTuple()
	if err != nil {
		return nil, err
	}
	if ok, err := p.at(Arrow); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTHFTuple()
		if err != nil {
			return nil, err
		}
		return &ast.Sequent{LHS: lhs, RHS: rhs}, nil
	}
	return lhs, nil
}

func (p *Parser) parseTHFTuple() (*ast.Tuple, error) {
	open, err := p.expect(LBracket)
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if ok, err := p.at(RBracket); err != nil {
		return nil, err
	} else if !ok {
		for {
			e, err := p.parseTHFLogicFormula()
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

// parseTHFLogicFormula is thf_logic_formula: a
// unit (itself possibly already an equation), a binary/type-constructor
// tail, and an optional trailing '==' meta-identity.
func (p *Parser) parseTHFLogicFormula() (ast.Expr, error) {
	left, err := p.parseTHFUnitFormula(true)
	if err != nil {
		return nil, err
	}
	result, err := p.parseTHFTail(left)
	if err != nil {
		return nil, err
	}
	if ok, err := p.at(MetaEquals); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTHFUnitFormula(true)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryFormula{Op: ast.MetaEquals, Left: result, Right: rhs}, nil
	}
	return result, nil
}

func (p *Parser) parseTHFTail(left ast.Expr) (ast.Expr, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch {
	case t.Kind == Pipe || t.Kind == Amp || t.Kind == At:
		op := binaryOpFromKind(t.Kind)
		chain, err := p.collectTHFChain(left, t.Kind)
		if err != nil {
			return nil, err
		}
		if t.Kind == At {
			return leftFold(chain, op), nil
		}
		return rightFold(chain, op), nil
	case isNonAssocBinaryKind(t.Kind):
		op := binaryOpFromKind(t.Kind)
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTHFUnitFormula(true)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryFormula{Op: op, Left: left, Right: right}, nil
	case t.Kind == Greater || t.Kind == Star || t.Kind == PlusTok:
		op := binaryOpFromKind(t.Kind)
		chain, err := p.collectTHFChain(left, t.Kind)
		if err != nil {
			return nil, err
		}
		if t.Kind == Greater {
			return rightFold(chain, op), nil
		}
		return leftFold(chain, op), nil
	}
	return left, nil
}

func (p *Parser) collectTHFChain(left ast.Expr, opKind Kind) ([]ast.Expr, error) {
	chain := []ast.Expr{left}
	for {
		t, err := p.cur()
		if err != nil {
			return nil, err
		}
		if t.Kind != opKind {
			break
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseTHFUnitFormula(true)
		if err != nil {
			return nil, err
		}
		chain = append(chain, next)
	}
	return chain, nil
}

// parseTHFUnitFormula parses the base unit, then, if acceptEquality and a
// trailing '='/'!=' follows, folds it into an Equation -- unless the base
// was a quantified formula or a negation chain, which must be rejected as
// "expected <thf_unitary_term>".
func (p *Parser) parseTHFUnitFormula(acceptEquality bool) (ast.Expr, error) {
	startTok, err := p.cur()
	if err != nil {
		return nil, err
	}
	unit, feasible, err := p.parseTHFUnitFormulaBase()
	if err != nil {
		return nil, err
	}
	if !acceptEquality {
		return unit, nil
	}
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	if t.Kind != EqualsTok && t.Kind != NotEquals {
		return unit, nil
	}
	if !feasible {
		return nil, constraintErr(startTok, "expected <thf_unitary_term>")
	}
	negated := t.Kind == NotEquals
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	rhs, _, err := p.parseTHFUnitFormulaBase()
	if err != nil {
		return nil, err
	}
	return &ast.Equation{Left: unit, Right: rhs, Negated: negated}, nil
}

// parseTHFUnitFormulaBase parses one THF unit and reports whether it is
// "feasible for equality" -- atom-shaped, as opposed to a quantified
// formula or negation chain.
func (p *Parser) parseTHFUnitFormulaBase() (ast.Expr, bool, error) {
	t, err := p.cur()
	if err != nil {
		return nil, false, err
	}
	switch t.Kind {
	case Bang, Question, Caret, Hash, TyForall, TyExists, Choice, Description, TyChoice, TyDescription:
		q, err := p.parseTHFQuantified()
		return q, false, err
	case Tilde:
		if _, err := p.advance(); err != nil {
			return nil, false, err
		}
		body, _, err := p.parseTHFUnitFormulaBase()
		if err != nil {
			return nil, false, err
		}
		return &ast.UnaryFormula{OpTok: t.AsASTToken(), Op: ast.Negation, Body: body}, false, nil
	case TH1Forall, TH1Exists:
		if _, err := p.advance(); err != nil {
			return nil, false, err
		}
		sym := "!!"
		if t.Kind == TH1Exists {
			sym = "??"
		}
		return ast.NewConnectiveTerm(t.AsASTToken(), sym), true, nil
	case LParen:
		if _, err := p.advance(); err != nil {
			return nil, false, err
		}
		inner, err := p.parseTHFLogicFormula()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, false, err
		}
		return inner, true, nil
	case LBracket:
		next, err := p.peek(1)
		if err != nil {
			return nil, false, err
		}
		if next.Kind == Dot || next.Kind == Hash {
			nc, err := p.parseNonclassical(p.thfNonclassicalArg)
			return nc, true, err
		}
		tup, err := p.parseTHFTuple()
		return tup, true, err
	case LBrace, Less, Slash:
		nc, err := p.parseNonclassical(p.thfNonclassicalArg)
		return nc, true, err
	case DollarWord:
		switch t.Text {
		case "$ite":
			v, err := p.parseTHFConditional()
			return v, true, err
		case "$let":
			v, err := p.parseTHFLet()
			return v, true, err
		}
	}
	term, err := p.parseSimpleTerm()
	return term, true, err
}

func quantifierFromKind(k Kind) ast.Quantifier {
	switch k {
	case Bang:
		return ast.Forall
	case Question:
		return ast.Exists
	case Caret:
		return ast.Lambda
	case Hash:
		return ast.Epsilon
	case TyForall:
		return ast.TyForall
	case TyExists:
		return ast.TyExists
	case Choice:
		return ast.Choice
	case Description:
		return ast.Description
	case TyChoice:
		return ast.TyChoice
	case TyDescription:
		return ast.TyDescription
	}
	panic("quantifierFromKind: not a quantifier-introducing kind")
}

func (p *Parser) parseTHFQuantified() (*ast.QuantifiedFormula, error) {
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
	body, err := p.parseTHFUnitFormula(false)
	if err != nil {
		return nil, err
	}
	return &ast.QuantifiedFormula{QuantTok: q.AsASTToken(), Quant: quantifierFromKind(q.Kind), Vars: vars, Body: body}, nil
}

// thfNonclassicalArg is the unit-formula parser non-classical operators use
// for their parameter values and arguments when parsed in THF; an index
// after '#' is a plain term read by parseSimpleTerm.
func (p *Parser) thfNonclassicalArg() (ast.Expr, error) { return p.parseTHFUnitFormula(false) }

// parseNonclassical dispatches to the long form ({name(...)} @ args) or one
// of the three short forms ([.]/<.>//.\, optionally indexed with #idx).
// unitParser parses every parameter value and argument slot (an index is a
// plain term in both dialects); THF and
// TFF each embed non-classical operators over their own unit-formula
// grammar, so the dispatch and bracket bookkeeping live here once.
func (p *Parser) parseNonclassical(unitParser func() (ast.Expr, error)) (*ast.NonclassicalPolyaryFormula, error) {
	t, err := p.cur()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case LBrace:
		return p.parseNonclassicalLongForm(unitParser)
	case LBracket:
		return p.parseNonclassicalShortForm(RBracket, ast.NonclassicalBox, unitParser)
	case Less:
		return p.parseNonclassicalShortForm(Greater, ast.NonclassicalDiamond, unitParser)
	case Slash:
		return p.parseNonclassicalShortForm(Backslash, ast.NonclassicalCone, unitParser)
	}
	return nil, wrongTokenErr(t, "non-classical operator")
}

func (p *Parser) parseNonclassicalShortForm(closeKind Kind, kind ast.NonclassicalOpKind, unitParser func() (ast.Expr, error)) (*ast.NonclassicalPolyaryFormula, error) {
	open, err := p.advance()
	if err != nil {
		return nil, err
	}
	var index ast.Expr
	if ok, err := p.at(Hash); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.parseSimpleTerm()
		if err != nil {
			return nil, err
		}
		index = idx
	} else {
		if _, err := p.expect(Dot); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(closeKind); err != nil {
		return nil, err
	}
	arg, err := unitParser()
	if err != nil {
		return nil, err
	}
	return &ast.NonclassicalPolyaryFormula{
		OpenTok: open.AsASTToken(),
		Op:      ast.NewShortFormOp(kind, index),
		Args:    []ast.Expr{arg},
	}, nil
}

var longFormOpKind = map[string]ast.NonclassicalOpKind{
	"$box": ast.NonclassicalBox, "$dia": ast.NonclassicalDiamond, "$cone": ast.NonclassicalCone,
}

func (p *Parser) parseNonclassicalLongForm(unitParser func() (ast.Expr, error)) (*ast.NonclassicalPolyaryFormula, error) {
	open, err := p.expect(LBrace)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectOneOf(DollarWord, LowerWord)
	if err != nil {
		return nil, err
	}
	kind, ok := longFormOpKind[nameTok.Text]
	if !ok {
		kind = ast.NonclassicalNamed
	}
	op := ast.NonclassicalOp{Kind: kind, Name: nameTok.Text}

	if hasParams, err := p.at(LParen); err != nil {
		return nil, err
	} else if hasParams {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if hasIndex, err := p.at(Hash); err != nil {
			return nil, err
		} else if hasIndex {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseSimpleTerm()
			if err != nil {
				return nil, err
			}
			op.Index = idx
			if more, err := p.at(Comma); err != nil {
				return nil, err
			} else if more {
				if _, err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		for {
			if atClose, err := p.at(RParen); err != nil {
				return nil, err
			} else if atClose {
				break
			}
			key, err := p.expectOneOf(LowerWord, DollarWord)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(Assign); err != nil {
				return nil, err
			}
			val, err := unitParser()
			if err != nil {
				return nil, err
			}
			op.Params = append(op.Params, ast.NonclassicalParam{Key: key.Text, Value: val})
			if more, err := p.at(Comma); err != nil {
				return nil, err
			} else if more {
				if _, err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}

	var args []ast.Expr
	for {
		atSign, err := p.at(At)
		if err != nil {
			return nil, err
		}
		if !atSign {
			break
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := unitParser()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &ast.NonclassicalPolyaryFormula{OpenTok: open.AsASTToken(), Op: op, Args: args}, nil
}

func (p *Parser) parseTHFConditional() (*ast.ConditionalFormula, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseTHFLogicFormula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	then, err := p.parseTHFLogicFormula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	els, err := p.parseTHFLogicFormula()
	if err != nil {
		return nil, err
	}
	close, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalFormula{KeywordTok: kw.AsASTToken(), Cond: cond, Then: then, Else: els, CloseTok: close.AsASTToken()}, nil
}

func (p *Parser) parseTHFLet() (*ast.LetFormula, error) {
	kw, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	types, err := p.parseLetList(func() (ast.Expr, error) { return p.parseTHFTyping() })
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	bindings, err := p.parseLetList(func() (ast.Expr, error) { return p.parseTHFLogicFormula() })
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	body, err := p.parseTHFLogicFormula()
	if err != nil {
		return nil, err
	}
	close, err := p.expect(RParen)
	if err != nil {
		return nil, err
	}
	return &ast.LetFormula{KeywordTok: kw.AsASTToken(), Types: types, Bindings: bindings, Body: body, CloseTok: close.AsASTToken()}, nil
}
