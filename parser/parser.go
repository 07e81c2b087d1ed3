// Package parser implements a hand-written recursive-descent parser with
// unbounded lookahead, typically consumed no more than three tokens deep,
// with a peekUnder helper for skipping a run of identical tokens. Telling a
// typing statement from a logic formula looks only at the next token, so a
// typing wrapped in parentheses, such as (f : $i), is not recognized as one.
package parser

import (
	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/reporter"
)

// Parser holds a lexer and a growing FIFO lookahead buffer of tokens
// dequeued from it.
type Parser struct {
	lex     *Lexer
	buf     []Token
	lastPos ast.Position
}

// New constructs a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: NewLexer(src), lastPos: ast.NoPosition}
}

func (p *Parser) fill(n int) error {
	for len(p.buf) <= n {
		t, err := p.lex.Next()
		if err != nil {
			return err
		}
		if t.Kind == EOF {
			// End of input is reported at the last real token's position
			// (NoPosition when the input has none).
			if len(p.buf) > 0 {
				t.Pos = p.buf[len(p.buf)-1].Pos
			} else {
				t.Pos = p.lastPos
			}
		}
		p.buf = append(p.buf, t)
	}
	return nil
}

// peek returns the i-th token beyond the current position without
// consuming it. peek(0) is the next unconsumed token.
func (p *Parser) peek(i int) (Token, error) {
	if err := p.fill(i); err != nil {
		return Token{}, err
	}
	return p.buf[i], nil
}

func (p *Parser) cur() (Token, error) { return p.peek(0) }

// advance consumes and returns the next token.
func (p *Parser) advance() (Token, error) {
	t, err := p.peek(0)
	if err != nil {
		return Token{}, err
	}
	p.buf = p.buf[1:]
	p.lastPos = t.Pos
	return t, nil
}

// peekUnder returns the kind of the first token, starting from the current
// position, that is not k -- i.e. it skips a run of k tokens and reports
// what follows, without consuming anything.
func (p *Parser) peekUnder(k Kind) (Kind, error) {
	i := 0
	for {
		t, err := p.peek(i)
		if err != nil {
			return 0, err
		}
		if t.Kind != k {
			return t.Kind, nil
		}
		i++
	}
}

func (p *Parser) errPos() ast.Position {
	if t, err := p.peek(0); err == nil {
		return t.Pos
	}
	return p.lastPos
}

// expect consumes the next token, raising a ParseError if its Kind is not
// k.
func (p *Parser) expect(k Kind) (Token, error) {
	t, err := p.advance()
	if err != nil {
		return Token{}, err
	}
	if t.Kind == EOF {
		return Token{}, reporter.UnexpectedEOF(p.lastPos, k.String())
	}
	if t.Kind != k {
		return Token{}, reporter.WrongToken(t.Pos, k.String(), t.Kind.String(), t.Text)
	}
	return t, nil
}

func (p *Parser) expectOneOf(ks ...Kind) (Token, error) {
	t, err := p.advance()
	if err != nil {
		return Token{}, err
	}
	if t.Kind == EOF {
		names := make([]string, len(ks))
		for i, k := range ks {
			names[i] = k.String()
		}
		return Token{}, reporter.UnexpectedEOF(p.lastPos, names[0])
	}
	for _, k := range ks {
		if t.Kind == k {
			return t, nil
		}
	}
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return Token{}, reporter.WrongTokenOneOf(t.Pos, names, t.Kind.String(), t.Text)
}

// at reports whether the next unconsumed token has kind k.
func (p *Parser) at(k Kind) (bool, error) {
	t, err := p.cur()
	if err != nil {
		return false, err
	}
	return t.Kind == k, nil
}

// atEOF reports whether the parser has reached end of input.
func (p *Parser) atEOF() (bool, error) { return p.at(EOF) }

// expectLowerWord is shorthand for the common case of expecting a plain
// identifier (role names, functors written as bare words, dialect
// keywords).
func (p *Parser) expectLowerWord() (Token, error) { return p.expect(LowerWord) }

// checkEOF is called by each public entry point after its production has
// been fully consumed: TPTP's grammar has no trailing content after a
// complete construct, so anything left over is an error.
func (p *Parser) checkEOF() error {
	t, err := p.cur()
	if err != nil {
		return err
	}
	if t.Kind != EOF {
		return reporter.WrongToken(t.Pos, "end of input", t.Kind.String(), t.Text)
	}
	return nil
}
