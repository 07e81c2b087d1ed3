// Package reporter defines the single error kind the parser ever raises:
// ParseError, a message plus a 1-based source position. There is no error
// recovery in this library -- the first error aborts the parse -- so this
// package only ever needs to construct and return a single value, rather
// than accumulate errors and warnings across a multi-file compilation.
package reporter

import (
	"fmt"

	"github.com/leoprover/go-tptp/ast"
)

// ParseError is returned by every parse entry point on failure. Line and
// Column are 1-based; the parser reserves (-1, -1) for empty input.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// New constructs a ParseError at pos with a formatted message.
func New(pos ast.Position, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
}

// Unrecognized reports an unrecognized character in the lexer.
func Unrecognized(pos ast.Position, ch rune) *ParseError {
	return New(pos, "Unrecognized token '%c'", ch)
}

// Unterminated reports an unterminated literal (unclosed block comment,
// unterminated quoted string, ...).
func Unterminated(pos ast.Position, what string) *ParseError {
	return New(pos, "Unclosed %s", what)
}

// WrongToken reports a required production that saw the wrong token.
func WrongToken(pos ast.Position, expected, gotKind, gotPayload string) *ParseError {
	if gotPayload == "" {
		return New(pos, "Expected %s but read %s", expected, gotKind)
	}
	return New(pos, "Expected %s but read %s '%s'", expected, gotKind, gotPayload)
}

// WrongTokenOneOf reports a required production where several token kinds
// would have been acceptable.
func WrongTokenOneOf(pos ast.Position, expected []string, gotKind, gotPayload string) *ParseError {
	list := ""
	for i, e := range expected {
		if i > 0 {
			list += ","
		}
		list += e
	}
	if gotPayload == "" {
		return New(pos, "Expected one of %s but read %s", list, gotKind)
	}
	return New(pos, "Expected one of %s but read %s '%s'", list, gotKind, gotPayload)
}

// Constraint reports a violated grammar constraint, such as a unary
// connective followed by another unit where a <thf_unitary_term> was
// required.
func Constraint(pos ast.Position, message string) *ParseError {
	return New(pos, "%s", message)
}

// UnexpectedEOF reports premature end of input at the position of the last
// successfully consumed token.
func UnexpectedEOF(pos ast.Position, expected string) *ParseError {
	return New(pos, "Unexpected end of input when %s was expected", expected)
}
