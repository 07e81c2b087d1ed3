package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/reporter"
)

func TestParseErrorFormatsLineAndColumn(t *testing.T) {
	t.Parallel()
	err := reporter.New(ast.Position{Line: 3, Column: 7}, "bad thing %s", "here")
	assert.Equal(t, "3:7: bad thing here", err.Error())
	assert.Equal(t, 3, err.Line)
	assert.Equal(t, 7, err.Column)
}

func TestUnrecognized(t *testing.T) {
	t.Parallel()
	err := reporter.Unrecognized(ast.Position{Line: 1, Column: 1}, '#')
	assert.Contains(t, err.Error(), "Unrecognized token '#'")
}

func TestUnterminated(t *testing.T) {
	t.Parallel()
	err := reporter.Unterminated(ast.Position{Line: 2, Column: 4}, "block comment")
	assert.Contains(t, err.Error(), "Unclosed block comment")
}

func TestWrongToken(t *testing.T) {
	t.Parallel()
	withPayload := reporter.WrongToken(ast.Position{Line: 1, Column: 1}, "')'", "identifier", "foo")
	assert.Contains(t, withPayload.Error(), "Expected ')' but read identifier 'foo'")

	withoutPayload := reporter.WrongToken(ast.Position{Line: 1, Column: 1}, "')'", "end of input", "")
	assert.Contains(t, withoutPayload.Error(), "Expected ')' but read end of input")
	assert.NotContains(t, withoutPayload.Error(), "''")
}

func TestWrongTokenOneOf(t *testing.T) {
	t.Parallel()
	err := reporter.WrongTokenOneOf(ast.Position{Line: 1, Column: 1}, []string{"'!'", "'?'"}, "identifier", "foo")
	assert.Contains(t, err.Error(), "Expected one of '!','?' but read identifier 'foo'")
}

func TestConstraint(t *testing.T) {
	t.Parallel()
	err := reporter.Constraint(ast.Position{Line: 5, Column: 2}, "unary connective cannot be followed directly by another unit")
	assert.Equal(t, "5:2: unary connective cannot be followed directly by another unit", err.Error())
}

func TestUnexpectedEOF(t *testing.T) {
	t.Parallel()
	err := reporter.UnexpectedEOF(ast.Position{Line: 9, Column: 1}, "a closing ')'")
	assert.Contains(t, err.Error(), "Unexpected end of input when a closing ')' was expected")
}
