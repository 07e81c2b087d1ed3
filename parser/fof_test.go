package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

func TestParseFOFQuantifiers(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`! [X] : ? [Y] : p(X,Y)`)
	require.NoError(t, err)
	outer, ok := f.(*ast.QuantifiedFormula)
	require.True(t, ok)
	assert.Equal(t, ast.Forall, outer.Quant)
	inner, ok := outer.Body.(*ast.QuantifiedFormula)
	require.True(t, ok)
	assert.Equal(t, ast.Exists, inner.Quant)
}

func TestParseFOFBinaryAssociativity(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`p & q & r`)
	require.NoError(t, err)
	top, ok := f.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.And, top.Op)
	// right-associative: p & (q & r)
	_, leftIsLeaf := top.Left.(*ast.FunctionTerm)
	assert.True(t, leftIsLeaf)
	right, ok := top.Right.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.And, right.Op)
}

func TestParseFOFNoTyping(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseFOF(`![X:int]:p(X)`)
	assert.Error(t, err)
}

func TestParseFOFEquation(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`a = b`)
	require.NoError(t, err)
	eq, ok := f.(*ast.Equation)
	require.True(t, ok)
	assert.False(t, eq.Negated)

	f, err = parser.ParseFOF(`a != b`)
	require.NoError(t, err)
	eq, ok = f.(*ast.Equation)
	require.True(t, ok)
	assert.True(t, eq.Negated)
}

func TestParseFOFTrailingGarbageIsError(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseFOF(`p(a) q(b)`)
	assert.Error(t, err)
}
