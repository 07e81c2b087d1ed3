package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

func TestParseCNFClauseLiterals(t *testing.T) {
	t.Parallel()
	c, err := parser.ParseCNF(`p(X) | ~q(X) | X = a`)
	require.NoError(t, err)
	require.Len(t, c.Literals, 3)

	_, ok := c.Literals[0].(*ast.FunctionTerm)
	assert.True(t, ok)

	neg, ok := c.Literals[1].(*ast.UnaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.Negation, neg.Op)

	eq, ok := c.Literals[2].(*ast.Equation)
	require.True(t, ok)
	assert.False(t, eq.Negated)
}

func TestParseCNFRejectsQuantifiers(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseCNF(`![X]:p(X)`)
	assert.Error(t, err)
}

func TestParseTCFOptionalPrefix(t *testing.T) {
	t.Parallel()
	bare, err := parser.ParseTCF(`p(a) | q(b)`)
	require.NoError(t, err)
	assert.Nil(t, bare.QuantTok)

	withPrefix, err := parser.ParseTCF(`![X:$i]: p(X)`)
	require.NoError(t, err)
	require.NotNil(t, withPrefix.QuantTok)
	require.Len(t, withPrefix.Vars, 1)
	assert.Equal(t, "X", withPrefix.Vars[0].Name.Name)
}
