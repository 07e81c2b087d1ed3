package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

const sampleProblem = `
% leading file comment
include('axioms.ax',[ax1,ax2]).

% comment on the conjecture
fof(ax1, axiom, p(a)).
cnf(c1, negated_conjecture, ~p(X) | q(X)).
tff(t1, axiom, ! [X:$int] : (p(X) => q(X))).
`

func TestParseProblemStructure(t *testing.T) {
	t.Parallel()
	prob, err := parser.ParseProblem(sampleProblem)
	require.NoError(t, err)

	require.Len(t, prob.Includes, 1)
	assert.Equal(t, "axioms.ax", prob.Includes[0].Filename)
	assert.Equal(t, []string{"ax1", "ax2"}, prob.Includes[0].Selector)

	require.Len(t, prob.Formulas, 3)
	assert.Equal(t, "fof", prob.Formulas[0].Dialect())
	assert.Equal(t, "ax1", prob.Formulas[0].FormulaName())

	comments, ok := prob.FormulaComments["ax1"]
	require.True(t, ok)
	require.Len(t, comments, 1)
}

func TestParseProblemRoundTrip(t *testing.T) {
	t.Parallel()
	prob, err := parser.ParseProblem(sampleProblem)
	require.NoError(t, err)

	reparsed, err := parser.ParseProblem(prob.String())
	require.NoError(t, err)

	assert.True(t, ast.Equal(prob, reparsed), "%s", ast.Diff(prob, reparsed))
}

func TestParseProblemIsDeterministic(t *testing.T) {
	t.Parallel()
	a, err := parser.ParseProblem(sampleProblem)
	require.NoError(t, err)
	b, err := parser.ParseProblem(sampleProblem)
	require.NoError(t, err)
	assert.True(t, ast.Equal(a, b))
}

func TestParseProblemRejectsUnknownKeyword(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseProblem(`bogus(a,axiom,p(a)).`)
	assert.Error(t, err)
}

func TestParseProblemOriginFidelity(t *testing.T) {
	t.Parallel()
	prob, err := parser.ParseProblem(sampleProblem)
	require.NoError(t, err)
	origin := prob.Formulas[0].FormulaMeta().Origin()
	assert.NotEqual(t, ast.NoPosition, origin)
	assert.Equal(t, 6, origin.Line)
}
