package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

func TestEqualIgnoresTokens(t *testing.T) {
	t.Parallel()
	a, err := parser.ParseFOF(`p(a) & q(b)`)
	require.NoError(t, err)
	b, err := parser.ParseFOF(`p(a)   &   q(b)`)
	require.NoError(t, err)
	assert.True(t, ast.Equal(a, b), "%s", ast.Diff(a, b))
}

func TestEqualDetectsStructuralDifference(t *testing.T) {
	t.Parallel()
	a, err := parser.ParseFOF(`p(a) & q(b)`)
	require.NoError(t, err)
	b, err := parser.ParseFOF(`p(a) | q(b)`)
	require.NoError(t, err)
	assert.False(t, ast.Equal(a, b))
	assert.NotEmpty(t, ast.Diff(a, b))
}

func TestSymbolsExcludesVariables(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`! [X] : (p(X) & q(a, f(X)))`)
	require.NoError(t, err)
	syms := ast.Symbols(f)
	assert.True(t, syms.Contains("p"))
	assert.True(t, syms.Contains("q"))
	assert.True(t, syms.Contains("a"))
	assert.True(t, syms.Contains("f"))
	assert.False(t, syms.Contains("X"))
}

func TestSymbolsSliceIsSorted(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`q(a) & p(a)`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "p", "q"}, ast.Symbols(f).Slice())
}

func TestChildrenOfBinaryFormula(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`p(a) & q(b)`)
	require.NoError(t, err)
	bf, ok := f.(*ast.BinaryFormula)
	require.True(t, ok)
	children := ast.Children(bf)
	require.Len(t, children, 2)
	assert.Equal(t, bf.Left, children[0])
	assert.Equal(t, bf.Right, children[1])
}

func TestWalkVisitsEveryNode(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`p(a) & q(b)`)
	require.NoError(t, err)
	var visited int
	ast.Walk(f, func(ast.Node) bool {
		visited++
		return true
	})
	// top formula, both leaves, plus each leaf's argument term: at least 3.
	assert.GreaterOrEqual(t, visited, 3)
}

func TestWalkStopsDescendingWhenVisitorReturnsFalse(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseFOF(`p(a) & q(b)`)
	require.NoError(t, err)
	var visited int
	ast.Walk(f, func(ast.Node) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestNumberTextFormsForAllThreeKinds(t *testing.T) {
	t.Parallel()

	i, err := parser.ParseFOF(`42`)
	require.NoError(t, err)
	assert.Equal(t, "42", i.(ast.Number).Text())

	r, err := parser.ParseFOF(`3/4`)
	require.NoError(t, err)
	assert.Equal(t, "3/4", r.(ast.Number).Text())

	real, err := parser.ParseFOF(`1.5E3`)
	require.NoError(t, err)
	assert.Equal(t, "1.5E3", real.(ast.Number).Text())

	plain, err := parser.ParseFOF(`1.5`)
	require.NoError(t, err)
	assert.Equal(t, "1.5", plain.(ast.Number).Text())
}

func TestNewShortFormOpSetsCanonicalName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$box", ast.NewShortFormOp(ast.NonclassicalBox, nil).Name)
	assert.Equal(t, "$dia", ast.NewShortFormOp(ast.NonclassicalDiamond, nil).Name)
	assert.Equal(t, "$cone", ast.NewShortFormOp(ast.NonclassicalCone, nil).Name)
}
