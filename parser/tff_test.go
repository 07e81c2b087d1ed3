package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

func TestParseTFFTyping(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`f : $int > $o`)
	require.NoError(t, err)
	typ, ok := f.(*ast.TypingExpr)
	require.True(t, ok)
	mapping, ok := typ.Type.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.MapsTo, mapping.Op)
}

func TestParseTFFQuantifiedType(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`f : !> [A] : (A > A)`)
	require.NoError(t, err)
	typ, ok := f.(*ast.TypingExpr)
	require.True(t, ok)
	qt, ok := typ.Type.(*ast.QuantifiedType)
	require.True(t, ok)
	require.Len(t, qt.Vars, 1)
	assert.Equal(t, "A", qt.Vars[0].Name.Name)
}

func TestParseTFFConditional(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`$ite(p(X), a, b)`)
	require.NoError(t, err)
	cond, ok := f.(*ast.ConditionalFormula)
	require.True(t, ok)
	assert.NotNil(t, cond.Cond)
	assert.NotNil(t, cond.Then)
	assert.NotNil(t, cond.Else)
}

func TestParseTFFLet(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`$let(f : $int, f = a, p(f))`)
	require.NoError(t, err)
	let, ok := f.(*ast.LetFormula)
	require.True(t, ok)
	require.Len(t, let.Types, 1)
	require.Len(t, let.Bindings, 1)
	assert.NotNil(t, let.Body)
}

func TestParseTFFSequent(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`[a,b] --> [c]`)
	require.NoError(t, err)
	seq, ok := f.(*ast.Sequent)
	require.True(t, ok)
	assert.Len(t, seq.LHS.Elements, 2)
	assert.Len(t, seq.RHS.Elements, 1)
}

func TestParseTFFMetaIdentity(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`a == b`)
	require.NoError(t, err)
	bf, ok := f.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.MetaEquals, bf.Op)
}

func TestParseTFFProductType(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`f : ($int * $int) > $o`)
	require.NoError(t, err)
	typ, ok := f.(*ast.TypingExpr)
	require.True(t, ok)
	mapping, ok := typ.Type.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.MapsTo, mapping.Op)
}

func TestParseTFFTypingRoundTrips(t *testing.T) {
	t.Parallel()
	for _, src := range []string{
		`f : $int > $o`,
		`f : ($int * $int) > $o`,
		`f : $int > $int > $o`,
	} {
		f, err := parser.ParseTFF(src)
		require.NoError(t, err, src)
		reparsed, err := parser.ParseTFF(f.String())
		require.NoError(t, err, "re-parsing %q (from %q)", f.String(), src)
		assert.True(t, ast.Equal(f, reparsed), "%s", ast.Diff(f, reparsed))
	}
}

func TestParseTFFNonclassicalShortForm(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`[.] (p)`)
	require.NoError(t, err)
	op, ok := f.(*ast.NonclassicalPolyaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.NonclassicalBox, op.Op.Kind)
	require.Len(t, op.Args, 1)
}

func TestParseTFFNonclassicalShortFormRoundTrips(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTFF(`[.] (p)`)
	require.NoError(t, err)
	assert.Equal(t, "[.] p", f.String())

	reparsed, err := parser.ParseTFF(f.String())
	require.NoError(t, err)
	assert.True(t, ast.Equal(f, reparsed), "%s", ast.Diff(f, reparsed))
}
