package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

func TestParseTHFTyping(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTHF(`a : $i > $o`)
	require.NoError(t, err)
	typing, ok := f.(*ast.TypingExpr)
	require.True(t, ok)
	mapping, ok := typing.Type.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.MapsTo, mapping.Op)
}

func TestParseTHFApplyIsLeftAssociative(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTHF(`f @ a @ b`)
	require.NoError(t, err)
	top, ok := f.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.Apply, top.Op)
	left, ok := top.Left.(*ast.BinaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.Apply, left.Op)
}

func TestParseTHFNonclassicalShortForm(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTHF(`[.] p`)
	require.NoError(t, err)
	op, ok := f.(*ast.NonclassicalPolyaryFormula)
	require.True(t, ok)
	assert.Equal(t, ast.NonclassicalBox, op.Op.Kind)
	require.Len(t, op.Args, 1)
}

func TestParseTHFNonclassicalShortFormPrettyPrintsAsShortForm(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ src, want string }{
		{`[.] p`, "[.] p"},
		{`<.> p`, "<.> p"},
		{`/.\ p`, `/.\ p`},
	} {
		f, err := parser.ParseTHF(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, f.String())

		reparsed, err := parser.ParseTHF(f.String())
		require.NoError(t, err)
		assert.True(t, ast.Equal(f, reparsed), "%s", ast.Diff(f, reparsed))
	}
}

func TestParseTHFNonclassicalShortFormAndLongFormAreEqual(t *testing.T) {
	t.Parallel()
	short, err := parser.ParseTHF(`[.] p`)
	require.NoError(t, err)
	long, err := parser.ParseTHF(`{$box} @ p`)
	require.NoError(t, err)
	assert.True(t, ast.Equal(short, long), "%s", ast.Diff(short, long))
}

func TestParseTHFNonclassicalIndexedShortFormPrettyPrintsAsLongForm(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTHF(`[#3] p`)
	require.NoError(t, err)
	op, ok := f.(*ast.NonclassicalPolyaryFormula)
	require.True(t, ok)
	require.NotNil(t, op.Op.Index)
	assert.Equal(t, "{$box(#3)} @ p", f.String())

	reparsed, err := parser.ParseTHF(f.String())
	require.NoError(t, err)
	assert.True(t, ast.Equal(f, reparsed), "%s", ast.Diff(f, reparsed))
}

func TestParseTHFSequent(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseTHF(`[a,b] --> [c]`)
	require.NoError(t, err)
	seq, ok := f.(*ast.Sequent)
	require.True(t, ok)
	assert.Len(t, seq.LHS.Elements, 2)
	assert.Len(t, seq.RHS.Elements, 1)
}
