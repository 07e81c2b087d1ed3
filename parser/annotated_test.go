package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

func TestParseAnnotatedDispatchesOnKeyword(t *testing.T) {
	t.Parallel()
	af, err := parser.ParseAnnotated(`fof(ax1, axiom, p(a)).`)
	require.NoError(t, err)
	assert.Equal(t, "fof", af.Dialect())
	assert.Equal(t, "ax1", af.FormulaName())
	assert.Equal(t, "axiom", af.FormulaRole().Name)
}

func TestParseAnnotatedRejectsUnknownDialect(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseAnnotated(`bogus(a, axiom, p(a)).`)
	assert.Error(t, err)
}

func TestParseAnnotatedTypedEntryPoints(t *testing.T) {
	t.Parallel()

	thf, err := parser.ParseAnnotatedTHF(`thf(a1, axiom, p @ a).`)
	require.NoError(t, err)
	assert.Equal(t, "a1", thf.FormulaName())

	tff, err := parser.ParseAnnotatedTFF(`tff(a2, axiom, ![X:$int]:p(X)).`)
	require.NoError(t, err)
	assert.Equal(t, "a2", tff.FormulaName())

	fof, err := parser.ParseAnnotatedFOF(`fof(a3, axiom, p(a)).`)
	require.NoError(t, err)
	assert.Equal(t, "a3", fof.FormulaName())

	cnf, err := parser.ParseAnnotatedCNF(`cnf(a4, axiom, p(X) | ~q(X)).`)
	require.NoError(t, err)
	assert.Equal(t, "a4", cnf.FormulaName())

	tcf, err := parser.ParseAnnotatedTCF(`tcf(a5, axiom, ![X:$i]: p(X)).`)
	require.NoError(t, err)
	assert.Equal(t, "a5", tcf.FormulaName())

	tpi, err := parser.ParseAnnotatedTPI(`tpi(a6, axiom, p(a)).`)
	require.NoError(t, err)
	assert.Equal(t, "a6", tpi.FormulaName())
}

func TestParseAnnotatedTypedEntryPointRejectsWrongDialect(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseAnnotatedTHF(`fof(a1, axiom, p(a)).`)
	assert.Error(t, err)
}

func TestParseAnnotatedCapturesAnnotations(t *testing.T) {
	t.Parallel()
	af, err := parser.ParseAnnotated(`fof(a1, axiom, p(a), inference(resolution,[],[b1,b2])).`)
	require.NoError(t, err)
	anno := af.FormulaAnnotations()
	require.NotNil(t, anno)
	require.NotNil(t, anno.Source)
}

func TestParseAnnotatedOriginIsSetOnKeyword(t *testing.T) {
	t.Parallel()
	af, err := parser.ParseAnnotated(`fof(a1, axiom, p(a)).`)
	require.NoError(t, err)
	origin := af.FormulaMeta().Origin()
	assert.NotEqual(t, ast.NoPosition, origin)
	assert.Equal(t, 1, origin.Line)
}
