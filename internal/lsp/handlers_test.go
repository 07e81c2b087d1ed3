package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/parser"
)

func TestDocumentStorePutGetRemove(t *testing.T) {
	t.Parallel()
	d := newDocumentStore()

	_, ok := d.get("file:///a.p")
	assert.False(t, ok)

	d.put("file:///a.p", "fof(a,axiom,p(a)).")
	text, ok := d.get("file:///a.p")
	require.True(t, ok)
	assert.Equal(t, "fof(a,axiom,p(a)).", text)

	d.remove("file:///a.p")
	_, ok = d.get("file:///a.p")
	assert.False(t, ok)
}

func TestMax0ClampsNegatives(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, max0(-5))
	assert.Equal(t, 0, max0(0))
	assert.Equal(t, 3, max0(3))
}

func TestWholeDocumentRangeCountsLines(t *testing.T) {
	t.Parallel()
	rng := wholeDocumentRange("abc\nde\n")
	assert.Equal(t, uint32(0), rng.Start.Line)
	assert.Equal(t, uint32(2), rng.End.Line)
	assert.Equal(t, uint32(0), rng.End.Character)
}

func TestRangeForUsesOneBasedOriginConvertedToZeroBased(t *testing.T) {
	t.Parallel()
	f, err := parser.ParseAnnotated(`fof(a1, axiom, p(a)).`)
	require.NoError(t, err)
	rng := rangeFor(f)
	assert.Equal(t, uint32(0), rng.Start.Line)
	assert.Equal(t, uint32(0), rng.Start.Character)
}
