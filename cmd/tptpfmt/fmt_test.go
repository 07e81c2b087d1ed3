package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtFileWritesBackWhenRequested(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.p")
	require.NoError(t, os.WriteFile(path, []byte(`fof(ax1,axiom,p(a)).`), 0o644))

	fmtWrite = true
	t.Cleanup(func() { fmtWrite = false })

	require.NoError(t, fmtFile(path))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fof(ax1,axiom,p(a)).\n", string(out))
}

func TestFmtFileRejectsUnparsableInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.p")
	require.NoError(t, os.WriteFile(path, []byte(`not valid tptp`), 0o644))

	fmtWrite = false
	assert.Error(t, fmtFile(path))
}
