package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeResolvableWithNoSearchPath(t *testing.T) {
	t.Parallel()
	assert.True(t, includeResolvable("does-not-exist.ax", nil))
}

func TestIncludeResolvableFindsFileOnSearchPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "axioms.ax"), []byte(""), 0o644))

	assert.True(t, includeResolvable("axioms.ax", []string{dir}))
	assert.False(t, includeResolvable("missing.ax", []string{dir}))
}

func TestIncludeResolvableFindsFileByItsOwnPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "axioms.ax")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	assert.True(t, includeResolvable(path, []string{"/nonexistent"}))
}
