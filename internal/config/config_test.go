package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp/internal/config"
)

func TestLoadDefaultsWithNoConfigFile(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Format.IndentWidth)
}

func TestLoadHonorsEnvironmentOverride(t *testing.T) {
	t.Setenv("TPTP_FORMAT_INDENT_WIDTH", "4")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Format.IndentWidth)
}
