package tlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/leoprover/go-tptp/internal/tlog"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	t.Parallel()
	logger := tlog.New(false)
	core := logger.Core()
	assert.False(t, core.Enabled(zapcore.DebugLevel))
	assert.True(t, core.Enabled(zapcore.InfoLevel))
}

func TestNewVerboseEnablesDebugLevel(t *testing.T) {
	t.Parallel()
	logger := tlog.New(true)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
