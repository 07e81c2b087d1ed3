// Package tlog wraps zap with the one constructor the rest of the ambient
// stack needs: a development logger for interactive use, falling back to a
// no-op logger if zap itself cannot be constructed.
package tlog

import "go.uber.org/zap"

// New builds a development-mode zap logger. verbose raises the level to
// debug; otherwise the logger is left at zap's info default.
func New(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
