// Package config loads tptpfmt's project-level configuration using the
// standard viper precedence chain: defaults, then config file, then
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is tptpfmt's on-disk configuration, read from .tptp.yaml (or
// .tptp.yml) in the current directory if present.
type Config struct {
	IncludePaths []string `mapstructure:"include_paths"`
	Format       FormatConfig `mapstructure:"format"`
}

// FormatConfig controls the fmt subcommand's output.
type FormatConfig struct {
	// IndentWidth is reserved for a future pretty-printer that indents
	// nested terms; the current printer always emits the compact,
	// single-line canonical form, so this is read but not yet consulted.
	IndentWidth int `mapstructure:"indent_width"`
}

// Load reads configuration from .tptp.yaml/.tptp.yml in the current
// directory, falling back to defaults if no file is present.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("format.indent_width", 2)
	v.SetConfigName(".tptp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TPTP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
