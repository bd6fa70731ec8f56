// SPDX-License-Identifier: MIT

// Package config loads buildtrack settings from an optional file and
// BUILDTRACK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Limits LimitsConfig `mapstructure:"limits"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LimitsConfig caps graph size per request. Zero means unlimited.
type LimitsConfig struct {
	MaxNodes int `mapstructure:"max_nodes"`
	MaxEdges int `mapstructure:"max_edges"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
	JSON  bool `mapstructure:"json"`
}

// Defaults used when neither file nor environment sets a key.
const (
	DefaultMaxNodes = 10000
	DefaultMaxEdges = 100000
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("limits.max_nodes", DefaultMaxNodes)
	v.SetDefault("limits.max_edges", DefaultMaxEdges)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("output.json", false)
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string
	if c.Limits.MaxNodes < 0 {
		warnings = append(warnings, fmt.Sprintf("limits.max_nodes %d is negative, treated as unlimited", c.Limits.MaxNodes))
	}
	if c.Limits.MaxEdges < 0 {
		warnings = append(warnings, fmt.Sprintf("limits.max_edges %d is negative, treated as unlimited", c.Limits.MaxEdges))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		warnings = append(warnings, err.Error())
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		warnings = append(warnings, fmt.Sprintf("log.format %q is not text or json, using text", c.Log.Format))
	}

	return warnings
}

// Load reads configuration from path (optional; empty means defaults and
// environment only). Environment variables use the BUILDTRACK_ prefix with
// dots replaced by underscores, e.g. BUILDTRACK_LIMITS_MAX_NODES.
func Load(path string) (*Config, []string, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BUILDTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, cfg.Validate(), nil
}

var errBadLevel = errors.New("config: unknown log level")

// ParseLevel maps a level name (debug, info, warn, error) to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w %q, using warn", errBadLevel, s)
	}

	return l, nil
}
