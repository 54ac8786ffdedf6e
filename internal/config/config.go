// Package config loads cubesim settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultScrambleSteps is the scramble length used when none is configured.
const DefaultScrambleSteps = 20

// Config holds settings read from CUBESIM_* environment variables.
type Config struct {
	ScrambleSteps int    `env:"CUBESIM_SCRAMBLE_STEPS" envDefault:"20"`
	Seed          uint64 `env:"CUBESIM_SEED"` // 0 picks a random seed
	Strict        bool   `env:"CUBESIM_STRICT"`
	Plain         bool   `env:"CUBESIM_PLAIN"`
	LogLevel      string `env:"CUBESIM_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ScrambleSteps < 0 {
		return Config{}, fmt.Errorf("CUBESIM_SCRAMBLE_STEPS must not be negative, got %d", cfg.ScrambleSteps)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names fall back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
