// Package config resolves generation settings from built-in defaults, an
// optional CUE file and NIMI_* environment variables. Flags are applied on
// top by the CLI.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/flarebyte/nimi/internal/logging"
	"github.com/flarebyte/nimi/internal/output"
	"github.com/flarebyte/nimi/internal/word"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultMinSyllables     = 1
	DefaultMaxSyllables     = 4
	DefaultNasalProbability = 0.5
	DefaultCount            = 20
	DefaultFilterAttempts   = 100
	DefaultLuaTimeoutMs     = 50
	DefaultLogLevel         = "warn"
)

// Config is the fully resolved set of generation settings.
type Config struct {
	MinSyllables     int       `json:"minSyllables"`
	MaxSyllables     int       `json:"maxSyllables"`
	NasalMode        word.Mode `json:"nasalMode"`
	NasalProbability float64   `json:"nasalProbability"`
	// Count is the number of words to print; 0 means no limit.
	Count          int    `json:"count"`
	Seed           int64  `json:"seed"`
	Filter         string `json:"filter,omitempty"`
	FilterAttempts int    `json:"filterAttempts"`
	LuaTimeoutMs   int    `json:"luaTimeoutMs"`
	Format         string `json:"format"`
	LogLevel       string `json:"logLevel"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		MinSyllables:     DefaultMinSyllables,
		MaxSyllables:     DefaultMaxSyllables,
		NasalMode:        word.Suli,
		NasalProbability: DefaultNasalProbability,
		Count:            DefaultCount,
		FilterAttempts:   DefaultFilterAttempts,
		LuaTimeoutMs:     DefaultLuaTimeoutMs,
		Format:           output.FormatLines,
		LogLevel:         DefaultLogLevel,
	}
}

// Validate checks the ranges the word synthesizer relies on.
func (c Config) Validate() error {
	if c.MinSyllables < 1 {
		return invalid("minSyllables must be at least 1 (got %d)", c.MinSyllables)
	}
	if c.MaxSyllables < c.MinSyllables {
		return invalid("maxSyllables (%d) must not be less than minSyllables (%d)", c.MaxSyllables, c.MinSyllables)
	}
	if math.IsNaN(c.NasalProbability) || c.NasalProbability < 0 || c.NasalProbability > 1 {
		return invalid("nasalProbability must be within [0, 1] (got %v)", c.NasalProbability)
	}
	if _, err := c.NasalMode.MarshalText(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Count < 0 {
		return invalid("count must not be negative (got %d)", c.Count)
	}
	if c.FilterAttempts < 1 {
		return invalid("filterAttempts must be at least 1 (got %d)", c.FilterAttempts)
	}
	if c.LuaTimeoutMs < 0 {
		return invalid("luaTimeoutMs must not be negative (got %d)", c.LuaTimeoutMs)
	}
	if !output.IsFormat(c.Format) {
		return invalid("unknown output format %q (supported: %s)", c.Format, output.FormatsCSV())
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
