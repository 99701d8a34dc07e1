package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/flarebyte/nimi/internal/word"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "NIMI_"

// envOverrides mirrors Config with pointer fields so unset variables can be
// told apart from zero values.
type envOverrides struct {
	MinSyllables     *int     `env:"MIN_SYLLABLES"`
	MaxSyllables     *int     `env:"MAX_SYLLABLES"`
	NasalMode        *string  `env:"NASAL_MODE"`
	NasalProbability *float64 `env:"NASAL_PROBABILITY"`
	Count            *int     `env:"COUNT"`
	Seed             *int64   `env:"SEED"`
	Filter           *string  `env:"FILTER"`
	FilterAttempts   *int     `env:"FILTER_ATTEMPTS"`
	LuaTimeoutMs     *int     `env:"LUA_TIMEOUT_MS"`
	Format           *string  `env:"FORMAT"`
	LogLevel         *string  `env:"LOG_LEVEL"`
}

// ApplyEnv overlays NIMI_* variables from the process environment onto c.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix})
}

// ApplyEnvMap is ApplyEnv with an explicit environment, keyed by full
// variable name.
func (c *Config) ApplyEnvMap(environ map[string]string) error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func (c *Config) applyEnv(opts env.Options) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	setIf(&c.MinSyllables, o.MinSyllables)
	setIf(&c.MaxSyllables, o.MaxSyllables)
	setIf(&c.NasalProbability, o.NasalProbability)
	setIf(&c.Count, o.Count)
	setIf(&c.Seed, o.Seed)
	setIf(&c.Filter, o.Filter)
	setIf(&c.FilterAttempts, o.FilterAttempts)
	setIf(&c.LuaTimeoutMs, o.LuaTimeoutMs)
	setIf(&c.Format, o.Format)
	setIf(&c.LogLevel, o.LogLevel)
	if o.NasalMode != nil {
		m, err := word.ParseMode(*o.NasalMode)
		if err != nil {
			return fmt.Errorf("%w: %sNASAL_MODE: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.NasalMode = m
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
