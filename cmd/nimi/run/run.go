// Package run implements word generation for the nimi root command.
package run

import (
	"context"
	"io"
	"time"

	"github.com/spf13/pflag"

	"github.com/flarebyte/nimi/internal/config"
	"github.com/flarebyte/nimi/internal/filter"
	"github.com/flarebyte/nimi/internal/generate"
	"github.com/flarebyte/nimi/internal/logging"
	"github.com/flarebyte/nimi/internal/output"
	"github.com/flarebyte/nimi/internal/random"
)

// Options holds the flag-bound state shared by the root and diagnose commands.
type Options struct {
	ConfigPath string
	Verbose    bool

	values config.Config
}

// flagOverlays copies an explicitly set flag from the bound values onto the
// resolved config.
var flagOverlays = map[string]func(dst *config.Config, src config.Config){
	"min-syllables":     func(d *config.Config, s config.Config) { d.MinSyllables = s.MinSyllables },
	"max-syllables":     func(d *config.Config, s config.Config) { d.MaxSyllables = s.MaxSyllables },
	"nasal-mode":        func(d *config.Config, s config.Config) { d.NasalMode = s.NasalMode },
	"nasal-probability": func(d *config.Config, s config.Config) { d.NasalProbability = s.NasalProbability },
	"count":             func(d *config.Config, s config.Config) { d.Count = s.Count },
	"seed":              func(d *config.Config, s config.Config) { d.Seed = s.Seed },
	"filter":            func(d *config.Config, s config.Config) { d.Filter = s.Filter },
	"filter-attempts":   func(d *config.Config, s config.Config) { d.FilterAttempts = s.FilterAttempts },
	"format":            func(d *config.Config, s config.Config) { d.Format = s.Format },
}

// AddFlags registers the generation flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.values = config.Default()
	fs.StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (.cue)")
	fs.IntVarP(&o.values.MinSyllables, "min-syllables", "l", o.values.MinSyllables, "Minimum syllables per word")
	fs.IntVarP(&o.values.MaxSyllables, "max-syllables", "s", o.values.MaxSyllables, "Maximum syllables per word")
	fs.VarP(&o.values.NasalMode, "nasal-mode", "n", "Whether a nasal counts as a syllable: suli (counts) or ala (does not)")
	fs.Float64VarP(&o.values.NasalProbability, "nasal-probability", "N", o.values.NasalProbability, "Probability of a nasal after each non-final syllable")
	fs.IntVarP(&o.values.Count, "count", "m", o.values.Count, "Number of words to print (0 prints forever)")
	fs.Int64Var(&o.values.Seed, "seed", o.values.Seed, "Random seed (0 seeds from the clock)")
	fs.StringVar(&o.values.Filter, "filter", o.values.Filter, "Lua predicate a word must satisfy, e.g. '#word <= 8'")
	fs.IntVar(&o.values.FilterAttempts, "filter-attempts", o.values.FilterAttempts, "Candidates tried per word before giving up")
	fs.StringVarP(&o.values.Format, "format", "f", o.values.Format, "Output format: "+output.FormatsCSV())
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Log debug details to stderr")
}

// Resolve layers defaults, the config file, NIMI_* variables and the flags
// set on fs, then validates the result.
func (o *Options) Resolve(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		if err := cfg.ApplyFile(o.ConfigPath); err != nil {
			return config.Config{}, UsageError(err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, UsageError(err)
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := flagOverlays[f.Name]; ok {
			apply(&cfg, o.values)
		}
	})
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, UsageError(err)
	}
	return cfg, nil
}

// Execute generates words for cfg, writing them to stdout and logs to stderr.
func Execute(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return UsageError(err)
	}
	log := logging.New(stderr, level)

	w, err := output.New(cfg.Format, stdout)
	if err != nil {
		return UsageError(err)
	}

	var pred generate.Predicate
	if cfg.Filter != "" {
		f, err := filter.New(cfg.Filter, time.Duration(cfg.LuaTimeoutMs)*time.Millisecond)
		if err != nil {
			return UsageError(err)
		}
		defer f.Close()
		pred = f
	}

	src := random.New(cfg.Seed)
	log.Debug("generating",
		"minSyllables", cfg.MinSyllables,
		"maxSyllables", cfg.MaxSyllables,
		"nasalMode", cfg.NasalMode.String(),
		"nasalProbability", cfg.NasalProbability,
		"count", cfg.Count,
		"format", cfg.Format,
		"seed", src.Seed(),
	)
	return evaluateRunExit(generate.Run(ctx, cfg, src, pred, w, log))
}
