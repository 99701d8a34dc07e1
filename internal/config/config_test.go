package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flarebyte/nimi/internal/word"
)

func writeCUE(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return p
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
	if c.MinSyllables != 1 || c.MaxSyllables != 4 || c.NasalMode != word.Suli || c.NasalProbability != 0.5 || c.Count != 20 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero min", func(c *Config) { c.MinSyllables = 0 }, "minSyllables must be at least 1"},
		{"max below min", func(c *Config) { c.MinSyllables, c.MaxSyllables = 3, 2 }, "maxSyllables (2) must not be less than minSyllables (3)"},
		{"probability above one", func(c *Config) { c.NasalProbability = 1.01 }, "nasalProbability must be within [0, 1]"},
		{"negative probability", func(c *Config) { c.NasalProbability = -0.5 }, "nasalProbability must be within [0, 1]"},
		{"nan probability", func(c *Config) { c.NasalProbability = math.NaN() }, "nasalProbability must be within [0, 1]"},
		{"bad mode", func(c *Config) { c.NasalMode = word.Mode(7) }, "unknown nasal mode"},
		{"negative count", func(c *Config) { c.Count = -1 }, "count must not be negative"},
		{"zero attempts", func(c *Config) { c.FilterAttempts = 0 }, "filterAttempts must be at least 1"},
		{"negative lua timeout", func(c *Config) { c.LuaTimeoutMs = -1 }, "luaTimeoutMs must not be negative"},
		{"bad format", func(c *Config) { c.Format = "xml" }, `unknown output format "xml"`},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, `unknown log level "loud"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	c := Default()
	c.MinSyllables, c.MaxSyllables = 2, 2
	c.NasalProbability = 1
	c.Count = 0
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.NasalProbability = 0
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyFile(t *testing.T) {
	p := writeCUE(t, "nimi.cue", `{
  configVersion: "1"
  generate: {
    minSyllables: 2
    maxSyllables: 5
    nasalMode: "ala"
    nasalProbability: 0.25
    count: 3
    seed: 42
  }
  filter: {
    inline: "#word < 10"
    maxAttempts: 7
  }
  lua: timeoutMs: 20
  output: format: "json"
  log: level: "debug"
}
`)
	c := Default()
	if err := c.ApplyFile(p); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := Config{
		MinSyllables:     2,
		MaxSyllables:     5,
		NasalMode:        word.Ala,
		NasalProbability: 0.25,
		Count:            3,
		Seed:             42,
		Filter:           "#word < 10",
		FilterAttempts:   7,
		LuaTimeoutMs:     20,
		Format:           "json",
		LogLevel:         "debug",
	}
	if c != want {
		t.Fatalf("got %+v\nwant %+v", c, want)
	}
}

func TestApplyFileKeepsUnsetFields(t *testing.T) {
	p := writeCUE(t, "partial.cue", "{\n  configVersion: \"1\"\n  generate: nasalProbability: 1\n}\n")
	c := Default()
	if err := c.ApplyFile(p); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := Default()
	want.NasalProbability = 1
	if c != want {
		t.Fatalf("got %+v", c)
	}
}

func TestApplyFileErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"not cue", "cfg.yaml", "configVersion: 1\n", "unsupported config format: expected .cue"},
		{"syntax", "bad.cue", "{ configVersion: \n", "invalid config:"},
		{"missing version", "nov.cue", "{ generate: count: 1 }\n", "missing required field: configVersion"},
		{"version type", "vt.cue", "{ configVersion: 1 }\n", "invalid type for field: configVersion (expected string)"},
		{"unknown version", "uv.cue", "{ configVersion: \"2\" }\n", `unsupported configVersion: "2" (supported: 1)`},
		{"unknown field", "uf.cue", "{ configVersion: \"1\", extra: true }\n", "unknown top-level field: extra"},
		{"int type", "it.cue", "{ configVersion: \"1\", generate: count: \"many\" }\n", "invalid type for field: generate.count (expected int)"},
		{"probability type", "pt.cue", "{ configVersion: \"1\", generate: nasalProbability: \"half\" }\n", "invalid type for field: generate.nasalProbability (expected number)"},
		{"mode value", "mv.cue", "{ configVersion: \"1\", generate: nasalMode: \"maybe\" }\n", `invalid value for generate.nasalMode: unknown nasal mode "maybe"`},
		{"format type", "ft.cue", "{ configVersion: \"1\", output: format: 3 }\n", "invalid type for field: output.format (expected string)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			err := c.ApplyFile(writeCUE(t, tc.file, tc.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("unexpected error\nwant: %s\n got: %s", tc.want, err.Error())
			}
		})
	}
}

func TestApplyFileMissing(t *testing.T) {
	c := Default()
	err := c.ApplyFile(filepath.Join(t.TempDir(), "absent.cue"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
