package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/flarebyte/nimi/internal/word"
)

const CurrentConfigVersion = "1"

var SupportedConfigVersions = []string{CurrentConfigVersion}

var topLevelFields = []string{"configVersion", "generate", "filter", "lua", "output", "log"}

// ApplyFile overlays the values present in the CUE file at path onto c.
// Fields missing from the file keep their current value.
func (c *Config) ApplyFile(path string) error {
	v, err := compileCUE(path)
	if err != nil {
		return err
	}
	if err := checkVersion(v); err != nil {
		return err
	}
	if err := checkTopLevel(v); err != nil {
		return err
	}
	for _, apply := range []func(cue.Value, *Config) error{
		parseGenerateSection,
		parseFilterSection,
		parseLuaSection,
		parseOutputSection,
		parseLogSection,
	} {
		if err := apply(v, c); err != nil {
			return err
		}
	}
	return nil
}

func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func checkVersion(v cue.Value) error {
	f := v.LookupPath(cue.ParsePath("configVersion"))
	if !f.Exists() {
		return errors.New("missing required field: configVersion")
	}
	s, err := f.String()
	if err != nil {
		return errors.New("invalid type for field: configVersion (expected string)")
	}
	if !slices.Contains(SupportedConfigVersions, s) {
		return fmt.Errorf("unsupported configVersion: %q (supported: %s)", s, strings.Join(SupportedConfigVersions, ", "))
	}
	return nil
}

func checkTopLevel(v cue.Value) error {
	it, err := v.Fields()
	if err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	for it.Next() {
		name := it.Selector().String()
		if !slices.Contains(topLevelFields, name) {
			return fmt.Errorf("unknown top-level field: %s", name)
		}
	}
	return nil
}

func parseGenerateSection(v cue.Value, c *Config) error {
	g := v.LookupPath(cue.ParsePath("generate"))
	if !g.Exists() {
		return nil
	}
	if err := lookupInt(g, "generate", "minSyllables", &c.MinSyllables); err != nil {
		return err
	}
	if err := lookupInt(g, "generate", "maxSyllables", &c.MaxSyllables); err != nil {
		return err
	}
	if err := lookupInt(g, "generate", "count", &c.Count); err != nil {
		return err
	}
	var seed int
	if ok, err := lookupIntOK(g, "generate", "seed", &seed); err != nil {
		return err
	} else if ok {
		c.Seed = int64(seed)
	}
	pv := g.LookupPath(cue.ParsePath("nasalProbability"))
	if pv.Exists() {
		if k := pv.Kind(); k != cue.IntKind && k != cue.FloatKind {
			return typeError("generate.nasalProbability", "number")
		}
		p, err := pv.Float64()
		if err != nil {
			return fmt.Errorf("invalid value for generate.nasalProbability: %v", err)
		}
		c.NasalProbability = p
	}
	var mode string
	if ok, err := lookupString(g, "generate", "nasalMode", &mode); err != nil {
		return err
	} else if ok {
		m, err := word.ParseMode(mode)
		if err != nil {
			return fmt.Errorf("invalid value for generate.nasalMode: %w", err)
		}
		c.NasalMode = m
	}
	return nil
}

func parseFilterSection(v cue.Value, c *Config) error {
	f := v.LookupPath(cue.ParsePath("filter"))
	if !f.Exists() {
		return nil
	}
	if _, err := lookupString(f, "filter", "inline", &c.Filter); err != nil {
		return err
	}
	return lookupInt(f, "filter", "maxAttempts", &c.FilterAttempts)
}

func parseLuaSection(v cue.Value, c *Config) error {
	l := v.LookupPath(cue.ParsePath("lua"))
	if !l.Exists() {
		return nil
	}
	return lookupInt(l, "lua", "timeoutMs", &c.LuaTimeoutMs)
}

func parseOutputSection(v cue.Value, c *Config) error {
	o := v.LookupPath(cue.ParsePath("output"))
	if !o.Exists() {
		return nil
	}
	_, err := lookupString(o, "output", "format", &c.Format)
	return err
}

func parseLogSection(v cue.Value, c *Config) error {
	l := v.LookupPath(cue.ParsePath("log"))
	if !l.Exists() {
		return nil
	}
	_, err := lookupString(l, "log", "level", &c.LogLevel)
	return err
}

func lookupInt(v cue.Value, section, name string, dst *int) error {
	_, err := lookupIntOK(v, section, name, dst)
	return err
}

func lookupIntOK(v cue.Value, section, name string, dst *int) (bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return false, nil
	}
	if f.Kind() != cue.IntKind {
		return false, typeError(section+"."+name, "int")
	}
	n, err := f.Int64()
	if err != nil {
		return false, fmt.Errorf("invalid value for %s.%s: %v", section, name, err)
	}
	*dst = int(n)
	return true, nil
}

func lookupString(v cue.Value, section, name string, dst *string) (bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return false, nil
	}
	if f.Kind() != cue.StringKind {
		return false, typeError(section+"."+name, "string")
	}
	s, err := f.String()
	if err != nil {
		return false, fmt.Errorf("invalid value for %s.%s: %v", section, name, err)
	}
	*dst = s
	return true, nil
}

func typeError(path, kind string) error {
	return fmt.Errorf("invalid type for field: %s (expected %s)", path, kind)
}
