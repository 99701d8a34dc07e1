// Package output writes generated words to a stream in one of several
// formats. Every format is streamable so an unbounded run can be piped.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var formats = []string{FormatLines, FormatJSON, FormatYAML}

// Entry is one emitted word.
type Entry struct {
	Index     int    `json:"index" yaml:"index"`
	Word      string `json:"word" yaml:"word"`
	Syllables int    `json:"syllables" yaml:"syllables"`
}

// Writer emits entries one at a time.
type Writer interface {
	Write(e Entry) error
}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool { return slices.Contains(formats, name) }

// FormatsCSV lists the supported formats for error messages.
func FormatsCSV() string { return strings.Join(formats, ", ") }

// New returns a Writer for format writing to w.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case FormatLines:
		return linesWriter{w: w}, nil
	case FormatJSON:
		return jsonWriter{w: w}, nil
	case FormatYAML:
		return yamlWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", format, FormatsCSV())
	}
}

type linesWriter struct{ w io.Writer }

func (l linesWriter) Write(e Entry) error {
	_, err := io.WriteString(l.w, e.Word+"\n")
	return err
}

type jsonWriter struct{ w io.Writer }

func (j jsonWriter) Write(e Entry) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return err
	}
	_, err := j.w.Write(buf.Bytes())
	return err
}

// yamlWriter emits each entry as one item of a top-level sequence, so the
// concatenated output is a single YAML list.
type yamlWriter struct{ w io.Writer }

func (y yamlWriter) Write(e Entry) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode([]Entry{e}); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := y.w.Write(buf.Bytes())
	return err
}
