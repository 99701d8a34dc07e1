package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/flarebyte/nimi/internal/buildinfo"
	"github.com/flarebyte/nimi/internal/syllable"
)

// NewCmd returns the `nimi version` command.
func NewCmd() *cobra.Command {
	var short, asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short || !asJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "nimi %s\n", buildinfo.Summary())
				return err
			}
			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "nimi version: %s\n", buildinfo.Summary())
			return encodeJSON(cmd.OutOrStdout(), info())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print detailed JSON version info")
	return cmd
}

func info() map[string]any {
	tables := map[string]int{}
	for _, t := range syllable.All() {
		tables[t.Name()] = t.Len()
	}
	return map[string]any{
		"version":  buildinfo.ResolvedVersion(),
		"commit":   buildinfo.Commit,
		"date":     buildinfo.ResolvedDate(),
		"built_by": buildinfo.BuiltBy,
		"go":       runtime.Version(),
		"go_os":    runtime.GOOS,
		"go_arch":  runtime.GOARCH,
		"tables":   tables,
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
