// Package diagnose implements `nimi diagnose`, which reports the resolved
// configuration without generating any words.
package diagnose

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flarebyte/nimi/cmd/nimi/run"
	"github.com/flarebyte/nimi/internal/config"
	"github.com/flarebyte/nimi/internal/syllable"
)

// Report is the single JSON line printed by diagnose.
type Report struct {
	Config     config.Config `json:"config"`
	SeedSource string        `json:"seedSource"`
	Tables     []TableReport `json:"tables"`
}

// TableReport describes one syllable table.
type TableReport struct {
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Entries []string `json:"entries,omitempty"`
}

// NewCmd returns the diagnose command. opts carries the generation flags
// registered on the root command.
func NewCmd(opts *run.Options) *cobra.Command {
	var withTables bool
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Print the resolved configuration and syllable tables as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), buildReport(cfg, withTables))
		},
	}
	cmd.Flags().BoolVar(&withTables, "tables", false, "Include the syllable table contents")
	return cmd
}

func buildReport(cfg config.Config, withTables bool) Report {
	r := Report{Config: cfg, SeedSource: "config"}
	if cfg.Seed == 0 {
		r.SeedSource = "clock"
	}
	for _, t := range syllable.All() {
		tr := TableReport{Name: t.Name(), Size: t.Len()}
		if withTables {
			tr.Entries = t.Entries()
		}
		r.Tables = append(r.Tables, tr)
	}
	return r
}

func printReport(w io.Writer, r Report) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
