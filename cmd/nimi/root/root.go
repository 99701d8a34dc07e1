package root

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flarebyte/nimi/cmd/nimi/diagnose"
	"github.com/flarebyte/nimi/cmd/nimi/run"
	"github.com/flarebyte/nimi/cmd/nimi/version"
)

type exitCoder interface {
	ExitCode() int
}

// NewRootCmd creates the root command for nimi. Running it without a
// subcommand generates words.
func NewRootCmd() *cobra.Command {
	opts := &run.Options{}
	cmd := &cobra.Command{
		Use:   "nimi",
		Short: "Generate pseudo-words from a small constructed-language phonology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return run.Execute(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.AddFlags(cmd.PersistentFlags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return run.UsageError(err)
	})

	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(diagnose.NewCmd(opts))

	return cmd
}

// Execute runs the root command with provided args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// Main runs the CLI and returns the process exit code. Ctrl-C cancels the
// run; errors are printed to stderr as a single line.
func Main(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := Execute(ctx, args, os.Stdout, os.Stderr)
	if err == nil {
		return 0
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = os.Stderr.WriteString(msg + "\n")
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}
