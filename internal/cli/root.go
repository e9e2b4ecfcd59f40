package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Quiet   bool
	Verbose bool
}

// NewRootCommand creates the root command for the expensecat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "expensecat",
		Short: "Categorize expense ledgers with declarative rules",
		Long: `expensecat classifies and rewrites rows of a tabular expense ledger
according to a declarative YAML rule set. Each rule derives properties
from a row, matches regex conditions against them, and applies actions
to matching rows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Quiet && opts.Verbose {
				return fmt.Errorf("--quiet and --verbose are mutually exclusive")
			}
			setupLogging(opts)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "print less text (errors only)")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "print more text (debug)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}
