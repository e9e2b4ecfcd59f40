package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/csomaati/expensecat/internal/engine"
	"github.com/csomaati/expensecat/internal/rules"
	"github.com/csomaati/expensecat/internal/tableio"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	RulesPath   string
	LedgerPath  string
	OutputPath  string
	Format      string
	SQLitePath  string
	SQLiteTable string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "csv"}

// NewRunCommand creates the run command: load ledger and rules, apply the
// rules, render the final table.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a rule set to an expense ledger",
		Long: `Apply a rule set to an expense ledger.

Loads the ledger CSV and the YAML rule document, folds the table through
every active rule in file order, and writes the final table.

Example:
  expensecat run -r rules.yaml -f expenses.csv -o categorized.csv --format csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return runCategorize(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.RulesPath, "rules", "r", "", "rule definitions in yaml format")
	cmd.Flags().StringVarP(&opts.LedgerPath, "file", "f", "", "expense csv file path")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "-", "output path (- for stdout)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|csv)")
	cmd.Flags().StringVar(&opts.SQLitePath, "sqlite", "", "also write the final table to this sqlite database")
	cmd.Flags().StringVar(&opts.SQLiteTable, "table", "expenses", "sqlite table name for --sqlite")
	cobra.CheckErr(cmd.MarkFlagRequired("rules"))
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func runCategorize(cmd *cobra.Command, opts *RunOptions) error {
	// One token per run so interleaved log lines from repeated runs can
	// be told apart.
	runID := uuid.Must(uuid.NewV7()).String()
	slog.Info("run starting", "run_id", runID, "ledger", opts.LedgerPath, "rules", opts.RulesPath)

	ruleList, err := rules.LoadFile(opts.RulesPath)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.LedgerPath)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	tbl, err := tableio.ReadCSV(f)
	f.Close()
	if err != nil {
		return err
	}
	slog.Info("ledger loaded", "run_id", runID, "rows", tbl.Len(), "columns", len(tbl.Columns))

	result, err := engine.New().Apply(cmd.Context(), tbl, ruleList)
	if err != nil {
		return err
	}
	slog.Info("rules applied", "run_id", runID, "rows", result.Len())

	out, closeOut, err := openOutput(cmd, opts.OutputPath)
	if err != nil {
		return err
	}
	if err := renderTable(out, result, opts.Format); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if opts.SQLitePath != "" {
		if err := tableio.WriteSQLite(cmd.Context(), opts.SQLitePath, opts.SQLiteTable, result); err != nil {
			return err
		}
		slog.Info("sqlite sink written", "run_id", runID, "path", opts.SQLitePath, "table", opts.SQLiteTable)
	}

	return nil
}

// openOutput resolves the output flag to a writer. "-" means the
// command's stdout and needs no close.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
