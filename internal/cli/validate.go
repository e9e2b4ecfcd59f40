package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csomaati/expensecat/internal/engine"
	"github.com/csomaati/expensecat/internal/rules"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	RulesPath string
}

// NewValidateCommand creates the validate command: load a rule document
// and report every structural problem without touching a ledger.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a rule document for structural problems",
		Long: `Check a rule document for structural problems.

Reports unknown extractor or action names, malformed matcher conditions,
and patterns that do not compile. All problems are collected, not just
the first one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.RulesPath, "rules", "r", "", "rule definitions in yaml format")
	cobra.CheckErr(cmd.MarkFlagRequired("rules"))

	return cmd
}

func validateRules(cmd *cobra.Command, opts *ValidateOptions) error {
	ruleList, err := rules.LoadFile(opts.RulesPath)
	if err != nil {
		return err
	}

	errs := engine.New().ValidateRules(ruleList)
	if len(errs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d rule(s) OK (%d active)\n",
			len(ruleList), len(rules.Active(ruleList)))
		return nil
	}

	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	return fmt.Errorf("%d problem(s) found in %s", len(errs), opts.RulesPath)
}
