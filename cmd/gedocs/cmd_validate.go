package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olechiw/great-expectations/internal/validation"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <suite.json|suite.yaml>",
		Short: "Validate a suite file against the schema",
		Long: `Validate a validation suite file against the embedded JSON Schema
without rendering it. Schema errors are listed one per line.`,
		Args: cobra.ExactArgs(1),
		RunE: validateCommandE,
	}
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	suitePath := args[0]

	errs, err := validation.ValidateSuiteFile(suitePath)
	if err != nil {
		return err
	}

	if len(errs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", suitePath)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s has %d schema error(s):\n", suitePath, len(errs))
	for _, msg := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
	}
	return &SuiteFailureError{Message: fmt.Sprintf("%d schema error(s) in %s", len(errs), suitePath)}
}
