package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/registry"
	"github.com/olechiw/great-expectations/internal/render"
	"github.com/olechiw/great-expectations/internal/reporting"
	"github.com/olechiw/great-expectations/internal/tabular"
	"github.com/olechiw/great-expectations/internal/validation"
)

var (
	renderOutputPath  string
	renderFormat      string
	renderWorkers     int
	renderOptionsPath string
	renderInterpret   bool
	renderStrict      bool
	renderSkipSchema  bool
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <suite.json|suite.yaml>",
		Short: "Render a validation suite into a data docs table",
		Long: `Render a validation suite file into a tabular document.

The suite file holds the ordered validation results; custom report columns are
discovered from each result's properties_to_render metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: renderCommandE,
	}

	cmd.Flags().StringVarP(&renderOutputPath, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&renderFormat, "format", "", "Output format: html, console, json (default: html)")
	cmd.Flags().IntVar(&renderWorkers, "workers", 0, "Number of concurrent row-assembly workers")
	cmd.Flags().StringVar(&renderOptionsPath, "options", "gedocs.yaml", "Render options file")
	cmd.Flags().BoolVar(&renderInterpret, "interpret", false, "Print a plain-language interpretation of the suite")
	cmd.Flags().BoolVar(&renderStrict, "strict", false, "Exit non-zero when the suite has unmet expectations")
	cmd.Flags().BoolVar(&renderSkipSchema, "skip-schema", false, "Skip schema validation of the suite file")

	return cmd
}

func renderCommandE(cmd *cobra.Command, args []string) error {
	suitePath := args[0]

	opts, err := config.Load(renderOptionsPath)
	if err != nil {
		return err
	}
	if renderFormat != "" {
		opts.Format = renderFormat
	}
	if renderWorkers > 0 {
		opts.Workers = renderWorkers
	}

	if !renderSkipSchema {
		schemaErrs, err := validation.ValidateSuiteFile(suitePath)
		if err != nil {
			return err
		}
		if len(schemaErrs) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Suite file %s failed schema validation:\n", suitePath)
			for _, msg := range schemaErrs {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
			}
			return &SuiteFailureError{Message: fmt.Sprintf("%d schema error(s) in %s", len(schemaErrs), suitePath)}
		}
	}

	suite, err := models.LoadSuite(suitePath)
	if err != nil {
		return err
	}
	if suite.Statistics.EvaluatedExpectations == 0 && len(suite.Results) > 0 {
		suite.ComputeStatistics()
	}

	runtime, err := config.DecodeRuntime(opts.Runtime)
	if err != nil {
		return err
	}

	builder := tabular.NewBuilder(registry.NewDefault(), slog.Default())
	table, err := builder.Render(suite.Results, tabular.Options{
		Runtime:              runtime,
		EvaluationParameters: suite.EvaluationParameters,
		Workers:              opts.Workers,
	})
	if err != nil {
		return fmt.Errorf("rendering suite: %w", err)
	}

	out := cmd.OutOrStdout()
	if renderOutputPath != "" {
		f, err := os.Create(renderOutputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeDocument(table, suite, opts.Format, out); err != nil {
		return err
	}

	if renderInterpret {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), reporting.Summarize(suite))
	}

	if renderStrict && !suite.Success {
		return &SuiteFailureError{
			Message: fmt.Sprintf("%d of %d expectations unmet",
				suite.Statistics.UnsuccessfulExpectations, suite.Statistics.EvaluatedExpectations),
		}
	}

	return nil
}

func writeDocument(table *render.Table, suite *models.ValidationSuite, format string, out io.Writer) error {
	switch strings.ToLower(format) {
	case "html":
		return reporting.WriteHTML(table, suite, out)
	case "console":
		return reporting.WriteConsole(table, out)
	case "json":
		return reporting.WriteJSON(table, out)
	default:
		return fmt.Errorf("unknown format %q (expected html, console, or json)", format)
	}
}
