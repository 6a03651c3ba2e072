package tabular

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/registry"
	"github.com/olechiw/great-expectations/internal/render"
)

// HideSucceededClass is the styling class appended to the table when every
// result passed; a presentation layer uses it to hide the status column.
const HideSucceededClass = "hide-succeeded-validations-column-section-target-child"

// Base header columns preceding any discovered custom columns.
var baseHeader = []string{"Status", "Expectation", "Observed Value"}

// Builder renders validation results into tables.
type Builder struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewBuilder returns a builder that resolves renderers from reg and logs
// degraded sub-renderer failures to logger. A nil logger uses slog.Default.
func NewBuilder(reg *registry.Registry, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{registry: reg, logger: logger}
}

// Options carries per-render settings.
type Options struct {
	// Runtime is the ambient configuration handed to prescriptive renderers.
	Runtime config.RuntimeConfig
	// EvaluationParameters, when set, is merged into Runtime before the
	// description renderer runs.
	EvaluationParameters map[string]any
	// Workers bounds parallel row assembly; values below 2 render serially.
	// Row order always matches result order.
	Workers int
}

// Render builds the table for a result set: custom columns are discovered
// across the whole set and normalized onto every result (a visible, in-place
// metadata mutation), then one row is assembled per result in input order.
// When no result failed, the table carries the HideSucceededClass styling
// flag. Render performs no external I/O.
func (b *Builder) Render(results []models.ValidationResult, opts Options) (*render.Table, error) {
	columns := DiscoverColumns(results)
	NormalizeMeta(results, columns)

	runtime := opts.Runtime
	if opts.EvaluationParameters != nil {
		runtime.EvaluationParameters = opts.EvaluationParameters
	}

	header := append(append([]string{}, baseHeader...), columns...)
	headerOptions := map[string]render.ColumnOptions{
		"Status": {Sortable: true},
	}
	for _, column := range columns {
		headerOptions[column] = render.ColumnOptions{Sortable: true}
	}

	rows := make([]render.Row, len(results))
	if opts.Workers > 1 {
		// Row assembly has no result-to-result dependency once columns are
		// discovered; indexed assignment restores input order.
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for i := range results {
			i := i
			g.Go(func() error {
				row, err := b.assembleRow(&results[i], columns, runtime)
				if err != nil {
					return err
				}
				rows[i] = row
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("assembling rows: %w", err)
		}
	} else {
		for i := range results {
			row, err := b.assembleRow(&results[i], columns, runtime)
			if err != nil {
				return nil, fmt.Errorf("assembling row %d: %w", i, err)
			}
			rows[i] = row
		}
	}

	table := &render.Table{
		Header:        header,
		HeaderOptions: headerOptions,
		Rows:          rows,
		Options:       render.TableOptions{Search: true, IconSize: "sm"},
		Styling: render.Styling{
			Classes: []string{"ml-2", "mr-2", "mt-0", "mb-0", "table-responsive"},
		},
	}

	if !anyFailed(results) {
		table.Styling.Classes = append(table.Styling.Classes, HideSucceededClass)
	}

	return table, nil
}

func anyFailed(results []models.ValidationResult) bool {
	for _, result := range results {
		if !result.Success {
			return true
		}
	}
	return false
}
