package tabular

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/registry"
	"github.com/olechiw/great-expectations/internal/render"
)

// degradedMessage prefixes every log entry written when a diagnostic renderer
// fails and its cell degrades to the documented default.
const degradedMessage = "An unexpected error occurred during documentation rendering. Because of this error, certain parts of the rendered documentation will not be rendered properly and/or may not appear altogether. Please use the stack trace, included in this message, to diagnose and repair the underlying issue."

// assembleRow builds one table row for a single validation result: status
// icon, description (with unexpected-value detail merged in), observed value,
// then one cell per discovered custom column.
//
// The three diagnostic renderers (unexpected statement, unexpected table,
// observed value) are fault-isolated: an error or panic from one degrades its
// cell to the documented default and the row still completes. Status-icon and
// prescriptive lookups fall back to built-in defaults when the type registers
// no renderer, but their failures propagate and abort the row.
func (b *Builder) assembleRow(result *models.ValidationResult, columns []string, runtime config.RuntimeConfig) (render.Row, error) {
	renderer, found := b.registry.Lookup(result.Config.Type)

	statusFrag := registry.DefaultStatusIcon(result)
	if found {
		frag, err := renderer.StatusIcon(result)
		switch {
		case err == nil:
			statusFrag = frag
		case errors.Is(err, registry.ErrNotImplemented):
			// keep the default
		default:
			return nil, fmt.Errorf("status icon renderer for %q: %w", result.Config.Type, err)
		}
	}
	statusCell := render.Cell{statusFrag}

	description := registry.DefaultPrescriptive(&result.Config, runtime)
	if found {
		cell, err := renderer.Prescriptive(&result.Config, runtime)
		switch {
		case err == nil:
			description = cell
		case errors.Is(err, registry.ErrNotImplemented):
			// keep the default
		default:
			// The description is load-bearing for the row; its failures are
			// deliberately not degraded.
			return nil, fmt.Errorf("prescriptive renderer for %q: %w", result.Config.Type, err)
		}
	}

	statements := isolate(b.logger, registry.CategoryUnexpectedStatement, nil, func() ([]render.Fragment, error) {
		if !found {
			return nil, nil
		}
		return renderer.UnexpectedStatement(result)
	})

	var noTable render.Fragment
	unexpectedTable := isolate(b.logger, registry.CategoryUnexpectedTable, noTable, func() (render.Fragment, error) {
		if !found {
			return nil, nil
		}
		return renderer.UnexpectedTable(result)
	})

	observedFrag := isolate(b.logger, registry.CategoryObservedValue, render.Fragment(render.Text("--")), func() (render.Fragment, error) {
		if !found {
			return nil, registry.ErrNotImplemented
		}
		return renderer.ObservedValue(result)
	})
	observedCell := render.Cell{observedFrag}

	description = append(description, statements...)
	if unexpectedTable != nil {
		description = append(description, unexpectedTable)
	}

	descriptionCell := description
	if len(description) > 1 {
		// A composite description gets its own nested rendering, one fragment
		// per sub-row, instead of being flattened into the cell.
		rows := make([]render.Row, len(description))
		for i, frag := range description {
			rows[i] = render.Row{render.Cell{frag}}
		}
		descriptionCell = render.Cell{&render.SubTable{Rows: rows}}
	}

	row := render.Row{statusCell, descriptionCell, observedCell}
	row = append(row, ResolveCustomColumns(result, columns)...)
	return row, nil
}

// isolate invokes one diagnostic renderer with fault isolation. A returned
// error or panic is logged at error level with the panic value or error and a
// stack trace, and the documented fallback is substituted. A not-implemented
// category degrades silently: absence is not an error.
func isolate[T any](logger *slog.Logger, category registry.Category, fallback T, fn func() (T, error)) (out T) {
	out = fallback
	defer func() {
		if r := recover(); r != nil {
			logger.Error(degradedMessage,
				"category", string(category),
				"error", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
		}
	}()

	v, err := fn()
	if err != nil {
		if errors.Is(err, registry.ErrNotImplemented) {
			return out
		}
		logger.Error(degradedMessage,
			"category", string(category),
			"error", err.Error(),
			"stack", string(debug.Stack()))
		return out
	}
	return v
}
