// Package tabular turns a sequence of validation results into the abstract
// table structure consumed by document assembly: column discovery over the
// whole result set, per-result row assembly with fault-isolated diagnostic
// renderers, and dotted-path resolution of metadata-driven custom columns.
package tabular

import (
	"sort"
	"strings"

	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/render"
)

// CustomColumnsKey is the reserved key inside an expectation's metadata whose
// value maps custom column names to dotted metadata paths.
const CustomColumnsKey = "properties_to_render"

// notAvailable fills custom-column cells whose path is unset or unresolvable.
const notAvailable = "N/A"

// DiscoverColumns scans every result for custom-column declarations and
// returns the deduplicated column names sorted ascending. Output depends only
// on the set of distinct names, not on result order.
func DiscoverColumns(results []models.ValidationResult) []string {
	seen := map[string]struct{}{}
	for _, result := range results {
		declared, ok := result.Config.Meta[CustomColumnsKey].(map[string]any)
		if !ok {
			continue
		}
		for name := range declared {
			seen[name] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for name := range seen {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

// NormalizeMeta materializes the custom-column mapping on every result so each
// one can answer "what is my value for column X": a missing metadata map and a
// missing reserved key are created, and every discovered column absent from
// the mapping is inserted with a nil path. This mutates the results in place,
// deliberately, and must run before row generation. Idempotent.
func NormalizeMeta(results []models.ValidationResult, columns []string) {
	for i := range results {
		if results[i].Config.Meta == nil {
			results[i].Config.Meta = map[string]any{}
		}
		declared, ok := results[i].Config.Meta[CustomColumnsKey].(map[string]any)
		if !ok {
			declared = map[string]any{}
			results[i].Config.Meta[CustomColumnsKey] = declared
		}
		for _, column := range columns {
			if _, ok := declared[column]; !ok {
				declared[column] = nil
			}
		}
	}
}

// ResolveCustomColumns produces one cell per discovered column, in column
// order, by walking each column's dotted path through the expectation's
// metadata. A nil path or a missing segment yields "N/A"; every column always
// contributes exactly one cell so row width stays fixed.
func ResolveCustomColumns(result *models.ValidationResult, columns []string) []render.Cell {
	declared, _ := result.Config.Meta[CustomColumnsKey].(map[string]any)

	cells := make([]render.Cell, 0, len(columns))
	for _, column := range columns {
		path, ok := declared[column].(string)
		if !ok || path == "" {
			cells = append(cells, render.TextCell(notAvailable))
			continue
		}
		if value, ok := resolvePath(result.Config.Meta, path); ok {
			cells = append(cells, render.TextCell(value))
		} else {
			cells = append(cells, render.TextCell(notAvailable))
		}
	}
	return cells
}

// resolvePath walks a dotted path as successive key lookups through nested
// string-keyed maps.
func resolvePath(meta map[string]any, path string) (any, bool) {
	var value any = meta
	for _, segment := range strings.Split(path, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		if value, ok = m[segment]; !ok {
			return nil, false
		}
	}
	return value, true
}
