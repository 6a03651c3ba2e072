package registry

import (
	"fmt"
	"strings"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/render"
)

// Built-in prescriptive renderers for a starter set of expectation types.
// Diagnostics are shared via the embedded Diagnostics implementation.

// NotBeNullRenderer renders expect_column_values_to_not_be_null.
type NotBeNullRenderer struct {
	Diagnostics
}

func (NotBeNullRenderer) Prescriptive(cfg *models.ExpectationConfig, _ config.RuntimeConfig) (render.Cell, error) {
	template := "$column values must never be null" + mostlyClause(cfg) + "."
	return render.Cell{&render.StringTemplate{
		Template: template,
		Params:   prescriptiveParams(cfg),
	}}, nil
}

// ColumnValuesBetweenRenderer renders expect_column_values_to_be_between.
type ColumnValuesBetweenRenderer struct {
	Diagnostics
}

func (ColumnValuesBetweenRenderer) Prescriptive(cfg *models.ExpectationConfig, _ config.RuntimeConfig) (render.Cell, error) {
	_, hasMin := cfg.Kwargs["min_value"]
	_, hasMax := cfg.Kwargs["max_value"]

	var template string
	switch {
	case hasMin && hasMax:
		template = "$column values must be greater than or equal to $min_value and less than or equal to $max_value"
	case hasMin:
		template = "$column values must be greater than or equal to $min_value"
	case hasMax:
		template = "$column values must be less than or equal to $max_value"
	default:
		template = "$column values may have any numerical value"
	}
	template += mostlyClause(cfg) + "."

	return render.Cell{&render.StringTemplate{
		Template: template,
		Params:   prescriptiveParams(cfg),
	}}, nil
}

// RowCountBetweenRenderer renders expect_table_row_count_to_be_between.
type RowCountBetweenRenderer struct {
	Diagnostics
}

func (RowCountBetweenRenderer) Prescriptive(cfg *models.ExpectationConfig, _ config.RuntimeConfig) (render.Cell, error) {
	_, hasMin := cfg.Kwargs["min_value"]
	_, hasMax := cfg.Kwargs["max_value"]

	var template string
	switch {
	case hasMin && hasMax:
		template = "Must have greater than or equal to $min_value and less than or equal to $max_value rows."
	case hasMin:
		template = "Must have greater than or equal to $min_value rows."
	case hasMax:
		template = "Must have less than or equal to $max_value rows."
	default:
		template = "May have any number of rows."
	}

	return render.Cell{&render.StringTemplate{
		Template: template,
		Params:   prescriptiveParams(cfg),
	}}, nil
}

// ValuesInSetRenderer renders expect_column_values_to_be_in_set.
type ValuesInSetRenderer struct {
	Diagnostics
}

func (ValuesInSetRenderer) Prescriptive(cfg *models.ExpectationConfig, _ config.RuntimeConfig) (render.Cell, error) {
	params := prescriptiveParams(cfg)
	if set, ok := cfg.Kwargs["value_set"].([]any); ok {
		values := make([]string, len(set))
		for i, v := range set {
			values[i] = formatValue(v)
		}
		params["value_set"] = strings.Join(values, " ")
	}

	template := "$column values must belong to this set: $value_set" + mostlyClause(cfg) + "."
	return render.Cell{&render.StringTemplate{
		Template: template,
		Params:   params,
	}}, nil
}

// prescriptiveParams seeds template params from the expectation kwargs.
func prescriptiveParams(cfg *models.ExpectationConfig) map[string]any {
	params := map[string]any{}
	for key, value := range cfg.Kwargs {
		params[key] = value
	}
	if _, ok := params["column"]; !ok {
		params["column"] = ""
	}
	return params
}

// mostlyClause appends the "at least N% of the time" clause when the
// expectation carries a fractional mostly kwarg.
func mostlyClause(cfg *models.ExpectationConfig) string {
	mostly, ok := numField(cfg.Kwargs, "mostly")
	if !ok || mostly >= 1 {
		return ""
	}
	return fmt.Sprintf(", at least %.1f%% of the time", mostly*100)
}
