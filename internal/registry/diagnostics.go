package registry

import (
	"fmt"

	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/render"
)

// Diagnostics provides the generic diagnostic renderers shared by the
// built-in expectation types. They only read the standard result payload
// fields (unexpected_count, unexpected_percent, element_count,
// partial_unexpected_*, observed_value), so most expectation types can embed
// Diagnostics and define just their prescriptive description.
type Diagnostics struct{}

func (Diagnostics) StatusIcon(result *models.ValidationResult) (render.Fragment, error) {
	return DefaultStatusIcon(result), nil
}

func (Diagnostics) UnexpectedStatement(result *models.ValidationResult) ([]render.Fragment, error) {
	if result.RaisedException() {
		return []render.Fragment{
			&render.StringTemplate{
				Template: "$expectation_type failed to execute.",
				Params:   map[string]any{"expectation_type": result.Config.Type},
				Styling:  &render.Styling{Classes: []string{"text-danger"}},
			},
			&render.StringTemplate{
				Template: "Error: $exception_message",
				Params:   map[string]any{"exception_message": result.ExceptionInfo.Message},
			},
		}, nil
	}

	count, ok := numField(result.Result, "unexpected_count")
	if !ok || count == 0 {
		return nil, nil
	}

	params := map[string]any{"unexpected_count": formatValue(count)}
	template := "$unexpected_count unexpected values found."
	if percent, ok := numField(result.Result, "unexpected_percent"); ok {
		params["unexpected_percent"] = fmt.Sprintf("%.2f", percent)
		template += " ≈$unexpected_percent% of $element_count total rows."
		if total, ok := numField(result.Result, "element_count"); ok {
			params["element_count"] = formatValue(total)
		} else {
			params["element_count"] = "?"
		}
	}

	return []render.Fragment{&render.StringTemplate{Template: template, Params: params}}, nil
}

func (Diagnostics) UnexpectedTable(result *models.ValidationResult) (render.Fragment, error) {
	if counts, ok := result.Result["partial_unexpected_counts"].([]any); ok && len(counts) > 0 {
		table := &render.SubTable{Header: []string{"Unexpected Value", "Count"}}
		for _, entry := range counts {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			table.Rows = append(table.Rows, render.Row{
				render.TextCell(formatValue(m["value"])),
				render.TextCell(formatValue(m["count"])),
			})
		}
		if len(table.Rows) > 0 {
			return table, nil
		}
	}

	if list, ok := result.Result["partial_unexpected_list"].([]any); ok && len(list) > 0 {
		table := &render.SubTable{Header: []string{"Sampled Unexpected Values"}}
		for _, v := range list {
			table.Rows = append(table.Rows, render.Row{render.TextCell(formatValue(v))})
		}
		return table, nil
	}

	return nil, nil
}

func (Diagnostics) ObservedValue(result *models.ValidationResult) (render.Fragment, error) {
	if v, ok := result.Result["observed_value"]; ok {
		return render.Text(formatValue(v)), nil
	}
	if percent, ok := numField(result.Result, "unexpected_percent"); ok {
		return render.Text(fmt.Sprintf("≈%.2f%% unexpected", percent)), nil
	}
	return render.Text("--"), nil
}

// numField reads a numeric result payload field, accepting the numeric types
// both JSON and YAML decoders produce.
func numField(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
