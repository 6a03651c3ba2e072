package registry

import (
	"encoding/json"
	"fmt"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/render"
)

// DefaultStatusIcon is the fallback status renderer used when an expectation
// type registers no status-icon renderer of its own.
func DefaultStatusIcon(result *models.ValidationResult) render.Fragment {
	switch {
	case result.RaisedException():
		return &render.StringTemplate{
			Template: "$icon",
			Params:   map[string]any{"icon": "⚠"},
			Styling:  &render.Styling{Classes: []string{"fa", "fa-exclamation-triangle", "text-warning"}},
		}
	case result.Success:
		return &render.StringTemplate{
			Template: "$icon",
			Params:   map[string]any{"icon": "✓"},
			Styling:  &render.Styling{Classes: []string{"fa", "fa-check-circle", "text-success"}},
		}
	default:
		return &render.StringTemplate{
			Template: "$icon",
			Params:   map[string]any{"icon": "✗"},
			Styling:  &render.Styling{Classes: []string{"fa", "fa-times", "text-danger"}},
		}
	}
}

// DefaultPrescriptive is the fallback description renderer used when an
// expectation type registers no prescriptive renderer: it shows the raw
// expectation type and kwargs so the row is still identifiable.
func DefaultPrescriptive(cfg *models.ExpectationConfig, _ config.RuntimeConfig) render.Cell {
	kwargs := "{}"
	if raw, err := json.Marshal(cfg.Kwargs); err == nil {
		kwargs = string(raw)
	}
	return render.Cell{&render.StringTemplate{
		Template: "$expectation_type($kwargs)",
		Params: map[string]any{
			"expectation_type": cfg.Type,
			"kwargs":           kwargs,
		},
		Styling: &render.Styling{Classes: []string{"badge", "badge-warning"}},
	}}
}

// formatValue renders an arbitrary result payload value for display. JSON
// floats that are whole numbers print without a trailing ".0" noise.
func formatValue(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}
