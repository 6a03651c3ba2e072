// Package reporting assembles rendered tables into concrete documents:
// HTML, console text, and JSON.
package reporting

import (
	"fmt"
	"strings"

	"github.com/olechiw/great-expectations/internal/models"
)

// InterpretSuccessPercent returns a human-readable explanation of a suite's
// success percentage (0–100).
func InterpretSuccessPercent(pct float64) string {
	switch {
	case pct >= 100:
		return fmt.Sprintf("All expectations met (%.0f%%)", pct)
	case pct >= 80:
		return fmt.Sprintf("Most expectations met (%.0f%%)", pct)
	case pct >= 50:
		return fmt.Sprintf("About half the expectations met (%.0f%%)", pct)
	default:
		return fmt.Sprintf("Few expectations met (%.0f%%)", pct)
	}
}

// Summarize produces a plain-language digest of a validation suite.
func Summarize(suite *models.ValidationSuite) string {
	var b strings.Builder

	d := suite.Statistics

	b.WriteString("=== Validation Summary ===\n\n")
	b.WriteString(fmt.Sprintf("Expectations:  %d evaluated, %d met, %d unmet\n",
		d.EvaluatedExpectations, d.SuccessfulExpectations, d.UnsuccessfulExpectations))
	b.WriteString(fmt.Sprintf("Success Rate:  %s\n", InterpretSuccessPercent(d.SuccessPercent)))

	if d.UnsuccessfulExpectations > 0 {
		b.WriteString("\nUnmet Expectations:\n")
		for _, result := range suite.Results {
			if result.Success {
				continue
			}
			line := fmt.Sprintf("  ✗ %s", result.Config.Type)
			if column, ok := result.Config.Kwargs["column"].(string); ok {
				line += fmt.Sprintf(" (column: %s)", column)
			}
			if result.RaisedException() {
				line += " — raised an exception during evaluation"
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
