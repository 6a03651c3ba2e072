package tabular

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/registry"
	"github.com/olechiw/great-expectations/internal/render"
)

// faultyDiagnostics fails every diagnostic category, one by error and one by
// panic, to exercise fault isolation.
type faultyDiagnostics struct {
	registry.Base
}

func (faultyDiagnostics) UnexpectedStatement(*models.ValidationResult) ([]render.Fragment, error) {
	return nil, errors.New("statement boom")
}

func (faultyDiagnostics) UnexpectedTable(*models.ValidationResult) (render.Fragment, error) {
	panic("table boom")
}

func (faultyDiagnostics) ObservedValue(*models.ValidationResult) (render.Fragment, error) {
	return nil, errors.New("observed boom")
}

// compositeRenderer produces a description plus unexpected-value detail so
// the merge policy kicks in.
type compositeRenderer struct {
	registry.Diagnostics
}

func (compositeRenderer) Prescriptive(*models.ExpectationConfig, config.RuntimeConfig) (render.Cell, error) {
	return render.Cell{render.Text("values must be reasonable")}, nil
}

// failingPrescriptive fails the one category whose failures must propagate.
type failingPrescriptive struct {
	registry.Diagnostics
}

func (failingPrescriptive) Prescriptive(*models.ExpectationConfig, config.RuntimeConfig) (render.Cell, error) {
	return nil, errors.New("description boom")
}

// captureRenderer records the runtime configuration it was invoked with.
type captureRenderer struct {
	registry.Diagnostics
	runtime config.RuntimeConfig
}

func (c *captureRenderer) Prescriptive(_ *models.ExpectationConfig, runtime config.RuntimeConfig) (render.Cell, error) {
	c.runtime = runtime
	return render.Cell{render.Text("captured")}, nil
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestAssembleRowFaultIsolation(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("faulty_type", faultyDiagnostics{})

	logger, logBuf := newTestLogger()
	b := NewBuilder(reg, logger)

	result := models.ValidationResult{
		Config:  models.ExpectationConfig{Type: "faulty_type", Meta: map[string]any{}},
		Success: false,
	}

	row, err := b.assembleRow(&result, nil, config.RuntimeConfig{})
	require.NoError(t, err, "diagnostic failures must not abort the row")
	require.Len(t, row, 3)

	// Observed value degraded to its placeholder.
	require.Len(t, row[2], 1)
	assert.Equal(t, render.Text("--"), row[2][0])

	// Description fell back to the default (Base prescriptive is a miss) and
	// picked up no unexpected-value fragments.
	require.Len(t, row[1], 1)
	_, isTemplate := row[1][0].(*render.StringTemplate)
	assert.True(t, isTemplate)

	logText := logBuf.String()
	assert.Contains(t, logText, "certain parts of the rendered documentation")
	assert.Contains(t, logText, "statement boom")
	assert.Contains(t, logText, "table boom")
	assert.Contains(t, logText, "observed boom")
	assert.Contains(t, logText, "stack=")
}

func TestAssembleRowPrescriptiveFailurePropagates(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("broken_description", failingPrescriptive{})

	logger, _ := newTestLogger()
	b := NewBuilder(reg, logger)

	result := models.ValidationResult{
		Config: models.ExpectationConfig{Type: "broken_description", Meta: map[string]any{}},
	}

	_, err := b.assembleRow(&result, nil, config.RuntimeConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description boom")
}

func TestAssembleRowMergesUnexpectedDetailIntoSubTable(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("composite_type", compositeRenderer{})

	logger, _ := newTestLogger()
	b := NewBuilder(reg, logger)

	result := models.ValidationResult{
		Config:  models.ExpectationConfig{Type: "composite_type", Meta: map[string]any{}},
		Success: false,
		Result: map[string]any{
			"unexpected_count":        float64(2),
			"unexpected_percent":      float64(10),
			"element_count":           float64(20),
			"partial_unexpected_list": []any{"a", "b"},
		},
	}

	row, err := b.assembleRow(&result, nil, config.RuntimeConfig{})
	require.NoError(t, err)
	require.Len(t, row, 3)

	// Description + statement + sample table collapse into one nested table.
	require.Len(t, row[1], 1)
	nested, ok := row[1][0].(*render.SubTable)
	require.True(t, ok, "composite description should wrap into a sub-table")
	assert.Len(t, nested.Rows, 3)
}

func TestAssembleRowSimpleDescriptionStaysFlat(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("composite_type", compositeRenderer{})

	logger, _ := newTestLogger()
	b := NewBuilder(reg, logger)

	result := models.ValidationResult{
		Config:  models.ExpectationConfig{Type: "composite_type", Meta: map[string]any{}},
		Success: true,
		Result:  map[string]any{"unexpected_count": float64(0)},
	}

	row, err := b.assembleRow(&result, nil, config.RuntimeConfig{})
	require.NoError(t, err)
	require.Len(t, row[1], 1)
	assert.Equal(t, render.Text("values must be reasonable"), row[1][0])
}

func TestAssembleRowUnregisteredTypeUsesDefaults(t *testing.T) {
	logger, logBuf := newTestLogger()
	b := NewBuilder(registry.NewRegistry(), logger)

	result := models.ValidationResult{
		Config: models.ExpectationConfig{
			Type:   "expect_something_novel",
			Kwargs: map[string]any{"column": "age"},
			Meta:   map[string]any{},
		},
		Success: true,
	}

	row, err := b.assembleRow(&result, nil, config.RuntimeConfig{})
	require.NoError(t, err)
	require.Len(t, row, 3)

	// Status falls back to the default icon, description to the raw
	// expectation type, observed value to the placeholder. Nothing logged:
	// lookup misses are not errors.
	status := row[0][0].(*render.StringTemplate)
	assert.Equal(t, "✓", status.Params["icon"])
	description := row[1][0].(*render.StringTemplate)
	assert.Equal(t, "expect_something_novel", description.Params["expectation_type"])
	assert.Equal(t, render.Text("--"), row[2][0])
	assert.Empty(t, logBuf.String())
}

func TestRenderMergesEvaluationParameters(t *testing.T) {
	reg := registry.NewRegistry()
	capture := &captureRenderer{}
	reg.Register("capture_type", capture)

	logger, _ := newTestLogger()
	b := NewBuilder(reg, logger)

	results := []models.ValidationResult{
		{Config: models.ExpectationConfig{Type: "capture_type"}, Success: true},
	}

	params := map[string]any{"min_rows": 100}
	_, err := b.Render(results, Options{EvaluationParameters: params})
	require.NoError(t, err)
	assert.Equal(t, params, capture.runtime.EvaluationParameters)
}
