// Package registry maps expectation types to their renderers. A Renderer
// exposes one method per rendering category; types that do not support a
// category return ErrNotImplemented, which callers treat as a lookup miss
// rather than a failure.
package registry

import (
	"errors"
	"sync"

	"github.com/olechiw/great-expectations/internal/config"
	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/render"
)

// Category identifies one rendering responsibility within a row.
type Category string

const (
	CategoryPrescriptive        Category = "renderer.prescriptive"
	CategoryStatusIcon          Category = "renderer.diagnostic.status_icon"
	CategoryUnexpectedStatement Category = "renderer.diagnostic.unexpected_statement"
	CategoryUnexpectedTable     Category = "renderer.diagnostic.unexpected_table"
	CategoryObservedValue       Category = "renderer.diagnostic.observed_value"
)

// ErrNotImplemented marks a category the renderer does not support. It is the
// explicit "no renderer" signal: callers fall back to defaults (prescriptive,
// status icon) or neutral output (the other diagnostics) without logging.
var ErrNotImplemented = errors.New("renderer category not implemented")

// Renderer renders one expectation type, one method per category.
type Renderer interface {
	// Prescriptive renders the human-readable description of the check.
	Prescriptive(cfg *models.ExpectationConfig, runtime config.RuntimeConfig) (render.Cell, error)
	// StatusIcon renders the pass/fail/error icon fragment.
	StatusIcon(result *models.ValidationResult) (render.Fragment, error)
	// UnexpectedStatement renders supplementary fragments describing
	// unexpected values. An empty slice means nothing to report.
	UnexpectedStatement(result *models.ValidationResult) ([]render.Fragment, error)
	// UnexpectedTable renders a sampled-unexpected-values table, or nil when
	// the result carries no samples.
	UnexpectedTable(result *models.ValidationResult) (render.Fragment, error)
	// ObservedValue renders the observed-value cell fragment.
	ObservedValue(result *models.ValidationResult) (render.Fragment, error)
}

// Base implements every category as not-implemented. Embed it so a renderer
// only has to define the categories it supports.
type Base struct{}

func (Base) Prescriptive(*models.ExpectationConfig, config.RuntimeConfig) (render.Cell, error) {
	return nil, ErrNotImplemented
}

func (Base) StatusIcon(*models.ValidationResult) (render.Fragment, error) {
	return nil, ErrNotImplemented
}

func (Base) UnexpectedStatement(*models.ValidationResult) ([]render.Fragment, error) {
	return nil, ErrNotImplemented
}

func (Base) UnexpectedTable(*models.ValidationResult) (render.Fragment, error) {
	return nil, ErrNotImplemented
}

func (Base) ObservedValue(*models.ValidationResult) (render.Fragment, error) {
	return nil, ErrNotImplemented
}

// Registry holds the expectation-type to renderer mapping. Safe for
// concurrent lookup once registration is done.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: map[string]Renderer{}}
}

// Register binds a renderer to an expectation type, replacing any previous
// binding.
func (r *Registry) Register(typeName string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[typeName] = renderer
}

// Lookup returns the renderer for an expectation type, with an explicit
// found flag instead of a nil sentinel.
func (r *Registry) Lookup(typeName string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[typeName]
	return renderer, ok
}

// NewDefault returns a registry preloaded with the built-in expectation
// renderers.
func NewDefault() *Registry {
	r := NewRegistry()
	r.Register("expect_column_values_to_not_be_null", &NotBeNullRenderer{})
	r.Register("expect_column_values_to_be_between", &ColumnValuesBetweenRenderer{})
	r.Register("expect_table_row_count_to_be_between", &RowCountBetweenRenderer{})
	r.Register("expect_column_values_to_be_in_set", &ValuesInSetRenderer{})
	return r
}
