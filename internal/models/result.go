// Package models defines the validation result data model: expectation
// configurations, per-expectation results, and whole validation suites.
package models

// ExpectationConfig describes one configured check: its type, the arguments
// it was evaluated with, and free-form metadata.
type ExpectationConfig struct {
	Type   string         `json:"expectation_type" yaml:"expectation_type"`
	Kwargs map[string]any `json:"kwargs,omitempty" yaml:"kwargs,omitempty"`
	Meta   map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// ExceptionInfo captures an error raised while the expectation was evaluated.
type ExceptionInfo struct {
	Raised    bool   `json:"raised_exception" yaml:"raised_exception"`
	Message   string `json:"exception_message,omitempty" yaml:"exception_message,omitempty"`
	Traceback string `json:"exception_traceback,omitempty" yaml:"exception_traceback,omitempty"`
}

// ValidationResult is one validation outcome: the expectation configuration,
// whether it passed, and the observed result payload. Results are read-only
// except for the one-time custom-column metadata normalization performed
// before row generation.
type ValidationResult struct {
	Config        ExpectationConfig `json:"expectation_config" yaml:"expectation_config"`
	Success       bool              `json:"success" yaml:"success"`
	Result        map[string]any    `json:"result,omitempty" yaml:"result,omitempty"`
	ExceptionInfo *ExceptionInfo    `json:"exception_info,omitempty" yaml:"exception_info,omitempty"`
	Meta          map[string]any    `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// RaisedException reports whether evaluation of this result raised an error.
func (r *ValidationResult) RaisedException() bool {
	return r.ExceptionInfo != nil && r.ExceptionInfo.Raised
}
