package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SuiteStatistics summarizes a validation suite.
type SuiteStatistics struct {
	EvaluatedExpectations    int     `json:"evaluated_expectations" yaml:"evaluated_expectations"`
	SuccessfulExpectations   int     `json:"successful_expectations" yaml:"successful_expectations"`
	UnsuccessfulExpectations int     `json:"unsuccessful_expectations" yaml:"unsuccessful_expectations"`
	SuccessPercent           float64 `json:"success_percent" yaml:"success_percent"`
}

// ValidationSuite is a full validation run: the ordered results plus
// suite-level success, statistics, and the evaluation parameters the run was
// executed with.
type ValidationSuite struct {
	Results              []ValidationResult `json:"results" yaml:"results"`
	Success              bool               `json:"success" yaml:"success"`
	EvaluationParameters map[string]any     `json:"evaluation_parameters,omitempty" yaml:"evaluation_parameters,omitempty"`
	Statistics           SuiteStatistics    `json:"statistics" yaml:"statistics"`
	Meta                 map[string]any     `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// ComputeStatistics recalculates Statistics and Success from Results.
func (s *ValidationSuite) ComputeStatistics() {
	stats := SuiteStatistics{EvaluatedExpectations: len(s.Results)}
	for _, r := range s.Results {
		if r.Success {
			stats.SuccessfulExpectations++
		} else {
			stats.UnsuccessfulExpectations++
		}
	}
	if stats.EvaluatedExpectations > 0 {
		stats.SuccessPercent = 100 * float64(stats.SuccessfulExpectations) / float64(stats.EvaluatedExpectations)
	}
	s.Statistics = stats
	s.Success = stats.UnsuccessfulExpectations == 0
}

// LoadSuite reads a validation suite from a JSON or YAML file, picking the
// decoder by file extension (.yaml/.yml vs anything else).
func LoadSuite(path string) (*ValidationSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}

	var suite ValidationSuite
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parsing suite YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parsing suite JSON: %w", err)
		}
	}

	return &suite, nil
}
