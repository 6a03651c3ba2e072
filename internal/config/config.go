// Package config provides runtime configuration for table rendering and the
// loader for gedocs.yaml render-options files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Default values for render options. New() references them and no other code
// should duplicate them.
const (
	DefaultFormat  = "html"
	DefaultWorkers = 1
)

// RuntimeConfig carries ambient options passed to prescriptive renderers.
type RuntimeConfig struct {
	// IncludeColumnName controls whether descriptions repeat the column name.
	IncludeColumnName *bool `mapstructure:"include_column_name"`
	// EvaluationParameters holds the parameter values the suite was evaluated
	// with; merged in from the suite before the description renderer runs.
	EvaluationParameters map[string]any `mapstructure:"evaluation_parameters"`
	// Styling carries presentation hints forwarded to renderers untouched.
	Styling map[string]any `mapstructure:"styling"`
}

// DecodeRuntime decodes a loosely-typed runtime-configuration map into a
// RuntimeConfig. Unknown keys are rejected so typos surface early.
func DecodeRuntime(params map[string]any) (RuntimeConfig, error) {
	var rc RuntimeConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &rc,
		ErrorUnused: true,
	})
	if err != nil {
		return RuntimeConfig{}, err
	}
	if err := dec.Decode(params); err != nil {
		return RuntimeConfig{}, fmt.Errorf("decoding runtime configuration: %w", err)
	}
	return rc, nil
}

// RenderOptions is the gedocs.yaml file format.
type RenderOptions struct {
	// Format selects the document assembly target: html, console, or json.
	Format string `yaml:"format,omitempty"`
	// Workers bounds parallel row assembly; 1 renders serially.
	Workers int `yaml:"workers,omitempty"`
	// Runtime is the raw runtime-configuration map handed to DecodeRuntime.
	Runtime map[string]any `yaml:"runtime,omitempty"`
}

// New returns render options populated with defaults.
func New() *RenderOptions {
	return &RenderOptions{
		Format:  DefaultFormat,
		Workers: DefaultWorkers,
	}
}

// Load reads render options from path. A missing file is not an error:
// defaults are returned so callers can treat the options file as optional.
func Load(path string) (*RenderOptions, error) {
	opts := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return nil, fmt.Errorf("reading render options: %w", err)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return opts, nil
}
