package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSuiteJSON = `{
  "results": [
    {
      "expectation_config": {
        "expectation_type": "expect_column_values_to_not_be_null",
        "kwargs": {"column": "user_id"}
      },
      "success": true,
      "result": {"observed_value": 0}
    },
    {
      "expectation_config": {
        "expectation_type": "expect_column_values_to_be_between",
        "kwargs": {"column": "age", "min_value": 0, "max_value": 120},
        "meta": {
          "properties_to_render": {"note": "meta.note"},
          "meta": {"note": "overflow"}
        }
      },
      "success": false,
      "result": {
        "unexpected_count": 2,
        "unexpected_percent": 1.0,
        "element_count": 200,
        "partial_unexpected_list": [130, 145]
      }
    }
  ]
}`

func writeTestSuite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.json")
	require.NoError(t, os.WriteFile(path, []byte(testSuiteJSON), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCommand()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRenderCommand_JSON(t *testing.T) {
	suitePath := writeTestSuite(t)
	outPath := filepath.Join(t.TempDir(), "table.json")

	_, err := runCommand(t, "render", suitePath, "--format", "json", "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var table struct {
		Header []string `json:"header"`
		Rows   []any    `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(data, &table))
	assert.Equal(t, []string{"Status", "Expectation", "Observed Value", "note"}, table.Header)
	assert.Len(t, table.Rows, 2)
}

func TestRenderCommand_HTMLToStdout(t *testing.T) {
	suitePath := writeTestSuite(t)

	out, err := runCommand(t, "render", suitePath, "--format", "html", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "user_id values must never be null.")
	assert.Contains(t, out, "overflow")
}

func TestRenderCommand_Console(t *testing.T) {
	suitePath := writeTestSuite(t)

	out, err := runCommand(t, "render", suitePath, "--format", "console", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "note")
}

func TestRenderCommand_Interpret(t *testing.T) {
	suitePath := writeTestSuite(t)

	out, err := runCommand(t, "render", suitePath, "--format", "console", "--output", "", "--interpret")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Validation Summary ===")
	assert.Contains(t, out, "1 unmet")
}

func TestRenderCommand_Strict(t *testing.T) {
	suitePath := writeTestSuite(t)

	_, err := runCommand(t, "render", suitePath, "--format", "console", "--output", "", "--strict")
	require.Error(t, err)
	var suiteErr *SuiteFailureError
	assert.ErrorAs(t, err, &suiteErr)
}

func TestRenderCommand_SchemaErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"success": true}`), 0644))

	_, err := runCommand(t, "render", path, "--format", "json", "--output", "")
	require.Error(t, err)
	var suiteErr *SuiteFailureError
	assert.ErrorAs(t, err, &suiteErr)
}

func TestRenderCommand_UnknownFormat(t *testing.T) {
	suitePath := writeTestSuite(t)

	_, err := runCommand(t, "render", suitePath, "--format", "pdf", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
