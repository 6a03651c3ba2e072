package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suiteJSON = `{
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
        "expectation_type": "expect_table_row_count_to_be_between",
        "kwargs": {"min_value": 1}
      },
      "success": false,
      "result": {"observed_value": 0}
    }
  ],
  "evaluation_parameters": {"min_rows": 1}
}`

const suiteYAML = `results:
  - expectation_config:
      expectation_type: expect_column_values_to_not_be_null
      kwargs:
        column: user_id
    success: true
success: true
`

func writeTempSuite(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSuiteJSON(t *testing.T) {
	suite, err := LoadSuite(writeTempSuite(t, "suite.json", suiteJSON))
	require.NoError(t, err)

	require.Len(t, suite.Results, 2)
	assert.Equal(t, "expect_column_values_to_not_be_null", suite.Results[0].Config.Type)
	assert.Equal(t, "user_id", suite.Results[0].Config.Kwargs["column"])
	assert.True(t, suite.Results[0].Success)
	assert.False(t, suite.Results[1].Success)
	assert.Equal(t, map[string]any{"min_rows": float64(1)}, suite.EvaluationParameters)
}

func TestLoadSuiteYAML(t *testing.T) {
	suite, err := LoadSuite(writeTempSuite(t, "suite.yaml", suiteYAML))
	require.NoError(t, err)

	require.Len(t, suite.Results, 1)
	assert.Equal(t, "expect_column_values_to_not_be_null", suite.Results[0].Config.Type)
	assert.True(t, suite.Success)
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestComputeStatistics(t *testing.T) {
	suite := &ValidationSuite{
		Results: []ValidationResult{
			{Success: true},
			{Success: true},
			{Success: false},
			{Success: true},
		},
	}

	suite.ComputeStatistics()

	assert.Equal(t, 4, suite.Statistics.EvaluatedExpectations)
	assert.Equal(t, 3, suite.Statistics.SuccessfulExpectations)
	assert.Equal(t, 1, suite.Statistics.UnsuccessfulExpectations)
	assert.InDelta(t, 75.0, suite.Statistics.SuccessPercent, 0.001)
	assert.False(t, suite.Success)
}

func TestComputeStatisticsEmpty(t *testing.T) {
	suite := &ValidationSuite{}
	suite.ComputeStatistics()

	assert.Equal(t, 0, suite.Statistics.EvaluatedExpectations)
	assert.Zero(t, suite.Statistics.SuccessPercent)
	assert.True(t, suite.Success)
}

func TestRaisedException(t *testing.T) {
	r := ValidationResult{}
	assert.False(t, r.RaisedException())

	r.ExceptionInfo = &ExceptionInfo{Raised: false}
	assert.False(t, r.RaisedException())

	r.ExceptionInfo = &ExceptionInfo{Raised: true, Message: "boom"}
	assert.True(t, r.RaisedException())
}
