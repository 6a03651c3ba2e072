package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	suitePath := writeTestSuite(t)

	out, err := runCommand(t, "validate", suitePath)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"results": "nope"}`), 0644))

	out, err := runCommand(t, "validate", path)
	require.Error(t, err)
	var suiteErr *SuiteFailureError
	assert.ErrorAs(t, err, &suiteErr)
	assert.Contains(t, out, "schema error")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, "validate", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	// A missing file is a runtime error, not a suite failure.
	var suiteErr *SuiteFailureError
	assert.False(t, errors.As(err, &suiteErr))
}
