// Package schemas holds the embedded JSON Schemas for input files.
package schemas

import _ "embed"

// SuiteSchemaJSON is the JSON Schema for validation suite files.
//
//go:embed suite.schema.json
var SuiteSchemaJSON string
