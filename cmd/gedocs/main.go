package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Rendered (or validated) cleanly
	ExitSuiteFailed  = 1 // Suite contains unmet expectations or schema errors
	ExitRuntimeError = 2 // Configuration or runtime error
)

// SuiteFailureError indicates the command itself succeeded, but the suite
// carries unmet expectations or failed schema validation.
type SuiteFailureError struct {
	Message string
}

func (e *SuiteFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var suiteFailureErr *SuiteFailureError
		if errors.As(err, &suiteFailureErr) {
			os.Exit(ExitSuiteFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitRuntimeError)
	}
}
