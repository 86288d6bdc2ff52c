package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Command completed successfully
	ExitEvalFailed = 1 // Evaluation ran, but accuracy fell below the configured floor
	ExitError      = 2 // Configuration or runtime error
)

// AccuracyFailureError indicates that an evaluation completed, but the
// classifier's accuracy did not meet the configured minimum.
type AccuracyFailureError struct {
	Message string
}

func (e *AccuracyFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var accuracyErr *AccuracyFailureError
		if errors.As(err, &accuracyErr) {
			os.Exit(ExitEvalFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
