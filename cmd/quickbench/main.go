package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Benchmark ran and every model passed the gate
	ExitTestFailed = 1 // One or more models scored below the gate
	ExitError      = 2 // Configuration or runtime error
)

// TestFailureError indicates that the benchmark ran successfully,
// but one or more models scored below the configured minimum.
type TestFailureError struct {
	Message string
}

func (e *TestFailureError) Error() string {
	return e.Message
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck

		// Check error type to determine exit code
		var testFailureErr *TestFailureError
		if errors.As(err, &testFailureErr) {
			os.Exit(ExitTestFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
