package main

import (
	"errors"
	"fmt"

	"github.com/apstndb/simargs/internal/parser/cmdline"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// ExitCodeError carries the exit status of a failure whose diagnostic has
// already been written to stderr.
type ExitCodeError struct {
	exitCode int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.exitCode)
}

// NewExitCodeError returns nil for exitCodeSuccess.
func NewExitCodeError(exitCode int) error {
	if exitCode == exitCodeSuccess {
		return nil
	}
	return &ExitCodeError{exitCode: exitCode}
}

// GetExitCode returns the process exit status for the result of run.
// An ExitCodeError anywhere in the chain decides the status; other errors
// are mapped the way the dispatcher maps them, so a help request exits 0.
func GetExitCode(err error) int {
	var exitCodeErr *ExitCodeError
	if errors.As(err, &exitCodeErr) {
		return exitCodeErr.exitCode
	}
	return cmdline.ExitCode(err)
}
