package main

import "errors"

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
	exitCodeUsage   = 2
	exitCodeInput   = 3
)

// ExitCodeError carries an exit code and the error that caused it.
type ExitCodeError struct {
	exitCode int
	err      error
}

// Error implements the error interface
func (e *ExitCodeError) Error() string {
	return e.err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.err
}

func withExitCode(exitCode int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode: exitCode, err: err}
}

// GetExitCode returns the appropriate exit code based on the error type.
// It returns exitCodeSuccess for nil errors and exitCodeError for errors
// that do not carry a code.
func GetExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}

	var exitCodeErr *ExitCodeError
	if errors.As(err, &exitCodeErr) {
		return exitCodeErr.exitCode
	}

	return exitCodeError
}
