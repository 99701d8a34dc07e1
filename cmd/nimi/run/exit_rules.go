package run

import (
	"context"
	"errors"
)

const (
	exitCodeSuccess = 0
	exitCodeExecErr = 1
	exitCodeUsage   = 2
)

type runExitError struct {
	code int
	err  error
}

func (e runExitError) Error() string { return e.err.Error() }
func (e runExitError) ExitCode() int { return e.code }
func (e runExitError) Unwrap() error { return e.err }

// UsageError marks err as a configuration problem (exit code 2).
func UsageError(err error) error {
	return runExitError{code: exitCodeUsage, err: err}
}

// evaluateRunExit maps the outcome of a generation run to the CLI result.
// An interrupted run is a normal way to end an unbounded one.
func evaluateRunExit(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	var ee runExitError
	if errors.As(err, &ee) {
		return err
	}
	return runExitError{code: exitCodeExecErr, err: err}
}
