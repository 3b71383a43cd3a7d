package cmd

import (
	"errors"

	"github.com/robertgumeny/wadrun/internal/types"
)

// ExitError makes Execute exit with Code. Err, when set, is reported first.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

// Exit returns an ExitError for code with nothing to report.
func Exit(code int) error {
	return ExitError{Code: code}
}

// exitCode maps err to the process exit code. Usage and planning failures
// exit with 2, other failures with 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	for _, kind := range []error{types.ErrInvalidArgument, types.ErrAmbiguousInput} {
		if errors.Is(err, kind) {
			return 2
		}
	}
	return 1
}
