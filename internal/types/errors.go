package types

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every failure surfaced by the planner wraps exactly one
// of these so callers can branch with errors.Is.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrAmbiguousInput       = errors.New("ambiguous input")
	ErrNotFound             = errors.New("not found")
	ErrPreconditionViolated = errors.New("precondition violated")
	ErrEnvironmentMissing   = errors.New("environment missing")
)

// Error is a planner failure of a given Kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
