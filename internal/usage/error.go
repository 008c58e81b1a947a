package usage

import (
	"errors"
	"fmt"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrRegistration
	ErrMissingArgument
	ErrMissingStrings
	ErrProvider
	ErrNotFound
	ErrNotAllowed
	ErrInvocation
	ErrNoProvider
)

func (k ErrorKind) String() string {
	switch k {
	case ErrRegistration:
		return "registration"
	case ErrMissingArgument:
		return "missing-argument"
	case ErrMissingStrings:
		return "missing-strings"
	case ErrProvider:
		return "provider"
	case ErrNotFound:
		return "not-found"
	case ErrNotAllowed:
		return "not-allowed"
	case ErrInvocation:
		return "invocation"
	case ErrNoProvider:
		return "no-provider"
	default:
		return "unknown"
	}
}

// UserFacing reports whether errors of this kind carry text meant for the
// sender. Invocation and provider-lookup faults are operator-only.
func (k ErrorKind) UserFacing() bool {
	switch k {
	case ErrMissingArgument, ErrMissingStrings, ErrProvider, ErrNotFound, ErrNotAllowed:
		return true
	default:
		return false
	}
}

// Error represents a structured command error with semantic type information.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind    ErrorKind
	Message string

	// Argument details (missing-argument, missing-strings, provider, no-provider)
	Argument    string
	Description string
	Position    int
	MinCount    int
	Missing     int

	// Command is the command path or input token the error refers to.
	Command string

	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind, so errors.Is(err, &Error{Kind: k})
// works as a kind test.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err if it is (or wraps) a usage error.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
