package dispatchers

import "fmt"

// ResultKind is the closed set of outcomes a dispatch can have.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultError
	ResultNotFound
	ResultNotAllowed
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	case ResultNotFound:
		return "not-found"
	case ResultNotAllowed:
		return "not-allowed"
	default:
		return "unknown"
	}
}

// Result is the uniform outcome returned to a binding, which alone decides
// how to render it. A nil *Result means the command chose to stay silent.
type Result struct {
	Kind    ResultKind
	Message string
}

// HasMessage reports whether the result carries text for the sender.
func (r *Result) HasMessage() bool {
	return r != nil && r.Message != ""
}

func (r *Result) String() string {
	if r == nil {
		return "<none>"
	}
	if r.Message == "" {
		return r.Kind.String()
	}
	return r.Kind.String() + ": " + r.Message
}

// Success returns a success result with an optional message.
func Success(message string) *Result {
	return &Result{Kind: ResultSuccess, Message: message}
}

// Successf formats a success message.
func Successf(format string, args ...any) *Result {
	return Success(fmt.Sprintf(format, args...))
}

// Failure returns an error result carrying message.
func Failure(message string) *Result {
	return &Result{Kind: ResultError, Message: message}
}

// Failuref formats an error message.
func Failuref(format string, args ...any) *Result {
	return Failure(fmt.Sprintf(format, args...))
}

// NotFound returns a not-found result.
func NotFound(message string) *Result {
	return &Result{Kind: ResultNotFound, Message: message}
}

// NotAllowed returns a not-allowed result.
func NotAllowed(message string) *Result {
	return &Result{Kind: ResultNotAllowed, Message: message}
}

// None is the explicit "no output" return for actions.
func None() (*Result, error) {
	return nil, nil
}
