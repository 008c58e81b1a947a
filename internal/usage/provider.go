package usage

import "fmt"

// Provider wraps a message supplied by a provider that rejected a token or
// the invocation context. The message is shown to the sender verbatim.
func Provider(message string) *Error {
	return &Error{
		Kind:    ErrProvider,
		Message: message,
	}
}

// NoProvider is returned when no provider of a compatible kind is
// registered for an argument's type. It is a configuration fault.
func NoProvider(argument, typ string, position int) *Error {
	return &Error{
		Kind:     ErrNoProvider,
		Message:  fmt.Sprintf("no provider for type '%s' (argument '%s')", typ, argument),
		Argument: argument,
		Position: position,
	}
}
