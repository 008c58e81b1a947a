package usage

import "fmt"

// Registration is returned while building a command tree whose structure
// breaks an invariant. It is fatal to startup.
func Registration(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrRegistration,
		Message: "registration: " + fmt.Sprintf(format, args...),
	}
}

// Invocation wraps an unexpected fault raised by a command's own behavior.
// The cause is for operators only.
func Invocation(command string, cause error) *Error {
	return &Error{
		Kind:    ErrInvocation,
		Message: fmt.Sprintf("command '%s' failed", command),
		Command: command,
		Cause:   cause,
	}
}
