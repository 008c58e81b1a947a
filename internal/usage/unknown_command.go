package usage

import "fmt"

// NotFound is returned when no command node matches the input prefix.
func NotFound(command string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("'%s' is not a command", command),
		Command: command,
	}
}

// NotAllowed is returned when the permission check denies the sender.
func NotAllowed(command, permission string) *Error {
	return &Error{
		Kind:    ErrNotAllowed,
		Message: fmt.Sprintf("permission '%s' required for '%s'", permission, command),
		Command: command,
	}
}
