package usage

import "fmt"

// MissingArgument is returned when a required single argument has no token.
func MissingArgument(name, description string, position int) *Error {
	return &Error{
		Kind:        ErrMissingArgument,
		Message:     fmt.Sprintf("missing required argument '%s' at position %d", name, position),
		Argument:    name,
		Description: description,
		Position:    position,
	}
}

// MissingStrings is returned when a variadic argument receives fewer tokens
// than its minimum. missing is minCount minus the tokens available.
func MissingStrings(name, description string, position, minCount, missing int) *Error {
	return &Error{
		Kind:        ErrMissingStrings,
		Message:     fmt.Sprintf("argument '%s' needs %d more value(s) (minimum %d)", name, missing, minCount),
		Argument:    name,
		Description: description,
		Position:    position,
		MinCount:    minCount,
		Missing:     missing,
	}
}
