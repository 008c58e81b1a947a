package providers

import (
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
)

// Strings returns the token run as []string.
func Strings() *dispatchers.Provider {
	return dispatchers.Multiple(func(tokens []string, _ *dispatchers.Context) ([]string, error) {
		return tokens, nil
	})
}

// Joined returns the token run joined with single spaces.
func Joined() *dispatchers.Provider {
	return dispatchers.Multiple(func(tokens []string, _ *dispatchers.Context) (string, error) {
		return strings.Join(tokens, " "), nil
	})
}
