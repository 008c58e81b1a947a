package providers

import (
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
)

// Choice accepts one of values, ignoring case, and yields the value as
// declared.
func Choice(values []string, msgs Messages) *dispatchers.Provider {
	allowed := append([]string(nil), values...)
	return dispatchers.Single(func(token string, ctx *dispatchers.Context) (string, error) {
		for _, v := range allowed {
			if strings.EqualFold(v, token) {
				return v, nil
			}
		}
		return "", reject(msgs.InvalidChoice(token, allowed, ctx))
	})
}
