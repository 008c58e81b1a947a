package providers

import (
	"math"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
)

// String passes the token through.
func String() *dispatchers.Provider {
	return dispatchers.Single(func(token string, _ *dispatchers.Context) (string, error) {
		return token, nil
	})
}

// Int converts a token to int.
func Int(msgs Messages) *dispatchers.Provider {
	return dispatchers.Single(func(token string, ctx *dispatchers.Context) (int, error) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, reject(msgs.InvalidInteger(token, ctx))
		}
		return n, nil
	})
}

// Long converts a token to int64.
func Long(msgs Messages) *dispatchers.Provider {
	return dispatchers.Single(func(token string, ctx *dispatchers.Context) (int64, error) {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return 0, reject(msgs.InvalidLong(token, ctx))
		}
		return n, nil
	})
}

// Double converts a token to float64. NaN and infinities are rejected.
func Double(msgs Messages) *dispatchers.Provider {
	return dispatchers.Single(func(token string, ctx *dispatchers.Context) (float64, error) {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, reject(msgs.InvalidDouble(token, ctx))
		}
		return f, nil
	})
}

// Bool accepts true and false in any case, and the literals 1 and 0.
func Bool(msgs Messages) *dispatchers.Provider {
	return dispatchers.Single(func(token string, ctx *dispatchers.Context) (bool, error) {
		switch {
		case strings.EqualFold(token, "true"), token == "1":
			return true, nil
		case strings.EqualFold(token, "false"), token == "0":
			return false, nil
		default:
			return false, reject(msgs.InvalidBoolean(token, ctx))
		}
	})
}
