package providers

import (
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
)

var unitDurations = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
}

// ParseDuration reads "<n><unit>" with unit one of s, m, h, d or w, and
// falls back to Go duration syntax ("1h30m", "250ms").
func ParseDuration(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, false
	}

	if unit, ok := unitDurations[s[len(s)-1]|0x20]; ok {
		if n, err := strconv.ParseInt(s[:len(s)-1], 10, 64); err == nil {
			if n < 0 || n > int64(1<<63-1)/int64(unit) {
				return 0, false
			}
			return time.Duration(n) * unit, true
		}
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

// Duration converts a token to time.Duration using ParseDuration.
func Duration(msgs Messages) *dispatchers.Provider {
	return dispatchers.Single(func(token string, ctx *dispatchers.Context) (time.Duration, error) {
		d, ok := ParseDuration(token)
		if !ok {
			return 0, reject(msgs.InvalidTime(token, ctx))
		}
		return d, nil
	})
}
