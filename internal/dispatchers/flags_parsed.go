package dispatchers

import (
	"strconv"
	"strings"
	"time"
)

// ParsedFlags provides typed access to flag-style tokens. The resolver never
// looks at flags; commands inspect them on their own.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// ParseFlags keeps the tokens that start with '-' and are not negative numbers.
func ParseFlags(tokens []string) *ParsedFlags {
	var flags []string
	for _, tok := range tokens {
		if len(tok) < 2 || tok[0] != '-' {
			continue
		}
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			continue
		}
		flags = append(flags, tok)
	}
	return NewParsedFlags(flags)
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.raw {
		if strings.EqualFold(flag, name) {
			return true
		}
	}
	return false
}

// String returns the value of a --flag=value token, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := strings.ToLower(name) + "="
	for _, flag := range f.raw {
		if strings.HasPrefix(strings.ToLower(flag), prefix) {
			return flag[len(prefix):]
		}
	}
	return defaultVal
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// Duration returns the time.Duration value of a flag, or defaultVal if not
// present or invalid.
func (f *ParsedFlags) Duration(name string, defaultVal time.Duration) time.Duration {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return defaultVal
	}
	return d
}
