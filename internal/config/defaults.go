package config

import (
	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/paths"
)

// Defaults holds values computed at runtime. Keys missing here fall back to
// their domain.ConfigKeys default.
var Defaults = map[string]func() string{
	"audit_path": func() string { return paths.AuditDBPath() },
}

func defaultValue(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	if k, ok := domain.GetConfigKey(key); ok {
		return k.Default, true
	}
	return "", false
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		return defaultValue(key)
	}

	cfg, err := Parse(lines)
	if err != nil {
		return defaultValue(key)
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	return defaultValue(key)
}

// GetAll returns every known key with its default, overridden by the values
// present in the rc file.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))

	for _, key := range domain.ConfigKeys {
		result[key.Name], _ = defaultValue(key.Name)
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
