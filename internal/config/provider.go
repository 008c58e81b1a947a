package config

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdkit/internal/domain"
)

// Provider reads and edits the rc file. It implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set stores value for key in the rc file. The value must be a single line
// that Load would accept for key.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("config: unknown key '%s'", key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("config: %s: value must be a single line", key)
	}
	if _, err := FromMap(map[string]string{key: value}); err != nil {
		return err
	}

	return edit(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes key from the rc file so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("config: unknown key '%s'", key)
	}

	return edit(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

// edit rewrites the rc file under the lock.
func edit(change func([]string) []string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		return WriteLines(change(lines))
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
