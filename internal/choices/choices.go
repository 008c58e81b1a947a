// Package choices turns a YAML file of named value lists into choice
// providers and keeps them in sync with the file.
//
//	choices:
//	  color: [red, green, blue]
//	  hand: [rock, paper, scissors]
package choices

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

// Definitions maps a type tag to its allowed values, in declared order.
type Definitions map[dispatchers.Type][]string

type document struct {
	Choices map[string][]string `yaml:"choices"`
}

// Parse decodes and validates a choices document.
func Parse(data []byte) (Definitions, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("choices: decode: %w", err)
	}

	defs := make(Definitions, len(doc.Choices))
	for name, values := range doc.Choices {
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			return nil, fmt.Errorf("choices: invalid type name %q", name)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("choices: type '%s' has no values", name)
		}

		seen := make(map[string]bool, len(values))
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("choices: type '%s' has an empty value", name)
			}
			key := strings.ToLower(v)
			if seen[key] {
				return nil, fmt.Errorf("choices: type '%s' lists '%s' twice", name, v)
			}
			seen[key] = true
		}

		defs[dispatchers.Type(name)] = values
	}

	return defs, nil
}

// LoadFile reads and parses the choices file at path.
func LoadFile(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("choices: read: %w", err)
	}
	return Parse(data)
}

// Loader registers choice providers and replaces them as a whole when the
// definitions change. It never touches types it did not register.
type Loader struct {
	registry *dispatchers.Registry
	messages providers.Messages
	logger   domain.Logger

	mu    sync.Mutex
	base  Definitions
	owned map[dispatchers.Type]bool
}

// NewLoader creates a loader writing to registry.
func NewLoader(registry *dispatchers.Registry, messages providers.Messages, logger domain.Logger) *Loader {
	return &Loader{
		registry: registry,
		messages: messages,
		logger:   logger,
		owned:    make(map[dispatchers.Type]bool),
	}
}

// SetBase sets built-in definitions that every Apply starts from. Loaded
// definitions replace base types of the same name.
func (l *Loader) SetBase(defs Definitions) {
	l.mu.Lock()
	l.base = defs
	l.mu.Unlock()
}

// Apply swaps in defs, on top of the base, in one registry refresh:
// previously loaded types that are gone are removed, the rest are replaced.
// A type already served by a provider the loader does not own is skipped.
func (l *Loader) Apply(defs Definitions) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.base) > 0 {
		merged := make(Definitions, len(l.base)+len(defs))
		for t, values := range l.base {
			merged[t] = values
		}
		for t, values := range defs {
			merged[t] = values
		}
		defs = merged
	}

	next := make(map[dispatchers.Type]bool, len(defs))
	l.registry.Refresh(func(m map[dispatchers.Type]*dispatchers.Provider) {
		for t := range l.owned {
			if _, keep := defs[t]; !keep {
				delete(m, t)
			}
		}
		for t, values := range defs {
			if _, taken := m[t]; taken && !l.owned[t] {
				l.logger.Warn("choices: type '%s' is already registered, skipping", t)
				continue
			}
			m[t] = providers.Choice(values, l.messages)
			next[t] = true
		}
	})
	l.owned = next

	l.logger.Info("choices: %d choice types loaded", len(next))
}

// Reload reads path and applies it. On error the current providers stay.
func (l *Loader) Reload(path string) error {
	defs, err := LoadFile(path)
	if err != nil {
		return err
	}
	l.Apply(defs)
	return nil
}

// Types returns the type tags currently owned by the loader, sorted.
func (l *Loader) Types() []dispatchers.Type {
	l.mu.Lock()
	defer l.mu.Unlock()

	types := make([]dispatchers.Type, 0, len(l.owned))
	for t := range l.owned {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
