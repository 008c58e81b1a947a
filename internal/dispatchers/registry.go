package dispatchers

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Snapshot is an immutable view of a registry. A resolution holds one
// snapshot for its whole duration.
type Snapshot struct {
	providers map[Type]*Provider
}

// Lookup returns the provider registered for t.
func (s *Snapshot) Lookup(t Type) (*Provider, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.providers[t]
	return p, ok
}

// Types returns the registered type tags, sorted.
func (s *Snapshot) Types() []Type {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.providers))
}

// Len returns the number of registered types.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.providers)
}

// Registry maps type tags to providers. Writes copy the current mapping and
// swap it in atomically, so readers never see a partial update.
type Registry struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Snapshot]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(&Snapshot{providers: map[Type]*Provider{}})
	return r
}

// Register sets the provider for t, replacing any previous one.
func (r *Registry) Register(t Type, p *Provider) {
	r.RegisterAll(p, t)
}

// RegisterAll registers one provider for every given type tag.
func (r *Registry) RegisterAll(p *Provider, types ...Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.current.Load().providers)
	for _, t := range types {
		next[t] = p
	}
	r.current.Store(&Snapshot{providers: next})
}

// Unregister removes the provider for t, if any.
func (r *Registry) Unregister(t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.current.Load().providers)
	delete(next, t)
	r.current.Store(&Snapshot{providers: next})
}

// Lookup returns the provider currently registered for t.
func (r *Registry) Lookup(t Type) (*Provider, bool) {
	return r.Snapshot().Lookup(t)
}

// Snapshot returns the current immutable view.
func (r *Registry) Snapshot() *Snapshot {
	return r.current.Load()
}

// Refresh applies update to a copy of the current mapping and swaps the
// result in as a single step. update may add, replace or delete entries.
func (r *Registry) Refresh(update func(providers map[Type]*Provider)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.current.Load().providers)
	update(next)
	r.current.Store(&Snapshot{providers: next})
}
