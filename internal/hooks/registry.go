package hooks

import (
	"fmt"
	"sync"
)

// Registry maps backend identifiers to hook factories and caches the
// constructed instances. At most one backend registers per identifier for
// the process lifetime; there is no unregistration. Lookups for identifiers
// with no registration return the no-op implementation.
//
// Registration runs during package initialization, before any runtime thread
// performs a lookup. Lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[BackendID]*registryEntry
}

type registryEntry struct {
	factory Factory
	once    sync.Once
	hooks   Interface
}

// NewRegistry returns an empty registry. Tests construct fresh registries
// instead of sharing the process-wide default.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[BackendID]*registryEntry)}
}

// Register installs the factory for id. Registering the same identifier
// twice is a programming error and panics immediately, so a nondeterministic
// backend selection is caught at startup rather than surfacing later.
func (r *Registry) Register(id BackendID, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("hooks: nil factory registered for backend %s", id))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[id]; dup {
		panic(fmt.Sprintf("hooks: backend %s registered twice", id))
	}
	r.entries[id] = &registryEntry{factory: factory}
}

// Get returns the hook implementation bound to id. The instance is
// constructed on first lookup and reused for the process lifetime: two Get
// calls for a registered identifier return the same instance. When nothing
// is registered for id, Get returns a no-op implementation whose Available
// reports false.
func (r *Registry) Get(id BackendID) Interface {
	r.mu.RLock()
	e := r.entries[id]
	r.mu.RUnlock()

	if e == nil {
		return noopHooks{id: id}
	}
	e.once.Do(func() {
		e.hooks = e.factory()
	})
	return e.hooks
}

// Registered reports whether a backend is registered for id, without
// constructing it.
func (r *Registry) Registered(id BackendID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// defaultRegistry is the process-wide registry backend packages install
// themselves into from their init functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register installs factory for id in the process-wide registry. Backend
// packages call this from init, so importing a backend package (typically
// with a blank import) is what links it in.
func Register(id BackendID, factory Factory) {
	defaultRegistry.Register(id, factory)
}

// Get looks up id in the process-wide registry.
func Get(id BackendID) Interface {
	return defaultRegistry.Get(id)
}
