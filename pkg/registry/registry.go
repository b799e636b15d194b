// Package registry manages the set of generic operations available to the
// engine. It implements ports.Catalog.
package registry

import (
	"sort"
	"sync"

	"github.com/quernlab/quern/pkg/ports"
)

// Registry maps operation names to their transforms.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]ports.TransformFunc
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		ops: make(map[string]ports.TransformFunc),
	}
}

// Register adds an operation to the registry.
// If an operation with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn ports.TransformFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = fn
}

// Transform looks up an operation by name.
func (r *Registry) Transform(name string) (ports.TransformFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.ops[name]
	return fn, ok
}

// Names returns all registered operation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
