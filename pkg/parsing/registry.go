package parsing

import (
	"slices"
	"sync"

	"github.com/go-owo/owo/pkg/core"
)

// Factory constructs a component for a markup element. It reads only what it
// needs to construct the component (usually attributes); properties are
// applied afterwards.
type Factory func(el *Element) (core.Component, error)

// PropertyParser is implemented by components with markup properties beyond
// the base ones (id, sizing, positioning, margins, tooltip-text).
type PropertyParser interface {
	ParseProperties(model *Model, el *Element, children map[string]*Element) error
}

// Registry maps element names to component factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

// Lookup returns the factory for name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	return f, ok
}

// Names returns the registered element names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry that built-in components register
// into from their package init functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry.
func Register(name string, factory Factory) {
	defaultRegistry.Register(name, factory)
}
