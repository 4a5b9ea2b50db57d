package components

import (
	"fmt"
	"sort"
	"sync"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/engine"
)

// Factory builds a component bound to a fresh engine from engines.
type Factory func(engines engine.Factory) (component.Component, error)

// Registry maps component names to factories. It is safe for concurrent
// use; the components it returns are not.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	engines   engine.Factory
}

// NewRegistry returns a registry with the built-in components, building
// their engines from engines.
func NewRegistry(engines engine.Factory) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		engines:   engines,
	}

	r.factories["thermal"] = func(f engine.Factory) (component.Component, error) { return NewThermal(f) }
	r.factories["circuit"] = func(f engine.Factory) (component.Component, error) { return NewCircuit(f) }
	r.factories["pendulum"] = func(f engine.Factory) (component.Component, error) { return NewPendulum(f) }

	return r
}

func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("component %s already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// New builds a component and rejects it if its declared schema is
// malformed.
func (r *Registry) New(name string) (component.Component, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown component: %s", name)
	}

	c, err := fn(r.engines)
	if err != nil {
		return nil, err
	}
	if err := component.ValidateMetadata(c.Metadata()); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
