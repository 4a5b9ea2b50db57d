package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Library is a catalog of models. Every New call returns an independent
// Solver; nothing is shared between the engines it hands out.
type Library struct {
	mu     sync.RWMutex
	models map[string]Model
	opts   []Option
}

var _ Factory = (*Library)(nil)

// NewLibrary creates an empty library whose solvers are built with opts.
func NewLibrary(opts ...Option) *Library {
	return &Library{
		models: make(map[string]Model),
		opts:   opts,
	}
}

// Register adds a model. Models are validated on registration so a broken
// declaration fails at startup rather than on first use.
func (l *Library) Register(m Model) error {
	if err := m.validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.models[m.Name]; exists {
		return fmt.Errorf("engine: model %s already registered", m.Name)
	}
	l.models[m.Name] = m
	return nil
}

func (l *Library) New(model string) (Engine, error) {
	l.mu.RLock()
	m, ok := l.models[model]
	l.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	return NewSolver(m, l.opts...)
}

func (l *Library) Models() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.models))
	for name := range l.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
