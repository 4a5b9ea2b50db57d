package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/cosim/internal/dynamo"
)

// Default is the integrator used when none is configured.
const Default = "rk4"

var factories = map[string]func() dynamo.Integrator{
	"euler": func() dynamo.Integrator { return NewEuler() },
	"rk4":   func() dynamo.Integrator { return NewRK4() },
}

// Lookup returns a constructor for the named integrator. Integrators carry
// scratch buffers, so callers build one instance per engine.
func Lookup(name string) (func() dynamo.Integrator, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn, nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
