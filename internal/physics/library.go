package physics

import (
	"fmt"

	"github.com/san-kum/cosim/internal/engine"
)

// Models returns every model in this package.
func Models() []engine.Model {
	return []engine.Model{Thermal(), Circuit(), Pendulum()}
}

// Library returns an engine library with every model registered. The
// models are static, so registration failure is a programming error.
func Library(opts ...engine.Option) *engine.Library {
	lib := engine.NewLibrary(opts...)
	for _, m := range Models() {
		if err := lib.Register(m); err != nil {
			panic(fmt.Sprintf("physics: %v", err))
		}
	}
	return lib
}
