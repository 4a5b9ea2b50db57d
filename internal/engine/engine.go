package engine

// Engine is the surface a component requires from its runtime engine.
type Engine interface {
	Reset() error
	SetRealVariable(name string, value float64) error
	SetBoolVariable(name string, value bool) error
	GetRealVariable(name string) (float64, error)
	Step(dt float64) error
}

// Factory constructs a fresh, unshared engine instance for a named model.
type Factory interface {
	New(model string) (Engine, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(model string) (Engine, error)

func (f FactoryFunc) New(model string) (Engine, error) { return f(model) }
