package dynamo

import (
	"errors"
	"fmt"
)

// ErrInvalidStep indicates a negative or non-finite time step.
var ErrInvalidStep = errors.New("dynamo: invalid time step")

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
