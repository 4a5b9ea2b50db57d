package dynamo

import "math"

// State is a vector of continuous state values.
type State []float64

// IsValid reports whether every element is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Control carries exogenous inputs sampled once per step and held constant
// across the integrator's internal stages.
type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

// ValidateStep reports whether dt is usable as a time advance. Zero is
// allowed and means "no advance".
func ValidateStep(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return ErrInvalidStep
	}
	return nil
}
