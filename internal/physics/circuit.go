package physics

import "github.com/san-kum/cosim/internal/engine"

const CircuitModel = "SimpleRCCircuit"

const (
	DefaultResistance    = 1000.0 // ohm
	DefaultCapacitance   = 1.0e-3 // F
	DefaultSourceVoltage = 5.0    // V
)

// Circuit is a voltage source charging a capacitor through a resistor and a
// switch. With the switch open the capacitor holds its charge.
func Circuit() engine.Model {
	current := func(v *engine.Vars) float64 {
		return v.Indicator("switchClosed") * (v.Real("sourceVoltage") - v.Real("capacitorVoltage")) / v.Real("resistance")
	}
	return engine.Model{
		Name: CircuitModel,
		Variables: []engine.Variable{
			{Name: "resistance", Type: engine.Real, Role: engine.Parameter, Start: DefaultResistance},
			{Name: "capacitance", Type: engine.Real, Role: engine.Parameter, Start: DefaultCapacitance},
			{Name: "sourceVoltage", Type: engine.Real, Role: engine.Input, Start: DefaultSourceVoltage},
			{Name: "switchClosed", Type: engine.Boolean, Role: engine.Input},
			{Name: "capacitorVoltage", Type: engine.Real, Role: engine.State},
			{Name: "current", Type: engine.Real, Role: engine.Output},
		},
		Derive: func(v *engine.Vars, dx []float64) {
			dx[0] = current(v) / v.Real("capacitance")
		},
		Update: func(v *engine.Vars) {
			v.SetReal("current", current(v))
		},
	}
}
