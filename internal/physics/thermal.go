package physics

import "github.com/san-kum/cosim/internal/engine"

const ThermalModel = "SimpleThermalMVP"

const (
	DefaultAmbientTemperature = 283.15 // K
	DefaultRoomTemperature    = 293.15 // K
	DefaultHeaterPower        = 2000.0 // W
	DefaultConductance        = 50.0   // W/K, envelope losses
	DefaultHeatCapacity       = 1.0e5  // J/K
)

// Thermal is a lumped room model with an on/off heater:
//
//	C dT/dt = P*heaterOn - G*(T - Tamb)
func Thermal() engine.Model {
	return engine.Model{
		Name: ThermalModel,
		Variables: []engine.Variable{
			{Name: "ambientTemperature", Type: engine.Real, Role: engine.Parameter, Start: DefaultAmbientTemperature},
			{Name: "heaterPower", Type: engine.Real, Role: engine.Parameter, Start: DefaultHeaterPower},
			{Name: "conductance", Type: engine.Real, Role: engine.Parameter, Start: DefaultConductance},
			{Name: "heatCapacity", Type: engine.Real, Role: engine.Parameter, Start: DefaultHeatCapacity},
			{Name: "heaterOn", Type: engine.Boolean, Role: engine.Input},
			{Name: "temperature", Type: engine.Real, Role: engine.State, Start: DefaultRoomTemperature},
			{Name: "heaterStatus", Type: engine.Real, Role: engine.Output},
		},
		Derive: func(v *engine.Vars, dx []float64) {
			heat := v.Indicator("heaterOn") * v.Real("heaterPower")
			loss := v.Real("conductance") * (v.Real("temperature") - v.Real("ambientTemperature"))
			dx[0] = (heat - loss) / v.Real("heatCapacity")
		},
		Update: func(v *engine.Vars) {
			v.SetReal("heaterStatus", v.Indicator("heaterOn"))
		},
	}
}
