// Package physics provides the models solved by the reference engine.
//
// Each model is an [engine.Model] declaring its named variables, the
// differential equations for its continuous states and the algebraic
// outputs derived from them:
//
//   - [Thermal]: lumped room with an on/off heater (SimpleThermalMVP)
//   - [Circuit]: switched RC charging circuit (SimpleRCCircuit)
//   - [Pendulum]: damped, torque-driven pendulum with a brake (SimplePendulum)
//
// Parameters are ordinary Real variables, so they can be overridden through
// the engine's variable accessors before stepping.
//
//	lib := physics.Library()
//	eng, _ := lib.New(physics.ThermalModel)
package physics
