package physics

import (
	"math"

	"github.com/san-kum/cosim/internal/engine"
)

const PendulumModel = "SimplePendulum"

const (
	DefaultMass         = 1.0
	DefaultLength       = 1.0
	DefaultDamping      = 0.1
	DefaultGravity      = 9.81
	DefaultBrakeDamping = 5.0
	DefaultTheta        = 0.5
)

// Pendulum is a damped pendulum driven by an external torque, with a brake
// that adds viscous damping while engaged.
func Pendulum() engine.Model {
	return engine.Model{
		Name: PendulumModel,
		Variables: []engine.Variable{
			{Name: "mass", Type: engine.Real, Role: engine.Parameter, Start: DefaultMass},
			{Name: "length", Type: engine.Real, Role: engine.Parameter, Start: DefaultLength},
			{Name: "damping", Type: engine.Real, Role: engine.Parameter, Start: DefaultDamping},
			{Name: "gravity", Type: engine.Real, Role: engine.Parameter, Start: DefaultGravity},
			{Name: "brakeDamping", Type: engine.Real, Role: engine.Parameter, Start: DefaultBrakeDamping},
			{Name: "torque", Type: engine.Real, Role: engine.Input},
			{Name: "brakeEngaged", Type: engine.Boolean, Role: engine.Input},
			{Name: "angle", Type: engine.Real, Role: engine.State, Start: DefaultTheta},
			{Name: "angularVelocity", Type: engine.Real, Role: engine.State},
			{Name: "energy", Type: engine.Real, Role: engine.Output},
		},
		Derive: func(v *engine.Vars, dx []float64) {
			m, l, g := v.Real("mass"), v.Real("length"), v.Real("gravity")
			theta, omega := v.Real("angle"), v.Real("angularVelocity")
			damping := v.Real("damping") + v.Indicator("brakeEngaged")*v.Real("brakeDamping")

			dx[0] = omega
			dx[1] = (-damping*omega - m*g*l*math.Sin(theta) + v.Real("torque")) / (m * l * l)
		},
		Update: func(v *engine.Vars) {
			m, l := v.Real("mass"), v.Real("length")
			// KE = 0.5 * m * (L*omega)^2
			// PE = m * g * L * (1 - cos(theta))
			vel := l * v.Real("angularVelocity")
			ke := 0.5 * m * vel * vel
			pe := m * v.Real("gravity") * l * (1.0 - math.Cos(v.Real("angle")))
			v.SetReal("energy", ke+pe)
		},
	}
}
