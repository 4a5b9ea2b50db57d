package components

import (
	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/engine"
	"github.com/san-kum/cosim/internal/physics"
)

const TypeMechanical = "Mechanical"

// Pendulum exposes the damped pendulum with brake.
type Pendulum struct {
	*component.Binding
}

var _ component.Component = (*Pendulum)(nil)

func NewPendulum(engines engine.Factory) (*Pendulum, error) {
	b, err := component.Bind(engines, physics.PendulumModel, pendulumMetadata())
	if err != nil {
		return nil, err
	}
	return &Pendulum{Binding: b}, nil
}

func (p *Pendulum) ComponentType() string { return TypeMechanical }

func (p *Pendulum) Metadata() component.Metadata { return pendulumMetadata() }

func pendulumMetadata() component.Metadata {
	return component.Metadata{
		Name:          physics.PendulumModel,
		ComponentType: TypeMechanical,
		Inputs: []component.IOSpec{
			{Name: "torque", Type: component.Real, Unit: "N.m", Description: "External torque at the pivot"},
			{Name: "brakeEngaged", Type: component.Boolean, Description: "Adds brake damping while true"},
		},
		Outputs: []component.IOSpec{
			{Name: "angle", Type: component.Real, Unit: "rad"},
			{Name: "angularVelocity", Type: component.Real, Unit: "rad/s"},
			{Name: "energy", Type: component.Real, Unit: "J", Description: "Kinetic plus potential energy"},
		},
	}
}
