package components

import (
	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/engine"
	"github.com/san-kum/cosim/internal/physics"
)

const TypeElectrical = "Electrical"

// Circuit exposes the switched RC charging circuit.
type Circuit struct {
	*component.Binding
}

var _ component.Component = (*Circuit)(nil)

func NewCircuit(engines engine.Factory) (*Circuit, error) {
	b, err := component.Bind(engines, physics.CircuitModel, circuitMetadata())
	if err != nil {
		return nil, err
	}
	return &Circuit{Binding: b}, nil
}

func (c *Circuit) ComponentType() string { return TypeElectrical }

func (c *Circuit) Metadata() component.Metadata { return circuitMetadata() }

func circuitMetadata() component.Metadata {
	return component.Metadata{
		Name:          physics.CircuitModel,
		ComponentType: TypeElectrical,
		Inputs: []component.IOSpec{
			{Name: "switchClosed", Type: component.Boolean, Description: "Connects the source to the RC branch"},
			{Name: "sourceVoltage", Type: component.Real, Unit: "V", Description: "Source voltage"},
		},
		Outputs: []component.IOSpec{
			{Name: "capacitorVoltage", Type: component.Real, Unit: "V", Description: "Voltage across the capacitor"},
			{Name: "current", Type: component.Real, Unit: "A", Description: "Branch current"},
		},
	}
}
