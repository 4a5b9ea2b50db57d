package components

import (
	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/engine"
	"github.com/san-kum/cosim/internal/physics"
)

const TypeThermal = "Thermal"

// Thermal exposes the SimpleThermalMVP room model.
type Thermal struct {
	*component.Binding
}

var _ component.Component = (*Thermal)(nil)

func NewThermal(engines engine.Factory) (*Thermal, error) {
	b, err := component.Bind(engines, physics.ThermalModel, thermalMetadata())
	if err != nil {
		return nil, err
	}
	return &Thermal{Binding: b}, nil
}

func (t *Thermal) ComponentType() string { return TypeThermal }

func (t *Thermal) Metadata() component.Metadata { return thermalMetadata() }

func thermalMetadata() component.Metadata {
	return component.Metadata{
		Name:          physics.ThermalModel,
		ComponentType: TypeThermal,
		Inputs: []component.IOSpec{
			{Name: "heaterOn", Type: component.Boolean, Description: "Heater control signal"},
		},
		Outputs: []component.IOSpec{
			{Name: "temperature", Type: component.Real, Unit: "K", Description: "Current room temperature"},
			{Name: "heaterStatus", Type: component.Real, Description: "Heater status (0=off, 1=on)"},
		},
	}
}
