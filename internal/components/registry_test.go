package components

import (
	"testing"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/engine"
	"github.com/san-kum/cosim/internal/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenSchema declares the same output twice.
type brokenSchema struct {
	*Thermal
}

func (b *brokenSchema) Metadata() component.Metadata {
	m := b.Thermal.Metadata()
	m.Outputs = append(m.Outputs, m.Outputs[0])
	return m
}

func TestRegistryNew(t *testing.T) {
	r := NewRegistry(physics.Library())

	c, err := r.New("thermal")
	require.NoError(t, err)
	assert.Equal(t, TypeThermal, c.ComponentType())

	_, err = r.New("hydraulic")
	assert.EqualError(t, err, "unknown component: hydraulic")
}

func TestRegistryNewBuildsIndependentEngines(t *testing.T) {
	r := NewRegistry(physics.Library())

	a, err := r.New("thermal")
	require.NoError(t, err)
	b, err := r.New("thermal")
	require.NoError(t, err)
	require.NoError(t, a.Initialize())
	require.NoError(t, b.Initialize())

	require.NoError(t, a.SetBoolInput("heaterOn", true))
	require.NoError(t, a.Step(0))

	assert.Equal(t, 1.0, a.GetAllOutputs()["heaterStatus"])
	assert.Equal(t, 0.0, b.GetAllOutputs()["heaterStatus"])
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry(physics.Library())

	err := r.Register("thermal", func(f engine.Factory) (component.Component, error) { return NewThermal(f) })
	assert.Error(t, err)

	err = r.Register("broken", func(f engine.Factory) (component.Component, error) {
		th, err := NewThermal(f)
		if err != nil {
			return nil, err
		}
		return &brokenSchema{Thermal: th}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "circuit", "pendulum", "thermal"}, r.List())

	_, err = r.New("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistryPropagatesEngineErrors(t *testing.T) {
	r := NewRegistry(engine.NewLibrary())
	_, err := r.New("pendulum")
	assert.ErrorIs(t, err, component.ErrRuntimeFailure)
	assert.ErrorIs(t, err, engine.ErrUnknownModel)
}
