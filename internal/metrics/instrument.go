package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/san-kum/cosim/internal/component"
)

// Instrumented is a component.Component that records every operation in a
// Registry before returning the wrapped component's result unchanged.
type Instrumented struct {
	inner    component.Component
	registry *Registry
	label    string
}

var _ component.Component = (*Instrumented)(nil)

// Instrument wraps c. Metrics are labelled with the component's metadata
// name.
func Instrument(c component.Component, r *Registry) *Instrumented {
	return &Instrumented{
		inner:    c,
		registry: r,
		label:    c.Metadata().Name,
	}
}

// Unwrap returns the wrapped component.
func (i *Instrumented) Unwrap() component.Component { return i.inner }

func (i *Instrumented) ComponentType() string { return i.inner.ComponentType() }

func (i *Instrumented) Metadata() component.Metadata { return i.inner.Metadata() }

func (i *Instrumented) Initialize() error {
	err := i.observe(component.OpInitialize, i.inner.Initialize)
	if err == nil {
		i.registry.ResetSimulatedTime(i.label)
	}
	return err
}

func (i *Instrumented) Reset() error {
	err := i.observe(component.OpReset, i.inner.Reset)
	if err == nil {
		i.registry.ResetSimulatedTime(i.label)
	}
	return err
}

func (i *Instrumented) SetInput(name string, value float64) error {
	return i.observe(component.OpSetInput, func() error {
		return i.inner.SetInput(name, value)
	})
}

func (i *Instrumented) SetBoolInput(name string, value bool) error {
	return i.observe(component.OpSetBoolInput, func() error {
		return i.inner.SetBoolInput(name, value)
	})
}

func (i *Instrumented) GetOutput(name string) (float64, error) {
	var v float64
	err := i.observe(component.OpGetOutput, func() error {
		var err error
		v, err = i.inner.GetOutput(name)
		return err
	})
	return v, err
}

func (i *Instrumented) Step(dt float64) error {
	err := i.observe(component.OpStep, func() error {
		return i.inner.Step(dt)
	})
	if err == nil {
		i.registry.AdvanceSimulatedTime(i.label, dt)
	}
	return err
}

// GetAllOutputs reads through the instrumented GetOutput, so each output
// read is counted.
func (i *Instrumented) GetAllOutputs() map[string]float64 {
	return component.CollectOutputs(i.inner.Metadata().Outputs, i.GetOutput)
}

// Close forwards to the wrapped component if it can be closed.
func (i *Instrumented) Close() error {
	if c, ok := i.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (i *Instrumented) observe(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	i.registry.RecordOperation(i.label, op, err, kindLabel(err), time.Since(start))
	return err
}

func kindLabel(err error) string {
	if err == nil {
		return ""
	}
	switch component.KindOf(err) {
	case component.ErrUnknownVariable:
		return "unknown_variable"
	case component.ErrTypeMismatch:
		return "type_mismatch"
	case component.ErrRuntimeFailure:
		if errors.Is(err, component.ErrNotInitialized) {
			return "not_initialized"
		}
		return "runtime_failure"
	default:
		return "other"
	}
}
