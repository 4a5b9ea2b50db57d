package component

import (
	"fmt"
	"io"

	"github.com/san-kum/cosim/internal/dynamo"
	"github.com/san-kum/cosim/internal/engine"
)

// Binding owns one engine handle and implements the forwarding half of
// Component for it. Domain components embed a *Binding and add their own
// ComponentType and Metadata.
type Binding struct {
	meta        Metadata
	engine      engine.Engine
	initialized bool
}

// Bind creates a fresh engine for model and binds it to the declared
// schema. The engine is never shared with another Binding.
func Bind(f engine.Factory, model string, meta Metadata) (*Binding, error) {
	eng, err := f.New(model)
	if err != nil {
		return nil, &Error{Op: OpNew, Component: meta.Name, Kind: ErrRuntimeFailure, Err: err}
	}
	return &Binding{meta: meta.Clone(), engine: eng}, nil
}

func (b *Binding) Initialize() error {
	return b.reinit(OpInitialize)
}

func (b *Binding) Reset() error {
	return b.reinit(OpReset)
}

func (b *Binding) reinit(op string) error {
	if err := b.engine.Reset(); err != nil {
		b.initialized = false
		return b.fail(op, "", ErrRuntimeFailure, err)
	}
	b.initialized = true
	return nil
}

func (b *Binding) SetInput(name string, value float64) error {
	if err := b.check(OpSetInput, name, Real, b.meta.Inputs, b.meta.Outputs); err != nil {
		return err
	}
	if err := b.engine.SetRealVariable(name, value); err != nil {
		return b.fail(OpSetInput, name, engineKind(err), err)
	}
	return nil
}

func (b *Binding) SetBoolInput(name string, value bool) error {
	if err := b.check(OpSetBoolInput, name, Boolean, b.meta.Inputs, b.meta.Outputs); err != nil {
		return err
	}
	if err := b.engine.SetBoolVariable(name, value); err != nil {
		return b.fail(OpSetBoolInput, name, engineKind(err), err)
	}
	return nil
}

func (b *Binding) GetOutput(name string) (float64, error) {
	if err := b.check(OpGetOutput, name, Real, b.meta.Outputs, b.meta.Inputs); err != nil {
		return 0, err
	}
	v, err := b.engine.GetRealVariable(name)
	if err != nil {
		return 0, b.fail(OpGetOutput, name, engineKind(err), err)
	}
	return v, nil
}

func (b *Binding) Step(dt float64) error {
	if !b.initialized {
		return b.fail(OpStep, "", ErrRuntimeFailure, ErrNotInitialized)
	}
	if err := dynamo.ValidateStep(dt); err != nil {
		return b.fail(OpStep, "", ErrRuntimeFailure, fmt.Errorf("%w: dt=%g", err, dt))
	}
	if err := b.engine.Step(dt); err != nil {
		return b.fail(OpStep, "", ErrRuntimeFailure, err)
	}
	return nil
}

func (b *Binding) GetAllOutputs() map[string]float64 {
	return CollectOutputs(b.meta.Outputs, b.GetOutput)
}

// Close releases the engine if it holds external resources.
func (b *Binding) Close() error {
	if c, ok := b.engine.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// check resolves name against the declared lists in order and rejects it
// before the engine sees it when it is undeclared or of the wrong type.
func (b *Binding) check(op, name string, want IOType, lists ...[]IOSpec) error {
	for _, list := range lists {
		spec, ok := find(list, name)
		if !ok {
			continue
		}
		if spec.Type != want {
			return b.fail(op, name, ErrTypeMismatch, fmt.Errorf("declared %s, accessed as %s", spec.Type, want))
		}
		return nil
	}
	return b.fail(op, name, ErrUnknownVariable, nil)
}

func (b *Binding) fail(op, name string, kind, cause error) error {
	return &Error{Op: op, Component: b.meta.Name, Variable: name, Kind: kind, Err: cause}
}

// CollectOutputs reads every spec through read and keeps the successes.
// Failed reads are dropped without a trace.
func CollectOutputs(specs []IOSpec, read func(string) (float64, error)) map[string]float64 {
	outputs := make(map[string]float64, len(specs))
	for _, s := range specs {
		if v, err := read(s.Name); err == nil {
			outputs[s.Name] = v
		}
	}
	return outputs
}
