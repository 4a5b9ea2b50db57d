package engine

import (
	"fmt"
	"math"

	"github.com/san-kum/cosim/internal/dynamo"
	"github.com/san-kum/cosim/internal/integrators"
)

const (
	DefaultMaxSubstep = 0.1

	// maxSubsteps bounds the work a single Step may do.
	maxSubsteps = 1_000_000
)

// Solver is the reference Engine. It owns all variable values of one model
// instance.
type Solver struct {
	model      Model
	vars       *Vars
	initial    *Vars
	scratch    *Vars
	states     []int
	integrator dynamo.Integrator
	maxSubstep float64
	time       float64
}

var _ Engine = (*Solver)(nil)

// NewSolver validates m and returns a solver in its initial state.
func NewSolver(m Model, opts ...Option) (*Solver, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	s := &Solver{
		model:      m,
		vars:       newVars(m),
		integrator: o.integrator(),
		maxSubstep: o.maxSubstep,
	}
	for _, name := range m.States() {
		s.states = append(s.states, s.vars.index[name].idx)
	}
	s.initial = s.vars.clone()
	s.scratch = s.vars.clone()

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Solver) ModelName() string { return s.model.Name }

// Time is the simulated time since the last Reset.
func (s *Solver) Time() float64 { return s.time }

func (s *Solver) Reset() error {
	s.vars.copyFrom(s.initial)
	s.time = 0
	s.update()
	if !dynamo.State(s.vars.reals).IsValid() {
		s.vars.copyFrom(s.initial)
		return fmt.Errorf("%w: %s: initial values are not finite", ErrMalformedModel, s.model.Name)
	}
	return nil
}

func (s *Solver) SetRealVariable(name string, value float64) error {
	sl, err := s.vars.lookup(name, Real)
	if err != nil {
		return err
	}
	s.vars.reals[sl.idx] = value
	return nil
}

func (s *Solver) SetBoolVariable(name string, value bool) error {
	sl, err := s.vars.lookup(name, Boolean)
	if err != nil {
		return err
	}
	s.vars.bools[sl.idx] = value
	return nil
}

func (s *Solver) GetRealVariable(name string) (float64, error) {
	sl, err := s.vars.lookup(name, Real)
	if err != nil {
		return 0, err
	}
	return s.vars.reals[sl.idx], nil
}

func (s *Solver) Step(dt float64) error {
	if err := dynamo.ValidateStep(dt); err != nil {
		return fmt.Errorf("%w: dt=%g", ErrInvalidStep, dt)
	}

	substeps := math.Ceil(dt / s.maxSubstep)
	if substeps > maxSubsteps {
		return fmt.Errorf("%w: dt=%g needs more than %d substeps", ErrInvalidStep, dt, maxSubsteps)
	}
	n := int(substeps)

	saved := s.vars.clone()
	savedTime := s.time

	if n > 0 {
		h := dt / float64(n)
		sys := system{s}
		x := s.stateVector()
		for i := 0; i < n; i++ {
			x = s.integrator.Step(sys, x, nil, s.time, h)
			if !x.IsValid() {
				s.restore(saved, savedTime)
				return fmt.Errorf("%w: %s at t=%g", ErrDiverged, s.model.Name, s.time)
			}
			s.time += h
		}
		s.setStateVector(x)
	}

	s.update()
	if !dynamo.State(s.vars.reals).IsValid() {
		s.restore(saved, savedTime)
		return fmt.Errorf("%w: %s: non-finite output at t=%g", ErrDiverged, s.model.Name, savedTime+dt)
	}
	return nil
}

func (s *Solver) update() {
	if s.model.Update != nil {
		s.model.Update(s.vars)
	}
}

func (s *Solver) restore(saved *Vars, t float64) {
	s.vars.copyFrom(saved)
	s.time = t
}

func (s *Solver) stateVector() dynamo.State {
	x := make(dynamo.State, len(s.states))
	for i, idx := range s.states {
		x[i] = s.vars.reals[idx]
	}
	return x
}

func (s *Solver) setStateVector(x dynamo.State) {
	for i, idx := range s.states {
		s.vars.reals[idx] = x[i]
	}
}

// system exposes a solver's model to the integrators. Inputs and
// parameters are read from the solver's current values, so they are held
// constant across one Step.
type system struct {
	s *Solver
}

func (sys system) StateDim() int   { return len(sys.s.states) }
func (sys system) ControlDim() int { return 0 }

func (sys system) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	s := sys.s
	s.scratch.copyFrom(s.vars)
	for i, idx := range s.states {
		s.scratch.reals[idx] = x[i]
	}
	dx := make(dynamo.State, len(s.states))
	s.model.Derive(s.scratch, dx)
	return dx
}

type options struct {
	integrator func() dynamo.Integrator
	maxSubstep float64
}

type Option func(*options)

// WithIntegrator sets the constructor used to give each solver its own
// integrator.
func WithIntegrator(fn func() dynamo.Integrator) Option {
	return func(o *options) {
		if fn != nil {
			o.integrator = fn
		}
	}
}

// WithMaxSubstep caps the internal integration step. Non-positive values
// are ignored.
func WithMaxSubstep(h float64) Option {
	return func(o *options) {
		if h > 0 && !math.IsInf(h, 0) {
			o.maxSubstep = h
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		integrator: func() dynamo.Integrator { return integrators.NewRK4() },
		maxSubstep: DefaultMaxSubstep,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
