package engine

import "fmt"

type VarType int

const (
	Real VarType = iota
	Boolean
)

func (t VarType) String() string {
	switch t {
	case Real:
		return "Real"
	case Boolean:
		return "Boolean"
	default:
		return fmt.Sprintf("VarType(%d)", int(t))
	}
}

type Role int

const (
	Parameter Role = iota
	Input
	State
	Output
)

// Variable declares one named model variable. Boolean start values are
// true when Start is non-zero.
type Variable struct {
	Name  string
	Type  VarType
	Role  Role
	Start float64
}

// Model describes a system the reference engine can solve.
type Model struct {
	Name      string
	Variables []Variable

	// Derive writes the time derivative of every State variable into dx, in
	// declaration order.
	Derive func(v *Vars, dx []float64)

	// Update recomputes algebraic outputs from the current variables. It may
	// be nil.
	Update func(v *Vars)
}

// States returns the names of the continuous states in declaration order.
func (m Model) States() []string {
	var names []string
	for _, v := range m.Variables {
		if v.Role == State {
			names = append(names, v.Name)
		}
	}
	return names
}

func (m Model) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty model name", ErrMalformedModel)
	}
	seen := make(map[string]bool, len(m.Variables))
	states := 0
	for _, v := range m.Variables {
		if v.Name == "" {
			return fmt.Errorf("%w: %s: variable with empty name", ErrMalformedModel, m.Name)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: %s: duplicate variable %q", ErrMalformedModel, m.Name, v.Name)
		}
		seen[v.Name] = true
		if v.Type != Real && v.Type != Boolean {
			return fmt.Errorf("%w: %s: variable %q has unsupported type %v", ErrMalformedModel, m.Name, v.Name, v.Type)
		}
		if v.Role == State {
			if v.Type != Real {
				return fmt.Errorf("%w: %s: state %q must be Real", ErrMalformedModel, m.Name, v.Name)
			}
			states++
		}
	}
	if states > 0 && m.Derive == nil {
		return fmt.Errorf("%w: %s: %d states but no derivative function", ErrMalformedModel, m.Name, states)
	}
	return nil
}

type slot struct {
	typ VarType
	idx int
}

// Vars is the value store of one solver. Model functions read and write
// variables by name; referencing an undeclared name is a model bug and
// panics.
type Vars struct {
	index map[string]slot
	reals []float64
	bools []bool
}

func newVars(m Model) *Vars {
	v := &Vars{index: make(map[string]slot, len(m.Variables))}
	for _, decl := range m.Variables {
		switch decl.Type {
		case Real:
			v.index[decl.Name] = slot{typ: Real, idx: len(v.reals)}
			v.reals = append(v.reals, decl.Start)
		case Boolean:
			v.index[decl.Name] = slot{typ: Boolean, idx: len(v.bools)}
			v.bools = append(v.bools, decl.Start != 0)
		}
	}
	return v
}

func (v *Vars) lookup(name string, typ VarType) (slot, error) {
	s, ok := v.index[name]
	if !ok {
		return slot{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	if s.typ != typ {
		return slot{}, fmt.Errorf("%w: %q is %v, not %v", ErrTypeMismatch, name, s.typ, typ)
	}
	return s, nil
}

func (v *Vars) mustLookup(name string, typ VarType) slot {
	s, err := v.lookup(name, typ)
	if err != nil {
		panic(err)
	}
	return s
}

func (v *Vars) Real(name string) float64 {
	return v.reals[v.mustLookup(name, Real).idx]
}

func (v *Vars) Bool(name string) bool {
	return v.bools[v.mustLookup(name, Boolean).idx]
}

// Indicator returns 1 for a true Boolean variable and 0 otherwise.
func (v *Vars) Indicator(name string) float64 {
	if v.Bool(name) {
		return 1
	}
	return 0
}

func (v *Vars) SetReal(name string, value float64) {
	v.reals[v.mustLookup(name, Real).idx] = value
}

func (v *Vars) copyFrom(src *Vars) {
	copy(v.reals, src.reals)
	copy(v.bools, src.bools)
}

func (v *Vars) clone() *Vars {
	c := &Vars{
		index: v.index,
		reals: make([]float64, len(v.reals)),
		bools: make([]bool, len(v.bools)),
	}
	c.copyFrom(v)
	return c
}
