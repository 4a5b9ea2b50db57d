package component

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// IOType tags the accessor family of a signal.
type IOType string

const (
	Real    IOType = "Real"
	Boolean IOType = "Boolean"

	// Integer and String are reserved for future accessor families. They
	// pass validation but no accessor reads or writes them.
	Integer IOType = "Integer"
	String  IOType = "String"
)

// IOSpec describes one named signal. Unit and Description are documentation
// only; empty means absent.
type IOSpec struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Type        IOType `json:"io_type" yaml:"io_type" validate:"oneof=Real Boolean Integer String"`
	Unit        string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Metadata is the static self-description of one component instance.
// Signal names are unique within Inputs and within Outputs; an input and an
// output may share a name.
type Metadata struct {
	Name          string   `json:"name" yaml:"name" validate:"required"`
	ComponentType string   `json:"component_type" yaml:"component_type" validate:"required"`
	Inputs        []IOSpec `json:"inputs" yaml:"inputs" validate:"unique=Name,dive"`
	Outputs       []IOSpec `json:"outputs" yaml:"outputs" validate:"unique=Name,dive"`
}

// Clone returns a deep copy, so callers can't alter a component's schema
// through the returned slices.
func (m Metadata) Clone() Metadata {
	c := m
	c.Inputs = append([]IOSpec(nil), m.Inputs...)
	c.Outputs = append([]IOSpec(nil), m.Outputs...)
	return c
}

func (m Metadata) Input(name string) (IOSpec, bool) {
	return find(m.Inputs, name)
}

func (m Metadata) Output(name string) (IOSpec, bool) {
	return find(m.Outputs, name)
}

func (m Metadata) OutputNames() []string {
	names := make([]string, len(m.Outputs))
	for i, s := range m.Outputs {
		names[i] = s.Name
	}
	return names
}

func find(specs []IOSpec, name string) (IOSpec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return IOSpec{}, false
}

var validate = validator.New()

// ValidateMetadata checks a hand-authored schema: names present, known type
// tags, no duplicate names within Inputs or within Outputs.
func ValidateMetadata(m Metadata) error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("component: invalid metadata for %q: %w", m.Name, formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Report the first failure only.
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "unique":
			return fmt.Errorf("%s: duplicate %s", field, e.Param())
		case "oneof":
			return fmt.Errorf("%s: %q is not one of %s", field, e.Value(), e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
