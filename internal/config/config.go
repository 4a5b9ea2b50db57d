package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultComponent  = "thermal"
	DefaultIntegrator = "rk4"
	DefaultDt         = 1.0
	DefaultDuration   = 600.0
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config is one simulation scenario: which component to run, how to step
// it, and when to change its inputs.
type Config struct {
	Component  string    `yaml:"component" json:"component" validate:"required"`
	Integrator string    `yaml:"integrator" json:"integrator" validate:"required"`
	Dt         float64   `yaml:"dt" json:"dt" validate:"gt=0"`
	Duration   float64   `yaml:"duration" json:"duration" validate:"gt=0"`
	MaxSubstep float64   `yaml:"max_substep,omitempty" json:"max_substep,omitempty" validate:"gte=0"`
	Inputs     []Input   `yaml:"inputs,omitempty" json:"inputs,omitempty" validate:"dive"`
	Log        LogConfig `yaml:"log" json:"log"`
}

// Input schedules one input change. It is applied before the first step
// that starts at or after At. Exactly one of Value and Bool is set.
type Input struct {
	At    float64  `yaml:"at" json:"at" validate:"gte=0"`
	Name  string   `yaml:"name" json:"name" validate:"required"`
	Value *float64 `yaml:"value,omitempty" json:"value,omitempty" validate:"required_without=Bool,excluded_with=Bool"`
	Bool  *bool    `yaml:"bool,omitempty" json:"bool,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" validate:"omitempty,oneof=text json"`
}

// Float returns a pointer to v, for building Input.Value.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to b, for building Input.Bool.
func Bool(b bool) *bool { return &b }

// IsBool reports whether the input drives a Boolean signal.
func (in Input) IsBool() bool { return in.Bool != nil }

func (in Input) String() string {
	if in.Bool != nil {
		return fmt.Sprintf("%s=%t@%g", in.Name, *in.Bool, in.At)
	}
	if in.Value != nil {
		return fmt.Sprintf("%s=%g@%g", in.Name, *in.Value, in.At)
	}
	return fmt.Sprintf("%s=?@%g", in.Name, in.At)
}

func DefaultConfig() *Config {
	return &Config{
		Component:  DefaultComponent,
		Integrator: DefaultIntegrator,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Inputs = make([]Input, len(c.Inputs))
	for i, in := range c.Inputs {
		if in.Value != nil {
			in.Value = Float(*in.Value)
		}
		if in.Bool != nil {
			in.Bool = Bool(*in.Bool)
		}
		cp.Inputs[i] = in
	}
	if len(c.Inputs) == 0 {
		cp.Inputs = nil
	}
	return &cp
}

// Steps is the number of whole steps of Dt that fit in Duration.
func (c *Config) Steps() int {
	return int(math.Floor(c.Duration/c.Dt + 1e-9))
}

var validate = validator.New()

// Validate checks the scenario before it is run.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", formatValidationError(err))
	}
	if math.IsInf(c.Duration, 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("invalid config: dt and duration must be finite")
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s is required", field)
		case "gt":
			return fmt.Errorf("%s must be greater than %s", field, e.Param())
		case "gte":
			return fmt.Errorf("%s must be at least %s", field, e.Param())
		case "oneof":
			return fmt.Errorf("%s must be one of [%s]", field, e.Param())
		case "required_without", "excluded_with":
			return fmt.Errorf("%s: exactly one of value and bool must be set", strings.TrimSuffix(field, ".Value"))
		default:
			return fmt.Errorf("%s failed validation: %s", field, e.Tag())
		}
	}
	return err
}

// Load reads a scenario file. Fields absent from the file keep their
// DefaultConfig values. The result is not validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
