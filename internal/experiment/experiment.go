package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/config"
	"github.com/san-kum/cosim/internal/dynamo"
	"github.com/san-kum/cosim/internal/logging"
)

// scheduleEps absorbs rounding in step start times when matching inputs.
const scheduleEps = 1e-9

type Config struct {
	Dt       float64
	Duration float64
	Inputs   []config.Input
}

// FromScenario extracts the harness settings from a scenario file.
func FromScenario(c *config.Config) Config {
	return Config{
		Dt:       c.Dt,
		Duration: c.Duration,
		Inputs:   c.Clone().Inputs,
	}
}

// Experiment drives one component through a fixed-step run.
type Experiment struct {
	comp   component.Component
	cfg    Config
	logger *slog.Logger
}

// New prepares a run of c. A nil logger discards all records.
func New(c component.Component, cfg Config, logger *slog.Logger) *Experiment {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Experiment{comp: c, cfg: cfg, logger: logger}
}

// Run initializes the component, then for each step applies the inputs
// that are due and advances by Dt, recording every output after
// Initialize and after each step. On cancellation or a failed step the
// partial result is returned with the error. The component is closed when
// Run returns.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := e.validateConfig(); err != nil {
		return nil, err
	}
	if c, ok := e.comp.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				e.logger.Warn("failed to close component", "error", err)
			}
		}()
	}

	meta := e.comp.Metadata()
	steps := int(math.Floor(e.cfg.Duration/e.cfg.Dt + scheduleEps))
	schedule := sortedInputs(e.cfg.Inputs)

	start := time.Now()
	result := newResult(uuid.NewString(), meta, steps)
	defer func() { result.Elapsed = time.Since(start) }()
	logger := e.logger.With("run_id", result.ID, "component", meta.Name)
	logger.Info("run started", "steps", steps, "dt", e.cfg.Dt, "inputs", len(schedule))

	if err := e.comp.Initialize(); err != nil {
		logger.Error("initialize failed", "error", err)
		return nil, fmt.Errorf("failed to initialize %s: %w", meta.Name, err)
	}
	result.record(0, e.comp.GetAllOutputs())

	next := 0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			logger.Warn("run cancelled", "step", i)
			return result, ctx.Err()
		default:
		}

		t := float64(i) * e.cfg.Dt
		for next < len(schedule) && schedule[next].At <= t+scheduleEps {
			if err := apply(e.comp, schedule[next]); err != nil {
				logger.Error("input failed", "step", i, "input", schedule[next].String(), "error", err)
				return result, &dynamo.SimulationError{Step: i, Time: t, Wrapped: err}
			}
			logger.Debug("input applied", "step", i, "input", schedule[next].String())
			next++
		}

		if err := e.comp.Step(e.cfg.Dt); err != nil {
			logger.Error("step failed", "step", i, "t", t, "error", err)
			return result, &dynamo.SimulationError{Step: i, Time: t, Wrapped: err}
		}
		result.Steps++

		outputs := e.comp.GetAllOutputs()
		result.record(float64(i+1)*e.cfg.Dt, outputs)
		logger.Debug("step", "step", i, "t", t+e.cfg.Dt, "outputs", outputs)
	}

	logger.Info("run finished", "steps", result.Steps)
	return result, nil
}

func (e *Experiment) validateConfig() error {
	cfg := e.cfg
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if !(cfg.Duration > 0) || math.IsInf(cfg.Duration, 0) {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	for i, in := range cfg.Inputs {
		if in.Name == "" {
			return fmt.Errorf("input %d: name is required", i)
		}
		if (in.Value == nil) == (in.Bool == nil) {
			return fmt.Errorf("input %s: exactly one of value and bool must be set", in.Name)
		}
		if in.At < 0 || math.IsNaN(in.At) {
			return fmt.Errorf("input %s: at must be non-negative, got %f", in.Name, in.At)
		}
	}
	return nil
}

// sortedInputs orders the schedule by time, keeping file order for
// entries at the same time.
func sortedInputs(inputs []config.Input) []config.Input {
	sorted := append([]config.Input(nil), inputs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return sorted
}

func apply(c component.Component, in config.Input) error {
	if in.Bool != nil {
		return c.SetBoolInput(in.Name, *in.Bool)
	}
	return c.SetInput(in.Name, *in.Value)
}
