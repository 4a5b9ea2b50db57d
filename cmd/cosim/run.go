package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/components"
	"github.com/san-kum/cosim/internal/config"
	"github.com/san-kum/cosim/internal/engine"
	"github.com/san-kum/cosim/internal/experiment"
	"github.com/san-kum/cosim/internal/integrators"
	"github.com/san-kum/cosim/internal/metrics"
	"github.com/san-kum/cosim/internal/physics"
)

type runOptions struct {
	configFile  string
	preset      string
	dt          float64
	duration    float64
	integrator  string
	maxSubstep  float64
	sets        []string
	boolSets    []string
	jsonOut     bool
	showMetrics bool
}

type runReport struct {
	ID            string                     `json:"id"`
	Component     string                     `json:"component"`
	ComponentType string                     `json:"component_type"`
	Steps         int                        `json:"steps"`
	SimulatedTime float64                    `json:"simulated_time"`
	Elapsed       string                     `json:"elapsed"`
	Summary       []experiment.OutputSummary `json:"summary"`
	Error         string                     `json:"error,omitempty"`
}

func (a *app) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [component]",
		Short: "run a component through a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulation(cmd, args[0], opts)
		},
	}

	addScenarioFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "print Prometheus metrics after the run")

	return cmd
}

func (a *app) runSimulation(cmd *cobra.Command, name string, opts *runOptions) error {
	cfg, err := scenario(cmd, name, opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := newComponent(cfg, cfg.Integrator)
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	logger := a.logger(cmd, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, runErr := experiment.New(metrics.Instrument(c, reg), experiment.FromScenario(cfg), logger).Run(ctx)
	if res == nil {
		return runErr
	}

	report := runReport{
		ID:            res.ID,
		Component:     res.Component,
		ComponentType: res.ComponentType,
		Steps:         res.Steps,
		SimulatedTime: res.Duration(),
		Elapsed:       res.Elapsed.String(),
		Summary:       res.Summary(),
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		printReport(out, report, c.Metadata())
	}

	if opts.showMetrics {
		fmt.Fprintln(out)
		if err := reg.WriteText(out); err != nil {
			return err
		}
	}
	return runErr
}

func addScenarioFlags(cmd *cobra.Command, opts *runOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "scenario file path (yaml)")
	f.StringVar(&opts.preset, "preset", "", "use preset scenario")
	f.Float64Var(&opts.dt, "dt", config.DefaultDt, "communication step")
	f.Float64Var(&opts.duration, "time", config.DefaultDuration, "duration")
	f.StringVar(&opts.integrator, "integrator", config.DefaultIntegrator, "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	f.Float64Var(&opts.maxSubstep, "max-substep", 0, "largest internal solver step (0 = engine default)")
	f.StringArrayVar(&opts.sets, "set", nil, "set a real input at t=0 (name=value)")
	f.StringArrayVar(&opts.boolSets, "set-bool", nil, "set a boolean input at t=0 (name=true|false)")
}

// scenario merges the scenario sources. A config file or preset provides
// the base; explicitly set flags override it.
func scenario(cmd *cobra.Command, name string, opts *runOptions) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case opts.configFile != "" && opts.preset != "":
		return nil, fmt.Errorf("--config and --preset are mutually exclusive")
	case opts.configFile != "":
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		if loaded.Component != name {
			return nil, fmt.Errorf("config %s is for component %s, not %s", opts.configFile, loaded.Component, name)
		}
		cfg = loaded
	case opts.preset != "":
		cfg = config.GetPreset(name, opts.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets(name))
		}
	default:
		cfg = config.DefaultConfig()
		cfg.Component = name
		cfg.Dt = opts.dt
		cfg.Duration = opts.duration
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = opts.dt
	}
	if flags.Changed("time") {
		cfg.Duration = opts.duration
	}
	if flags.Changed("integrator") {
		cfg.Integrator = opts.integrator
	}
	if flags.Changed("max-substep") {
		cfg.MaxSubstep = opts.maxSubstep
	}

	for _, s := range opts.sets {
		key, raw, err := splitAssignment(s)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.Inputs = append(cfg.Inputs, config.Input{Name: key, Value: config.Float(v)})
	}
	for _, s := range opts.boolSets {
		key, raw, err := splitAssignment(s)
		if err != nil {
			return nil, err
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.Inputs = append(cfg.Inputs, config.Input{Name: key, Bool: config.Bool(b)})
	}
	return cfg, nil
}

// newComponent builds the scenario's component on an engine using the
// named integrator.
func newComponent(cfg *config.Config, integrator string) (component.Component, error) {
	newIntegrator, err := integrators.Lookup(integrator)
	if err != nil {
		return nil, err
	}
	engines := physics.Library(
		engine.WithIntegrator(newIntegrator),
		engine.WithMaxSubstep(cfg.MaxSubstep),
	)
	return components.NewRegistry(engines).New(cfg.Component)
}

func splitAssignment(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid assignment %q, expected name=value", s)
	}
	return key, value, nil
}

func printReport(w io.Writer, r runReport, meta component.Metadata) {
	if r.Error != "" {
		errorColor.Fprintf(w, "run %s stopped: %s\n", r.ID, r.Error)
	} else {
		okColor.Fprintf(w, "run %s completed in %s\n", r.ID, r.Elapsed)
	}
	fmt.Fprintf(w, "component: %s (%s)\n", r.Component, r.ComponentType)
	fmt.Fprintf(w, "steps: %d, simulated time: %g s\n\n", r.Steps, r.SimulatedTime)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OUTPUT\tFINAL\tMIN\tMAX\tMEAN\tUNIT")
	for _, s := range r.Summary {
		unit := "-"
		if spec, ok := meta.Output(s.Name); ok && spec.Unit != "" {
			unit = spec.Unit
		}
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%.6g\t%s\n", s.Name, s.Final, s.Min, s.Max, s.Mean, unit)
	}
	tw.Flush()
}
