package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/cosim/internal/experiment"
)

func (a *app) newCompareCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "compare [component] [integrator1] [integrator2] ...",
		Short: "run one scenario under several integrators",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compareIntegrators(cmd, args[0], args[1:], opts)
		},
	}
	addScenarioFlags(cmd, opts)
	return cmd
}

func (a *app) compareIntegrators(cmd *cobra.Command, name string, names []string, opts *runOptions) error {
	cfg, err := scenario(cmd, name, opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := a.logger(cmd, cfg)
	runs := make([]*experiment.Experiment, len(names))
	for i, integrator := range names {
		c, err := newComponent(cfg, integrator)
		if err != nil {
			return err
		}
		runs[i] = experiment.New(c, experiment.FromScenario(cfg), logger.With("integrator", integrator))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, errs := experiment.NewEnsemble(runs...).Run(ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing integrators for %s (dt=%g, duration=%gs)\n\n", cfg.Component, cfg.Dt, cfg.Duration)

	var outputs []string
	for _, r := range results {
		if r != nil {
			outputs = r.Names
			break
		}
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "INTEGRATOR\t%s\tSTEPS\tTIME_MS\n", strings.ToUpper(strings.Join(outputs, "\t")))

	failed := 0
	for i, integrator := range names {
		r := results[i]
		if r == nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", integrator, errs[i])
			failed++
			continue
		}
		final := r.Final()
		row := make([]string, len(outputs))
		for j, o := range outputs {
			row[j] = fmt.Sprintf("%.6g", final[o])
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", integrator, strings.Join(row, "\t"), r.Steps, float64(r.Elapsed.Microseconds())/1000)
		if errs[i] != nil {
			fmt.Fprintf(tw, "\terror: %v\n", errs[i])
			failed++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, len(names))
	}
	return nil
}
