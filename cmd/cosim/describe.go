package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/components"
	"github.com/san-kum/cosim/internal/config"
	"github.com/san-kum/cosim/internal/physics"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list registered components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := components.NewRegistry(physics.Library())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tMODEL\tINPUTS\tOUTPUTS")
			for _, name := range registry.List() {
				c, err := registry.New(name)
				if err != nil {
					return err
				}
				meta := c.Metadata()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", name, c.ComponentType(), meta.Name, len(meta.Inputs), len(meta.Outputs))
			}
			return tw.Flush()
		},
	}
}

func (a *app) newDescribeCmd() *cobra.Command {
	var yamlOut, jsonOut bool

	cmd := &cobra.Command{
		Use:   "describe [component]",
		Short: "show a component's inputs and outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := components.NewRegistry(physics.Library()).New(args[0])
			if err != nil {
				return err
			}
			meta := c.Metadata()
			out := cmd.OutOrStdout()

			switch {
			case yamlOut:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(meta); err != nil {
					return fmt.Errorf("failed to encode metadata: %w", err)
				}
				return enc.Close()
			case jsonOut:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(meta)
			default:
				printMetadata(out, meta)
				return nil
			}
		},
	}
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "print metadata as YAML")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print metadata as JSON")
	cmd.MarkFlagsMutuallyExclusive("yaml", "json")
	return cmd
}

func printMetadata(w io.Writer, meta component.Metadata) {
	fmt.Fprintf(w, "%s (%s)\n", meta.Name, meta.ComponentType)
	for _, section := range []struct {
		title string
		specs []component.IOSpec
	}{
		{"inputs", meta.Inputs},
		{"outputs", meta.Outputs},
	} {
		headerColor.Fprintf(w, "\n%s:\n", section.title)
		if len(section.specs) == 0 {
			fmt.Fprintln(w, "  (none)")
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range section.specs {
			unit := s.Unit
			if unit == "" {
				unit = "-"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", s.Name, s.Type, unit, s.Description)
		}
		tw.Flush()
	}
}

func (a *app) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [component]",
		Short: "list available presets for a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for component: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Fprintf(out, "  %-10s dt=%g duration=%g inputs=%d\n", p, cfg.Dt, cfg.Duration, len(cfg.Inputs))
			}
			return nil
		},
	}
}
