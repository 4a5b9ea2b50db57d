package config

import "sort"

// Presets holds the built-in scenarios, keyed by component then preset
// name.
var Presets = map[string]map[string]*Config{
	"thermal": {
		"warmup": {
			Component: "thermal", Integrator: "rk4", Dt: 60, Duration: 3600,
			Inputs: []Input{
				{At: 0, Name: "heaterOn", Bool: Bool(true)},
			},
		},
		"cycle": {
			Component: "thermal", Integrator: "rk4", Dt: 10, Duration: 3600,
			Inputs: []Input{
				{At: 0, Name: "heaterOn", Bool: Bool(true)},
				{At: 900, Name: "heaterOn", Bool: Bool(false)},
				{At: 1800, Name: "heaterOn", Bool: Bool(true)},
				{At: 2700, Name: "heaterOn", Bool: Bool(false)},
			},
		},
		"cooldown": {
			Component: "thermal", Integrator: "rk4", Dt: 60, Duration: 7200,
		},
	},
	"circuit": {
		"charge": {
			Component: "circuit", Integrator: "rk4", Dt: 0.01, Duration: 5,
			Inputs: []Input{
				{At: 0, Name: "switchClosed", Bool: Bool(true)},
			},
		},
		"pulse": {
			Component: "circuit", Integrator: "rk4", Dt: 0.01, Duration: 6,
			Inputs: []Input{
				{At: 0, Name: "sourceVoltage", Value: Float(12)},
				{At: 0, Name: "switchClosed", Bool: Bool(true)},
				{At: 2, Name: "sourceVoltage", Value: Float(0)},
			},
		},
		"hold": {
			Component: "circuit", Integrator: "rk4", Dt: 0.01, Duration: 4,
			Inputs: []Input{
				{At: 0, Name: "switchClosed", Bool: Bool(true)},
				{At: 1, Name: "switchClosed", Bool: Bool(false)},
			},
		},
	},
	"pendulum": {
		"free": {
			Component: "pendulum", Integrator: "rk4", Dt: 0.01, Duration: 20,
		},
		"brake": {
			Component: "pendulum", Integrator: "rk4", Dt: 0.01, Duration: 20,
			Inputs: []Input{
				{At: 5, Name: "brakeEngaged", Bool: Bool(true)},
			},
		},
		"driven": {
			Component: "pendulum", Integrator: "rk4", Dt: 0.01, Duration: 30,
			Inputs: []Input{
				{At: 0, Name: "torque", Value: Float(2)},
				{At: 15, Name: "torque", Value: Float(0)},
			},
		},
	},
}

// GetPreset returns a copy of the named preset with default logging, or
// nil if either name is unknown.
func GetPreset(component, preset string) *Config {
	componentPresets, ok := Presets[component]
	if !ok {
		return nil
	}
	cfg, ok := componentPresets[preset]
	if !ok {
		return nil
	}
	cp := cfg.Clone()
	cp.Log = DefaultConfig().Log
	return cp
}

func ListPresets(component string) []string {
	componentPresets, ok := Presets[component]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(componentPresets))
	for name := range componentPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
