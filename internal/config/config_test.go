package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Component != "thermal" {
		t.Errorf("expected component thermal, got %s", cfg.Component)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid schedule", func(c *Config) {
			c.Inputs = []Input{{At: 0, Name: "heaterOn", Bool: Bool(true)}, {At: 5, Name: "power", Value: Float(1)}}
		}, ""},
		{"zero dt", func(c *Config) { c.Dt = 0 }, "Config.Dt must be greater than 0"},
		{"negative duration", func(c *Config) { c.Duration = -1 }, "Config.Duration must be greater than 0"},
		{"infinite duration", func(c *Config) { c.Duration = math.Inf(1) }, "must be finite"},
		{"missing component", func(c *Config) { c.Component = "" }, "Config.Component is required"},
		{"negative substep", func(c *Config) { c.MaxSubstep = -0.1 }, "Config.MaxSubstep must be at least 0"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "Config.Log.Level must be one of"},
		{"negative at", func(c *Config) {
			c.Inputs = []Input{{At: -1, Name: "heaterOn", Bool: Bool(true)}}
		}, "Config.Inputs[0].At must be at least 0"},
		{"unnamed input", func(c *Config) {
			c.Inputs = []Input{{At: 0, Bool: Bool(true)}}
		}, "Config.Inputs[0].Name is required"},
		{"no value", func(c *Config) {
			c.Inputs = []Input{{At: 0, Name: "heaterOn"}}
		}, "Config.Inputs[0]: exactly one of value and bool must be set"},
		{"both values", func(c *Config) {
			c.Inputs = []Input{{At: 0, Name: "heaterOn", Value: Float(1), Bool: Bool(true)}}
		}, "Config.Inputs[0]: exactly one of value and bool must be set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		dt, duration float64
		want         int
	}{
		{1, 600, 600},
		{0.01, 5, 500},
		{0.1, 1, 10},
		{60, 90, 1},
		{10, 5, 0},
	}
	for _, tt := range tests {
		cfg := &Config{Dt: tt.dt, Duration: tt.duration}
		if got := cfg.Steps(); got != tt.want {
			t.Errorf("Steps(dt=%g, duration=%g) = %d, want %d", tt.dt, tt.duration, got, tt.want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := GetPreset("circuit", "pulse")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := []byte(`component: pendulum
duration: 12
inputs:
  - {at: 2, name: brakeEngaged, bool: true}
  - {at: 4, name: torque, value: 1.5}
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "pendulum", cfg.Component)
	assert.Equal(t, DefaultIntegrator, cfg.Integrator)
	assert.Equal(t, DefaultDt, cfg.Dt)
	assert.Equal(t, 12.0, cfg.Duration)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)

	require.Len(t, cfg.Inputs, 2)
	assert.True(t, cfg.Inputs[0].IsBool())
	assert.Equal(t, "brakeEngaged=true@2", cfg.Inputs[0].String())
	assert.False(t, cfg.Inputs[1].IsBool())
	assert.Equal(t, 1.5, *cfg.Inputs[1].Value)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dt: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("thermal", "cycle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Inputs) != 4 {
		t.Errorf("expected 4 scheduled inputs, got %d", len(cfg.Inputs))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should be valid: %v", err)
	}

	// Mutating a returned preset must not leak into the table.
	*cfg.Inputs[0].Bool = false
	cfg.Inputs = nil
	again := GetPreset("thermal", "cycle")
	if len(again.Inputs) != 4 || !*again.Inputs[0].Bool {
		t.Error("preset table was modified through a returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("thermal", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "warmup")
	if cfg != nil {
		t.Error("expected nil for nonexistent component")
	}
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"charge", "hold", "pulse"}, ListPresets("circuit"))
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestAllPresetsValid(t *testing.T) {
	for component, presets := range Presets {
		for name := range presets {
			cfg := GetPreset(component, name)
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", component, name, err)
			}
			if cfg.Component != component {
				t.Errorf("%s/%s: component field is %q", component, name, cfg.Component)
			}
		}
	}
}
