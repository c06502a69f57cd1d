package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultRunnerYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig():\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		errMsg string
	}{
		{"zero speed", func(c *RunnerConfig) { c.Speed.Initial = 0 }, "speed.initial"},
		{"max below initial", func(c *RunnerConfig) { c.Speed.Max = 1 }, "speed.max"},
		{"no milestones", func(c *RunnerConfig) { c.PowerUps.Milestones = nil }, "must not be empty"},
		{"unsorted milestones", func(c *RunnerConfig) { c.PowerUps.Milestones = []int{30, 10} }, "ascending"},
		{"zero interval", func(c *RunnerConfig) { c.PowerUps.Interval = 0 }, "interval"},
		{"threshold range", func(c *RunnerConfig) { c.Sprites.AlphaThreshold = 300 }, "alpha_threshold"},
		{"zero height", func(c *RunnerConfig) { c.Player.ScaleHeight = 0 }, "scale heights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "player:\n  jump_strength: 15\npowerups:\n  milestones: [5, 50]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error: %v", err)
	}
	if cfg.Player.JumpStrength != 15 {
		t.Errorf("JumpStrength = %v, expected 15", cfg.Player.JumpStrength)
	}
	if !reflect.DeepEqual(cfg.PowerUps.Milestones, []int{5, 50}) {
		t.Errorf("Milestones = %v, expected [5 50]", cfg.PowerUps.Milestones)
	}
	// Unset keys keep defaults
	if cfg.Player.Gravity != 0.7 {
		t.Errorf("Gravity = %v, expected default 0.7", cfg.Player.Gravity)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRunner(bad)
	if err == nil {
		t.Error("malformed file should fail")
	}
	if cfg.Speed.Initial != DefaultRunnerConfig().Speed.Initial {
		t.Error("failed load should still return defaults")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("powerups:\n  interval: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(invalid); err == nil {
		t.Error("invalid config should fail")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		initial     float64
		progressive bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 6, true},
		{DifficultyHard, 8, true},
		{DifficultyFixed, 6, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tt.preset)
			if cfg.Speed.Initial != tt.initial {
				t.Errorf("Initial = %v, expected %v", cfg.Speed.Initial, tt.initial)
			}
			if got := NewSpeedModel(cfg.Speed).IsProgressive(); got != tt.progressive {
				t.Errorf("IsProgressive() = %v, expected %v", got, tt.progressive)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "jump_strength: 12") {
		t.Errorf("Marshal() output missing jump_strength:\n%s", data)
	}
}
