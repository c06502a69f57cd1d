package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and logs.
const AppDir = ".palopsee"

// runnerFile is the config file name looked up in each search location.
const runnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.palopsee/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserConfigPath(runnerFile), filepath.Join("configs", runnerFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML on top of the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// UserDataPath returns a path inside ~/.palopsee, or the bare filename if home is unavailable.
func UserDataPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filename
	}
	return filepath.Join(home, AppDir, filename)
}

// ApplyRunnerPreset modifies the speed model based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 5
		cfg.Speed.Max = 11
		cfg.Speed.Creep = 0.0007
	case DifficultyNormal:
		def := DefaultRunnerConfig().Speed
		cfg.Speed.Initial = def.Initial
		cfg.Speed.Max = def.Max
		cfg.Speed.Creep = def.Creep
		cfg.Speed.MilestoneBonus = def.MilestoneBonus
	case DifficultyHard:
		cfg.Speed.Initial = 8
		cfg.Speed.Max = 15
		cfg.Speed.Creep = 0.0015
		cfg.Speed.MilestoneBonus = 0.75
	case DifficultyFixed:
		cfg.Speed.Creep = 0
		cfg.Speed.MilestoneBonus = 0
	}
}
