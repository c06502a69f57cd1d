// Package config provides YAML-based runner configuration loading and
// the speed model used by the difficulty controller.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the endless runner.
// Distances are world pixels, speeds are pixels per frame.
type RunnerConfig struct {
	Viewport  ViewportConfig `yaml:"viewport"`
	Player    PlayerConfig   `yaml:"player"`
	Speed     SpeedConfig    `yaml:"speed"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Sprites   SpriteConfig   `yaml:"sprites"`
	Remote    RemoteConfig   `yaml:"remote"`
	Messages  MessageConfig  `yaml:"messages"`
}

// ViewportConfig maps terminal cells to world pixels.
type ViewportConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// PlayerConfig defines the player avatar and its jump physics.
type PlayerConfig struct {
	X            float64 `yaml:"x"`            // Fixed horizontal lane
	ScaleHeight  float64 `yaml:"scale_height"` // On-screen height; width follows the sprite aspect
	JumpStrength float64 `yaml:"jump_strength"`
	Gravity      float64 `yaml:"gravity"`
}

// SpeedConfig defines the scroll speed model.
type SpeedConfig struct {
	Initial        float64 `yaml:"initial"`
	Max            float64 `yaml:"max"`
	Creep          float64 `yaml:"creep"`           // Added to base speed every running frame
	MilestoneBonus float64 `yaml:"milestone_bonus"` // Added per MilestoneEvery points
	MilestoneEvery int     `yaml:"milestone_every"`
}

// ObstacleConfig defines obstacle sizes, placement and spawn pacing.
type ObstacleConfig struct {
	AsteroidChance    float64 `yaml:"asteroid_chance"`
	AsteroidHeight    float64 `yaml:"asteroid_height"`
	AlienHeight       float64 `yaml:"alien_height"`
	AlienClearance    float64 `yaml:"alien_clearance"` // Gap above the player's resting line
	AlienMinY         float64 `yaml:"alien_min_y"`
	SpawnBaseChance   float64 `yaml:"spawn_base_chance"`
	SpawnSpeedFactor  float64 `yaml:"spawn_speed_factor"`
	MinGapFraction    float64 `yaml:"min_gap_fraction"`    // Of viewport width
	MinGapSpeed       float64 `yaml:"min_gap_speed"`       // Multiplied by current speed
	GapJitterFraction float64 `yaml:"gap_jitter_fraction"` // Of viewport width
}

// PowerUpConfig defines the power-up schedule and effect.
type PowerUpConfig struct {
	ScaleHeight     float64 `yaml:"scale_height"`
	Milestones      []int   `yaml:"milestones"` // Ascending score offsets
	Interval        int     `yaml:"interval"`   // Added to the pattern base on wrap
	Jitter          float64 `yaml:"jitter"`     // Max vertical offset either way
	InvincibilityMS int     `yaml:"invincibility_ms"`
}

// ScoringConfig defines score side effects.
type ScoringConfig struct {
	SoundEvery      int `yaml:"sound_every"`
	LeaderboardSize int `yaml:"leaderboard_size"`
}

// SpriteConfig defines where sprites come from and how masks are built.
type SpriteConfig struct {
	Dir            string `yaml:"dir"`             // Image directory; empty uses built-in art
	AlphaThreshold int    `yaml:"alpha_threshold"` // Alpha must exceed this to be solid
}

// RemoteConfig defines the optional online leaderboard and text service.
type RemoteConfig struct {
	Enabled    bool   `yaml:"enabled"`
	SubmitURL  string `yaml:"submit_url"`
	TextURL    string `yaml:"text_url"`
	APIKey     string `yaml:"api_key"`
	PlayerName string `yaml:"player_name"`
	TimeoutMS  int    `yaml:"timeout_ms"`
}

// MessageConfig defines how long HUD messages stay up.
type MessageConfig struct {
	ReadyMS       int `yaml:"ready_ms"`
	CheatMS       int `yaml:"cheat_ms"`
	LeaderboardMS int `yaml:"leaderboard_ms"`
	ErrorMS       int `yaml:"error_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports settings the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Speed.Initial <= 0 {
		errs = append(errs, errors.New("speed.initial must be positive"))
	}
	if c.Speed.Max < c.Speed.Initial {
		errs = append(errs, errors.New("speed.max must be at least speed.initial"))
	}
	if c.Speed.MilestoneEvery <= 0 {
		errs = append(errs, errors.New("speed.milestone_every must be positive"))
	}
	if c.Player.ScaleHeight <= 0 || c.Obstacles.AsteroidHeight <= 0 ||
		c.Obstacles.AlienHeight <= 0 || c.PowerUps.ScaleHeight <= 0 {
		errs = append(errs, errors.New("sprite scale heights must be positive"))
	}
	if len(c.PowerUps.Milestones) == 0 {
		errs = append(errs, errors.New("powerups.milestones must not be empty"))
	}
	for i := 1; i < len(c.PowerUps.Milestones); i++ {
		if c.PowerUps.Milestones[i] < c.PowerUps.Milestones[i-1] {
			errs = append(errs, errors.New("powerups.milestones must be ascending"))
			break
		}
	}
	if c.PowerUps.Interval <= 0 {
		errs = append(errs, errors.New("powerups.interval must be positive"))
	}
	if c.Sprites.AlphaThreshold < 0 || c.Sprites.AlphaThreshold > 255 {
		errs = append(errs, errors.New("sprites.alpha_threshold must be within 0..255"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid runner config: %w", err)
	}
	return nil
}
