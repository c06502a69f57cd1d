package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerYAML returns the embedded default configuration file.
func DefaultRunnerYAML() []byte {
	return defaultRunnerYAML
}

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Player: PlayerConfig{
			X:            50,
			ScaleHeight:  48,
			JumpStrength: 12,
			Gravity:      0.7,
		},
		Speed: SpeedConfig{
			Initial:        6,
			Max:            13,
			Creep:          0.001,
			MilestoneBonus: 0.5,
			MilestoneEvery: 100,
		},
		Obstacles: ObstacleConfig{
			AsteroidChance:    0.6,
			AsteroidHeight:    38,
			AlienHeight:       52,
			AlienClearance:    20,
			AlienMinY:         10,
			SpawnBaseChance:   0.015,
			SpawnSpeedFactor:  0.0005,
			MinGapFraction:    0.4,
			MinGapSpeed:       10,
			GapJitterFraction: 0.3,
		},
		PowerUps: PowerUpConfig{
			ScaleHeight:     32,
			Milestones:      []int{10, 30, 60, 90, 100},
			Interval:        100,
			Jitter:          12,
			InvincibilityMS: 5000,
		},
		Scoring: ScoringConfig{
			SoundEvery:      10,
			LeaderboardSize: 10,
		},
		Sprites: SpriteConfig{
			AlphaThreshold: 128,
		},
		Remote: RemoteConfig{
			PlayerName: "Anonymous",
			TimeoutMS:  8000,
		},
		Messages: MessageConfig{
			ReadyMS:       2000,
			CheatMS:       3000,
			LeaderboardMS: 3000,
			ErrorMS:       4000,
		},
	}
}
