package runner

import (
	"math/rand"

	"github.com/vovakirdan/palopsee/internal/config"
)

// Spawner decides when obstacles and power-ups enter from the right edge.
//
// Obstacles are gated by distance from the last one and then rolled per
// frame. Power-ups follow a score-indexed pattern: the next trigger is
// Milestones[index] + base, and base grows by Interval each time the
// pattern wraps.
type Spawner struct {
	obstacles config.ObstacleConfig
	powerUps  config.PowerUpConfig
	rng       *rand.Rand

	patternBase  int
	patternIndex int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(obstacles config.ObstacleConfig, powerUps config.PowerUpConfig, rng *rand.Rand) *Spawner {
	return &Spawner{obstacles: obstacles, powerUps: powerUps, rng: rng}
}

// Reset rewinds the power-up pattern.
func (s *Spawner) Reset() {
	s.patternBase = 0
	s.patternIndex = 0
}

// Cursor returns the pattern position (base, index).
func (s *Spawner) Cursor() (base, index int) {
	return s.patternBase, s.patternIndex
}

// GapClear reports whether a new obstacle may be attempted. lastX is the
// left edge of the most recent obstacle; hasLast is false when none exist.
func (s *Spawner) GapClear(hasLast bool, lastX, viewW, currentSpeed float64) bool {
	if !hasLast {
		return true
	}
	minGap := viewW*s.obstacles.MinGapFraction + currentSpeed*s.obstacles.MinGapSpeed
	jitter := s.rng.Float64() * viewW * s.obstacles.GapJitterFraction
	return lastX < viewW-minGap-jitter
}

// SpawnChance is the per-frame obstacle probability at a base speed.
func (s *Spawner) SpawnChance(baseSpeed float64) float64 {
	return s.obstacles.SpawnBaseChance + baseSpeed*s.obstacles.SpawnSpeedFactor
}

// RollObstacle draws the per-frame spawn decision.
func (s *Spawner) RollObstacle(baseSpeed float64) bool {
	return s.rng.Float64() < s.SpawnChance(baseSpeed)
}

// ChooseKind draws the obstacle variant.
func (s *Spawner) ChooseKind() ObstacleKind {
	if s.rng.Float64() < s.obstacles.AsteroidChance {
		return Asteroid
	}
	return AlienShip
}

// Float64 exposes the spawner's random source for placement.
func (s *Spawner) Float64() float64 {
	return s.rng.Float64()
}

// NextPowerUpScore returns the score at which the next power-up is due.
func (s *Spawner) NextPowerUpScore() int {
	return s.powerUps.Milestones[s.patternIndex] + s.patternBase
}

// PowerUpDue reports whether a power-up should spawn now. Only one
// power-up may be on screen at a time.
func (s *Spawner) PowerUpDue(score int, active bool) bool {
	return !active && score >= s.NextPowerUpScore()
}

// Advance moves the pattern to the next trigger, wrapping into the next interval.
func (s *Spawner) Advance() {
	s.patternIndex++
	if s.patternIndex >= len(s.powerUps.Milestones) {
		s.patternIndex = 0
		s.patternBase += s.powerUps.Interval
	}
}

// PowerUpJitter draws a vertical offset in [-Jitter, Jitter).
func (s *Spawner) PowerUpJitter() float64 {
	return (s.rng.Float64()*2 - 1) * s.powerUps.Jitter
}
