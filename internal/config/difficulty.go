package config

import "math"

// SpeedModel computes the scroll speed from the creeping base speed and score.
//
//	current = min(max, base + floor(score/every) * bonus)
type SpeedModel struct {
	cfg SpeedConfig
}

// NewSpeedModel creates a speed model.
func NewSpeedModel(cfg SpeedConfig) *SpeedModel {
	if cfg.MilestoneEvery <= 0 {
		cfg.MilestoneEvery = 100
	}
	return &SpeedModel{cfg: cfg}
}

// Initial returns the base speed a new run starts with.
func (m *SpeedModel) Initial() float64 {
	return m.cfg.Initial
}

// Max returns the speed cap.
func (m *SpeedModel) Max() float64 {
	return m.cfg.Max
}

// IsProgressive reports whether speed changes during a run.
func (m *SpeedModel) IsProgressive() bool {
	return m.cfg.Creep > 0 || m.cfg.MilestoneBonus > 0
}

// Current returns the effective speed for a base speed and score.
func (m *SpeedModel) Current(base float64, score int) float64 {
	milestones := math.Floor(float64(score) / float64(m.cfg.MilestoneEvery))
	return math.Min(m.cfg.Max, base+milestones*m.cfg.MilestoneBonus)
}

// Creep returns the base speed after one more running frame.
func (m *SpeedModel) Creep(base float64) float64 {
	return math.Min(m.cfg.Max, base+m.cfg.Creep)
}
