package runner

import (
	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

// blinkPeriod is the invincibility blink cycle in frames; the player is
// hidden for the second half of each cycle.
const blinkPeriod = 10

// Player is the avatar. Its x lane is fixed; only y moves.
type Player struct {
	X, Y          float64
	Width, Height float64
	DY            float64
	JumpStrength  float64
	Gravity       float64
	Jumping       bool
	RestingY      float64
	Invincible    bool
	Blink         int // frames spent invincible, drives the blink effect

	scaleHeight float64
	sprite      *sprite.Sprite
}

// NewPlayer creates a player with square fallback dimensions.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		X:            cfg.X,
		Width:        cfg.ScaleHeight,
		Height:       cfg.ScaleHeight,
		JumpStrength: cfg.JumpStrength,
		Gravity:      cfg.Gravity,
		scaleHeight:  cfg.ScaleHeight,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Sprite returns the sprite the player is drawn and collided with.
func (p *Player) Sprite() *sprite.Sprite { return p.sprite }

// SetSprite adopts a sprite and rescales the player to its aspect ratio.
func (p *Player) SetSprite(s *sprite.Sprite) {
	p.sprite = s
	p.Width, p.Height = s.ScaledSize(p.scaleHeight)
}

// Layout recomputes the resting line for a viewport height.
// A grounded player snaps to the new line.
func (p *Player) Layout(viewH float64) {
	p.RestingY = viewH/2 - p.Height/2
	if !p.Jumping {
		p.Y = p.RestingY
	}
}

// Jump starts a jump when grounded and reports whether it did.
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.DY = -p.JumpStrength
	return true
}

// Update integrates one frame of vertical motion. Speed is unused: the
// player holds its lane while the world scrolls.
func (p *Player) Update(float64) {
	if p.Jumping {
		p.Y += p.DY
		p.DY += p.Gravity
	}
	if p.Y >= p.RestingY && p.DY > 0 {
		p.Y = p.RestingY
		p.Jumping = false
		p.DY = 0
	}
}

// ResetMotion puts the player back on the resting line, at rest.
func (p *Player) ResetMotion() {
	p.DY = 0
	p.Jumping = false
	p.Y = p.RestingY
	p.Blink = 0
}

// Visible reports whether the blink effect currently shows the player.
func (p *Player) Visible() bool {
	return !p.Invincible || p.Blink%blinkPeriod < blinkPeriod/2
}

func (p *Player) Draw(c core.Canvas) {
	if !p.Visible() || !p.sprite.Usable() {
		return
	}
	col := core.ColorWhite
	if p.Invincible {
		col = core.ColorBrightCyan
	}
	c.DrawSprite(p.sprite, p.Bounds(), col)
}
