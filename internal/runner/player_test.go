package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

const eps = 1e-9

func newTestPlayer() *Player {
	p := NewPlayer(config.DefaultRunnerConfig().Player)
	p.Layout(480)
	return p
}

func TestPlayerJumpArc(t *testing.T) {
	p := newTestPlayer()
	resting := p.RestingY

	if !p.Jump() {
		t.Fatal("grounded player should jump")
	}
	if p.DY != -12 {
		t.Fatalf("DY after jump = %v, expected -12", p.DY)
	}

	expectedDY := -12.0
	for frame := 1; frame < 100; frame++ {
		p.Update(0)
		if !p.Jumping {
			if p.Y != resting {
				t.Errorf("landed at y = %v, expected resting %v", p.Y, resting)
			}
			if p.DY != 0 {
				t.Errorf("DY after landing = %v, expected 0", p.DY)
			}
			return
		}
		expectedDY += 0.7
		if math.Abs(p.DY-expectedDY) > eps {
			t.Fatalf("frame %d: DY = %v, expected %v", frame, p.DY, expectedDY)
		}
		if p.Y >= resting && p.DY > 0 {
			t.Fatalf("frame %d: below resting line but still jumping", frame)
		}
	}
	t.Fatal("player never landed")
}

func TestPlayerNoDoubleJump(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Update(0)
	dy := p.DY

	if p.Jump() {
		t.Error("airborne player should not jump again")
	}
	if p.DY != dy {
		t.Errorf("DY changed by rejected jump: %v -> %v", dy, p.DY)
	}
}

func TestPlayerLayout(t *testing.T) {
	p := newTestPlayer()
	if p.RestingY != 240-24 {
		t.Errorf("RestingY = %v, expected 216", p.RestingY)
	}
	if p.Y != p.RestingY {
		t.Error("grounded player should snap to resting line")
	}

	p.Jump()
	p.Update(0)
	y := p.Y
	p.Layout(600)
	if p.Y != y {
		t.Error("airborne player should keep its position on relayout")
	}
}

func TestPlayerSpriteScaling(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig().Player)
	s, err := sprite.BuiltinSprite(sprite.NamePlayer, sprite.DefaultAlphaThreshold)
	if err != nil {
		t.Fatal(err)
	}

	p.SetSprite(s)
	if p.Height != 48 || p.Width != 60 {
		t.Errorf("player size = %vx%v, expected 60x48", p.Width, p.Height)
	}

	p.SetSprite(sprite.Failed(sprite.NamePlayer))
	if p.Width != 48 || p.Height != 48 {
		t.Errorf("failed sprite size = %vx%v, expected 48x48 fallback", p.Width, p.Height)
	}
}

func TestPlayerBlink(t *testing.T) {
	p := newTestPlayer()
	p.Invincible = true

	var pattern []bool
	for i := 0; i < 10; i++ {
		p.Blink = i
		pattern = append(pattern, p.Visible())
	}
	for i, v := range pattern {
		if v != (i < 5) {
			t.Errorf("blink %d: Visible = %v", i, v)
		}
	}

	p.Invincible = false
	p.Blink = 7
	if !p.Visible() {
		t.Error("player should always be visible when not invincible")
	}
}
