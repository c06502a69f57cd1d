package runner

import (
	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

// Kind tags the entity variants of the simulation.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Entity is anything that lives in world space, updates once per frame and draws itself.
type Entity interface {
	Kind() Kind
	Bounds() core.RectF
	Update(speed float64)
	Draw(c core.Canvas)
}

// ObstacleKind selects the obstacle variant.
type ObstacleKind int

const (
	Asteroid ObstacleKind = iota
	AlienShip
)

func (k ObstacleKind) String() string {
	if k == AlienShip {
		return "alien ship"
	}
	return "asteroid"
}

// SpriteName returns the sprite the variant is drawn with.
func (k ObstacleKind) SpriteName() string {
	if k == AlienShip {
		return sprite.NameAlien
	}
	return sprite.NameAsteroid
}

// body is the scrolling part shared by obstacles and power-ups.
type body struct {
	box    core.RectF
	sprite *sprite.Sprite
}

func (b *body) Bounds() core.RectF { return b.box }

// Sprite returns the shared read-only sprite.
func (b *body) Sprite() *sprite.Sprite { return b.sprite }

// Update scrolls the body left. Scrolling entities ignore gravity.
func (b *body) Update(speed float64) {
	b.box.X -= speed
}

// OffScreen reports whether the body has fully left the left edge.
func (b *body) OffScreen() bool {
	return b.box.Right() < 0
}

// Obstacle is a hazard: touching it ends the run unless the player is invincible.
type Obstacle struct {
	body
	Variant ObstacleKind
}

// NewObstacle creates an obstacle at the given box.
func NewObstacle(variant ObstacleKind, box core.RectF, s *sprite.Sprite) *Obstacle {
	return &Obstacle{body: body{box: box, sprite: s}, Variant: variant}
}

func (o *Obstacle) Kind() Kind { return KindObstacle }

func (o *Obstacle) Draw(c core.Canvas) {
	col := core.ColorGray
	if o.Variant == AlienShip {
		col = core.ColorGreen
	}
	c.DrawSprite(o.sprite, o.box, col)
}

// PowerUp grants temporary invincibility when collected.
type PowerUp struct {
	body
}

// NewPowerUp creates a power-up at the given box.
func NewPowerUp(box core.RectF, s *sprite.Sprite) *PowerUp {
	return &PowerUp{body: body{box: box, sprite: s}}
}

func (p *PowerUp) Kind() Kind { return KindPowerUp }

func (p *PowerUp) Draw(c core.Canvas) {
	c.DrawSprite(p.sprite, p.box, core.ColorBrightYellow)
}
