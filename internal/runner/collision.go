package runner

import (
	"math"

	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

// BoxOverlap reports axis-aligned overlap with positive area.
func BoxOverlap(a, b core.RectF) bool {
	return a.Intersects(b)
}

// PixelCollision tests two sprites drawn at boxes a and b.
//
// Every integer pixel of the overlapping region is mapped into both sprites'
// natural coordinates by linear scaling; the first pixel solid in both
// masks is a hit. Without both masks it falls back to BoxOverlap.
func PixelCollision(a core.RectF, as *sprite.Sprite, b core.RectF, bs *sprite.Sprite) bool {
	if !as.HasMask() || !bs.HasMask() {
		return BoxOverlap(a, b)
	}

	overlap, ok := a.Intersection(b)
	if !ok {
		return false
	}

	for y := math.Ceil(overlap.Y); y < overlap.Bottom(); y++ {
		ay := localCoord(y, a.Y, a.H, as.Height)
		by := localCoord(y, b.Y, b.H, bs.Height)
		for x := math.Ceil(overlap.X); x < overlap.Right(); x++ {
			if as.Solid(localCoord(x, a.X, a.W, as.Width), ay) &&
				bs.Solid(localCoord(x, b.X, b.W, bs.Width), by) {
				return true
			}
		}
	}
	return false
}

// localCoord maps a world coordinate into a sprite's natural pixel grid.
func localCoord(world, origin, extent float64, natural int) int {
	return int(math.Floor((world - origin) / extent * float64(natural)))
}

// Collides tests the player against an obstacle with pixel precision.
func Collides(p *Player, o *Obstacle) bool {
	return PixelCollision(p.Bounds(), p.Sprite(), o.Bounds(), o.Sprite())
}

// Touches tests the player against a power-up by bounding box.
func Touches(p *Player, u *PowerUp) bool {
	return BoxOverlap(p.Bounds(), u.Bounds())
}
