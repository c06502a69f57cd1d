package sprite

import (
	"image"
)

// State describes how far a sprite got through loading.
type State int

const (
	StatePending State = iota // not decoded yet
	StateReady                // decoded, mask built
	StateFailed               // decode failed, no image or mask
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sprite is an immutable decoded image with its natural size and mask.
// Never mutate a Sprite after it has been published.
type Sprite struct {
	Name   string
	Width  int // natural width in pixels
	Height int // natural height in pixels
	State  State
	Image  image.Image
	Mask   *Mask
}

// New wraps an already decoded image and builds its mask.
func New(name string, img image.Image, threshold uint8) *Sprite {
	b := img.Bounds()
	return &Sprite{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		State:  StateReady,
		Image:  img,
		Mask:   BuildMask(img, threshold),
	}
}

// Pending returns a placeholder for a sprite that is still loading.
func Pending(name string) *Sprite {
	return &Sprite{Name: name, State: StatePending}
}

// Failed returns a placeholder for a sprite that could not be decoded.
func Failed(name string) *Sprite {
	return &Sprite{Name: name, State: StateFailed}
}

// Usable reports whether entities may be spawned with this sprite.
// Pending sprites are not usable yet; failed ones are, with box collisions.
func (s *Sprite) Usable() bool {
	return s != nil && s.State != StatePending
}

// HasMask reports whether pixel-accurate collision is possible.
func (s *Sprite) HasMask() bool {
	return s != nil && s.State == StateReady && s.Mask != nil
}

// Solid reports whether the natural-size pixel (x, y) is solid.
func (s *Sprite) Solid(x, y int) bool {
	if !s.HasMask() {
		return false
	}
	return s.Mask.Solid(x, y)
}

// ScaledSize returns the on-screen size for a target height, keeping the
// aspect ratio. Without natural dimensions it falls back to a square.
func (s *Sprite) ScaledSize(targetH float64) (w, h float64) {
	if s == nil || s.Height == 0 || s.Width == 0 {
		return targetH, targetH
	}
	return targetH * float64(s.Width) / float64(s.Height), targetH
}
