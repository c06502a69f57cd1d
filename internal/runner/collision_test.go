package runner

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

// dotSprite is a w x h sprite with a single solid pixel at (px, py).
func dotSprite(w, h, px, py int) *sprite.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(px, py, color.NRGBA{A: 255})
	return sprite.New("dot", img, sprite.DefaultAlphaThreshold)
}

func solidSprite(w, h int) *sprite.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return sprite.New("solid", img, sprite.DefaultAlphaThreshold)
}

func TestPixelCollisionDisjointBoxes(t *testing.T) {
	solid := solidSprite(4, 4)
	a := core.NewRectF(0, 0, 10, 10)

	disjoint := []core.RectF{
		core.NewRectF(20, 0, 10, 10),
		core.NewRectF(0, 20, 10, 10),
		core.NewRectF(10, 0, 10, 10), // touching edge
		core.NewRectF(-50, -50, 5, 5),
	}

	for _, b := range disjoint {
		if PixelCollision(a, solid, b, solid) {
			t.Errorf("masks: %+v vs %+v should not collide", a, b)
		}
		if PixelCollision(a, nil, b, nil) {
			t.Errorf("boxes: %+v vs %+v should not collide", a, b)
		}
	}
}

func TestPixelCollisionSolidOverlap(t *testing.T) {
	solid := solidSprite(4, 4)
	if !PixelCollision(core.NewRectF(0, 0, 10, 10), solid, core.NewRectF(5, 5, 10, 10), solid) {
		t.Error("overlapping solid sprites should collide")
	}
}

func TestPixelCollisionTransparentOverlap(t *testing.T) {
	// Solid pixels in opposite corners: boxes overlap, masks do not.
	a := dotSprite(4, 4, 0, 0)
	b := dotSprite(4, 4, 3, 3)
	boxA := core.NewRectF(0, 0, 40, 40)
	boxB := core.NewRectF(0, 0, 40, 40)

	if !BoxOverlap(boxA, boxB) {
		t.Fatal("boxes should overlap")
	}
	if PixelCollision(boxA, a, boxB, b) {
		t.Error("disjoint solid pixels should not collide")
	}
}

func TestPixelCollisionScaledMapping(t *testing.T) {
	// 2x2 sprite with only the bottom-right pixel solid, drawn at 20x20:
	// solid region covers world [10,20) x [10,20).
	a := dotSprite(2, 2, 1, 1)
	box := core.NewRectF(0, 0, 20, 20)
	probe := solidSprite(1, 1)

	tests := []struct {
		name     string
		other    core.RectF
		expected bool
	}{
		{"top-left quadrant", core.NewRectF(0, 0, 9, 9), false},
		{"bottom-right quadrant", core.NewRectF(12, 12, 4, 4), true},
		{"straddling center", core.NewRectF(8, 8, 4, 4), true},
		{"right column above", core.NewRectF(12, 0, 6, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelCollision(box, a, tt.other, probe); got != tt.expected {
				t.Errorf("PixelCollision = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPixelCollisionFallsBackToBoxes(t *testing.T) {
	// A failed sprite has no mask: any box overlap counts, even over
	// transparent pixels of the other sprite.
	empty := dotSprite(4, 4, 0, 0)
	failed := sprite.Failed("broken")

	a := core.NewRectF(0, 0, 40, 40)
	b := core.NewRectF(30, 30, 40, 40)
	if !PixelCollision(a, failed, b, empty) {
		t.Error("missing mask should fall back to box overlap")
	}
	if PixelCollision(a, empty, b, empty) {
		t.Error("with both masks, transparent overlap should not collide")
	}
}

func TestTouchesUsesBoxes(t *testing.T) {
	p := newTestPlayer()
	u := NewPowerUp(core.NewRectF(p.X+p.Width-1, p.Y, 32, 32), dotSprite(4, 4, 3, 3))
	if !Touches(p, u) {
		t.Error("power-up pickup should use bounding boxes")
	}
	u = NewPowerUp(core.NewRectF(p.X+p.Width, p.Y, 32, 32), nil)
	if Touches(p, u) {
		t.Error("touching edges should not count")
	}
}
