package core

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/palopsee/internal/sprite"
)

// Align controls horizontal text placement.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is an abstract 2D drawing surface in world pixels.
// Games issue draw commands against it; frontends decide how they look.
type Canvas interface {
	// Bounds returns the surface size in world pixels.
	Bounds() (w, h float64)
	// CharSize returns the size of one text character in world pixels.
	CharSize() (w, h float64)
	DrawSprite(s *sprite.Sprite, r RectF, c Color)
	// FillRect paints a solid panel behind overlays.
	FillRect(r RectF, c Color)
	StrokeRect(r RectF, c Color)
	FillText(x, y float64, text string, align Align, c Color)
}

// Half-block glyphs used when a cell is only partly covered.
const (
	glyphFull  = '█'
	glyphUpper = '▀'
	glyphLower = '▄'
)

// ScreenCanvas draws world-pixel commands onto a cell Screen.
// Each cell covers CellW x CellH world pixels.
type ScreenCanvas struct {
	Screen *Screen
	CellW  float64
	CellH  float64
}

// NewScreenCanvas wraps a screen. Non-positive cell sizes default to 1.
func NewScreenCanvas(s *Screen, cellW, cellH int) *ScreenCanvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &ScreenCanvas{Screen: s, CellW: float64(cellW), CellH: float64(cellH)}
}

func (c *ScreenCanvas) Bounds() (float64, float64) {
	return float64(c.Screen.Width()) * c.CellW, float64(c.Screen.Height()) * c.CellH
}

func (c *ScreenCanvas) CharSize() (float64, float64) {
	return c.CellW, c.CellH
}

// cellSpan returns the cells touched by r, clipped to the screen.
func (c *ScreenCanvas) cellSpan(r RectF) (x0, y0, x1, y1 int) {
	x0 = Max(0, int(math.Floor(r.X/c.CellW)))
	y0 = Max(0, int(math.Floor(r.Y/c.CellH)))
	x1 = Min(c.Screen.Width(), int(math.Ceil(r.Right()/c.CellW)))
	y1 = Min(c.Screen.Height(), int(math.Ceil(r.Bottom()/c.CellH)))
	return x0, y0, x1, y1
}

// DrawSprite samples the sprite's opacity mask at two points per cell
// (upper and lower half) so shapes keep some vertical detail.
// A sprite without a mask, or a nil sprite, is drawn as a solid block;
// a pending sprite is not drawn.
func (c *ScreenCanvas) DrawSprite(s *sprite.Sprite, r RectF, col Color) {
	if r.W <= 0 || r.H <= 0 || (s != nil && s.State == sprite.StatePending) {
		return
	}
	x0, y0, x1, y1 := c.cellSpan(r)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) * c.CellW
			upper := c.covered(s, r, px, (float64(cy)+0.25)*c.CellH)
			lower := c.covered(s, r, px, (float64(cy)+0.75)*c.CellH)
			switch {
			case upper && lower:
				c.Screen.SetCell(cx, cy, glyphFull, col)
			case upper:
				c.Screen.SetCell(cx, cy, glyphUpper, col)
			case lower:
				c.Screen.SetCell(cx, cy, glyphLower, col)
			}
		}
	}
}

func (c *ScreenCanvas) covered(s *sprite.Sprite, r RectF, px, py float64) bool {
	if px < r.X || px >= r.Right() || py < r.Y || py >= r.Bottom() {
		return false
	}
	if s == nil || !s.HasMask() {
		return true
	}
	lx := int(math.Floor((px - r.X) / r.W * float64(s.Width)))
	ly := int(math.Floor((py - r.Y) / r.H * float64(s.Height)))
	return s.Solid(lx, ly)
}

// FillRect clears the covered cells; terminals have no translucent fill.
func (c *ScreenCanvas) FillRect(r RectF, col Color) {
	x0, y0, x1, y1 := c.cellSpan(r)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.Screen.SetCell(cx, cy, ' ', col)
		}
	}
}

func (c *ScreenCanvas) StrokeRect(r RectF, col Color) {
	x0, y0, x1, y1 := c.cellSpan(r)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	c.Screen.DrawBox(NewRect(x0, y0, x1-x0, y1-y0), col)
}

func (c *ScreenCanvas) FillText(x, y float64, text string, align Align, col Color) {
	cx := int(x / c.CellW)
	cy := int(y / c.CellH)
	switch align {
	case AlignCenter:
		cx -= utf8.RuneCountInString(text) / 2
	case AlignRight:
		cx -= utf8.RuneCountInString(text)
	}
	c.Screen.DrawText(cx, cy, text, col)
}
