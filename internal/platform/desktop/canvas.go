// Package desktop runs games in an ebiten window. World pixels map one to
// one onto window pixels.
package desktop

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

// Debug font glyph size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

// palette maps core colors to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 230, G: 230, B: 230, A: 255},
	core.ColorRed:          {R: 220, G: 60, B: 60, A: 255},
	core.ColorGreen:        {R: 80, G: 200, B: 90, A: 255},
	core.ColorYellow:       {R: 220, G: 200, B: 60, A: 255},
	core.ColorBlue:         {R: 70, G: 110, B: 230, A: 255},
	core.ColorMagenta:      {R: 210, G: 80, B: 210, A: 255},
	core.ColorCyan:         {R: 70, G: 200, B: 210, A: 255},
	core.ColorWhite:        {R: 240, G: 240, B: 240, A: 255},
	core.ColorBrightYellow: {R: 255, G: 240, B: 90, A: 255},
	core.ColorBrightCyan:   {R: 120, G: 255, B: 255, A: 255},
	core.ColorOrange:       {R: 255, G: 150, B: 40, A: 255},
	core.ColorGray:         {R: 150, G: 150, B: 160, A: 255},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if rgb, ok := palette[c]; ok {
		return rgb
	}
	return palette[core.ColorDefault]
}

// Canvas implements core.Canvas on top of an ebiten image.
type Canvas struct {
	dst     *ebiten.Image
	images  map[*sprite.Sprite]*ebiten.Image
	scratch *ebiten.Image
}

var _ core.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas with an empty sprite cache.
func NewCanvas() *Canvas {
	return &Canvas{images: make(map[*sprite.Sprite]*ebiten.Image)}
}

// Target points the canvas at the frame being drawn.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
	w := dst.Bounds().Dx()
	if c.scratch == nil || c.scratch.Bounds().Dx() < w {
		c.scratch = ebiten.NewImage(max(w, glyphW), glyphH)
	}
}

func (c *Canvas) Bounds() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) CharSize() (float64, float64) {
	return glyphW, glyphH
}

// DrawSprite scales the sprite into r. Sprites without pixels are drawn as
// a filled box in col; pending sprites are skipped.
func (c *Canvas) DrawSprite(s *sprite.Sprite, r core.RectF, col core.Color) {
	if !s.Usable() {
		return
	}
	if s.Image == nil {
		c.FillRect(r, col)
		return
	}

	img := c.imageFor(s)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(img, op)
}

func (c *Canvas) imageFor(s *sprite.Sprite) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Image)
	c.images[s] = img
	return img
}

func (c *Canvas) FillRect(r core.RectF, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(col), false)
}

func (c *Canvas) StrokeRect(r core.RectF, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, RGBA(col), false)
}

// FillText prints with the debug font, tinted by drawing through a
// scratch image.
func (c *Canvas) FillText(x, y float64, text string, align core.Align, col core.Color) {
	x = alignX(x, text, align)

	c.scratch.Clear()
	ebitenutil.DebugPrintAt(c.scratch, text, 0, 0)

	w := min(utf8.RuneCountInString(text)*glyphW, c.scratch.Bounds().Dx())
	if w <= 0 {
		return
	}
	src := c.scratch.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(RGBA(col))
	c.dst.DrawImage(src, op)
}

// alignX shifts x so text is anchored per align.
func alignX(x float64, text string, align core.Align) float64 {
	n := float64(utf8.RuneCountInString(text) * glyphW)
	switch align {
	case core.AlignCenter:
		return x - n/2
	case core.AlignRight:
		return x - n
	default:
		return x
	}
}
