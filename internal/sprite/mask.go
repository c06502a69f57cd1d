// Package sprite holds decoded sprite images and their opacity masks.
//
// A Mask marks which pixels of a sprite are visually solid. Masks are built
// once per sprite and shared read-only by every entity drawing that sprite.
package sprite

import (
	"image"
	"image/color"
	"strings"
)

// DefaultAlphaThreshold is the alpha value a pixel must exceed to count as solid.
const DefaultAlphaThreshold uint8 = 128

// Mask is a per-pixel solidity grid. The zero value is an empty 0x0 mask.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// BuildMask converts an image into a mask. Pixel (x, y) is solid iff its
// non-premultiplied alpha exceeds threshold.
func BuildMask(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := &Mask{
		width:  b.Dx(),
		height: b.Dy(),
		bits:   make([]bool, b.Dx()*b.Dy()),
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				a := nrgba.Pix[nrgba.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
				m.bits[y*m.width+x] = a > threshold
			}
		}
		return m
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			m.bits[y*m.width+x] = c.A > threshold
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Solid reports whether pixel (x, y) is solid. Out-of-range pixels are not.
func (m *Mask) Solid(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// String renders the mask with '#' for solid and '.' for empty pixels.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.bits[y*m.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
