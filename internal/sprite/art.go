package sprite

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// Names of the sprites the runner uses.
const (
	NamePlayer   = "palopsee"
	NameAsteroid = "asteroid"
	NameAlien    = "alienShip"
	NamePowerUp  = "powerUp"
)

// Art is a sprite drawn as text: one rune per pixel, looked up in a palette.
// Runes missing from the palette are transparent.
type Art struct {
	Rows    []string
	Palette map[rune]color.NRGBA
}

var basePalette = map[rune]color.NRGBA{
	'K': {R: 0x22, G: 0x22, B: 0x22, A: 0xff},
	'W': {R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
	'P': {R: 0xf4, G: 0x8f, B: 0xb1, A: 0xff},
	'G': {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	'g': {R: 0x5a, G: 0x5a, B: 0x5a, A: 0xff},
	'B': {R: 0x8d, G: 0x6e, B: 0x63, A: 0xff},
	'C': {R: 0x4d, G: 0xd0, B: 0xe1, A: 0xff},
	'E': {R: 0x66, G: 0xbb, B: 0x6a, A: 0xff},
	'Y': {R: 0xff, G: 0xd5, B: 0x4f, A: 0xff},
	'O': {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	// half-transparent glow: below the solidity threshold
	'~': {R: 0xff, G: 0xff, B: 0xff, A: 0x60},
}

// Builtin is the art shipped with the binary, used when no image files exist.
var Builtin = map[string]Art{
	NamePlayer: {Palette: basePalette, Rows: []string{
		"......KKKKKK........",
		"....KKWWWWWWKK......",
		"...KWWWWWWWWWWK.....",
		"..KWWKKWWWWKKWWK....",
		"..KWWKKWWWWKKWWK....",
		"..KWWWWWWWWWWWWK....",
		"..KWPPWWWWWWPPWK....",
		"..KWWWWKKKKWWWWKK...",
		"...KWWWWWWWWWWKWWK..",
		"...KWWWWWWWWWWKWWWK.",
		"..KWWWWWWWWWWWWKWWK.",
		"..KWWWWWWWWWWWWKKK..",
		"...KWWWWWWWWWWK.....",
		"....KKWWKKWWKK......",
		".....KWWK.KWWK......",
		"......KK...KK.......",
	}},
	NameAsteroid: {Palette: basePalette, Rows: []string{
		"~~~~..gggggg....",
		"~~..ggGGGGGGgg..",
		"...gGGGBBGGGGGg.",
		"..gGGBBggBGGGGg.",
		".gGGGBggBGGGGGGg",
		".gGGGGBBGGGGBGGg",
		"gGGGGGGGGGGBgBGg",
		"gGGBBGGGGGGGBGGg",
		"gGBggBGGGGGGGGGg",
		"gGGBBGGGGGBBGGGg",
		".gGGGGGGGBggBGg.",
		".gGGGGGGGGBBGGg.",
		"..gGGGGGGGGGGg..",
		"...ggGGGGGGgg...",
		".....gggggg.....",
	}},
	NameAlien: {Palette: basePalette, Rows: []string{
		"..........CCCC..........",
		"........CCWWWWCC........",
		".......CWWWWWWWWC.......",
		".......CWWEEEEWWC.......",
		"......CCEEKEEKEECC......",
		"...GGGGGGGGGGGGGGGGGG...",
		".GGGgGGGgGGGgGGGgGGGgGG.",
		"GGYGGGYGGGYGGGYGGGYGGGYG",
		".gggggggggggggggggggggg.",
		"...gggggggggggggggggg...",
		".....OO....OO....OO.....",
		"......~.....~.....~.....",
	}},
	NamePowerUp: {Palette: basePalette, Rows: []string{
		".......Y.......",
		"......YYY......",
		"......YYY......",
		".....YYOYY.....",
		"YYYYYYYOYYYYYYY",
		".YYYYOOOOOYYYY.",
		"..YYYYOOOYYYY..",
		"...YYYYOYYYY...",
		"...YYYYYYYYY...",
		"..YYYYY.YYYYY..",
		"..YYYY...YYYY..",
		".YYY.......YYY.",
		".YY.........YY.",
	}},
}

// Rasterize converts art into an image. Rows shorter than the widest
// row are padded with transparent pixels.
func (a Art) Rasterize() *image.NRGBA {
	w := 0
	for _, row := range a.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, len(a.Rows)))
	for y, row := range a.Rows {
		x := 0
		for _, r := range row {
			if c, ok := a.Palette[r]; ok {
				img.SetNRGBA(x, y, c)
			}
			x++
		}
	}
	return img
}

// BuiltinSprite rasterizes the named built-in art into a ready sprite.
func BuiltinSprite(name string, threshold uint8) (*Sprite, error) {
	art, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("sprite: no built-in art named %q", name)
	}
	return New(name, art.Rasterize(), threshold), nil
}

// BuiltinNames returns the built-in sprite names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(Builtin))
	for name := range Builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
