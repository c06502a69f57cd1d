package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/palopsee/internal/core"
)

const starCount = 48

// star is a background dot in normalized viewport coordinates.
type star struct {
	x, y  float64
	depth float64 // parallax factor in (0, 1]
}

func newStarField(seed int64) []star {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{x: rng.Float64(), y: rng.Float64(), depth: 0.3 + rng.Float64()*0.7}
	}
	return stars
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewScreenCanvas(dst, g.cellW, g.cellH))
}

// Draw issues the frame's draw commands against a canvas.
func (g *Game) Draw(c core.Canvas) {
	w, h := c.Bounds()
	g.drawStars(c, w, h)

	for _, e := range g.entities() {
		e.Draw(c)
	}

	g.drawHUD(c, w)

	switch {
	case g.phase == PhaseOver:
		g.drawGameOver(c, w, h)
	case g.paused:
		drawPanel(c, w, h, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Press P to resume", core.ColorWhite},
		})
	case g.phase == PhaseReady:
		g.drawStartPrompt(c, w, h)
	}

	if msg := g.message.Text(); msg != "" {
		_, lh := c.CharSize()
		c.FillText(w/2, lh*3, msg, core.AlignCenter, core.ColorBrightYellow)
	}
}

func (g *Game) drawStars(c core.Canvas, w, h float64) {
	if w <= 0 {
		return
	}
	for _, s := range g.stars {
		x := math.Mod(s.x*w+g.scroll*s.depth, w)
		if x < 0 {
			x += w
		}
		glyph, col := ".", core.ColorGray
		if s.depth > 0.85 {
			glyph, col = "*", core.ColorWhite
		}
		c.FillText(x, s.y*h, glyph, core.AlignLeft, col)
	}
}

func (g *Game) drawHUD(c core.Canvas, w float64) {
	cw, lh := c.CharSize()
	c.FillText(cw, 0, fmt.Sprintf("Score: %d", g.score), core.AlignLeft, core.ColorWhite)
	c.FillText(cw, lh, fmt.Sprintf("Local High Score: %d", g.highScore), core.AlignLeft, core.ColorGray)
	c.FillText(w-cw, 0, fmt.Sprintf("Speed: %.1f", g.CurrentSpeed()), core.AlignRight, core.ColorCyan)
	if g.cheat {
		c.FillText(w-cw, lh, "CHEAT", core.AlignRight, core.ColorMagenta)
	}
}

func (g *Game) drawStartPrompt(c core.Canvas, w, h float64) {
	_, lh := c.CharSize()
	text := "Press Space/Up to Start!"
	if !g.assetsReady {
		text = "Loading sprites..."
	}
	c.FillText(w/2, h-lh*3, text, core.AlignCenter, core.ColorWhite)
}

func (g *Game) drawGameOver(c core.Canvas, w, h float64) {
	lines := []panelLine{
		{"Game Over!", core.ColorRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", g.score), core.ColorWhite},
		{fmt.Sprintf("High Score: %d", g.highScore), core.ColorWhite},
	}
	if g.flavor != "" {
		lines = append(lines, panelLine{"", core.ColorDefault}, panelLine{g.flavor, core.ColorCyan})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Press Space/Up to Restart", core.ColorGray},
	)
	drawPanel(c, w, h, lines)
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed, centered block of text lines.
func drawPanel(c core.Canvas, w, h float64, lines []panelLine) {
	cw, lh := c.CharSize()
	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l.text)))
	}

	pw := float64(longest+4) * cw
	ph := float64(len(lines)+2) * lh
	box := core.NewRectF(math.Floor((w-pw)/2), math.Floor((h-ph)/2), pw, ph)

	c.FillRect(box, core.ColorDefault)
	c.StrokeRect(box, core.ColorWhite)
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		c.FillText(w/2, box.Y+float64(i+1)*lh, l.text, core.AlignCenter, l.color)
	}
}
