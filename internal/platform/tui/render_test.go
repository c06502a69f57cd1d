package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/palopsee/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGray)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz   " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasCode(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		if _, ok := ansiCodes[c]; !ok {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
}

func TestPainterWithRenderer(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	s := core.NewScreen(3, 1)
	s.DrawText(0, 0, "abc", core.ColorOrange)

	out := NewPainter(r).Render(s)
	if !strings.Contains(out, "208") {
		t.Errorf("expected 256-color escape for orange, got %q", out)
	}
	if ansi.Strip(out) != "abc" {
		t.Errorf("stripped output = %q", ansi.Strip(out))
	}

	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)
	if got := NewPainter(plain).Render(s); got != "abc" {
		t.Errorf("ascii profile output = %q, want plain text", got)
	}
}
