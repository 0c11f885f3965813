package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-joust/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "Score", core.ColorBrightYellow)
	s.DrawRect(core.NewRect(0, 2, 10, 1), '=', core.ColorOrange)

	out := RenderScreen(s)
	if !strings.Contains(out, "Score") {
		t.Errorf("render lost the HUD text: %q", out)
	}
	if !strings.Contains(out, "==========") {
		t.Errorf("render lost the platform row: %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("render has %d line breaks, expected 2", lines)
	}
}

func TestStyleForOutOfPalette(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, expected plain x", got)
	}
}
