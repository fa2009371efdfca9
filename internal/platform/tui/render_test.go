package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestScreenHostMapping(t *testing.T) {
	h := newScreenHost(20, 20)

	if h.screen.Width() != 40 || h.screen.Height() != 20 {
		t.Fatalf("screen size = %dx%d, expected 40x20", h.screen.Width(), h.screen.Height())
	}

	h.Clear(core.ColorWhite)
	h.FillSquare(60, 40, 20, core.ColorRed)
	h.DrawText("Hi", 12, 30, 20, core.ColorBlack)

	for _, x := range []int{6, 7} {
		if c := h.screen.GetCell(x, 2); c.Bg != core.ColorRed {
			t.Errorf("cell (%d,2) bg = %v, expected red", x, c.Bg)
		}
	}
	if c := h.screen.GetCell(8, 2); c.Bg != core.ColorWhite {
		t.Errorf("cell (8,2) bg = %v, expected white", c.Bg)
	}

	if got := h.screen.Row(1)[1:3]; got != "Hi" {
		t.Errorf("text at row 1 = %q, expected %q", got, "Hi")
	}
	if c := h.screen.GetCell(1, 1); c.Fg != core.ColorBlack || c.Bg != core.ColorWhite {
		t.Errorf("text cell colors = %v/%v, expected black on white", c.Fg, c.Bg)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.Fill(core.ColorWhite)
	s.DrawText(1, 0, "hello", core.ColorBlack)
	s.FillRect(core.NewRect(0, 1, 4, 1), core.ColorBlue)

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") {
		t.Errorf("RenderScreen() missing text:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
}
