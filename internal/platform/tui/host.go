package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// screenHost draws pixel coordinates into a character Screen.
// One board cell is two columns wide and one row high.
type screenHost struct {
	screen   *core.Screen
	cellSize int
	input    core.InputFrame
	meter    core.FPSMeter
}

func newScreenHost(boardSize, cellSize int) *screenHost {
	return &screenHost{
		screen:   core.NewScreen(boardSize*2, boardSize),
		cellSize: cellSize,
		input:    core.NewInputFrame(),
	}
}

func (h *screenHost) Clear(c core.Color) {
	h.screen.Fill(c)
}

func (h *screenHost) FillSquare(x, y, size int, c core.Color) {
	cells := max(1, size/h.cellSize)
	h.screen.FillRect(core.NewRect(x/h.cellSize*2, y/h.cellSize, cells*2, cells), c)
}

// DrawText ignores fontSize: a terminal row holds one line of text.
func (h *screenHost) DrawText(text string, x, y, _ int, c core.Color) {
	h.screen.DrawText(x*2/h.cellSize, y/h.cellSize, text, c)
}

func (h *screenHost) Held(a core.Action) bool {
	return h.input.Has(a)
}

func (h *screenHost) FPS() int {
	return h.meter.FPS()
}
