// Package console hosts snake on a raw tcell screen with a polled frame loop.
package console

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const eventBuffer = 32

// Host implements core.Window over a tcell screen.
// Terminal events are read by a background goroutine and applied at the start
// of each frame; everything else runs on the caller's goroutine.
type Host struct {
	screen   tcell.Screen
	cellSize int
	frame    time.Duration
	logger   *log.Logger

	events chan tcell.Event
	done   chan struct{}

	input   core.InputFrame
	meter   core.FPSMeter
	started time.Time
	closing bool
}

// NewHost wraps an initialized screen. A target FPS of 0 disables pacing.
func NewHost(screen tcell.Screen, cfg config.Snake, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var frame time.Duration
	if cfg.Timing.TargetFPS > 0 {
		frame = time.Second / time.Duration(cfg.Timing.TargetFPS)
	}

	return &Host{
		screen:   screen,
		cellSize: cfg.Board.CellSize,
		frame:    frame,
		logger:   logger,
		events:   make(chan tcell.Event, eventBuffer),
		done:     make(chan struct{}),
		input:    core.NewInputFrame(),
	}
}

// Listen starts forwarding screen events to the frame loop.
func (h *Host) Listen() {
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case h.events <- ev:
			case <-h.done:
				return
			}
		}
	}()
}

// Close stops the event goroutine. The screen is left to the caller.
func (h *Host) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// ShouldClose reports whether the player asked to quit.
func (h *Host) ShouldClose() bool {
	return h.closing
}

// BeginFrame drains pending events into the input frame.
func (h *Host) BeginFrame() {
	h.started = time.Now()
	h.meter.Frame(h.started)

	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return
		}
	}
}

// EndFrame shows the frame, clears latched input and sleeps off the rest of
// the frame budget.
func (h *Host) EndFrame() {
	h.screen.Show()
	h.input.Clear()

	if h.frame > 0 {
		if d := h.frame - time.Since(h.started); d > 0 {
			time.Sleep(d)
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch a := actionFor(e); a {
		case core.ActionQuit:
			h.logger.Debug("quit requested")
			h.closing = true
		case core.ActionNone:
		default:
			h.input.Set(a)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

// actionFor maps a key event to a game action.
func actionFor(e *tcell.EventKey) core.Action {
	switch e.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch e.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Held implements core.Input.
func (h *Host) Held(a core.Action) bool {
	return h.input.Has(a)
}

// FPS returns the measured frame rate.
func (h *Host) FPS() int {
	return h.meter.FPS()
}

// Clear fills the whole screen with background c.
func (h *Host) Clear(c core.Color) {
	h.screen.Fill(' ', background(c))
}

// FillSquare paints a board square as two columns per cell.
func (h *Host) FillSquare(x, y, size int, c core.Color) {
	cells := max(1, size/h.cellSize)
	col, row := x/h.cellSize*2, y/h.cellSize
	style := background(c)

	for dy := 0; dy < cells; dy++ {
		for dx := 0; dx < cells*2; dx++ {
			h.screen.SetContent(col+dx, row+dy, ' ', nil, style)
		}
	}
}

// DrawText writes text over the existing background. fontSize is ignored.
func (h *Host) DrawText(text string, x, y, _ int, c core.Color) {
	col, row := x*2/h.cellSize, y/h.cellSize
	for i, r := range []rune(text) {
		_, _, style, _ := h.screen.GetContent(col+i, row)
		h.screen.SetContent(col+i, row, r, nil, style.Foreground(tcellColor(c)))
	}
}

func background(c core.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(c))
}

func tcellColor(c core.Color) tcell.Color {
	if c == core.ColorDefault {
		return tcell.ColorDefault
	}
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
