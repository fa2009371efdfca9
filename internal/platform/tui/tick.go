// Package tui hosts snake in the terminal through Bubble Tea.
// Board cells map to two terminal columns so squares stay square; text is
// drawn on the row under its pixel position.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one host frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
