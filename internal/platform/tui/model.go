package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	session       *snake.Session
	host          *screenHost
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	fps           int
	screenshotDir string

	width    int // terminal size, 0 until the first resize
	height   int
	quitting bool
	err      error
}

// NewModel creates a Bubble Tea model for the given session.
// A nil logger discards.
func NewModel(s *snake.Session, logger *log.Logger) Model {
	cfg := s.Game().Config()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session:       s,
		host:          newScreenHost(cfg.Board.Size, cfg.Board.CellSize),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		fps:           cfg.Timing.TargetFPS,
		screenshotDir: filepath.Join(os.Getenv("HOME"), ".snake", "screenshots"),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey latches the pressed key into the input frame for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot(time.Now())
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.host.input.Set(action)
	}
	return m, nil
}

// handleFrame runs one session frame and schedules the next.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.host.meter.Frame(now)

	err := m.session.Frame(m.host)
	m.host.input.Clear()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, frameCmd(m.fps)
}

// saveScreenshot writes the current screen buffer as plain text.
func (m Model) saveScreenshot(now time.Time) (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("snake_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.host.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// tooSmall reports whether the known terminal size cannot hold the board
// and the help line.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.host.screen.Width() || m.height < m.host.screen.Height()+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.host.screen.Width(), m.host.screen.Height()+1, m.width, m.height,
		))
	}

	return RenderScreen(m.host.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}
