package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Backend { return Backend{} })
}

// Backend runs snake in the terminal with Bubble Tea.
type Backend struct{}

func (Backend) ID() string     { return "tui" }
func (Backend) Title() string  { return "Terminal (Bubble Tea)" }
func (Backend) Terminal() bool { return true }

// Run starts the Bubble Tea program and blocks until it exits.
func (Backend) Run(ctx context.Context, s *snake.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := tea.NewProgram(
		NewModel(s, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("tui host started")
	final, err := p.Run()
	logger.Info("tui host stopped", "games", s.Games(), "score", s.Game().Score())

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return fmt.Errorf("tui: %w", m.Err())
	}
	return nil
}
