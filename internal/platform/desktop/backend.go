//go:build !raylib

package desktop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("ebiten", func() registry.Backend { return Backend{} })
}

// Backend runs snake in an Ebitengine window.
type Backend struct{}

func (Backend) ID() string     { return "ebiten" }
func (Backend) Title() string  { return "Window (Ebitengine)" }
func (Backend) Terminal() bool { return false }

// Run opens the window and blocks until it closes. Must be called from the
// main goroutine.
func (Backend) Run(ctx context.Context, s *snake.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := s.Game().Config()
	g, err := newGame(ctx, s, cfg)
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}

	size := cfg.WindowSize()
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Timing.TargetFPS)

	logger.Info("ebiten host started", "size", size)
	err = ebiten.RunGame(g)
	logger.Info("ebiten host stopped", "games", s.Games(), "score", s.Game().Score())

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
