//go:build raylib

package raywin

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("raylib", func() registry.Backend { return Backend{} })
}

// Backend runs snake in a raylib window.
type Backend struct{}

func (Backend) ID() string     { return "raylib" }
func (Backend) Title() string  { return "Window (raylib)" }
func (Backend) Terminal() bool { return false }

// Run opens the window and drives the polled loop on the calling goroutine,
// which must be the main one.
func (Backend) Run(ctx context.Context, s *snake.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := s.Game().Config()
	size := int32(cfg.WindowSize())

	rl.InitWindow(size, size, cfg.Display.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Timing.TargetFPS))

	logger.Info("raylib host started", "size", size)
	err := snake.RunLoop(ctx, window{}, s)
	logger.Info("raylib host stopped", "games", s.Games(), "score", s.Game().Score())
	return err
}
