package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("tcell", func() registry.Backend { return Backend{} })
}

// Backend runs snake on a full-screen tcell terminal.
type Backend struct{}

func (Backend) ID() string     { return "tcell" }
func (Backend) Title() string  { return "Terminal (tcell)" }
func (Backend) Terminal() bool { return true }

// Run owns the terminal until the player quits or ctx is cancelled.
func (Backend) Run(ctx context.Context, s *snake.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	h := NewHost(screen, s.Game().Config(), logger)
	h.Listen()
	defer h.Close()

	logger.Info("tcell host started")
	err = snake.RunLoop(ctx, h, s)
	logger.Info("tcell host stopped", "games", s.Games(), "score", s.Game().Score())
	return err
}
