package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagRenderer   string
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen renderer.

Controls:
  Arrows/WASD  - Steer
  R            - Restart (after game over)
  Q/Esc        - Quit
  Ctrl+S       - Screenshot (tui renderer)

Difficulty options:
  easy   - 400ms start, slow speed-up
  normal - 300ms start, 5% faster per meal
  hard   - 200ms start, 7% faster per meal, 40ms floor
  fixed  - No speed-up

Examples:
  snake play
  snake play --renderer tcell
  snake play --difficulty hard --seed 42
  snake play --config ./my-snake.yaml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagRenderer, "renderer", "r", "tui", "Renderer: see 'snake list'")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Target frame rate (default: from config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	backend, err := registry.Create(flagRenderer)
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see renderers)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Timing.TargetFPS = flagFPS
	}

	if backend.Terminal() {
		checkTerminalSize(cfg)
	}

	session, err := snake.NewSession(snake.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "renderer", backend.ID(), "seed", session.Game().Seed())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return backend.Run(ctx, session, logger)
}

// checkTerminalSize warns when the board will not fit the terminal.
func checkTerminalSize(cfg config.Snake) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug("terminal size unavailable", "err", err)
		return
	}

	needW, needH := cfg.Board.Size*2, cfg.Board.Size+1
	if width < needW || height < needH {
		logger.Warn("terminal smaller than the board",
			"need", fmt.Sprintf("%dx%d", needW, needH),
			"have", fmt.Sprintf("%dx%d", width, height))
	}
}
