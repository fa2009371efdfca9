// snake is a grid snake game with pluggable renderers.
//
// Usage:
//
//	snake play               - Play in the terminal (Bubble Tea)
//	snake play -r tcell      - Play on a raw tcell screen
//	snake play -r ebiten     - Play in a desktop window
//	snake list               - List available renderers
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogLevel string
	flagLogFile  string

	logger  = log.New(io.Discard)
	logFile io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't hit the walls",
	Long: `Snake is the classic grid game: steer the snake to the food, grow by
one segment per meal and speed up a little each time. Running into a wall
or into yourself ends the game.

Available commands:
  play     - Start a game
  list     - Show available renderers
  config   - Print the effective configuration

Examples:
  snake play
  snake play --renderer ebiten --difficulty hard
  snake play --seed 42 --log-level debug --log-file snake.log
  snake config --config ./my-snake.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			//nolint:errcheck // Best-effort close on exit
			logFile.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: stderr)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(*cobra.Command, []string) error {
	l, closer, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	logger = l
	logFile = closer
	return nil
}

// newLogger builds the process logger. With an empty path it writes to
// fallback and the returned closer is nil.
func newLogger(level, path string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return l, closer, nil
}
