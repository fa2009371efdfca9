// Package snake implements the grid Snake game: the board model, the snake
// state machine and the frame-driven loop that ticks it.
package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the driver state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Clock supplies the monotonic time reference for ticks.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a new game.
type Options struct {
	Config config.Snake
	Seed   int64       // 0 picks a time-based seed
	Clock  Clock       // nil uses the system clock
	Logger *log.Logger // nil discards
}

// steering lists direction inputs in precedence order.
var steering = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionDown, DirDown},
	{core.ActionUp, DirUp},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// Game is one round of snake, from spawn to game over.
type Game struct {
	cfg     config.Snake
	palette config.Palette
	seed    int64
	rng     *rand.Rand
	clock   Clock
	logger  *log.Logger

	snake  *Snake
	food   *Food
	last   time.Time     // reference for the next tick
	period time.Duration // minimum time between ticks

	state State
	cause Result
	ticks uint64
}

// NewGame creates a running game with a random one-segment snake and food.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	palette, err := opts.Config.Palette()
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(uint64(seed)))
	size := opts.Config.Board.Size
	s := NewSnake(RandomPoint(rng, size))

	g := &Game{
		cfg:     opts.Config,
		palette: palette,
		seed:    seed,
		rng:     rng,
		clock:   clock,
		logger:  logger,
		snake:   s,
		food:    SpawnFood(rng, size, opts.Config.Rules.FoodAvoidsSnake, s.Body()),
		last:    clock.Now(),
		period:  opts.Config.Timing.InitialPeriod(),
	}
	g.logger.Debug("game started", "seed", seed, "board", size, "head", g.snake.Head(), "food", g.food.Position())
	return g, nil
}

// Frame runs one host frame: maybe tick, then steer and draw.
// After game over it only draws the final screen.
func (g *Game) Frame(h core.Host) {
	if g.state == StateGameOver {
		g.renderGameOver(h)
		return
	}

	now := g.clock.Now()
	if now.Sub(g.last) >= g.period {
		g.last = now
		if g.step().Collided() {
			g.renderGameOver(h)
			return
		}
	}

	g.steer(h)
	g.render(h)
}

// step ticks the snake once and applies the outcome.
func (g *Game) step() Result {
	res := g.snake.Tick(g.cfg.Board.Size, g.food)
	g.ticks++

	switch res {
	case ResultGrew:
		g.period = g.cfg.Timing.NextPeriod(g.period)
		g.logger.Debug("food eaten", "length", g.snake.Len(), "period", g.period, "food", g.food.Position())
	case ResultWallHit, ResultSelfHit:
		g.state = StateGameOver
		g.cause = res
		g.logger.Info("game over", "score", g.Score(), "cause", res, "ticks", g.ticks)
	}
	return res
}

// steer applies at most one heading change: the first held direction, in
// precedence order, that is not the reverse of the current heading.
func (g *Game) steer(in core.Input) {
	for _, s := range steering {
		if in.Held(s.action) && g.snake.SetHeading(s.dir) {
			return
		}
	}
}

func (g *Game) render(h core.Host) {
	d := g.cfg.Display
	cell := g.cfg.Board.CellSize

	h.Clear(g.palette.Background)
	h.DrawText(fmt.Sprintf("FPS: %d", h.FPS()), d.TextX, d.FPSY, d.FontSize, g.palette.Text)
	h.DrawText(fmt.Sprintf("Score: %d", g.Score()), d.TextX, d.ScoreY, d.FontSize, g.palette.Text)
	g.food.Render(h, cell, g.palette.Food)
	g.snake.Render(h, cell, g.palette.Snake)
}

func (g *Game) renderGameOver(dst core.Surface) {
	d := g.cfg.Display

	dst.Clear(g.palette.Background)
	dst.DrawText("GAME OVER", d.TextX, d.FPSY, d.FontSize, g.palette.Text)
	dst.DrawText(fmt.Sprintf("Score: %d", g.Score()), d.TextX, d.ScoreY, d.FontSize, g.palette.Text)
}

// Score is the snake's length.
func (g *Game) Score() int {
	return g.snake.Len()
}

// State returns the driver state.
func (g *Game) State() State {
	return g.state
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}

// Cause returns what ended the game; only meaningful after game over.
func (g *Game) Cause() Result {
	return g.cause
}

// Period returns the current tick period.
func (g *Game) Period() time.Duration {
	return g.period
}

// Snake returns the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food.
func (g *Game) Food() *Food {
	return g.food
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the game's configuration.
func (g *Game) Config() config.Snake {
	return g.cfg
}
