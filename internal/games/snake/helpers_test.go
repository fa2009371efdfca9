package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeHost records drawing and serves a fixed set of held actions.
type fakeHost struct {
	*core.Canvas
	held core.InputFrame
	fps  int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		Canvas: core.NewCanvas(),
		held:   core.NewInputFrame(),
		fps:    60,
	}
}

func (h *fakeHost) Held(a core.Action) bool { return h.held.Has(a) }

func (h *fakeHost) FPS() int { return h.fps }

// newTestGame builds a game on the default 20x20 board with a hand-placed
// snake and food.
func newTestGame(t *testing.T, s *Snake, food Point) (*Game, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g, err := NewGame(Options{
		Config: config.DefaultSnakeConfig(),
		Seed:   7,
		Clock:  clock,
	})
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	g.snake = s
	g.food.pos = food
	return g, clock
}

// tick advances the clock by one period and runs a frame.
func tick(g *Game, clock *fakeClock, h *fakeHost) {
	clock.Advance(g.Period())
	g.Frame(h)
}
