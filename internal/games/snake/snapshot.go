package snake

import "time"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Ticks    uint64
	State    State
	Cause    Result
	Score    int
	HeadX    int
	HeadY    int
	Heading  Direction
	FoodX    int
	FoodY    int
	Period   time.Duration
	Relocate int // food relocations so far
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food := g.food.Position()
	return Snapshot{
		Ticks:    g.ticks,
		State:    g.state,
		Cause:    g.cause,
		Score:    g.Score(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  g.snake.Heading(),
		FoodX:    food.X,
		FoodY:    food.Y,
		Period:   g.period,
		Relocate: g.food.Relocations(),
	}
}
