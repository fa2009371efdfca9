package snake

import (
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single collectible on the board.
type Food struct {
	pos       Point
	rng       *rand.Rand
	boardSize int
	avoidBody bool // keep placements off the snake
	moves     int
}

// SpawnFood places food on a random cell, off body when avoidBody is set.
// The initial placement does not count as a relocation.
func SpawnFood(rng *rand.Rand, boardSize int, avoidBody bool, body []Point) *Food {
	f := &Food{
		rng:       rng,
		boardSize: boardSize,
		avoidBody: avoidBody,
	}
	f.place(body)
	return f
}

// Position returns the cell the food occupies.
func (f *Food) Position() Point {
	return f.pos
}

// Relocations returns how many times the food has been moved.
func (f *Food) Relocations() int {
	return f.moves
}

// Relocate moves the food to a new random cell.
func (f *Food) Relocate(body []Point) {
	f.moves++
	f.place(body)
}

// place picks the food cell. With avoidBody set the cell is drawn from those
// not covered by body; if the body fills the board any cell will do.
func (f *Food) place(body []Point) {
	if !f.avoidBody {
		f.pos = RandomPoint(f.rng, f.boardSize)
		return
	}

	occupied := make(map[Point]bool, len(body))
	for _, seg := range body {
		occupied[seg] = true
	}

	free := make([]Point, 0, f.boardSize*f.boardSize-len(occupied))
	for y := 0; y < f.boardSize; y++ {
		for x := 0; x < f.boardSize; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		f.pos = RandomPoint(f.rng, f.boardSize)
		return
	}
	f.pos = free[f.rng.Intn(len(free))]
}

// Render draws the food as one filled cell.
func (f *Food) Render(dst core.Surface, cellSize int, c core.Color) {
	x, y := f.pos.ToPixel(cellSize)
	dst.FillSquare(x, y, cellSize, c)
}
