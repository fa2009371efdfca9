package snake

import (
	"golang.org/x/exp/rand"
)

// Direction represents the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point is a cell on the board. Row 0 is the top row.
type Point struct {
	X, Y int
}

// RandomPoint returns a cell with both axes drawn uniformly from [0, boardSize).
func RandomPoint(rng *rand.Rand, boardSize int) Point {
	return Point{
		X: rng.Intn(boardSize),
		Y: rng.Intn(boardSize),
	}
}

// Translate returns p moved one cell towards d.
// The second result is false when the move would leave the board; the board does not wrap.
func (p Point) Translate(d Direction, boardSize int) (Point, bool) {
	last := boardSize - 1
	switch d {
	case DirUp:
		if p.Y == 0 {
			return p, false
		}
		return Point{X: p.X, Y: p.Y - 1}, true
	case DirDown:
		if p.Y == last {
			return p, false
		}
		return Point{X: p.X, Y: p.Y + 1}, true
	case DirLeft:
		if p.X == 0 {
			return p, false
		}
		return Point{X: p.X - 1, Y: p.Y}, true
	case DirRight:
		if p.X == last {
			return p, false
		}
		return Point{X: p.X + 1, Y: p.Y}, true
	}
	return p, false
}

// Equals reports whether both axes match.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// InBounds reports whether p lies on a boardSize×boardSize board.
func (p Point) InBounds(boardSize int) bool {
	return p.X >= 0 && p.X < boardSize && p.Y >= 0 && p.Y < boardSize
}

// ToPixel maps the cell to the top-left corner of its square in render units.
func (p Point) ToPixel(cellSize int) (int, int) {
	return p.X * cellSize, p.Y * cellSize
}
