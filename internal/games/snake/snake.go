package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Result is the outcome of one tick.
type Result int

const (
	ResultMoved Result = iota
	ResultGrew
	ResultWallHit
	ResultSelfHit
)

// Collided reports whether the result ends the game.
func (r Result) Collided() bool {
	return r == ResultWallHit || r == ResultSelfHit
}

func (r Result) String() string {
	switch r {
	case ResultMoved:
		return "moved"
	case ResultGrew:
		return "grew"
	case ResultWallHit:
		return "wall"
	case ResultSelfHit:
		return "self"
	default:
		return "unknown"
	}
}

// Snake is the player's body, head first, and its heading.
type Snake struct {
	body    []Point // Head at index 0
	heading Direction
	cause   Result // terminal result once collided
	dead    bool
}

// NewSnake creates a one-segment snake at head, heading up.
func NewSnake(head Point) *Snake {
	return NewSnakeWithBody(DirUp, head)
}

// NewSnakeWithBody creates a snake from explicit segments, head first.
// It panics on an empty body.
func NewSnakeWithBody(heading Direction, body ...Point) *Snake {
	if len(body) == 0 {
		panic("snake: empty body")
	}
	return &Snake{
		body:    append([]Point(nil), body...),
		heading: heading,
	}
}

// Head returns the head segment.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Point {
	return append([]Point(nil), s.body...)
}

// Heading returns the current heading.
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetHeading turns the snake. A turn to the direct reverse of the current
// heading is rejected and reported as false.
func (s *Snake) SetHeading(d Direction) bool {
	if d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Collided reports whether the snake has hit a wall or itself.
func (s *Snake) Collided() bool {
	return s.dead
}

// HeadEquals reports whether the head sits on p.
func (s *Snake) HeadEquals(p Point) bool {
	return s.Head().Equals(p)
}

// Contains reports whether any segment sits on p.
func (s *Snake) Contains(p Point) bool {
	for _, seg := range s.body {
		if seg.Equals(p) {
			return true
		}
	}
	return false
}

// Tick moves the snake one cell along its heading against food.
// The bounds check runs before any coordinate arithmetic, and the self check
// compares against the whole body as it was before the move.
// Once collided, Tick keeps returning the terminal result without moving.
func (s *Snake) Tick(boardSize int, food *Food) Result {
	if s.dead {
		return s.cause
	}

	next, ok := s.Head().Translate(s.heading, boardSize)
	if !ok {
		return s.collide(ResultWallHit)
	}
	if s.Contains(next) {
		return s.collide(ResultSelfHit)
	}

	s.body = append([]Point{next}, s.body...)

	if s.HeadEquals(food.Position()) {
		food.Relocate(s.body)
		return ResultGrew
	}

	s.body = s.body[:len(s.body)-1]
	return ResultMoved
}

func (s *Snake) collide(r Result) Result {
	s.dead = true
	s.cause = r
	return r
}

// Render draws every segment as a filled cell.
func (s *Snake) Render(dst core.Surface, cellSize int, c core.Color) {
	for _, seg := range s.body {
		x, y := seg.ToPixel(cellSize)
		dst.FillSquare(x, y, cellSize, c)
	}
}
