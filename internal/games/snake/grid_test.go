package snake

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestTranslate(t *testing.T) {
	const size = 20

	tests := []struct {
		name   string
		from   Point
		dir    Direction
		want   Point
		wantOK bool
	}{
		{"up", Point{5, 5}, DirUp, Point{5, 4}, true},
		{"down", Point{5, 5}, DirDown, Point{5, 6}, true},
		{"left", Point{5, 5}, DirLeft, Point{4, 5}, true},
		{"right", Point{5, 5}, DirRight, Point{6, 5}, true},
		{"up into row 0", Point{3, 1}, DirUp, Point{3, 0}, true},
		{"up off top", Point{3, 0}, DirUp, Point{3, 0}, false},
		{"down off bottom", Point{3, 19}, DirDown, Point{3, 19}, false},
		{"left off edge", Point{0, 7}, DirLeft, Point{0, 7}, false},
		{"right off edge", Point{19, 7}, DirRight, Point{19, 7}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.from.Translate(tc.dir, size)
			if ok != tc.wantOK {
				t.Fatalf("Translate(%v) ok = %v, expected %v", tc.dir, ok, tc.wantOK)
			}
			if got != tc.want {
				t.Errorf("Translate(%v) = %v, expected %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestTranslateNeverLeavesBoard(t *testing.T) {
	const size = 6
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for _, d := range dirs {
				p, ok := Point{x, y}.Translate(d, size)
				if ok && !p.InBounds(size) {
					t.Errorf("(%d,%d) %v -> %v is off the board", x, y, d, p)
				}
			}
		}
	}
}

func TestRandomPointInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[Point]bool)

	for i := 0; i < 2000; i++ {
		p := RandomPoint(rng, 5)
		if !p.InBounds(5) {
			t.Fatalf("RandomPoint() = %v, out of [0, 5)", p)
		}
		seen[p] = true
	}
	if len(seen) != 25 {
		t.Errorf("expected every cell of a 5x5 board to be drawn, saw %d", len(seen))
	}
}

func TestPointEqualsAndPixels(t *testing.T) {
	a := Point{X: 3, Y: 4}
	if !a.Equals(Point{X: 3, Y: 4}) {
		t.Error("equal points should match")
	}
	if a.Equals(Point{X: 4, Y: 3}) {
		t.Error("swapped axes should not match")
	}

	x, y := a.ToPixel(20)
	if x != 60 || y != 80 {
		t.Errorf("ToPixel(20) = (%d, %d), expected (60, 80)", x, y)
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), want)
		}
	}
}
