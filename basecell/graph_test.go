package basecell

import (
	"testing"

	"github.com/gravitas-games/icogrid/coord"
)

func TestGridDistanceBasics(t *testing.T) {
	if got := GridDistance(7, 7); got != 0 {
		t.Fatalf("distance to self = %d", got)
	}
	// Cell 8 is the ij neighbor of cell 0.
	if got := GridDistance(0, 8); got != 1 {
		t.Fatalf("distance between adjacent cells = %d, want 1", got)
	}
	// The two polar pentagons sit on opposite ends of the graph.
	if got := GridDistance(4, 117); got < 2 {
		t.Fatalf("polar pentagons cannot be adjacent, distance = %d", got)
	}
}

func TestGridDistanceSymmetry(t *testing.T) {
	samples := []Cell{0, 4, 38, 63, 90, 117, 121}
	for _, a := range samples {
		for _, b := range samples {
			if GridDistance(a, b) != GridDistance(b, a) {
				t.Fatalf("distance not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestGridDistanceMatchesNeighborTable(t *testing.T) {
	for cell := range All() {
		for d := coord.K; d < coord.NumDirections; d++ {
			neighbor, defined := cell.Neighbor(d)
			if !defined || neighbor == cell {
				continue
			}
			if got := GridDistance(cell, neighbor); got != 1 {
				t.Fatalf("distance between neighbors %v and %v = %d", cell, neighbor, got)
			}
		}
	}
}

func TestGridPath(t *testing.T) {
	cases := []struct{ from, to Cell }{
		{0, 0}, {0, 8}, {4, 117}, {121, 2}, {38, 63},
	}
	for _, c := range cases {
		path := GridPath(c.from, c.to)
		if len(path) == 0 || path[0] != c.from || path[len(path)-1] != c.to {
			t.Fatalf("path %v -> %v has wrong endpoints: %v", c.from, c.to, path)
		}
		if len(path)-1 != GridDistance(c.from, c.to) {
			t.Fatalf("path length %d disagrees with distance %d", len(path)-1, GridDistance(c.from, c.to))
		}
		for i := 1; i < len(path); i++ {
			if _, adjacent := path[i-1].DirectionTo(path[i]); !adjacent {
				t.Fatalf("path %v has non-adjacent step %v -> %v", path, path[i-1], path[i])
			}
		}
	}
}
