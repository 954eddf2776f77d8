package basecell

import (
	"errors"
	"testing"

	"github.com/gravitas-games/icogrid"
	"github.com/gravitas-games/icogrid/coord"
)

func TestCardinality(t *testing.T) {
	var cells, pentagons int
	prev := -1
	for cell := range All() {
		if int(cell) <= prev {
			t.Fatalf("cells not in ascending order at %v", cell)
		}
		prev = int(cell)
		cells++
		if cell.IsPentagon() {
			pentagons++
		}
	}
	if cells != Count {
		t.Fatalf("expected %d cells, got %d", Count, cells)
	}
	if pentagons != NumPentagons {
		t.Fatalf("expected %d pentagons, got %d", NumPentagons, pentagons)
	}
}

func TestAllIsRestartable(t *testing.T) {
	seq := All()
	for range seq {
		break
	}
	n := 0
	for range seq {
		n++
	}
	if n != Count {
		t.Fatalf("expected a fresh pass over %d cells, got %d", Count, n)
	}
}

func TestNewRangeValidation(t *testing.T) {
	if _, err := New(MaxValue); err != nil {
		t.Fatalf("unexpected error for cell 121: %v", err)
	}
	_, err := New(MaxValue + 1)
	if err == nil {
		t.Fatalf("expected out of range error for cell 122")
	}
	var cellErr InvalidCellError
	if !errors.As(err, &cellErr) {
		t.Fatalf("expected InvalidCellError, got %T", err)
	}
	if cellErr.Value != 122 || cellErr.Reason != "out of range" {
		t.Fatalf("unexpected error payload: %+v", cellErr)
	}
}

func TestPentagonSet(t *testing.T) {
	want := map[Cell]bool{
		4: true, 14: true, 24: true, 38: true, 49: true, 58: true,
		63: true, 72: true, 83: true, 97: true, 107: true, 117: true,
	}
	for cell := range All() {
		if cell.IsPentagon() != want[cell] {
			t.Fatalf("IsPentagon(%v) = %v, want %v", cell, cell.IsPentagon(), want[cell])
		}
	}
}

func TestPolarPentagonSet(t *testing.T) {
	for cell := range All() {
		want := cell == 4 || cell == 117
		if cell.IsPolarPentagon() != want {
			t.Fatalf("IsPolarPentagon(%v) = %v, want %v", cell, cell.IsPolarPentagon(), want)
		}
		if want && !cell.IsPentagon() {
			t.Fatalf("polar pentagon %v must be a pentagon", cell)
		}
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for cell := range All() {
		for d := coord.K; d < coord.NumDirections; d++ {
			neighbor, defined := cell.Neighbor(d)
			if !defined {
				continue
			}
			back, adjacent := neighbor.DirectionTo(cell)
			if !adjacent {
				t.Fatalf("cell %v -> %v via %v is not reciprocal", cell, neighbor, d)
			}
			if again, ok := neighbor.Neighbor(back); !ok || again != cell {
				t.Fatalf("round trip %v -> %v -> %v broken", cell, neighbor, again)
			}
		}
	}
}

func TestPentagonEdgeCounts(t *testing.T) {
	for cell := range All() {
		missing := 0
		for d := coord.K; d < coord.NumDirections; d++ {
			if _, defined := cell.Neighbor(d); !defined {
				if d != coord.K {
					t.Fatalf("cell %v has no neighbor in direction %v", cell, d)
				}
				missing++
			}
		}
		if cell.IsPentagon() && missing != 1 {
			t.Fatalf("pentagon %v has %d missing edges, want 1", cell, missing)
		}
		if !cell.IsPentagon() && missing != 0 {
			t.Fatalf("hexagon %v has %d missing edges, want 0", cell, missing)
		}
	}
}

func TestCenterNeighborIsSelf(t *testing.T) {
	for cell := range All() {
		n, ok := cell.Neighbor(coord.Center)
		if !ok || n != cell {
			t.Fatalf("center neighbor of %v = %v (ok=%v)", cell, n, ok)
		}
		if r := cell.NeighborRotation(coord.Center); r != 0 {
			t.Fatalf("center rotation of %v = %d, want 0", cell, r)
		}
	}
}

func TestNeighborRotationRange(t *testing.T) {
	for cell := range All() {
		for d := coord.Center; d < coord.NumDirections; d++ {
			if _, defined := cell.Neighbor(d); !defined {
				continue
			}
			if r := cell.NeighborRotation(d); r > 5 {
				t.Fatalf("rotation %d out of range for cell %v direction %v", r, cell, d)
			}
		}
	}
}

func TestDirectionTo(t *testing.T) {
	for cell := range All() {
		for d := coord.K; d < coord.NumDirections; d++ {
			neighbor, defined := cell.Neighbor(d)
			if !defined || neighbor == cell {
				continue
			}
			got, ok := cell.DirectionTo(neighbor)
			if !ok || got != d {
				t.Fatalf("DirectionTo(%v, %v) = %v (ok=%v), want %v", cell, neighbor, got, ok, d)
			}
		}
		// DirectionTo must agree with the neighbor table even for cells
		// on the far side of the graph.
		far := Cell((int(cell) + Count/2) % Count)
		if d, ok := cell.DirectionTo(far); ok {
			if n, defined := cell.Neighbor(d); !defined || n != far {
				t.Fatalf("DirectionTo(%v, %v) claims adjacency but neighbor table disagrees", cell, far)
			}
		}
	}
}

func TestHomeRotationIsZero(t *testing.T) {
	for cell := range All() {
		if r := cell.RotationCount(cell.Home().Face); r != 0 {
			t.Fatalf("home-face rotation of %v = %d, want 0", cell, r)
		}
	}
}

func TestRotationCountKnownValues(t *testing.T) {
	// Cell 4 (north polar pentagon) touches faces 0 through 4 with one
	// additional rotation per step around the pole.
	cell := Cell(4)
	for f := uint8(0); f < 5; f++ {
		if got := cell.RotationCount(icogrid.Face(f)); got != f {
			t.Fatalf("RotationCount(4, face %d) = %d, want %d", f, got, f)
		}
	}
}

func TestRotationCountAbsentFacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for absent face")
		}
	}()
	// Cell 0 lives on faces 0-2 only.
	Cell(0).RotationCount(icogrid.Face(5))
}

func TestNeighborRotationMissingEdgePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a pentagon's missing K edge")
		}
	}()
	Cell(4).NeighborRotation(coord.K)
}

func TestPentagonDirectionFaces(t *testing.T) {
	for cell := range All() {
		if !cell.IsPentagon() {
			continue
		}
		faces := cell.PentagonDirectionFaces()
		seen := map[icogrid.Face]bool{}
		for _, f := range faces {
			if f >= icogrid.NumFaces {
				t.Fatalf("pentagon %v edge face %d out of range", cell, f)
			}
			if seen[f] {
				t.Fatalf("pentagon %v repeats face %d", cell, f)
			}
			seen[f] = true
		}
	}

	// First and second pentagons in ascending order.
	if got := Cell(4).PentagonDirectionFaces(); got != [5]icogrid.Face{4, 0, 2, 1, 3} {
		t.Fatalf("direction faces of pentagon 4 = %v", got)
	}
	if got := Cell(14).PentagonDirectionFaces(); got != [5]icogrid.Face{6, 11, 2, 7, 1} {
		t.Fatalf("direction faces of pentagon 14 = %v", got)
	}
}

func TestPentagonDirectionFacesOnHexagonPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a hexagonal cell")
		}
	}()
	Cell(8).PentagonDirectionFaces()
}

func TestIsClockwiseOffset(t *testing.T) {
	// Pentagon 14 distributes its distortion over faces 2 and 6.
	if !Cell(14).IsClockwiseOffset(2) || !Cell(14).IsClockwiseOffset(6) {
		t.Fatalf("expected faces 2 and 6 to be cw offset faces of cell 14")
	}
	if Cell(14).IsClockwiseOffset(3) {
		t.Fatalf("face 3 is not a cw offset face of cell 14")
	}
	// Polar pentagons and hexagons have no offset faces.
	for f := uint8(0); f < icogrid.NumFaces; f++ {
		if Cell(4).IsClockwiseOffset(icogrid.Face(f)) {
			t.Fatalf("polar pentagon 4 must have no cw offset faces")
		}
		if Cell(8).IsClockwiseOffset(icogrid.Face(f)) {
			t.Fatalf("hexagon 8 must have no cw offset faces")
		}
	}
}

func TestKnownCellScenario(t *testing.T) {
	// Cell 4: the north polar pentagon.
	pent := Cell(4)
	if !pent.IsPentagon() || !pent.IsPolarPentagon() {
		t.Fatalf("cell 4 must be a polar pentagon")
	}
	home := pent.Home()
	if home.Face != 0 || home.Coord != (coord.IJK{I: 2, J: 0, K: 0}) {
		t.Fatalf("unexpected home embedding for cell 4: %+v", home)
	}

	// Cell 8: an ordinary hexagon with all six edges.
	hexa := Cell(8)
	if hexa.IsPentagon() {
		t.Fatalf("cell 8 must be hexagonal")
	}
	home = hexa.Home()
	if home.Face != 0 || home.Coord != (coord.IJK{I: 1, J: 0, K: 0}) {
		t.Fatalf("unexpected home embedding for cell 8: %+v", home)
	}
	for d := coord.K; d < coord.NumDirections; d++ {
		if _, defined := hexa.Neighbor(d); !defined {
			t.Fatalf("cell 8 must have a neighbor in direction %v", d)
		}
	}
}

func TestString(t *testing.T) {
	if got := Cell(117).String(); got != "117" {
		t.Fatalf("String = %q", got)
	}
}
