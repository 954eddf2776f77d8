// Package basecell implements the resolution-0 topology of the hierarchical
// hex grid: the 122 base cells tiling the icosahedron, their pentagon
// classification, home face embeddings, neighbor adjacency, and the 60°
// rotation bookkeeping needed when a traversal crosses between faces.
//
// Everything here is a pure query over immutable package-level tables; all
// operations are safe for unrestricted concurrent use and never allocate.
package basecell

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"

	"github.com/gravitas-games/icogrid"
	"github.com/gravitas-games/icogrid/coord"
)

const (
	// MaxValue is the largest valid base cell value.
	MaxValue = 121
	// Count is the number of base cells.
	Count = MaxValue + 1
	// NumPentagons is the number of pentagonal base cells.
	NumPentagons = 12
)

// Cell is one of the 122 resolution-0 cells tiling the icosahedron.
type Cell uint8

// InvalidCellError reports a base cell value outside [0, 121].
type InvalidCellError struct {
	Value  uint8
	Reason string
}

func (e InvalidCellError) Error() string {
	return fmt.Sprintf("invalid base cell %d: %s", e.Value, e.Reason)
}

// New validates value as a base cell. This is the only boundary-facing
// operation: every value in range is a real base cell, so range is the
// only thing to check.
func New(value uint8) (Cell, error) {
	if value > MaxValue {
		return 0, InvalidCellError{Value: value, Reason: "out of range"}
	}
	return Cell(value), nil
}

// All returns an iterator over all 122 base cells in ascending order.
func All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for v := 0; v < Count; v++ {
			if !yield(Cell(v)) {
				return
			}
		}
	}
}

// IsPentagon reports whether the base cell is pentagonal (5 neighbors
// instead of 6).
func (c Cell) IsPentagon() bool {
	if c < 64 {
		return pentagonMaskLo&(1<<uint(c)) != 0
	}
	return pentagonMaskHi&(1<<uint(c-64)) != 0
}

// IsPolarPentagon reports whether the base cell is one of the two pentagons
// whose neighbors are all oriented towards it.
func (c Cell) IsPolarPentagon() bool {
	return c == 4 || c == 117
}

// Home returns the canonical (face, coordinate) embedding of the cell's
// center. Defined for every base cell.
func (c Cell) Home() icogrid.FaceIJK {
	md := &cellMetadata[c]
	return icogrid.FaceIJK{Face: md.home, Coord: md.coord}
}

// IsClockwiseOffset reports whether face is one of the two faces where this
// pentagon's distortion requires a clockwise coordinate offset during
// projection. Always false for hexagonal cells.
func (c Cell) IsClockwiseOffset(face icogrid.Face) bool {
	md := &cellMetadata[c]
	return md.hasOffset && (md.cwOffset[0] == face || md.cwOffset[1] == face)
}

// RotationCount returns the number of 60° ccw rotations aligning this base
// cell's coordinate frame when viewed from face instead of its home face.
//
// The cell must have a presence on face (its home face or one it borders);
// callers are expected to have established face adjacency already, so a
// lookup for an absent face panics.
func (c Cell) RotationCount(face icogrid.Face) uint8 {
	shift := uint(face) * 3
	rotation := uint8(cellRotations[c] >> shift & 0b111)
	if rotation == noPresence {
		panic(fmt.Sprintf("base cell %d has no presence on %v", c, face))
	}
	return rotation
}

// PentagonDirectionFaces returns the face touched by each of the pentagon's
// 5 edges, in directional order starting at J.
//
// The cell must be a pentagon; calling this on a hexagonal cell panics.
func (c Cell) PentagonDirectionFaces() [5]icogrid.Face {
	if !c.IsPentagon() {
		panic(fmt.Sprintf("base cell %d is not a pentagon", c))
	}
	return pentagonDirectionFaces[c.pentagonIndex()]
}

// pentagonIndex is the cell's ordinal position among the 12 pentagons,
// derived by popcount over the membership mask so the two representations
// cannot drift apart.
func (c Cell) pentagonIndex() int {
	if c < 64 {
		return bits.OnesCount64(pentagonMaskLo & (1<<uint(c) - 1))
	}
	return bits.OnesCount64(pentagonMaskLo) +
		bits.OnesCount64(pentagonMaskHi&(1<<uint(c-64)-1))
}

// Neighbor returns the adjacent base cell in the given direction. The
// second result is false only for the K direction of a pentagon, which has
// no sixth edge. Stepping in the center direction returns the cell itself.
func (c Cell) Neighbor(direction coord.Direction) (Cell, bool) {
	v := cellNeighbors[c][direction]
	if v == noNeighbor {
		return 0, false
	}
	return Cell(v), true
}

// NeighborRotation returns the number of 60° ccw rotations applied when
// stepping to the neighbor in the given direction.
//
// The neighbor must exist; asking for the rotation across a pentagon's
// missing K edge panics.
func (c Cell) NeighborRotation(direction coord.Direction) uint8 {
	rotation := neighborRotations[c][direction]
	if rotation == noNeighbor {
		panic(fmt.Sprintf("base cell %d has no neighbor in direction %v", c, direction))
	}
	return rotation
}

// DirectionTo returns the direction that reaches neighbor from c, or false
// if the two cells are not adjacent. At most one direction maps to any
// given neighbor.
func (c Cell) DirectionTo(neighbor Cell) (coord.Direction, bool) {
	for d, v := range cellNeighbors[c] {
		if v == uint8(neighbor) {
			return coord.Direction(d), true
		}
	}
	return 0, false
}

func (c Cell) String() string {
	return strconv.Itoa(int(c))
}
