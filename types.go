// Package icogrid provides the icosahedron-level types shared by the
// base-cell topology core and its consumers.
package icogrid

import (
	"fmt"

	"github.com/gravitas-games/icogrid/coord"
)

// NumFaces is the number of triangular faces on the icosahedron.
const NumFaces = 20

// Face identifies one of the 20 triangular faces of the icosahedron.
// Each face carries its own local hex-grid coordinate frame.
type Face uint8

// NewFace validates v as a face number.
func NewFace(v uint8) (Face, error) {
	if v >= NumFaces {
		return 0, fmt.Errorf("face %d out of range [0, %d]", v, NumFaces-1)
	}
	return Face(v), nil
}

func (f Face) String() string {
	return fmt.Sprintf("face %d", uint8(f))
}

// FaceIJK locates a cell on a specific face's coordinate system.
type FaceIJK struct {
	Face  Face
	Coord coord.IJK
}
