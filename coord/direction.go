package coord

import "fmt"

// Direction is one of the 7 hex-grid step directions: the center (no-op)
// direction plus 6 radial directions at 60° intervals. The numeric values
// are the index order used by the topology tables.
type Direction uint8

const (
	// Center is the no-op direction (stay on the current cell).
	Center Direction = iota
	// K is the step along the k axis.
	K
	// J is the step along the j axis.
	J
	// JK is the step along the j and k axes.
	JK
	// I is the step along the i axis.
	I
	// IK is the step along the i and k axes.
	IK
	// IJ is the step along the i and j axes.
	IJ

	// NumDirections is the number of step directions, center included.
	NumDirections = 7
)

// NewDirection validates v as a direction.
func NewDirection(v uint8) (Direction, error) {
	if v >= NumDirections {
		return 0, fmt.Errorf("direction %d out of range [0, %d]", v, NumDirections-1)
	}
	return Direction(v), nil
}

// Valid reports whether d is one of the 7 directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// RotateCCW returns the direction rotated 60° counter-clockwise.
// Center rotates to itself.
func (d Direction) RotateCCW() Direction {
	switch d {
	case K:
		return IK
	case IK:
		return I
	case I:
		return IJ
	case IJ:
		return J
	case J:
		return JK
	case JK:
		return K
	default:
		return d
	}
}

// RotateCW returns the direction rotated 60° clockwise.
// Center rotates to itself.
func (d Direction) RotateCW() Direction {
	switch d {
	case K:
		return JK
	case JK:
		return J
	case J:
		return IJ
	case IJ:
		return I
	case I:
		return IK
	case IK:
		return K
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Center:
		return "center"
	case K:
		return "k"
	case J:
		return "j"
	case JK:
		return "jk"
	case I:
		return "i"
	case IK:
		return "ik"
	case IJ:
		return "ij"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
