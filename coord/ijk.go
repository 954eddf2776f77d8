// Package coord implements the cube-coordinate algebra for hex grids:
// 3-component IJK vectors, normalization, 60° rotations, and the 7 step
// directions used to index the topology tables.
package coord

// IJK is a cube coordinate in a hex grid. The three components are kept
// in a canonical normalized form where at most two are non-zero and all
// are non-negative.
type IJK struct {
	I int
	J int
	K int
}

// unitVectors maps each direction to its unit IJK vector.
var unitVectors = [NumDirections]IJK{
	{0, 0, 0}, // center
	{0, 0, 1}, // k
	{0, 1, 0}, // j
	{0, 1, 1}, // jk
	{1, 0, 0}, // i
	{1, 0, 1}, // ik
	{1, 1, 0}, // ij
}

// Unit returns the unit vector for a step in direction d.
func Unit(d Direction) IJK {
	return unitVectors[d]
}

// Add returns c+o.
func (c IJK) Add(o IJK) IJK {
	return IJK{c.I + o.I, c.J + o.J, c.K + o.K}
}

// Sub returns c-o.
func (c IJK) Sub(o IJK) IJK {
	return IJK{c.I - o.I, c.J - o.J, c.K - o.K}
}

// Scale returns c scaled by factor.
func (c IJK) Scale(factor int) IJK {
	return IJK{c.I * factor, c.J * factor, c.K * factor}
}

// Normalize returns the canonical form of c: all components non-negative
// with at least one of them zero.
func (c IJK) Normalize() IJK {
	if c.I < 0 {
		c.J -= c.I
		c.K -= c.I
		c.I = 0
	}
	if c.J < 0 {
		c.I -= c.J
		c.K -= c.J
		c.J = 0
	}
	if c.K < 0 {
		c.I -= c.K
		c.J -= c.K
		c.K = 0
	}

	m := c.I
	if c.J < m {
		m = c.J
	}
	if c.K < m {
		m = c.K
	}
	if m > 0 {
		c.I -= m
		c.J -= m
		c.K -= m
	}
	return c
}

// Rotate60CCW returns c rotated 60° counter-clockwise, normalized.
func (c IJK) Rotate60CCW() IJK {
	return IJK{0, 0, 0}.
		Add(IJK{1, 1, 0}.Scale(c.I)).
		Add(IJK{0, 1, 1}.Scale(c.J)).
		Add(IJK{1, 0, 1}.Scale(c.K)).
		Normalize()
}

// Rotate60CW returns c rotated 60° clockwise, normalized.
func (c IJK) Rotate60CW() IJK {
	return IJK{0, 0, 0}.
		Add(IJK{1, 0, 1}.Scale(c.I)).
		Add(IJK{1, 1, 0}.Scale(c.J)).
		Add(IJK{0, 1, 1}.Scale(c.K)).
		Normalize()
}

// Direction classifies a normalized unit vector back to a step direction.
// Returns Center and false if c is not a unit vector.
func (c IJK) Direction() (Direction, bool) {
	n := c.Normalize()
	for d, u := range unitVectors {
		if n == u {
			return Direction(d), true
		}
	}
	return Center, false
}

// Distance returns the hex grid distance between c and o.
func (c IJK) Distance(o IJK) int {
	d := c.Sub(o).Normalize()
	return maxInt(absInt(d.I), maxInt(absInt(d.J), absInt(d.K)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
