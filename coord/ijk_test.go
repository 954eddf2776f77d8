package coord

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   IJK
		want IJK
	}{
		{IJK{0, 0, 0}, IJK{0, 0, 0}},
		{IJK{2, 2, 2}, IJK{0, 0, 0}},
		{IJK{1, 2, 3}, IJK{0, 1, 2}},
		{IJK{-1, 0, 0}, IJK{0, 1, 1}},
		{IJK{1, -1, 0}, IJK{2, 0, 1}},
		{IJK{-2, -2, 0}, IJK{0, 0, 2}},
	}
	for _, c := range cases {
		if got := c.in.Normalize(); got != c.want {
			t.Fatalf("Normalize(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRotate60RoundTrip(t *testing.T) {
	coords := []IJK{{0, 0, 0}, {1, 0, 0}, {0, 1, 1}, {2, 0, 1}, {3, 1, 0}}
	for _, c := range coords {
		if got := c.Rotate60CCW().Rotate60CW(); got != c {
			t.Fatalf("ccw then cw of %v = %v, want identity", c, got)
		}
		rot := c
		for i := 0; i < 6; i++ {
			rot = rot.Rotate60CCW()
		}
		if rot != c {
			t.Fatalf("six ccw rotations of %v = %v, want identity", c, rot)
		}
	}
}

func TestRotate60MatchesDirectionRotation(t *testing.T) {
	// Rotating a unit vector must agree with rotating its direction.
	for d := K; d < NumDirections; d++ {
		want := Unit(d.RotateCCW())
		if got := Unit(d).Rotate60CCW(); got != want {
			t.Fatalf("Rotate60CCW of unit %v = %v, want %v", d, got, want)
		}
		want = Unit(d.RotateCW())
		if got := Unit(d).Rotate60CW(); got != want {
			t.Fatalf("Rotate60CW of unit %v = %v, want %v", d, got, want)
		}
	}
}

func TestUnitDirectionRoundTrip(t *testing.T) {
	for d := Center; d < NumDirections; d++ {
		got, ok := Unit(d).Direction()
		if !ok || got != d {
			t.Fatalf("Direction of unit %v = %v (ok=%v), want %v", d, got, ok, d)
		}
	}
	if _, ok := (IJK{2, 0, 0}).Direction(); ok {
		t.Fatalf("expected non-unit vector to have no direction")
	}
}

func TestDistance(t *testing.T) {
	origin := IJK{0, 0, 0}
	if got := origin.Distance(origin); got != 0 {
		t.Fatalf("expected zero distance to self, got %d", got)
	}
	if got := origin.Distance(Unit(I)); got != 1 {
		t.Fatalf("expected distance 1 to unit i, got %d", got)
	}
	// i and ij are 60° apart (adjacent), i and j are 120° apart.
	if got := Unit(I).Distance(Unit(IJ)); got != 1 {
		t.Fatalf("expected distance 1 between i and ij, got %d", got)
	}
	if got := Unit(I).Distance(Unit(J)); got != 2 {
		t.Fatalf("expected distance 2 between i and j, got %d", got)
	}
}

func TestAddSubScale(t *testing.T) {
	a := IJK{1, 2, 0}
	b := IJK{0, 1, 1}
	if got := a.Add(b); got != (IJK{1, 3, 1}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != (IJK{1, 1, -1}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(3); got != (IJK{3, 6, 0}) {
		t.Fatalf("Scale = %v", got)
	}
}
