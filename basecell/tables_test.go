package basecell

import (
	"math/bits"
	"testing"
)

// The table checks below pin down the structural invariants of the static
// data itself, independent of the query layer.

func TestPentagonMaskPopcount(t *testing.T) {
	total := bits.OnesCount64(pentagonMaskLo) + bits.OnesCount64(pentagonMaskHi)
	if total != NumPentagons {
		t.Fatalf("pentagon mask has %d bits set, want %d", total, NumPentagons)
	}
	// No bits beyond cell 121.
	if pentagonMaskHi>>(Count-64) != 0 {
		t.Fatalf("pentagon mask has bits above cell %d", MaxValue)
	}
}

func TestRotationTableFields(t *testing.T) {
	for cell := range All() {
		word := cellRotations[cell]
		for face := 0; face < 20; face++ {
			field := word >> (face * 3) & 0b111
			if field != noPresence && field > 5 {
				t.Fatalf("cell %v face %d has rotation %d", cell, face, field)
			}
		}
		// The top nibble pads the word; it must stay all ones.
		if word>>60 != 0b1111 {
			t.Fatalf("cell %v rotation word has a corrupt pad nibble", cell)
		}
		// Every cell is present on its own home face.
		home := cellMetadata[cell].home
		if field := word >> (uint(home) * 3) & 0b111; field == noPresence {
			t.Fatalf("cell %v is absent from its home face %d", cell, home)
		}
	}
}

func TestNeighborTableShape(t *testing.T) {
	for cell := range All() {
		row := cellNeighbors[cell]
		rots := neighborRotations[cell]
		if row[0] != uint8(cell) {
			t.Fatalf("center entry of cell %v is %d", cell, row[0])
		}
		for d := 0; d < 7; d++ {
			if (row[d] == noNeighbor) != (rots[d] == noNeighbor) {
				t.Fatalf("neighbor and rotation tables disagree at cell %v direction %d", cell, d)
			}
			if row[d] == noNeighbor {
				if d != 1 {
					t.Fatalf("cell %v missing neighbor outside the K slot (direction %d)", cell, d)
				}
				if !cell.IsPentagon() {
					t.Fatalf("hexagon %v has a missing neighbor", cell)
				}
				continue
			}
			if row[d] > MaxValue {
				t.Fatalf("cell %v direction %d points at invalid cell %d", cell, d, row[d])
			}
			if rots[d] > 5 {
				t.Fatalf("cell %v direction %d has rotation %d", cell, d, rots[d])
			}
		}
	}
}

func TestMetadataShape(t *testing.T) {
	for cell := range All() {
		md := cellMetadata[cell]
		if md.home >= 20 {
			t.Fatalf("cell %v home face %d out of range", cell, md.home)
		}
		if md.hasOffset && !cell.IsPentagon() {
			t.Fatalf("hexagon %v carries cw offset faces", cell)
		}
		if md.hasOffset && md.cwOffset[0] == md.cwOffset[1] {
			t.Fatalf("cell %v has duplicate cw offset faces", cell)
		}
	}
}

func TestPentagonIndexMatchesMask(t *testing.T) {
	index := 0
	for cell := range All() {
		if !cell.IsPentagon() {
			continue
		}
		if got := cell.pentagonIndex(); got != index {
			t.Fatalf("pentagonIndex(%v) = %d, want %d", cell, got, index)
		}
		index++
	}
	if index != NumPentagons {
		t.Fatalf("walked %d pentagons, want %d", index, NumPentagons)
	}
}
