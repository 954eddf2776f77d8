package basecell

import (
	"github.com/gravitas-games/icogrid"
	"github.com/gravitas-games/icogrid/coord"
)

// The tables below encode the resolution-0 topology of the icosahedral
// grid. They come from the original cartographic derivation and are the
// source of truth for adjacency and rotation; nothing here is computed
// from geometric first principles at runtime.

// Pentagon membership, one bit per base cell value (cells 4, 14, 24, 38,
// 49, 58, 63, 72, 83, 97, 107, 117). Split across two words because the
// cell space is 122 bits wide.
const (
	pentagonMaskLo uint64 = 0x8402004001004010
	pentagonMaskHi uint64 = 0x0020080200080100
)

// noPresence is the reserved 3-bit pattern marking a (cell, face) pair
// where the cell's area cannot be expressed on the face.
const noPresence = 0b111

// noNeighbor marks a direction with no neighboring base cell: the K slot
// of a pentagon.
const noNeighbor = 0xff

// metadata is the per-cell static record: the canonical home embedding
// plus, for some pentagons, the two faces needing a clockwise offset.
type metadata struct {
	home      icogrid.Face
	coord     coord.IJK
	cwOffset  [2]icogrid.Face
	hasOffset bool
}

var cellMetadata = [Count]metadata{
	{home: 1, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 0
	{home: 2, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 1
	{home: 1, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 2
	{home: 2, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 3
	{home: 0, coord: coord.IJK{I: 2, J: 0, K: 0}}, // 4
	{home: 1, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 5
	{home: 1, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 6
	{home: 2, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 7
	{home: 0, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 8
	{home: 2, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 9
	{home: 1, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 10
	{home: 1, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 11
	{home: 3, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 12
	{home: 3, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 13
	{home: 11, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{2, 6}, hasOffset: true}, // 14
	{home: 4, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 15
	{home: 0, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 16
	{home: 6, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 17
	{home: 0, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 18
	{home: 2, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 19
	{home: 7, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 20
	{home: 2, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 21
	{home: 0, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 22
	{home: 6, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 23
	{home: 10, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{1, 5}, hasOffset: true}, // 24
	{home: 6, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 25
	{home: 3, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 26
	{home: 11, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 27
	{home: 4, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 28
	{home: 3, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 29
	{home: 0, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 30
	{home: 4, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 31
	{home: 5, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 32
	{home: 0, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 33
	{home: 7, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 34
	{home: 11, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 35
	{home: 7, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 36
	{home: 10, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 37
	{home: 12, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{3, 7}, hasOffset: true}, // 38
	{home: 6, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 39
	{home: 7, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 40
	{home: 4, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 41
	{home: 3, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 42
	{home: 3, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 43
	{home: 4, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 44
	{home: 6, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 45
	{home: 11, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 46
	{home: 8, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 47
	{home: 5, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 48
	{home: 14, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{0, 9}, hasOffset: true}, // 49
	{home: 5, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 50
	{home: 12, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 51
	{home: 10, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 52
	{home: 4, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 53
	{home: 12, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 54
	{home: 7, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 55
	{home: 11, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 56
	{home: 10, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 57
	{home: 13, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{4, 8}, hasOffset: true}, // 58
	{home: 10, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 59
	{home: 11, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 60
	{home: 9, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 61
	{home: 8, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 62
	{home: 6, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{11, 15}, hasOffset: true}, // 63
	{home: 8, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 64
	{home: 9, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 65
	{home: 14, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 66
	{home: 5, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 67
	{home: 16, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 68
	{home: 8, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 69
	{home: 5, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 70
	{home: 12, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 71
	{home: 7, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{12, 16}, hasOffset: true}, // 72
	{home: 12, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 73
	{home: 10, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 74
	{home: 9, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 75
	{home: 13, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 76
	{home: 16, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 77
	{home: 15, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 78
	{home: 15, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 79
	{home: 16, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 80
	{home: 14, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 81
	{home: 13, coord: coord.IJK{I: 1, J: 1, K: 0}}, // 82
	{home: 5, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{10, 19}, hasOffset: true}, // 83
	{home: 8, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 84
	{home: 14, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 85
	{home: 9, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 86
	{home: 14, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 87
	{home: 17, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 88
	{home: 12, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 89
	{home: 16, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 90
	{home: 17, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 91
	{home: 15, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 92
	{home: 16, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 93
	{home: 9, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 94
	{home: 15, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 95
	{home: 13, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 96
	{home: 8, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{13, 17}, hasOffset: true}, // 97
	{home: 13, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 98
	{home: 17, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 99
	{home: 19, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 100
	{home: 14, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 101
	{home: 19, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 102
	{home: 17, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 103
	{home: 13, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 104
	{home: 17, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 105
	{home: 16, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 106
	{home: 9, coord: coord.IJK{I: 2, J: 0, K: 0}, cwOffset: [2]icogrid.Face{14, 18}, hasOffset: true}, // 107
	{home: 15, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 108
	{home: 15, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 109
	{home: 18, coord: coord.IJK{I: 0, J: 1, K: 1}}, // 110
	{home: 18, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 111
	{home: 19, coord: coord.IJK{I: 0, J: 0, K: 1}}, // 112
	{home: 17, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 113
	{home: 19, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 114
	{home: 18, coord: coord.IJK{I: 0, J: 1, K: 0}}, // 115
	{home: 18, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 116
	{home: 19, coord: coord.IJK{I: 2, J: 0, K: 0}}, // 117
	{home: 19, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 118
	{home: 18, coord: coord.IJK{I: 0, J: 0, K: 0}}, // 119
	{home: 19, coord: coord.IJK{I: 1, J: 0, K: 1}}, // 120
	{home: 18, coord: coord.IJK{I: 1, J: 0, K: 0}}, // 121
}

// cellRotations packs, per base cell, twenty 3-bit rotation fields (one
// per face): the 60° ccw rotation count for the cell's coordinate system
// as seen from that face, or noPresence when the cell does not reach it.
var cellRotations = [Count]uint64{
	// face 19  18  17  16  15  14  13  12  11  10  9   8   7   6   5   4   3   2   1   0
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_001_000_101,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_000_101_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000_101,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_001_000_101_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_100_011_010_001_000,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_000_101,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000_101_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_101_111_111_001_000,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_101_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_101,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_001_000_101_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_000_101_111_111,
	0b1111_111_111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_001_000_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_000_101_111_111_001,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_101_111_111_001_000,
	0b1111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_111_011_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111,
	0b1111_111_111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_011_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_101_111_111_111_000,
	0b1111_111_111_111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_011_111,
	0b1111_111_111_111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_001_000,
	0b1111_111_111_111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_011_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000_101_111_111,
	0b1111_111_111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_000_101_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_101_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000,
	0b1111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_101_111_111_001,
	0b1111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_111_011,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_011_101_111_111_111_000,
	0b1111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_111_011_111_111,
	0b1111_111_111_111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_011_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_001_000_111_111,
	// face 19  18  17  16  15  14  13  12  11  10  9   8   7   6   5   4   3   2   1   0
	0b1111_111_111_111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_001,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_001_000_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_101_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111,
	0b1111_111_111_111_011_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_011_111_111_111,
	0b1111_111_111_111_111_111_011_111_111_111_111_111_111_111_111_000_111_111_111_111_011,
	0b1111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_011_000_111_111_111_001,
	0b1111_111_111_111_111_111_011_111_111_111_011_111_111_111_111_000_111_111_111_111_011,
	0b1111_111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111_111,
	0b1111_111_111_111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111,
	0b1111_111_111_111_111_011_111_111_111_111_000_111_111_111_011_001_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_001_000_111_111_111,
	0b1111_111_111_111_111_011_111_111_111_111_000_111_111_111_011_111_111_111_111_111_111,
	0b1111_111_111_111_011_111_111_111_111_000_111_111_111_011_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_111,
	0b1111_111_111_111_111_111_111_011_111_111_111_111_000_111_111_111_111_011_111_111_111,
	0b1111_111_111_111_000_001_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_011_111_111_111,
	0b1111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_011_111_111_111_111,
	0b1111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_011_111_111_111_111_111,
	0b1111_111_111_111_111_111_011_111_111_111_111_111_111_111_111_000_111_111_111_111_111,
	0b1111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_011_111_111_111_011_111_111_111_111_000_111_111_111_111_111,
	0b1111_111_111_011_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111_111_111,
	0b1111_111_111_000_001_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111_111,
	0b1111_111_111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111,
	0b1111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_011_111_111_111_111,
	0b1111_111_111_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111,
	// face 19  18  17  16  15  14  13  12  11  10  9   8   7   6   5   4   3   2   1   0
	0b1111_111_111_111_101_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_101_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111,
	0b1111_001_111_111_111_000_011_111_111_111_011_111_111_111_111_000_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111_111_111,
	0b1111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_011_111_111_111_111_111,
	0b1111_111_111_111_111_111_111_011_111_111_111_000_111_111_111_111_111_111_111_111_111,
	0b1111_011_111_111_111_111_000_111_111_111_111_111_111_111_111_011_111_111_111_111_111,
	0b1111_111_111_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_011_111_111_111_111_000_111_111_111_011_111_111_111_111_111_111_111_111,
	0b1111_111_111_101_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_001_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111_111_111_111,
	0b1111_001_111_111_101_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_011_111_111_111_111_000_111_111_111_011_011_111_111_111_111_111_111_111_111,
	0b1111_111_000_001_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111_111_111,
	0b1111_111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111,
	0b1111_111_111_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_111_111_111_101_011_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_011_111_111_111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111,
	0b1111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_101_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_011_111_111_111_111_000_111_111_111_011_111_111_111_111_111_111_111_111_111,
	0b1111_111_101_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_111_101_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_001_111_111_111_011_011_111_111_111_000_111_111_111_111_111_111_111_111_111,
	0b1111_001_111_111_111_000_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_001_111_111_101_000_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_101_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_001_111_111_101_011_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_101_000_111_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_111_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_001_010_011_100_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_001_111_111_101_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_101_000_001_111_111_111_011_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
	0b1111_101_000_001_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111_111,
}

// pentagonDirectionFaces lists, for each pentagon in ascending cell order,
// the face touched by each edge. Faces are in directional order, starting
// at J.
var pentagonDirectionFaces = [NumPentagons][5]icogrid.Face{
	{4, 0, 2, 1, 3},
	{6, 11, 2, 7, 1},
	{5, 10, 1, 6, 0},
	{7, 12, 3, 8, 2},
	{9, 14, 0, 5, 4},
	{8, 13, 4, 9, 3},
	{11, 6, 15, 10, 16},
	{12, 7, 16, 11, 17},
	{10, 5, 19, 14, 15},
	{13, 8, 17, 12, 18},
	{14, 9, 18, 13, 19},
	{15, 19, 17, 18, 16},
}

// cellNeighbors gives the neighboring base cell in each direction
// (center, k, j, jk, i, ik, ij). 0xff marks the missing K edge of a
// pentagon.
var cellNeighbors = [Count][7]uint8{
	{0, 1, 5, 2, 4, 3, 8},
	{1, 7, 6, 9, 0, 3, 2},
	{2, 6, 10, 11, 0, 1, 5},
	{3, 13, 1, 7, 4, 12, 0},
	{4, 0xff, 15, 8, 3, 0, 12},
	{5, 2, 18, 10, 8, 0, 16},
	{6, 14, 11, 17, 1, 9, 2},
	{7, 21, 9, 19, 3, 13, 1},
	{8, 5, 22, 16, 4, 0, 15},
	{9, 19, 14, 20, 1, 7, 6},
	{10, 11, 24, 23, 5, 2, 18},
	{11, 17, 23, 25, 2, 6, 10},
	{12, 28, 13, 26, 4, 15, 3},
	{13, 26, 21, 29, 3, 12, 7},
	{14, 0xff, 17, 27, 9, 20, 6},
	{15, 22, 28, 31, 4, 8, 12},
	{16, 18, 33, 30, 8, 5, 22},
	{17, 11, 14, 6, 35, 25, 27},
	{18, 24, 30, 32, 5, 10, 16},
	{19, 34, 20, 36, 7, 21, 9},
	{20, 14, 19, 9, 40, 27, 36},
	{21, 38, 19, 34, 13, 29, 7},
	{22, 16, 41, 33, 15, 8, 31},
	{23, 24, 11, 10, 39, 37, 25},
	{24, 0xff, 32, 37, 10, 23, 18},
	{25, 23, 17, 11, 45, 39, 35},
	{26, 42, 29, 43, 12, 28, 13},
	{27, 40, 35, 46, 14, 20, 17},
	{28, 31, 42, 44, 12, 15, 26},
	{29, 43, 38, 47, 13, 26, 21},
	{30, 32, 48, 50, 16, 18, 33},
	{31, 41, 44, 53, 15, 22, 28},
	{32, 30, 24, 18, 52, 50, 37},
	{33, 30, 49, 48, 22, 16, 41},
	{34, 19, 38, 21, 54, 36, 51},
	{35, 46, 45, 56, 17, 27, 25},
	{36, 20, 34, 19, 55, 40, 54},
	{37, 39, 52, 57, 24, 23, 32},
	{38, 0xff, 34, 51, 29, 47, 21},
	{39, 37, 25, 23, 59, 57, 45},
	{40, 27, 36, 20, 60, 46, 55},
	{41, 49, 53, 61, 22, 33, 31},
	{42, 58, 43, 62, 28, 44, 26},
	{43, 62, 47, 64, 26, 42, 29},
	{44, 53, 58, 65, 28, 31, 42},
	{45, 39, 35, 25, 63, 59, 56},
	{46, 60, 56, 68, 27, 40, 35},
	{47, 38, 43, 29, 69, 51, 64},
	{48, 49, 30, 33, 67, 66, 50},
	{49, 0xff, 61, 66, 33, 48, 41},
	{50, 48, 32, 30, 70, 67, 52},
	{51, 69, 54, 71, 38, 47, 34},
	{52, 57, 70, 74, 32, 37, 50},
	{53, 61, 65, 75, 31, 41, 44},
	{54, 71, 55, 73, 34, 51, 36},
	{55, 40, 54, 36, 72, 60, 73},
	{56, 68, 63, 77, 35, 46, 45},
	{57, 59, 74, 78, 37, 39, 52},
	{58, 0xff, 62, 76, 44, 65, 42},
	{59, 63, 78, 79, 39, 45, 57},
	{60, 72, 68, 80, 40, 55, 46},
	{61, 53, 49, 41, 81, 75, 66},
	{62, 43, 58, 42, 82, 64, 76},
	{63, 0xff, 56, 45, 79, 59, 77},
	{64, 47, 62, 43, 84, 69, 82},
	{65, 58, 53, 44, 86, 76, 75},
	{66, 67, 81, 85, 49, 48, 61},
	{67, 66, 50, 48, 87, 85, 70},
	{68, 56, 60, 46, 90, 77, 80},
	{69, 51, 64, 47, 89, 71, 84},
	{70, 67, 52, 50, 83, 87, 74},
	{71, 89, 73, 91, 51, 69, 54},
	{72, 0xff, 73, 55, 80, 60, 88},
	{73, 91, 72, 88, 54, 71, 55},
	{74, 78, 83, 92, 52, 57, 70},
	{75, 65, 61, 53, 94, 86, 81},
	{76, 86, 82, 96, 58, 65, 62},
	{77, 63, 68, 56, 93, 79, 90},
	{78, 74, 59, 57, 95, 92, 79},
	{79, 78, 63, 59, 93, 95, 77},
	{80, 68, 72, 60, 99, 90, 88},
	{81, 85, 94, 101, 61, 66, 75},
	{82, 96, 84, 98, 62, 76, 64},
	{83, 0xff, 74, 70, 100, 87, 92},
	{84, 69, 82, 64, 97, 89, 98},
	{85, 87, 101, 102, 66, 67, 81},
	{86, 76, 75, 65, 104, 96, 94},
	{87, 83, 102, 100, 67, 70, 85},
	{88, 72, 91, 73, 99, 80, 105},
	{89, 97, 91, 103, 69, 84, 71},
	{90, 77, 80, 68, 106, 93, 99},
	{91, 73, 89, 71, 105, 88, 103},
	{92, 83, 78, 74, 108, 100, 95},
	{93, 79, 90, 77, 109, 95, 106},
	{94, 86, 81, 75, 107, 104, 101},
	{95, 92, 79, 78, 109, 108, 93},
	{96, 104, 98, 110, 76, 86, 82},
	{97, 0xff, 98, 84, 103, 89, 111},
	{98, 110, 97, 111, 82, 96, 84},
	{99, 80, 105, 88, 106, 90, 113},
	{100, 102, 83, 87, 108, 114, 92},
	{101, 102, 107, 112, 81, 85, 94},
	{102, 101, 87, 85, 114, 112, 100},
	{103, 91, 97, 89, 116, 105, 111},
	{104, 107, 110, 115, 86, 94, 96},
	{105, 88, 103, 91, 113, 99, 116},
	{106, 93, 99, 90, 117, 109, 113},
	{107, 0xff, 101, 94, 115, 104, 112},
	{108, 100, 95, 92, 118, 114, 109},
	{109, 108, 93, 95, 117, 118, 106},
	{110, 98, 104, 96, 119, 111, 115},
	{111, 97, 110, 98, 116, 103, 119},
	{112, 107, 102, 101, 120, 115, 114},
	{113, 99, 116, 105, 117, 106, 121},
	{114, 112, 100, 102, 118, 120, 108},
	{115, 110, 107, 104, 120, 119, 112},
	{116, 103, 119, 111, 113, 105, 121},
	{117, 0xff, 109, 118, 113, 121, 106},
	{118, 120, 108, 114, 117, 121, 109},
	{119, 111, 115, 110, 121, 116, 120},
	{120, 115, 114, 112, 121, 119, 118},
	{121, 116, 120, 119, 117, 113, 118},
}

// neighborRotations gives, for each direction, the number of 60° ccw
// rotations into the neighbor's coordinate system. 0xff marks the missing
// K edge of a pentagon, mirroring cellNeighbors.
var neighborRotations = [Count][7]uint8{
	{0, 5, 0, 0, 1, 5, 1},
	{0, 0, 1, 0, 1, 0, 1},
	{0, 0, 0, 0, 0, 5, 0},
	{0, 5, 0, 0, 2, 5, 1},
	{0, 0xff, 1, 0, 3, 4, 2},
	{0, 0, 1, 0, 1, 0, 1},
	{0, 0, 0, 3, 5, 5, 0},
	{0, 0, 0, 0, 0, 5, 0},
	{0, 5, 0, 0, 0, 5, 1},
	{0, 0, 1, 3, 0, 0, 1},
	{0, 0, 1, 3, 0, 0, 1},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 5, 0, 0, 3, 5, 1},
	{0, 0, 1, 0, 1, 0, 1},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 5, 0, 0, 4, 5, 1},
	{0, 0, 0, 0, 0, 5, 0},
	{0, 3, 3, 3, 3, 0, 3},
	{0, 0, 0, 3, 5, 5, 0},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 3, 3, 3, 0, 3, 0},
	{0, 0, 0, 3, 5, 5, 0},
	{0, 0, 1, 0, 1, 0, 1},
	{0, 3, 3, 3, 0, 3, 0},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 0, 0, 3, 0, 0, 3},
	{0, 0, 0, 0, 0, 5, 0},
	{0, 3, 0, 0, 0, 3, 3},
	{0, 0, 1, 0, 1, 0, 1},
	{0, 0, 1, 3, 0, 0, 1},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 0, 0, 0, 5, 0},
	{0, 3, 3, 3, 3, 0, 3},
	{0, 0, 1, 3, 0, 0, 1},
	{0, 3, 3, 3, 3, 0, 3},
	{0, 0, 3, 0, 3, 0, 3},
	{0, 0, 0, 3, 0, 0, 3},
	{0, 3, 0, 0, 0, 3, 3},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 3, 0, 0, 3, 3, 0},
	{0, 3, 0, 0, 3, 3, 0},
	{0, 0, 0, 3, 5, 5, 0},
	{0, 0, 0, 3, 5, 5, 0},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 1, 3, 0, 0, 1},
	{0, 0, 3, 0, 0, 3, 3},
	{0, 0, 0, 3, 0, 3, 0},
	{0, 3, 3, 3, 0, 3, 0},
	{0, 3, 3, 3, 0, 3, 0},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 0, 0, 3, 0, 0, 3},
	{0, 3, 0, 0, 0, 3, 3},
	{0, 0, 3, 0, 3, 0, 3},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 3, 0, 3, 0, 3},
	{0, 0, 3, 0, 0, 3, 3},
	{0, 3, 3, 3, 0, 0, 3},
	{0, 0, 0, 3, 0, 3, 0},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 3, 3, 3, 3, 3, 0},
	{0, 3, 3, 3, 3, 3, 0},
	{0, 3, 3, 3, 3, 0, 3},
	{0, 3, 3, 3, 3, 0, 3},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 0, 0, 3, 0, 0, 3},
	{0, 3, 3, 3, 0, 3, 0},
	{0, 3, 0, 0, 0, 3, 3},
	{0, 3, 0, 0, 3, 3, 0},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 3, 0, 0, 3, 3, 0},
	{0, 0, 3, 0, 0, 3, 3},
	{0, 0, 0, 3, 0, 3, 0},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 3, 3, 3, 0, 0, 3},
	{0, 3, 3, 3, 0, 0, 3},
	{0, 0, 0, 3, 0, 0, 3},
	{0, 3, 0, 0, 0, 3, 3},
	{0, 0, 0, 3, 0, 5, 0},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 1, 3, 1, 0, 1},
	{0, 0, 1, 3, 1, 0, 1},
	{0, 0, 3, 0, 3, 0, 3},
	{0, 0, 3, 0, 3, 0, 3},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 0, 3, 0, 0, 3, 3},
	{0, 0, 0, 3, 0, 3, 0},
	{0, 3, 0, 0, 3, 3, 0},
	{0, 3, 3, 3, 3, 3, 0},
	{0, 0, 0, 3, 0, 5, 0},
	{0, 3, 3, 3, 3, 3, 0},
	{0, 0, 0, 0, 0, 0, 1},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 0, 3, 0, 5, 0},
	{0, 5, 0, 0, 5, 5, 0},
	{0, 0, 3, 0, 0, 3, 3},
	{0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 3, 0, 3, 0},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 3, 3, 3, 0, 0, 3},
	{0, 5, 0, 0, 5, 5, 0},
	{0, 0, 1, 3, 1, 0, 1},
	{0, 3, 3, 3, 0, 0, 3},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 1, 3, 1, 0, 1},
	{0, 3, 3, 3, 3, 3, 0},
	{0, 0, 0, 0, 0, 0, 1},
	{0, 0, 1, 0, 3, 5, 1},
	{0, 0xff, 3, 0, 5, 2, 0},
	{0, 5, 0, 0, 5, 5, 0},
	{0, 0, 1, 0, 4, 5, 1},
	{0, 3, 3, 3, 0, 0, 0},
	{0, 0, 0, 3, 0, 5, 0},
	{0, 0, 0, 3, 0, 5, 0},
	{0, 0, 1, 0, 2, 5, 1},
	{0, 0, 0, 0, 0, 0, 1},
	{0, 0, 1, 3, 1, 0, 1},
	{0, 5, 0, 0, 5, 5, 0},
	{0, 0xff, 1, 0, 3, 4, 2},
	{0, 0, 1, 0, 0, 5, 1},
	{0, 0, 0, 0, 0, 0, 1},
	{0, 5, 0, 0, 5, 5, 0},
	{0, 0, 1, 0, 1, 5, 1},
}
