// Package models holds the presentation structs the icogrid CLI renders
// as text or YAML.
package models

import (
	"github.com/gravitas-games/icogrid"
	"github.com/gravitas-games/icogrid/basecell"
	"github.com/gravitas-games/icogrid/coord"
)

// IJK mirrors a cube coordinate for output.
type IJK struct {
	I int `yaml:"i"`
	J int `yaml:"j"`
	K int `yaml:"k"`
}

// CellInfo describes one base cell: classification and home embedding.
type CellInfo struct {
	Cell          int   `yaml:"cell"`
	Pentagon      bool  `yaml:"pentagon"`
	PolarPentagon bool  `yaml:"polar_pentagon,omitempty"`
	HomeFace      int   `yaml:"home_face"`
	HomeCoord     IJK   `yaml:"home_coord"`
	CwOffsetFaces []int `yaml:"cw_offset_faces,omitempty"`
}

// NeighborInfo describes one directional adjacency of a base cell.
type NeighborInfo struct {
	Direction string `yaml:"direction"`
	Cell      int    `yaml:"cell"`
	Rotation  int    `yaml:"rotation"`
}

// PentagonInfo describes one pentagonal base cell and its edge faces.
type PentagonInfo struct {
	Cell           int   `yaml:"cell"`
	Polar          bool  `yaml:"polar,omitempty"`
	DirectionFaces []int `yaml:"direction_faces"`
}

// NewCellInfo builds the CellInfo for a base cell.
func NewCellInfo(c basecell.Cell) CellInfo {
	home := c.Home()
	info := CellInfo{
		Cell:          int(c),
		Pentagon:      c.IsPentagon(),
		PolarPentagon: c.IsPolarPentagon(),
		HomeFace:      int(home.Face),
		HomeCoord:     IJK{I: home.Coord.I, J: home.Coord.J, K: home.Coord.K},
	}
	for f := 0; f < icogrid.NumFaces; f++ {
		if c.IsClockwiseOffset(icogrid.Face(f)) {
			info.CwOffsetFaces = append(info.CwOffsetFaces, f)
		}
	}
	return info
}

// NewNeighborInfo lists the defined neighbors of a base cell, one entry per
// non-center direction. A pentagon yields 5 entries, a hexagon 6.
func NewNeighborInfo(c basecell.Cell) []NeighborInfo {
	infos := make([]NeighborInfo, 0, 6)
	for d := coord.K; d < coord.NumDirections; d++ {
		n, ok := c.Neighbor(d)
		if !ok {
			continue
		}
		infos = append(infos, NeighborInfo{
			Direction: d.String(),
			Cell:      int(n),
			Rotation:  int(c.NeighborRotation(d)),
		})
	}
	return infos
}

// NewPentagonInfo builds the PentagonInfo for a pentagonal base cell.
func NewPentagonInfo(c basecell.Cell) PentagonInfo {
	faces := c.PentagonDirectionFaces()
	info := PentagonInfo{
		Cell:           int(c),
		Polar:          c.IsPolarPentagon(),
		DirectionFaces: make([]int, len(faces)),
	}
	for i, f := range faces {
		info.DirectionFaces[i] = int(f)
	}
	return info
}
