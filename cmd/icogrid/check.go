package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/icogrid/basecell"
	"github.com/gravitas-games/icogrid/coord"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the topology self-checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !runTopologyChecks(os.Stderr) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runTopologyChecks verifies the invariants of the base-cell tables and
// reports one line per property. Returns false if any property fails.
func runTopologyChecks(w io.Writer) bool {
	ok := true
	report := func(name string, pass bool, detail string) {
		if pass {
			fmt.Fprintf(w, "✓ %s\n", name)
		} else {
			fmt.Fprintf(w, "✗ %s: %s\n", name, detail)
			ok = false
		}
	}

	cells, pentagons := 0, 0
	for cell := range basecell.All() {
		cells++
		if cell.IsPentagon() {
			pentagons++
		}
	}
	report("cardinality", cells == basecell.Count && pentagons == basecell.NumPentagons,
		fmt.Sprintf("got %d cells, %d pentagons", cells, pentagons))

	symmetric := true
	detail := ""
	for cell := range basecell.All() {
		for d := coord.K; d < coord.NumDirections; d++ {
			neighbor, defined := cell.Neighbor(d)
			if !defined {
				continue
			}
			if back, adjacent := neighbor.DirectionTo(cell); !adjacent || back == coord.Center {
				symmetric = false
				detail = fmt.Sprintf("cell %v -> %v not reciprocal", cell, neighbor)
			}
		}
	}
	report("neighbor symmetry", symmetric, detail)

	edges := true
	detail = ""
	for cell := range basecell.All() {
		missing := 0
		for d := coord.K; d < coord.NumDirections; d++ {
			if _, defined := cell.Neighbor(d); !defined {
				if d != coord.K {
					edges = false
					detail = fmt.Sprintf("cell %v missing neighbor in direction %v", cell, d)
				}
				missing++
			}
		}
		want := 0
		if cell.IsPentagon() {
			want = 1
		}
		if missing != want {
			edges = false
			detail = fmt.Sprintf("cell %v has %d missing edges, want %d", cell, missing, want)
		}
	}
	report("pentagon edge counts", edges, detail)

	rotations := true
	detail = ""
	for cell := range basecell.All() {
		if r := cell.RotationCount(cell.Home().Face); r != 0 {
			rotations = false
			detail = fmt.Sprintf("cell %v home rotation is %d", cell, r)
		}
	}
	report("home-face rotations", rotations, detail)

	faces := true
	detail = ""
	for cell := range basecell.All() {
		if !cell.IsPentagon() {
			continue
		}
		seen := map[int]bool{}
		for _, f := range cell.PentagonDirectionFaces() {
			if seen[int(f)] {
				faces = false
				detail = fmt.Sprintf("pentagon %v repeats face %d", cell, f)
			}
			seen[int(f)] = true
		}
	}
	report("pentagon direction faces", faces, detail)

	return ok
}
