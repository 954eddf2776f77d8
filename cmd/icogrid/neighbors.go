package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/icogrid/internal/config"
	"github.com/gravitas-games/icogrid/pkg/models"
)

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <cell>",
	Short: "List the directional neighbors of a base cell with rotations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cell, err := parseCell(args[0])
		if err != nil {
			return err
		}

		infos := models.NewNeighborInfo(cell)
		if cfg.Format == "yaml" {
			return writeYAML(os.Stdout, infos)
		}

		fmt.Printf("base cell %v has %d neighbors\n", cell, len(infos))
		for _, n := range infos {
			fmt.Printf("  %-2s -> cell %3d (rotation %d)\n", n.Direction, n.Cell, n.Rotation)
		}
		if cell.IsPentagon() {
			fmt.Println("  k  -> (none: pentagon)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(neighborsCmd)
}
