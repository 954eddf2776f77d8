package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/icogrid/basecell"
	"github.com/gravitas-games/icogrid/internal/config"
	"github.com/gravitas-games/icogrid/pkg/models"
)

var pentagonsCmd = &cobra.Command{
	Use:   "pentagons",
	Short: "List the 12 pentagonal base cells and their edge faces",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		infos := make([]models.PentagonInfo, 0, basecell.NumPentagons)
		for cell := range basecell.All() {
			if cell.IsPentagon() {
				infos = append(infos, models.NewPentagonInfo(cell))
			}
		}

		if cfg.Format == "yaml" {
			return writeYAML(os.Stdout, infos)
		}

		for _, p := range infos {
			marker := ""
			if p.Polar {
				marker = " (polar)"
			}
			fmt.Printf("cell %3d%s: edge faces %v\n", p.Cell, marker, p.DirectionFaces)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pentagonsCmd)
}
