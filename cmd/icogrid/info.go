package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/icogrid/internal/config"
	"github.com/gravitas-games/icogrid/pkg/models"
)

var infoCmd = &cobra.Command{
	Use:   "info <cell>",
	Short: "Show classification and home embedding for a base cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cell, err := parseCell(args[0])
		if err != nil {
			return err
		}

		info := models.NewCellInfo(cell)
		if cfg.Format == "yaml" {
			return writeYAML(os.Stdout, info)
		}

		kind := "hexagon"
		if info.PolarPentagon {
			kind = "polar pentagon"
		} else if info.Pentagon {
			kind = "pentagon"
		}
		fmt.Printf("base cell %d (%s)\n", info.Cell, kind)
		fmt.Printf("  home: face %d, ijk (%d, %d, %d)\n",
			info.HomeFace, info.HomeCoord.I, info.HomeCoord.J, info.HomeCoord.K)
		if len(info.CwOffsetFaces) > 0 {
			faces := make([]string, len(info.CwOffsetFaces))
			for i, f := range info.CwOffsetFaces {
				faces[i] = fmt.Sprintf("%d", f)
			}
			fmt.Printf("  cw offset faces: %s\n", strings.Join(faces, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
