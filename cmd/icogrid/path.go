package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/icogrid/basecell"
)

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Show the grid distance and a shortest path between two base cells",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseCell(args[0])
		if err != nil {
			return err
		}
		to, err := parseCell(args[1])
		if err != nil {
			return err
		}

		path := basecell.GridPath(from, to)
		fmt.Printf("distance: %d\n", len(path)-1)
		fmt.Print("path:")
		for _, c := range path {
			fmt.Printf(" %v", c)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
