package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/icogrid/basecell"
)

// parseCell converts a command-line argument into a validated base cell.
func parseCell(arg string) (basecell.Cell, error) {
	v, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid base cell %q: %w", arg, err)
	}
	return basecell.New(uint8(v))
}

// writeYAML renders v as a YAML document on w.
func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
