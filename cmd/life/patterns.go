package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in starting patterns",
	Long:  `Shows the patterns that can be used with 'life run --pattern'.`,
	Args:  cobra.NoArgs,
	Run:   runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	ids := life.PatternIDs()

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "----", "----")

	for _, id := range ids {
		p, err := life.LookupPattern(id)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-14s  %dx%d\n", maxIDLen, id, p.Name, p.Width(), p.Height())
	}

	fmt.Println()
	fmt.Println("Run 'life run --pattern <id>' to start from a pattern.")
}
