package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit   int
	flagLongest bool
	flagClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved run history",
	Long: `Display summaries of past simulation runs: seed, grid size, how many
generations the run lasted and the birth/death totals.

Examples:
  life history
  life history --limit 25
  life history --longest
  life history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagLongest, "longest", false, "Order by generations survived instead of recency")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.RunRecord
	if flagLongest {
		runs, err = store.LongestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life run' and reseed or quit to record one.")
		return
	}

	if flagLongest {
		fmt.Println("Longest runs:")
	} else {
		fmt.Println("Recent runs:")
	}
	fmt.Println()

	fmt.Printf("  %-12s  %-9s  %-11s  %-8s  %-8s  %-5s  %s\n",
		"Seed", "Grid", "Generations", "Born", "Died", "Pop", "Date")
	fmt.Printf("  %-12s  %-9s  %-11s  %-8s  %-8s  %-5s  %s\n",
		"----", "----", "-----------", "----", "----", "---", "----")

	for _, r := range runs {
		grid := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12d  %-9s  %-11d  %-8d  %-8d  %-5d  %s\n",
			r.Seed, grid, r.Generations, r.TotalBirths, r.TotalDeaths, r.FinalPopulation, dateStr)
	}

	stats, err := store.Stats()
	if err == nil && stats.RunCount > 0 {
		fmt.Println()
		fmt.Printf("Total runs: %d | Longest: %d generations | Average: %.1f\n",
			stats.RunCount, stats.MaxGenerations, stats.AvgGenerations)
	}
}
