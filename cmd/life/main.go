// life runs Conway's Game of Life in the terminal.
//
// Usage:
//
//	life run                 - Run the interactive simulation
//	life patterns            - List the built-in starting patterns
//	life census              - Run headless batches and report survival stats
//	life history             - Show saved run history
//	life serve               - Start SSH server for remote sessions
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.life/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life is a terminal renderer for Conway's Game of Life: a bounded
grid seeded at random, stepped one generation at a time.

Available commands:
  run       - Interactive simulation in the current terminal
  patterns  - List the built-in starting patterns
  census    - Headless batch runs with survival statistics
  history   - View saved run history
  serve     - Start SSH server for remote sessions

Examples:
  life run
  life run --pattern glider
  life census --runs 100 --generations 5000
  life history --longest
  life serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(censusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
