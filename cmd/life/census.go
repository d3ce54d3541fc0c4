package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/census"
)

var (
	flagRuns        int
	flagGenerations uint64
	flagGridW       int
	flagGridH       int
	flagCensusDens  float64
	flagWorkers     int
	flagVerbose     bool
)

var censusCmd = &cobra.Command{
	Use:   "census",
	Short: "Run headless batches and report survival statistics",
	Long: `Run many simulations without rendering and report how each random
seed ended: extinct, stagnant (settled into a still life or oscillator) or
still evolving at the generation cap.

Seeds are sequential starting from --seed, so a batch is fully reproducible.

Examples:
  life census --runs 100 --generations 5000
  life census --runs 1000 --width 64 --height 48 --workers 8
  life census --seed 42 --runs 10 --verbose`,
	Args: cobra.NoArgs,
	Run:  runCensus,
}

func init() {
	censusCmd.Flags().IntVar(&flagRuns, "runs", 100, "Number of simulations to run")
	censusCmd.Flags().Uint64Var(&flagGenerations, "generations", 5000, "Generation cap per run")
	censusCmd.Flags().IntVar(&flagGridW, "width", 80, "Grid width")
	censusCmd.Flags().IntVar(&flagGridH, "height", 24, "Grid height")
	censusCmd.Flags().Float64Var(&flagCensusDens, "density", 0.5, "Seeding live probability")
	censusCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Concurrent runs")
	censusCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every finished run")
}

func runCensus(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "census",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := census.Run(ctx, census.Options{
		Runs:           flagRuns,
		MaxGenerations: flagGenerations,
		Width:          flagGridW,
		Height:         flagGridH,
		Density:        flagCensusDens,
		Seed:           seed,
		Workers:        flagWorkers,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Census of %d runs on a %dx%d grid (base seed %d)\n",
		flagRuns, flagGridW, flagGridH, seed)
	fmt.Println()
	fmt.Printf("  %-10s  %d\n", "extinct", report.Extinct)
	fmt.Printf("  %-10s  %d\n", "stagnant", report.Stagnant)
	fmt.Printf("  %-10s  %d\n", "exhausted", report.Exhausted)
	fmt.Println()
	fmt.Printf("Longest run:      %d generations\n", report.MaxGenerations)
	fmt.Printf("Average:          %.1f generations\n", report.AvgGenerations)
	fmt.Printf("Final population: %.1f on average\n", report.AvgPopulation)
	fmt.Printf("Elapsed:          %s\n", report.Elapsed.Round(time.Millisecond))
}
