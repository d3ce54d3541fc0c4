package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagConfig  string
	flagPattern string
	flagDelayMs int
	flagWidth   int
	flagHeight  int
	flagDensity float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive simulation",
	Long: `Start the simulation in the current terminal.

Controls:
  Space      - Pause/resume
  R          - Reseed the grid
  Up/Down    - Speed up / slow down
  D          - Restore default speed
  Q/Ctrl+C   - Quit

Examples:
  life run
  life run --pattern glider
  life run --width 120 --height 40 --density 0.3
  life run --delay 200 --seed 42
  life run --config ./my-life.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	runCmd.Flags().StringVar(&flagPattern, "pattern", "", "Start from a named pattern instead of a random seed")
	runCmd.Flags().IntVar(&flagDelayMs, "delay", 0, "Initial delay between generations in ms (0 = from config)")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (0 = from config, fit terminal by default)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (0 = from config, fit terminal by default)")
	runCmd.Flags().Float64Var(&flagDensity, "density", 0, "Seeding live probability (0 = from config)")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadLife(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if flagWidth != 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight != 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagDensity != 0 {
		cfg.Grid.Density = flagDensity
	}
	if flagDelayMs != 0 {
		cfg.Timing.DelayMs = flagDelayMs
	}

	liveColor, err := config.ResolveColor(cfg.Theme.LiveColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	liveRune, deadRune := cfg.Theme.Runes()

	// Get terminal size early so the model can size the grid before the
	// first window message arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		// Continue without storage - simulation still works
		store = nil
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Delay:   time.Duration(cfg.Timing.DelayMs) * time.Millisecond,
			Seed:    flagSeed,
		},
		GridWidth:  cfg.Grid.Width,
		GridHeight: cfg.Grid.Height,
		Density:    cfg.Grid.Density,
		Pattern:    flagPattern,
		DelayStep:  time.Duration(cfg.Timing.DelayStepMs) * time.Millisecond,
		MinDelay:   time.Duration(cfg.Timing.MinDelayMs) * time.Millisecond,
		Theme: tui.Theme{
			LiveRune:  liveRune,
			DeadRune:  deadRune,
			LiveColor: liveColor,
		},
		Store: store,
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
