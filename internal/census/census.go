// Package census runs batches of headless simulations and aggregates how
// long each random seed survives. Every run is an independent simulation
// stepped on a single goroutine; the batch fans runs out across workers.
package census

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeExtinct means every cell died.
	OutcomeExtinct Outcome = "extinct"
	// OutcomeStagnant means the grid settled into a still life or a short
	// oscillator.
	OutcomeStagnant Outcome = "stagnant"
	// OutcomeExhausted means the run hit the generation cap while still
	// evolving.
	OutcomeExhausted Outcome = "exhausted"
)

// historyDepth is how many recent grid checksums are kept per run. Repeating
// any of them means the grid is a still life or an oscillator with period
// up to historyDepth.
const historyDepth = 8

// Options configures a census batch.
type Options struct {
	Runs           int
	MaxGenerations uint64
	Width          int
	Height         int
	Density        float64
	Seed           int64 // base seed; run i uses Seed+i
	Workers        int   // concurrent runs; <=0 means 1
}

// RunResult summarises a single run.
type RunResult struct {
	Seed            int64
	Outcome         Outcome
	Generations     uint64
	TotalBirths     uint64
	TotalDeaths     uint64
	FinalPopulation int
}

// Report aggregates a finished batch.
type Report struct {
	Results []RunResult

	Extinct        int
	Stagnant       int
	Exhausted      int
	MaxGenerations uint64
	AvgGenerations float64
	AvgPopulation  float64 // mean final population across runs
	Elapsed        time.Duration
}

// Run executes opts.Runs independent simulations and aggregates the results.
// The context cancels the whole batch.
func Run(ctx context.Context, opts Options, logger *log.Logger) (*Report, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("census: runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxGenerations == 0 {
		return nil, fmt.Errorf("census: max generations must be positive")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	results := make([]RunResult, opts.Runs)

	var (
		mu   sync.Mutex
		done int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			seed := opts.Seed + int64(i)
			res, err := singleRun(ctx, seed, opts)
			if err != nil {
				return err
			}
			results[i] = res

			mu.Lock()
			done++
			logger.Debug("run finished",
				"seed", seed,
				"outcome", res.Outcome,
				"generations", res.Generations,
				"progress", fmt.Sprintf("%d/%d", done, opts.Runs))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Results: results,
		Elapsed: time.Since(start),
	}
	var totalGens, totalPop uint64
	for _, r := range results {
		switch r.Outcome {
		case OutcomeExtinct:
			report.Extinct++
		case OutcomeStagnant:
			report.Stagnant++
		case OutcomeExhausted:
			report.Exhausted++
		}
		if r.Generations > report.MaxGenerations {
			report.MaxGenerations = r.Generations
		}
		totalGens += r.Generations
		totalPop += uint64(r.FinalPopulation)
	}
	report.AvgGenerations = float64(totalGens) / float64(opts.Runs)
	report.AvgPopulation = float64(totalPop) / float64(opts.Runs)

	logger.Info("census complete",
		"runs", opts.Runs,
		"extinct", report.Extinct,
		"stagnant", report.Stagnant,
		"exhausted", report.Exhausted,
		"elapsed", report.Elapsed)

	return report, nil
}

// singleRun steps one simulation until extinction, stagnation or the
// generation cap.
func singleRun(ctx context.Context, seed int64, opts Options) (RunResult, error) {
	sim, err := life.New(life.Params{
		Width:   opts.Width,
		Height:  opts.Height,
		Density: opts.Density,
		Rand:    rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("census: seed %d: %w", seed, err)
	}

	history := make([]string, 0, historyDepth)
	history = append(history, sim.Snapshot().Checksum)

	outcome := OutcomeExhausted
	for sim.Generation() < opts.MaxGenerations {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		sim.Tick()

		snap := sim.Snapshot()
		if snap.Population == 0 {
			outcome = OutcomeExtinct
			break
		}
		if repeats(history, snap.Checksum) {
			outcome = OutcomeStagnant
			break
		}
		history = append(history, snap.Checksum)
		if len(history) > historyDepth {
			history = history[1:]
		}
	}

	snap := sim.Snapshot()
	return RunResult{
		Seed:            seed,
		Outcome:         outcome,
		Generations:     snap.Generation,
		TotalBirths:     sim.TotalBirths(),
		TotalDeaths:     sim.TotalDeaths(),
		FinalPopulation: snap.Population,
	}, nil
}

func repeats(history []string, checksum string) bool {
	for _, h := range history {
		if h == checksum {
			return true
		}
	}
	return false
}
