package census

import (
	"context"
	"testing"
)

func TestRunValidatesOptions(t *testing.T) {
	if _, err := Run(context.Background(), Options{Runs: 0, MaxGenerations: 10, Width: 8, Height: 8}, nil); err == nil {
		t.Error("expected error for zero runs")
	}
	if _, err := Run(context.Background(), Options{Runs: 1, MaxGenerations: 0, Width: 8, Height: 8}, nil); err == nil {
		t.Error("expected error for zero generation cap")
	}
}

func TestRunEmptySeedGoesExtinct(t *testing.T) {
	// Density 0 seeds an empty grid, so the first tick reports extinction.
	report, err := Run(context.Background(), Options{
		Runs:           3,
		MaxGenerations: 100,
		Width:          10,
		Height:         10,
		Density:        0.0000001,
		Seed:           1,
	}, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Extinct != 3 {
		t.Errorf("expected 3 extinct runs, got %d", report.Extinct)
	}
	for _, r := range report.Results {
		if r.Outcome != OutcomeExtinct {
			t.Errorf("seed %d outcome = %s, expected extinct", r.Seed, r.Outcome)
		}
		if r.FinalPopulation != 0 {
			t.Errorf("seed %d final population = %d, expected 0", r.Seed, r.FinalPopulation)
		}
	}
}

func TestRunFullGridStagnates(t *testing.T) {
	// A full 2x2 grid is a block, so generation 1 repeats generation 0.
	report, err := Run(context.Background(), Options{
		Runs:           1,
		MaxGenerations: 50,
		Width:          2,
		Height:         2,
		Density:        1.0,
		Seed:           42,
	}, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Stagnant != 1 {
		t.Errorf("expected 1 stagnant run, got %+v", report)
	}
	if report.Results[0].Generations != 1 {
		t.Errorf("stagnation detected at generation %d, expected 1", report.Results[0].Generations)
	}
	if report.Results[0].FinalPopulation != 4 {
		t.Errorf("final population = %d, expected 4", report.Results[0].FinalPopulation)
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	opts := Options{
		Runs:           8,
		MaxGenerations: 200,
		Width:          30,
		Height:         20,
		Density:        0.5,
		Seed:           7,
	}

	opts.Workers = 1
	serial, err := Run(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("serial Run failed: %v", err)
	}

	opts.Workers = 4
	parallel, err := Run(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("parallel Run failed: %v", err)
	}

	for i := range serial.Results {
		if serial.Results[i] != parallel.Results[i] {
			t.Errorf("run %d diverged between worker counts:\nserial:   %+v\nparallel: %+v",
				i, serial.Results[i], parallel.Results[i])
		}
	}
}

func TestRunGenerationCap(t *testing.T) {
	report, err := Run(context.Background(), Options{
		Runs:           2,
		MaxGenerations: 5,
		Width:          40,
		Height:         30,
		Density:        0.5,
		Seed:           99,
	}, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, r := range report.Results {
		if r.Generations > 5 {
			t.Errorf("seed %d ran %d generations, cap was 5", r.Seed, r.Generations)
		}
	}
}

func TestRunRespectsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		Runs:           4,
		MaxGenerations: 1_000_000,
		Width:          100,
		Height:         100,
		Density:        0.5,
		Seed:           1,
	}, nil)
	if err == nil {
		t.Error("expected error from cancelled context")
	}
}
