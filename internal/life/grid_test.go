package life

import (
	"strings"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{-1, 10},
		{10, -5},
		{0, 0},
	}
	for _, c := range cases {
		if _, err := NewGrid(c.w, c.h); err == nil {
			t.Errorf("NewGrid(%d, %d) should fail", c.w, c.h)
		}
	}
}

func TestGridSetGet(t *testing.T) {
	g, err := NewGrid(70, 5) // wider than one 64-bit word per row
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	// All cells start dead
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Get(row, col) {
				t.Fatalf("Cell (%d,%d) should start dead", row, col)
			}
		}
	}

	// Set cells on both sides of the word boundary
	coords := [][2]int{{0, 0}, {0, 63}, {0, 64}, {0, 69}, {4, 69}, {2, 33}}
	for _, c := range coords {
		g.Set(c[0], c[1], true)
	}
	for _, c := range coords {
		if !g.Get(c[0], c[1]) {
			t.Errorf("Cell (%d,%d) should be alive", c[0], c[1])
		}
	}
	if got := g.Population(); got != len(coords) {
		t.Errorf("Population() = %d, want %d", got, len(coords))
	}

	// Clearing a single bit must not disturb its neighbours in the word
	g.Set(0, 63, false)
	if g.Get(0, 63) {
		t.Error("Cell (0,63) should be dead after Set(false)")
	}
	if !g.Get(0, 64) || !g.Get(0, 0) {
		t.Error("Clearing (0,63) disturbed other cells")
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	cases := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too big", 10, 0},
		{"col too big", 0, 10},
	}
	for _, c := range cases {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("%s: Get(%d,%d) should panic", c.name, c.row, c.col)
					return
				}
				if !strings.Contains(r.(string), "out of bounds") {
					t.Errorf("%s: unexpected panic message %v", c.name, r)
				}
			}()
			g.Get(c.row, c.col)
		}()
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g, _ := NewGrid(20, 20)
	g.Set(3, 7, true)
	g.Set(19, 0, true)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("Clone should equal the original")
	}

	// Mutating the clone must not affect the original
	clone.Set(5, 5, true)
	if g.Equal(clone) {
		t.Error("Grids should differ after mutating the clone")
	}
	if g.Get(5, 5) {
		t.Error("Mutating the clone leaked into the original")
	}

	other, _ := NewGrid(20, 10)
	if g.Equal(other) {
		t.Error("Grids of different dimensions should not be equal")
	}
}

func TestGridChecksum(t *testing.T) {
	a, _ := NewGrid(30, 30)
	b, _ := NewGrid(30, 30)

	a.Set(4, 4, true)
	b.Set(4, 4, true)
	if a.Checksum() != b.Checksum() {
		t.Error("Identical grids should have identical checksums")
	}

	b.Set(4, 5, true)
	if a.Checksum() == b.Checksum() {
		t.Error("Different grids should have different checksums")
	}
}

func TestGridClear(t *testing.T) {
	g, _ := NewGrid(8, 8)
	for col := 0; col < 8; col++ {
		g.Set(3, col, true)
	}
	g.Clear()
	if g.Population() != 0 {
		t.Errorf("Population after Clear() = %d, want 0", g.Population())
	}
}
