// Package life implements Conway's Game of Life on a fixed-size bounded
// grid: a bit-packed cell store, a double-buffered generation engine, and a
// small controller that owns the buffers and the tick loop state. The
// package contains pure simulation logic with no terminal dependencies.
package life

import (
	"crypto/md5"
	"fmt"
	"math/bits"
)

const wordBits = 64

// Grid stores the liveness of every cell in a height x width rectangle as a
// flat, row-major bitfield. Cells outside the rectangle are not represented;
// the generation engine treats them as permanently dead (the grid does not
// wrap).
type Grid struct {
	width       int
	height      int
	wordsPerRow int
	words       []uint64
}

// NewGrid allocates a cleared grid with the given dimensions.
// Dimensions are validated once here; both must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("life: invalid grid dimensions %dx%d", width, height)
	}
	wpr := (width + wordBits - 1) / wordBits
	return &Grid{
		width:       width,
		height:      height,
		wordsPerRow: wpr,
		words:       make([]uint64, wpr*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// checkBounds panics on out-of-range coordinates. Callers own the contract:
// an out-of-range access is a defect, not a recoverable condition.
func (g *Grid) checkBounds(row, col int) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("life: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.width, g.height))
	}
}

// Get returns the liveness of the cell at (row, col).
// Panics if the coordinate is outside [0,height) x [0,width).
func (g *Grid) Get(row, col int) bool {
	g.checkBounds(row, col)
	return g.words[row*g.wordsPerRow+col/wordBits]&(1<<(col%wordBits)) != 0
}

// Set overwrites the liveness of the cell at (row, col).
// Panics if the coordinate is outside [0,height) x [0,width).
func (g *Grid) Set(row, col int, alive bool) {
	g.checkBounds(row, col)
	idx := row*g.wordsPerRow + col/wordBits
	mask := uint64(1) << (col % wordBits)
	if alive {
		g.words[idx] |= mask
	} else {
		g.words[idx] &^= mask
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	count := 0
	for _, w := range g.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	words := make([]uint64, len(g.words))
	copy(words, g.words)
	return &Grid{
		width:       g.width,
		height:      g.height,
		wordsPerRow: g.wordsPerRow,
		words:       words,
	}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, w := range g.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

// Checksum returns an md5 hex digest of the cell stream. Two grids with the
// same dimensions have equal checksums iff their contents are identical;
// used for stagnation detection and purity checks.
func (g *Grid) Checksum() string {
	h := md5.New()
	buf := make([]byte, g.width)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.Get(row, col) {
				buf[col] = 1
			} else {
				buf[col] = 0
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
