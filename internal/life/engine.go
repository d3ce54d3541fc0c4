package life

import "fmt"

// Advance computes the next generation of cur into next and returns the
// number of births (dead -> live) and deaths (live -> dead) of the tick.
//
// Classic B3/S23 rules, applied simultaneously to every cell:
//  1. A live cell with fewer than two live neighbours dies.
//  2. A live cell with two or three live neighbours survives.
//  3. A live cell with more than three live neighbours dies.
//  4. A dead cell with exactly three live neighbours is born.
//
// Reads are confined to cur and writes to next, so next never feeds back
// into the neighbour counts of the same tick. cur is never mutated; for a
// fixed input the output is bit-identical on every call.
//
// The grid boundary does not wrap: positions outside the rectangle count as
// dead, so edge and corner cells simply have fewer neighbour candidates.
func Advance(cur, next *Grid) (births, deaths int) {
	if cur.width != next.width || cur.height != next.height {
		panic(fmt.Sprintf("life: buffer dimensions differ (%dx%d vs %dx%d)",
			cur.width, cur.height, next.width, next.height))
	}

	for row := 0; row < cur.height; row++ {
		for col := 0; col < cur.width; col++ {
			n := cur.liveNeighbors(row, col)
			alive := cur.Get(row, col)
			switch {
			case alive && (n == 2 || n == 3):
				next.Set(row, col, true)
			case alive:
				next.Set(row, col, false)
				deaths++
			case n == 3:
				next.Set(row, col, true)
				births++
			default:
				next.Set(row, col, false)
			}
		}
	}
	return births, deaths
}

// liveNeighbors counts the live cells among the up-to-8 positions adjacent
// to (row, col) that fall inside the grid.
func (g *Grid) liveNeighbors(row, col int) int {
	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.Get(r, c) {
				count++
			}
		}
	}
	return count
}
