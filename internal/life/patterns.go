package life

import (
	"fmt"
	"sort"
)

// Pattern is a named starting arrangement of live cells, described as a
// string layout where '#' marks a live cell.
type Pattern struct {
	Name   string
	Layout []string
}

// Width returns the widest row of the layout.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p.Layout {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of layout rows.
func (p Pattern) Height() int {
	return len(p.Layout)
}

var patterns = map[string]Pattern{
	"block": {
		Name: "Block",
		Layout: []string{
			"##",
			"##",
		},
	},
	"blinker": {
		Name: "Blinker",
		Layout: []string{
			"###",
		},
	},
	"toad": {
		Name: "Toad",
		Layout: []string{
			".###",
			"###.",
		},
	},
	"glider": {
		Name: "Glider",
		Layout: []string{
			".#.",
			"..#",
			"###",
		},
	},
	"rpentomino": {
		Name: "R-pentomino",
		Layout: []string{
			".##",
			"##.",
			".#.",
		},
	},
}

// LookupPattern returns the pattern registered under id.
func LookupPattern(id string) (Pattern, error) {
	p, ok := patterns[id]
	if !ok {
		return Pattern{}, fmt.Errorf("life: unknown pattern %q", id)
	}
	return p, nil
}

// PatternIDs returns the registered pattern identifiers, sorted.
func PatternIDs() []string {
	ids := make([]string, 0, len(patterns))
	for id := range patterns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Stamp writes the pattern onto g with its top-left corner at (row, col).
// Only '#' cells are written; other layout runes leave the grid untouched.
// Cells that would fall outside the grid are skipped.
func (p Pattern) Stamp(g *Grid, row, col int) {
	for dr, layoutRow := range p.Layout {
		for dc, ch := range layoutRow {
			if ch != '#' {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= g.height || c < 0 || c >= g.width {
				continue
			}
			g.Set(r, c, true)
		}
	}
}
