package config

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
)

var colorNames = map[string]core.Color{
	"default":       core.ColorDefault,
	"red":           core.ColorRed,
	"green":         core.ColorGreen,
	"yellow":        core.ColorYellow,
	"blue":          core.ColorBlue,
	"magenta":       core.ColorMagenta,
	"cyan":          core.ColorCyan,
	"white":         core.ColorWhite,
	"bright_green":  core.ColorBrightGreen,
	"bright_yellow": core.ColorBrightYellow,
	"bright_white":  core.ColorBrightWhite,
	"orange":        core.ColorOrange,
	"gray":          core.ColorGray,
}

// ResolveColor maps a palette name from the theme section to a core color.
func ResolveColor(name string) (core.Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return core.ColorDefault, fmt.Errorf("config: unknown color %q", name)
	}
	return c, nil
}

// Runes returns the live and dead cell runes, falling back to the defaults
// when the theme leaves them empty.
func (t ThemeConfig) Runes() (live, dead rune) {
	live, dead = '█', ' '
	if r := []rune(t.LiveRune); len(r) > 0 {
		live = r[0]
	}
	if r := []rune(t.DeadRune); len(r) > 0 {
		dead = r[0]
	}
	return live, dead
}
