package backend

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// lightThreshold is the CIE L* (0..1) above which dark text reads better.
const lightThreshold = 0.6

// ResolveColor maps a color name or #rrggbb hex string to a terminal color.
// It reports false for anything the terminal does not know; callers decide
// how to present such values.
func ResolveColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return tcell.ColorDefault, false
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return tcell.ColorDefault, false
	}
	return c, true
}

// ContrastText picks black or white text for legibility on bg.
// Colors without an RGB value get the default color.
func ContrastText(bg Color) Color {
	r, g, b := bg.RGB()
	if r < 0 || g < 0 || b < 0 {
		return tcell.ColorDefault
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := c.Lab()
	if l > lightThreshold {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// SwatchStyle returns a style that paints bg with readable text on top.
func SwatchStyle(bg Color) Style {
	return DefaultStyle().Background(bg).Foreground(ContrastText(bg))
}
