// Package clrs provides the clrs.cc inspired color palette for the prompt.
// A nicer color palette for the command line, based on https://clrs.cc/
package clrs

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Clr is one of the named palette colors. The palette is closed: every
// valid color is listed below and unknown names fail at parse time,
// never at render time.
type Clr int

const (
	Navy Clr = iota
	Blue
	Aqua
	Teal
	Olive
	Green
	Lime
	Yellow
	Orange
	Red
	Maroon
	Fuchsia
	Purple
	Black
	Gray
	Silver
	White
	Magenta
)

// names and hexes are indexed by Clr. Order must match the constants.
var names = [...]string{
	"Navy", "Blue", "Aqua", "Teal", "Olive", "Green", "Lime", "Yellow",
	"Orange", "Red", "Maroon", "Fuchsia", "Purple", "Black", "Gray",
	"Silver", "White", "Magenta",
}

var hexes = [...]string{
	"#001f3f", "#0074d9", "#7fdbff", "#39cccc", "#3d9970", "#2ecc40",
	"#01ff70", "#ffdc00", "#ff851b", "#ff4136", "#85144b", "#f012be",
	"#b10dc9", "#111111", "#aaaaaa", "#dddddd", "#ffffff", "#ff00ff",
}

// Name returns the palette name, e.g. "Blue".
func (c Clr) Name() string {
	if c < 0 || int(c) >= len(names) {
		return "White"
	}
	return names[c]
}

// Hex returns the color as a lowercase hex string, e.g. "#0074d9".
func (c Clr) Hex() string {
	if c < 0 || int(c) >= len(hexes) {
		return hexes[White]
	}
	return hexes[c]
}

func (c Clr) String() string {
	return c.Hex()
}

// Style builds a lipgloss foreground style for this color on the given
// renderer. The renderer decides how the hex value degrades on terminals
// without truecolor support.
func (c Clr) Style(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// Parse resolves a palette name to its Clr. Matching is exact on the
// canonical names ("Blue", "Silver", ...), mirroring the config file
// format.
func Parse(s string) (Clr, error) {
	for i, name := range names {
		if name == s {
			return Clr(i), nil
		}
	}
	return White, fmt.Errorf("unknown color: %s", s)
}
