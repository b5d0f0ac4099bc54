package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/citybomber/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]string{
	core.ColorBlack:   "16",
	core.ColorRed:     "196",
	core.ColorDarkRed: "88",
	core.ColorBlue:    "21",
	core.ColorNavy:    "17",
	core.ColorYellow:  "226",
	core.ColorWhite:   "231",
	core.ColorGray:    "245",
	core.ColorOrange:  "208",
}

type cellColors struct {
	fg, bg core.Color
}

// cellStyles holds one style per foreground/background pair. It is built
// once and only read afterwards, so SSH sessions can share it.
var cellStyles = buildCellStyles()

func buildCellStyles() map[cellColors]lipgloss.Style {
	all := append([]core.Color{core.ColorDefault}, keys(ansiColors)...)
	styles := make(map[cellColors]lipgloss.Style, len(all)*len(all))
	for _, fg := range all {
		for _, bg := range all {
			style := lipgloss.NewStyle()
			if code, ok := ansiColors[fg]; ok {
				style = style.Foreground(lipgloss.Color(code))
			}
			if code, ok := ansiColors[bg]; ok {
				style = style.Background(lipgloss.Color(code))
			}
			styles[cellColors{fg, bg}] = style
		}
	}
	return styles
}

func keys(m map[core.Color]string) []core.Color {
	out := make([]core.Color, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	return out
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			colors := cellColors{first.Fg, first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cellColors{cell.Fg, cell.Bg}) != colors {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[colors]
			if !ok {
				style = cellStyles[cellColors{}]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
