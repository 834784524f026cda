package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ansiCodes holds the 256-color code of every palette entry.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// span is a horizontal run of same-colored cells.
type span struct {
	text  string
	color core.Color
}

// spans splits row y of s into same-color runs.
func spans(s *core.Screen, y int) []span {
	var out []span
	var text strings.Builder
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if len(out) == 0 || cell.Color != out[len(out)-1].color {
			if len(out) > 0 {
				out[len(out)-1].text = text.String()
				text.Reset()
			}
			out = append(out, span{color: cell.Color})
		}
		text.WriteRune(cell.Rune)
	}
	if len(out) > 0 {
		out[len(out)-1].text = text.String()
	}
	return out
}

// RenderScreen converts s to a styled string with one escape sequence per
// color run.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		var line strings.Builder
		for _, sp := range spans(s, y) {
			line.WriteString(styleFor(sp.color).Render(sp.text))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
