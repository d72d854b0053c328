package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jewel-legend/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per colour pair seen on screen.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	if styles == nil {
		styles = styleCache{}
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
