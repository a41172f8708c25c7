package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorPlatform: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorArm:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorReticle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
