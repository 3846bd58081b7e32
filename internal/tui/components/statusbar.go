package components

import (
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key help on the left and the
// parameter table version on the right.
func RenderStatusBar(width int, helpView, paramsVersion string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + helpView
	right := ""
	if paramsVersion != "" {
		right = "Params: " + paramsVersion + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	bar := left + lipgloss.NewStyle().Width(padding).Render("") + right
	return style.Render(bar)
}
