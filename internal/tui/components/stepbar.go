package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStepBar renders the numbered step trail with the active step
// highlighted and completed steps dimmed.
func RenderStepBar(names []string, active int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d %s", i+1, name)
		switch {
		case i == active:
			parts = append(parts, activeStyle.Render(label))
		case i < active:
			parts = append(parts, doneStyle.Render(label))
		default:
			parts = append(parts, todoStyle.Render(label))
		}
	}
	return " " + strings.Join(parts, sepStyle.Render(" › "))
}
