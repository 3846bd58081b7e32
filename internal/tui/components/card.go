// Package components provides reusable widgets for the snapcalc wizard.
package components

import (
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Figure is one labeled amount shown in a FigureCard.
type Figure struct {
	Label string
	Value string
	Note  string
}

// FigureCard renders a small card with a label, a value and an optional note.
// outerWidth is the total rendered width including border.
func FigureCard(f Figure, outerWidth int, highlight bool) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	if highlight {
		border = t.BorderAccent
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	if highlight {
		valueStyle = valueStyle.Foreground(t.GreenBright)
	}
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	content := labelStyle.Render(f.Label) + "\n" + valueStyle.Render(f.Value)
	if f.Note != "" {
		content += "\n" + noteStyle.Render(f.Note)
	}
	return cardStyle.Render(content)
}

// FigureRow renders figure cards side by side; the last one is highlighted.
// totalWidth is the full row width; cards sum to exactly that.
func FigureRow(figures []Figure, totalWidth int) string {
	if len(figures) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(figures))
	rendered := make([]string, 0, len(figures))
	for i, f := range figures {
		rendered = append(rendered, FigureCard(f, widths[i], i == len(figures)-1))
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
