package components

import (
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
)

// StepProgress renders how far through the wizard the user is.
func StepProgress(current, total, width int) string {
	t := theme.Active

	if total <= 0 {
		return ""
	}
	pct := float64(current) / float64(total)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)
	return bar.ViewAs(pct)
}
