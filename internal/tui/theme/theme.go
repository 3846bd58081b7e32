// Package theme defines the color themes used by the snapcalc wizard and
// the CLI renderers.
package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the wizard.
type Theme struct {
	Name         string
	Border       lipgloss.Color // Card borders
	BorderAccent lipgloss.Color // Highlighted card borders
	TextDim      lipgloss.Color // Hints, pending steps
	TextMuted    lipgloss.Color // Labels
	TextPrimary  lipgloss.Color // Amounts and body text
	Accent       lipgloss.Color // Active step, focused fields
	Green        lipgloss.Color // Completed steps, eligible
	GreenBright  lipgloss.Color // Benefit amount
	Orange       lipgloss.Color // Warnings
	Red          lipgloss.Color // Field errors, ineligible
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	Green:        lipgloss.Color("#879A39"),
	GreenBright:  lipgloss.Color("#A3B859"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
}

// TokyoNight is a cool blue theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	Green:        lipgloss.Color("#9ECE6A"),
	GreenBright:  lipgloss.Color("#B9E87A"),
	Orange:       lipgloss.Color("#FF9E64"),
	Red:          lipgloss.Color("#F7768E"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	Green:        lipgloss.Color("2"),
	GreenBright:  lipgloss.Color("10"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{FlexokiDark, TokyoNight, Terminal}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Form maps the active theme onto huh's form styles.
func Form() *huh.Theme {
	t := Active
	ft := huh.ThemeBase()

	ft.Focused.Title = ft.Focused.Title.Foreground(t.Accent).Bold(true)
	ft.Focused.Description = ft.Focused.Description.Foreground(t.TextMuted)
	ft.Focused.ErrorIndicator = ft.Focused.ErrorIndicator.Foreground(t.Red)
	ft.Focused.ErrorMessage = ft.Focused.ErrorMessage.Foreground(t.Red)
	ft.Focused.SelectSelector = ft.Focused.SelectSelector.Foreground(t.Accent)
	ft.Focused.SelectedOption = ft.Focused.SelectedOption.Foreground(t.Green)
	ft.Focused.TextInput.Prompt = ft.Focused.TextInput.Prompt.Foreground(t.Accent)
	ft.Focused.TextInput.Placeholder = ft.Focused.TextInput.Placeholder.Foreground(t.TextDim)
	ft.Focused.FocusedButton = ft.Focused.FocusedButton.Background(t.Accent)

	ft.Blurred.Title = ft.Blurred.Title.Foreground(t.TextMuted)
	ft.Blurred.TextInput.Placeholder = ft.Blurred.TextInput.Placeholder.Foreground(t.TextDim)
	return ft
}
