// Package tui provides the interactive Bubble Tea wizard for snapcalc.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/snapcalc/internal/cli"
	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
	"github.com/theirongolddev/snapcalc/internal/session"
	"github.com/theirongolddev/snapcalc/internal/tui/components"
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxContentWidth = 110
	sideBySideWidth = 90
)

// App is the root Bubble Tea model. Each input step is a huh form bound to
// entries; the eligibility and result steps are plain screens.
type App struct {
	params params.ProgramParameters
	tier   model.UtilityTier

	sess    *session.Session
	entries *entries
	form    *huh.Form
	notice  string

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewApp creates a wizard over the given parameter table. tier preselects the
// utility allowance; empty means with heat.
func NewApp(p params.ProgramParameters, tier model.UtilityTier) App {
	a := App{
		params: p,
		tier:   tier,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	a.restart()
	return a
}

// Session exposes the wizard's session, e.g. to print the outcome on exit.
func (a App) Session() *session.Session { return a.sess }

func (a *App) restart() {
	a.sess = session.New(a.params)
	if a.tier != "" {
		_ = a.sess.Edit(func(f *model.HouseholdForm) { f.UtilityTier = a.tier })
	}
	a.entries = newEntries(a.sess.Form())
	a.notice = ""
	a.resetForm()
}

// resetForm builds the form for the current step.
func (a *App) resetForm() {
	a.form = buildForm(a.sess.Step(), a.entries, a.params)
	if a.form != nil && a.width > 0 {
		a.form = a.form.WithWidth(a.formWidth())
	}
	a.syncKeys()
}

func (a *App) enterStep() tea.Cmd {
	a.resetForm()
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

func (a *App) syncKeys() {
	step := a.sess.Step()
	onScreen := a.form == nil

	a.keys.Back.SetEnabled(step > session.StepHousehold)
	a.keys.Next.SetEnabled(!onScreen || (step == session.StepEligibility && !a.sess.Ineligible()))
	a.keys.Restart.SetEnabled(onScreen && (step == session.StepResult || a.sess.Ineligible()))
	if onScreen {
		a.keys.Quit.SetKeys("q", "ctrl+c")
		a.keys.Quit.SetHelp("q", "quit")
	} else {
		a.keys.Quit.SetKeys("ctrl+c")
		a.keys.Quit.SetHelp("ctrl+c", "quit")
	}
}

// submit publishes the step's entries and moves forward when they are valid.
func (a *App) submit() tea.Cmd {
	if err := a.sess.Edit(a.entries.apply); err != nil {
		a.notice = describe(err)
		return a.enterStep()
	}
	return a.advance()
}

func (a *App) advance() tea.Cmd {
	if err := a.sess.Next(); err != nil {
		a.notice = describe(err)
		return a.enterStep()
	}
	a.notice = ""
	if err := a.sess.Pending(); err != nil {
		a.notice = describe(err)
	}
	return a.enterStep()
}

func (a *App) back() tea.Cmd {
	// Keep whatever was typed on this step, valid or not.
	_ = a.sess.Edit(a.entries.apply)
	a.sess.Back()
	a.notice = ""
	return a.enterStep()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = a.contentWidth()
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Back):
			return a, a.back()
		}
		if a.form == nil {
			return a.updateScreen(msg)
		}
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Restart):
		a.restart()
		return a, a.Init()
	case key.Matches(msg, a.keys.Next):
		if a.sess.Step() == session.StepResult {
			return a, nil
		}
		return a, a.advance()
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a, a.submit()
	case huh.StateAborted:
		return a, tea.Quit
	}

	// Recompute on every keystroke so the figures panel follows the typing.
	// A field that does not parse leaves the last good figures in place.
	if _, ok := msg.(tea.KeyMsg); ok {
		_ = a.sess.Edit(a.entries.apply)
	}
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	cw := a.contentWidth()
	if cw >= sideBySideWidth {
		return cw * 3 / 5
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	t := theme.Active
	w := a.contentWidth()
	step := a.sess.Step()

	names := make([]string, len(session.Steps))
	for i, s := range session.Steps {
		names[i] = shortName(s)
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString(components.RenderStepBar(names, step.Number()-1))
	b.WriteString("\n ")
	b.WriteString(components.StepProgress(step.Number(), len(session.Steps), w-2))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf(" Step %d of %d: %s", step.Number(), len(session.Steps), step.Title())))
	b.WriteString("\n\n")
	if a.notice != "" {
		b.WriteString(noticeStyle.Render(" " + a.notice))
		b.WriteString("\n\n")
	}

	switch {
	case a.form != nil:
		b.WriteString(a.viewForm(w))
	case step == session.StepEligibility:
		b.WriteString(a.viewEligibility(w))
	default:
		b.WriteString(a.viewResult(w))
	}

	b.WriteString("\n\n")
	b.WriteString(components.RenderStatusBar(w, a.help.View(a.keys), a.params.Version))
	return b.String()
}

func (a App) viewForm(w int) string {
	form := a.form.View()
	lines := a.figureLines()
	if len(lines) == 0 {
		return form
	}

	if w >= sideBySideWidth {
		card := components.ContentCard("Your figures", strings.Join(lines, "\n"), w-a.formWidth())
		return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(a.formWidth()).Render(form), card)
	}
	return form + "\n" + components.ContentCard("Your figures", strings.Join(lines, "\n"), w)
}

// figureLines lists the figures computed so far that matter on this step.
func (a App) figureLines() []string {
	res := a.sess.Result()
	in := a.sess.Input()

	var rows [][2]string
	switch a.sess.Step() {
	case session.StepEarnedIncome:
		rows = [][2]string{
			{"Gross earned income", cli.FormatCurrency(res.GrossEarnedIncome)},
			{"Net earned income", cli.FormatCurrency(res.NetEarnedIncome)},
		}
	case session.StepUnearnedIncome:
		rows = [][2]string{
			{"Net earned income", cli.FormatCurrency(res.NetEarnedIncome)},
			{"Unearned income", cli.FormatCurrency(res.TotalUnearnedIncome)},
			{"Total income", cli.FormatCurrency(res.TotalIncome)},
		}
	case session.StepDeductions:
		rows = [][2]string{{"Standard deduction", cli.FormatCurrency(res.StandardDeduction)}}
		if in.HasSeniorOrDisabledMember {
			rows = append(rows, [2]string{"Medical deduction", cli.FormatCurrency(res.MedicalDeduction)})
		}
		rows = append(rows,
			[2]string{"Total deductions", cli.FormatCurrency(res.TotalDeduction)},
			[2]string{"Adjusted income", cli.FormatCurrency(res.AdjustedIncome)},
		)
	case session.StepShelter:
		rows = [][2]string{
			{"Utility allowance", cli.FormatCurrency(res.UtilityAllowance)},
			{"Total shelter costs", cli.FormatCurrency(res.TotalShelterCost)},
			{"Shelter deduction", cli.FormatCurrency(res.ShelterDeduction)},
			{"Monthly net income", cli.FormatCurrency(res.MonthlyNetIncome)},
		}
	}

	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r[0])+valueStyle.Render(r[1]))
	}
	return lines
}

func (a App) viewEligibility(w int) string {
	t := theme.Active
	res := a.sess.Result()
	in := a.sess.Input()

	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(components.CardInnerWidth(w))
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	var body string
	switch {
	case res.AutomaticallyEligible:
		body = bodyStyle.Render("Because someone in your household is 60 or older, disabled, or "+
			"receives a designated benefit, your household does not have to pass the gross income test.") +
			"\n\n" + goodStyle.Render("You may proceed to the next step.")
	case res.AboveIncomeLimit:
		body = bodyStyle.Render(fmt.Sprintf("Your total monthly income of %s is above the gross income limit of %s for a household of %d.",
			cli.FormatCurrency(res.TotalIncome), cli.FormatCurrency(res.GrossIncomeLimit), in.HouseholdSize)) +
			"\n\n" + badStyle.Render("You are not eligible for 3SquaresVT.")
	default:
		body = bodyStyle.Render(fmt.Sprintf("Your total monthly income of %s is below the gross income limit of %s for a household of %d.",
			cli.FormatCurrency(res.TotalIncome), cli.FormatCurrency(res.GrossIncomeLimit), in.HouseholdSize)) +
			"\n\n" + goodStyle.Render("You may be eligible for 3SquaresVT. You may proceed to the next step.")
	}
	return components.ContentCard("Gross income test", body, w)
}

func (a App) viewResult(w int) string {
	res := a.sess.Result()
	in := a.sess.Input()

	row := components.FigureRow([]components.Figure{
		{Label: "Adjusted income", Value: cli.FormatCurrency(res.AdjustedIncome)},
		{Label: "Shelter deduction", Value: cli.FormatCurrency(res.ShelterDeduction)},
		{Label: "Monthly net income", Value: cli.FormatCurrency(res.MonthlyNetIncome)},
		{Label: "Monthly benefit", Value: cli.FormatCurrency(res.BenefitAllotment), Note: "estimate"},
	}, w)

	return row + "\n" + cli.RenderVerdict(res) + "\n\n" + cli.RenderTable(cli.ResultTable(in, res))
}

// describe turns a session error into the notice shown above the step.
func describe(err error) string {
	if errors.Is(err, session.ErrIneligible) {
		return "Your household is above the gross income limit."
	}
	if fe, ok := input.AsFieldError(err); ok {
		return fmt.Sprintf("%s: %s", fieldLabel(fe.Field), fe.Message())
	}
	return err.Error()
}

func fieldLabel(ref model.FieldRef) string {
	var name string
	switch ref.Field {
	case model.FieldHouseholdSize:
		return "Household size"
	case model.FieldMedicalExpenses:
		return "Medical expenses"
	case model.FieldEarnedIncome:
		name = "Earned income"
	case model.FieldUnearnedIncome:
		name = "Unearned income"
	case model.FieldDeduction:
		name = "Deduction"
	case model.FieldShelterCost:
		name = "Shelter cost"
	default:
		return ref.String()
	}
	return fmt.Sprintf("%s line %d", name, ref.Index+1)
}

func shortName(s session.Step) string {
	switch s {
	case session.StepHousehold:
		return "Household"
	case session.StepEarnedIncome:
		return "Earned"
	case session.StepUnearnedIncome:
		return "Unearned"
	case session.StepEligibility:
		return "Income test"
	case session.StepDeductions:
		return "Deductions"
	case session.StepShelter:
		return "Shelter"
	}
	return "Result"
}
