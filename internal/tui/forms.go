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
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// Fixed line items offered on each step. Blank lines are left out of the
// household form, so they never count as zero.
var (
	earnedLines = []string{
		"Wages and salaries",
		"Self-employment income",
		"Other earned income",
	}
	unearnedLines = []string{
		"Social Security or SSI",
		"Unemployment benefits",
		"Child support received",
		"Other unearned income",
	}
	deductionLines = []string{
		"Dependent care costs",
		"Legally owed child support paid",
	}
	shelterLines = []string{
		"Rent or mortgage",
		"Property taxes",
		"Homeowner's insurance",
	}
)

// entries holds the text bound to the wizard's form fields. It lives behind a
// pointer so huh's value bindings survive Bubble Tea's model copies.
type entries struct {
	size       string
	senior     bool
	disability bool
	assistance bool

	earned     []string
	unearned   []string
	deductions []string
	medical    string
	shelter    []string
	tier       model.UtilityTier
}

func newEntries(f model.HouseholdForm) *entries {
	e := &entries{
		size:       f.HouseholdSize,
		senior:     f.HasSeniorOrDisabledMember,
		disability: f.ReceivesDisabilityBenefits,
		assistance: f.ParticipatesInAssistanceProgram,
		earned:     spread(f.EarnedIncome, len(earnedLines)),
		unearned:   spread(f.UnearnedIncome, len(unearnedLines)),
		deductions: spread(f.Deductions, len(deductionLines)),
		medical:    f.MedicalExpenses,
		shelter:    spread(f.ShelterCosts, len(shelterLines)),
		tier:       f.UtilityTier,
	}
	if e.tier == "" {
		e.tier = model.UtilityWithHeat
	}
	return e
}

// apply copies the entries into a household form.
func (e *entries) apply(f *model.HouseholdForm) {
	f.HouseholdSize = e.size
	f.HasSeniorOrDisabledMember = e.senior
	f.ReceivesDisabilityBenefits = e.disability
	f.ParticipatesInAssistanceProgram = e.assistance
	f.EarnedIncome = compact(e.earned)
	f.UnearnedIncome = compact(e.unearned)
	f.Deductions = compact(e.deductions)
	f.MedicalExpenses = e.medical
	f.ShelterCosts = compact(e.shelter)
	f.UtilityTier = e.tier
}

// spread lays filled-in values onto n fixed lines.
func spread(values []string, n int) []string {
	lines := make([]string, n)
	copy(lines, values)
	return lines
}

// compact drops blank lines.
func compact(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// fieldMessage turns a parse error into the text shown under a field.
func fieldMessage(err error) error {
	if err == nil {
		return nil
	}
	if fe, ok := input.AsFieldError(err); ok {
		return errors.New(fe.Message())
	}
	return err
}

func validateSize(raw string) error {
	_, err := input.ParseHouseholdSize(model.HouseholdForm{HouseholdSize: raw})
	return fieldMessage(err)
}

// validateLine accepts a blank line; anything typed must be a valid amount.
func validateLine(field model.Field, index int, allowZero bool) func(string) error {
	return func(raw string) error {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		_, err := input.ParsePositiveNumber(model.Line(field, index), raw, allowZero)
		return fieldMessage(err)
	}
}

func validateMedical(raw string) error {
	_, err := input.ParseOptionalNumber(model.Single(model.FieldMedicalExpenses), raw)
	return fieldMessage(err)
}

func lineInputs(labels []string, values []string, field model.Field, allowZero bool) []huh.Field {
	fields := make([]huh.Field, 0, len(labels))
	for i, label := range labels {
		fields = append(fields, huh.NewInput().
			Title(label).
			Prompt("$ ").
			Placeholder("leave blank if none").
			Value(&values[i]).
			Validate(validateLine(field, i, allowZero)))
	}
	return fields
}

// buildForm returns the form for an input step, or nil for the display steps.
func buildForm(step session.Step, e *entries, p params.ProgramParameters) *huh.Form {
	var fields []huh.Field

	switch step {
	case session.StepHousehold:
		fields = []huh.Field{
			huh.NewInput().
				Title("How many people are in your household?").
				Description("Count everyone who buys and prepares food together.").
				Value(&e.size).
				Validate(validateSize),
			huh.NewConfirm().
				Title("Is anyone in your household 60 or older, or disabled?").
				Value(&e.senior),
			huh.NewConfirm().
				Title("Does anyone receive disability benefits?").
				Value(&e.disability),
			huh.NewConfirm().
				Title("Does anyone receive Reach Up, SSI or another designated program?").
				Value(&e.assistance),
		}

	case session.StepEarnedIncome:
		fields = lineInputs(earnedLines, e.earned, model.FieldEarnedIncome, true)
		fields = append([]huh.Field{huh.NewNote().
			Title("Monthly earned income").
			Description("Gross amounts before taxes, for everyone in the household.")}, fields...)

	case session.StepUnearnedIncome:
		fields = lineInputs(unearnedLines, e.unearned, model.FieldUnearnedIncome, true)
		fields = append([]huh.Field{huh.NewNote().
			Title("Monthly unearned income").
			Description("Benefits and other money you receive without working.")}, fields...)

	case session.StepDeductions:
		fields = lineInputs(deductionLines, e.deductions, model.FieldDeduction, false)
		fields = append([]huh.Field{huh.NewNote().
			Title("Monthly deductions").
			Description("Costs you pay that reduce countable income.")}, fields...)
		if e.senior {
			fields = append(fields, huh.NewInput().
				Title("Out-of-pocket medical expenses").
				Description(fmt.Sprintf("Over $35 a month earns a deduction of at least %s.",
					cli.FormatCurrency(p.MedicalStandardDeduction))).
				Prompt("$ ").
				Placeholder("0").
				Value(&e.medical).
				Validate(validateMedical))
		}

	case session.StepShelter:
		fields = lineInputs(shelterLines, e.shelter, model.FieldShelterCost, false)
		fields = append([]huh.Field{huh.NewNote().
			Title("Monthly shelter costs").
			Description("Housing costs you pay each month.")}, fields...)
		options := make([]huh.Option[model.UtilityTier], 0, len(model.UtilityTiers))
		for _, tier := range model.UtilityTiers {
			label := fmt.Sprintf("%s (%s)", tier.Label(), cli.FormatCurrency(p.UtilityStandard.For(tier)))
			options = append(options, huh.NewOption(label, tier))
		}
		fields = append(fields, huh.NewSelect[model.UtilityTier]().
			Title("Standard utility allowance").
			Options(options...).
			Value(&e.tier))

	default:
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(theme.Form()).
		WithShowHelp(false)
}
