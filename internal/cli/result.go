package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// ResultTable lays out the derived figures of a calculation. A household that
// fails the gross income test only gets its income and eligibility rows.
func ResultTable(in model.HouseholdInput, res model.CalculationResult) Table {
	rows := [][]string{
		{"Household size", FormatNumber(int64(in.HouseholdSize))},
		{"Senior or disabled member", FormatYesNo(in.HasSeniorOrDisabledMember)},
		Separator,
		{"Gross earned income", FormatCurrency(res.GrossEarnedIncome)},
		{"Net earned income", FormatCurrency(res.NetEarnedIncome)},
		{"Unearned income", FormatCurrency(res.TotalUnearnedIncome)},
		{"Total income", FormatCurrency(res.TotalIncome)},
		{"Gross income limit", FormatCurrency(res.GrossIncomeLimit)},
		{"Automatically eligible", FormatYesNo(res.AutomaticallyEligible)},
		{"Above income limit", FormatYesNo(res.AboveIncomeLimit)},
	}
	if !res.PassesIncomeTest() {
		return Table{Headers: []string{"Item", "Amount"}, Rows: rows}
	}

	rows = append(rows, [][]string{
		Separator,
		{"Standard deduction", FormatCurrency(res.StandardDeduction)},
		{"Medical deduction", FormatExact(res.MedicalDeduction)},
		{"Total deductions", FormatCurrency(res.TotalDeduction)},
		{"Adjusted income", FormatCurrency(res.AdjustedIncome)},
		Separator,
		{"Utility allowance (" + in.UtilityTier.Label() + ")", FormatCurrency(res.UtilityAllowance)},
		{"Total shelter costs", FormatCurrency(res.TotalShelterCost)},
		{"Shelter deduction", FormatExact(res.ShelterDeduction)},
		{"Monthly net income", FormatExact(res.MonthlyNetIncome)},
		Separator,
		{"Monthly benefit", FormatCurrency(res.BenefitAllotment)},
	}...)
	return Table{
		Headers: []string{"Item", "Amount"},
		Rows:    rows,
	}
}

// RenderVerdict summarizes the outcome in one styled line.
func RenderVerdict(res model.CalculationResult) string {
	switch {
	case !res.PassesIncomeTest():
		return badStyle.Render(fmt.Sprintf("  Total income %s is above the %s limit: not eligible.",
			FormatCurrency(res.TotalIncome), FormatCurrency(res.GrossIncomeLimit)))
	case !res.ReceivesBenefit():
		return warnStyle.Render("  Eligible on income, but net income is too high for a monthly benefit.")
	default:
		return goodStyle.Render(fmt.Sprintf("  Estimated monthly benefit: %s", FormatCurrency(res.BenefitAllotment)))
	}
}

// ParamsTable lays out a parameter table by household size.
func ParamsTable(p params.ProgramParameters) Table {
	rows := make([][]string, 0, params.TableSizes+1)
	for size := 1; size <= params.TableSizes; size++ {
		std := ""
		if size <= params.StandardDeductionCap {
			std = FormatExact(p.StandardDeduction[size])
		}
		rows = append(rows, []string{
			FormatNumber(int64(size)),
			FormatExact(p.GrossIncomeLimit.BySize[size]),
			FormatExact(p.MaximumBenefit.BySize[size]),
			std,
		})
	}
	rows = append(rows, Separator)
	rows = append(rows, []string{
		"each add'l",
		"+" + FormatExact(p.GrossIncomeLimit.Additional),
		"+" + FormatExact(p.MaximumBenefit.Additional),
		"",
	})

	title := "Program parameters"
	if p.Version != "" {
		title += " " + p.Version
	}
	if !p.EffectiveFrom.IsZero() {
		title += " (effective " + p.EffectiveFrom.Format("2006-01-02") + ")"
	}

	return Table{
		Title:   title,
		Headers: []string{"Size", "Gross limit", "Max benefit", "Std deduction"},
		Rows:    rows,
	}
}

// ParamsFootnote lists the scalar parameters below the size table.
func ParamsFootnote(p params.ProgramParameters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Medical standard deduction: %s\n", FormatExact(p.MedicalStandardDeduction))
	fmt.Fprintf(&b, "  Utility allowance: %s with heat, %s without heat, %s phone only\n",
		FormatExact(p.UtilityStandard.WithHeat),
		FormatExact(p.UtilityStandard.WithoutHeat),
		FormatExact(p.UtilityStandard.PhoneOnly))
	return mutedStyle.Render(b.String())
}
