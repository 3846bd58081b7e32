package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/model"
)

func TestRenderTableAlignsAmounts(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Rent", "$5"},
			Separator,
			{"Total", "$1,000"},
		},
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	want := []string{
		"╭───────┬────────╮",
		"│ Item  │ Amount │",
		"├───────┼────────┤",
		"│ Rent  │     $5 │",
		"├───────┼────────┤",
		"│ Total │ $1,000 │",
		"╰───────┴────────╯",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestResultTableStopsAtIncomeTest(t *testing.T) {
	in := model.HouseholdInput{HouseholdSize: 1, UtilityTier: model.UtilityWithHeat}
	res := model.CalculationResult{}
	res.TotalIncome = decimal.NewFromInt(5000)
	res.GrossIncomeLimit = decimal.NewFromInt(1860)
	res.AboveIncomeLimit = true

	out := RenderTable(ResultTable(in, res))
	if !strings.Contains(out, "Gross income limit") {
		t.Errorf("table should still show the income test:\n%s", out)
	}
	for _, unwanted := range []string{"Monthly benefit", "Adjusted income", "Shelter deduction"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("table for an ineligible household shows %q", unwanted)
		}
	}
}
