package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"163", "$163"},
		{"1234.5", "$1,235"},
		{"8925", "$8,925"},
		{"-108", "-$108"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"504", "$504"},
		{"138.01", "$138.01"},
		{"1208.5", "$1,208.50"},
		{"0.999", "$1"},
		{"-2.25", "-$2.25"},
	}
	for _, tt := range tests {
		if got := FormatExact(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatExact(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResultTableRows(t *testing.T) {
	in := model.HouseholdInput{HouseholdSize: 1, UtilityTier: model.UtilityWithHeat}
	res := model.CalculationResult{}
	res.BenefitAllotment = decimal.NewFromInt(163)
	res.MedicalDeduction = decimal.RequireFromString("138.01")

	out := RenderTable(ResultTable(in, res))
	for _, want := range []string{"Monthly benefit", "$163", "$138.01", "With heat"} {
		if !strings.Contains(out, want) {
			t.Errorf("result table missing %q", want)
		}
	}
}

func TestParamsTable(t *testing.T) {
	tbl := ParamsTable(params.Default())
	if len(tbl.Rows) != params.TableSizes+2 {
		t.Fatalf("rows = %d, want %d", len(tbl.Rows), params.TableSizes+2)
	}
	if got := tbl.Rows[0][1]; got != "$1,860" {
		t.Errorf("size 1 gross limit = %q, want $1,860", got)
	}
	if got := tbl.Rows[6][3]; got != "" {
		t.Errorf("size 7 standard deduction = %q, want blank (capped at 6)", got)
	}
	if !strings.Contains(tbl.Title, "FFY2019") {
		t.Errorf("title = %q, want version", tbl.Title)
	}
}
