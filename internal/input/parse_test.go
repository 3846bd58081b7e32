package input

import (
	"errors"
	"testing"

	"github.com/theirongolddev/snapcalc/internal/model"
)

var testRef = model.Line(model.FieldEarnedIncome, 2)

func TestParsePositiveNumber(t *testing.T) {
	tests := []struct {
		raw       string
		allowZero bool
		want      string
		wantErr   error
	}{
		{"123.45", true, "123.45", nil},
		{"  80 ", true, "80", nil},
		{"0", true, "0", nil},
		{"0", false, "", ErrNegativeValue},
		{"-0.01", true, "", ErrNegativeValue},
		{"", true, "", ErrEmptyValue},
		{"   ", false, "", ErrEmptyValue},
		{"12abc", true, "", ErrNotANumber},
		{"$20", true, "", ErrNotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePositiveNumber(testRef, tt.raw, tt.allowZero)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				fe, ok := AsFieldError(err)
				if !ok {
					t.Fatalf("err = %T, want *FieldError", err)
				}
				if fe.Field != testRef {
					t.Errorf("Field = %v, want %v", fe.Field, testRef)
				}
				if fe.Raw != tt.raw {
					t.Errorf("Raw = %q, want %q", fe.Raw, tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePositiveInteger_Truncates(t *testing.T) {
	ref := model.Single(model.FieldHouseholdSize)
	tests := []struct {
		raw  string
		want int
	}{
		{"2.9", 2},
		{"3", 3},
		{" 12 ", 12},
		{"0.5", 0},
	}
	for _, tt := range tests {
		got, err := ParsePositiveInteger(ref, tt.raw, false)
		if err != nil {
			t.Fatalf("ParsePositiveInteger(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("ParsePositiveInteger(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}

	if _, err := ParsePositiveInteger(ref, "0", false); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("zero household: err = %v, want ErrNegativeValue", err)
	}
}

func TestFieldErrorMessages(t *testing.T) {
	_, err := ParsePositiveNumber(model.Line(model.FieldShelterCost, 0), "0", false)
	fe, ok := AsFieldError(err)
	if !ok {
		t.Fatalf("err = %v, want *FieldError", err)
	}
	if got := fe.Error(); got != "shelter_cost[0]: value cannot be negative or zero" {
		t.Errorf("Error() = %q", got)
	}
	if fe.KindName() != "negative_value" {
		t.Errorf("KindName() = %q", fe.KindName())
	}

	_, err = ParsePositiveNumber(model.Single(model.FieldMedicalExpenses), "x", true)
	fe, _ = AsFieldError(err)
	if fe.KindName() != "not_a_number" || fe.Message() != "value must be a number" {
		t.Errorf("not-a-number error = %q (%s)", fe.Message(), fe.KindName())
	}
}

func TestParseItems_FirstFailureWins(t *testing.T) {
	_, err := ParseItems(model.FieldShelterCost, []string{"100", "", "abc"}, false)
	fe, ok := AsFieldError(err)
	if !ok {
		t.Fatalf("err = %v, want *FieldError", err)
	}
	if fe.Field != model.Line(model.FieldShelterCost, 1) || !errors.Is(fe, ErrEmptyValue) {
		t.Errorf("got %v, want empty value at shelter_cost[1]", fe)
	}
}

func TestParseOptionalNumber(t *testing.T) {
	ref := model.Single(model.FieldMedicalExpenses)
	d, err := ParseOptionalNumber(ref, " ")
	if err != nil || !d.IsZero() {
		t.Errorf("blank = %s, %v; want 0, nil", d, err)
	}
	if _, err := ParseOptionalNumber(ref, "-5"); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("negative: err = %v, want ErrNegativeValue", err)
	}
}

func TestParseHousehold(t *testing.T) {
	f := model.HouseholdForm{
		HouseholdSize:   "2",
		EarnedIncome:    []string{"500", "250"},
		UnearnedIncome:  []string{"0"},
		MedicalExpenses: "not checked",
		ShelterCosts:    []string{"700"},
	}

	in, err := ParseHousehold(f)
	if err != nil {
		t.Fatalf("ParseHousehold: %v", err)
	}
	if in.HouseholdSize != 2 || len(in.EarnedIncomeItems) != 2 || len(in.ShelterCostItems) != 1 {
		t.Errorf("unexpected input %+v", in)
	}
	if in.UtilityTier != model.UtilityWithHeat {
		t.Errorf("UtilityTier = %q, want with_heat", in.UtilityTier)
	}

	// Medical expenses are validated only for senior or disabled households.
	f.HasSeniorOrDisabledMember = true
	_, err = ParseHousehold(f)
	fe, ok := AsFieldError(err)
	if !ok || fe.Field.Field != model.FieldMedicalExpenses {
		t.Fatalf("err = %v, want medical expenses error", err)
	}
}

func TestParseHousehold_DeclarationOrder(t *testing.T) {
	f := model.HouseholdForm{
		HouseholdSize:  "3",
		UnearnedIncome: []string{"-1"},
		Deductions:     []string{"abc"},
		ShelterCosts:   []string{""},
	}
	_, err := ParseHousehold(f)
	fe, ok := AsFieldError(err)
	if !ok || fe.Field.Field != model.FieldUnearnedIncome {
		t.Fatalf("err = %v, want the unearned income line reported first", err)
	}
}

func TestParsePositiveInteger_RejectsOverflow(t *testing.T) {
	ref := model.Single(model.FieldHouseholdSize)
	for _, raw := range []string{"18446744073709551617", "1e19", "9223372036854775808"} {
		got, err := ParsePositiveInteger(ref, raw, false)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ParsePositiveInteger(%q) = %d, %v, want ErrOutOfRange", raw, got, err)
			continue
		}
		fe, _ := AsFieldError(err)
		if fe.KindName() != "out_of_range" || fe.Field != ref {
			t.Errorf("field error = %+v", fe)
		}
	}

	if got, err := ParsePositiveInteger(ref, "9223372036854775807.9", false); err != nil || got != 9223372036854775807 {
		t.Errorf("largest int64: got %d, %v", got, err)
	}
}

func TestParseHouseholdSize_RejectsBelowOne(t *testing.T) {
	for _, raw := range []string{"0.5", "0.99"} {
		_, err := ParseHouseholdSize(model.HouseholdForm{HouseholdSize: raw})
		fe, ok := AsFieldError(err)
		if !ok || !errors.Is(err, ErrNegativeValue) || !fe.ZeroRejected {
			t.Errorf("ParseHouseholdSize(%q) err = %v, want zero rejected", raw, err)
			continue
		}
		if fe.Raw != raw {
			t.Errorf("Raw = %q, want %q", fe.Raw, raw)
		}
	}

	if size, err := ParseHouseholdSize(model.HouseholdForm{HouseholdSize: "1.5"}); err != nil || size != 1 {
		t.Errorf("ParseHouseholdSize(1.5) = %d, %v, want 1", size, err)
	}
}

func TestParseSection_OnlyTouchesItsFields(t *testing.T) {
	f := model.HouseholdForm{
		HouseholdSize: "2",
		EarnedIncome:  []string{"400"},
		Deductions:    []string{"oops"},
	}
	in := NewHousehold(f)
	if err := ParseSection(f, SectionIncome, &in); err != nil {
		t.Fatalf("income section: %v", err)
	}
	if len(in.EarnedIncomeItems) != 1 || in.HouseholdSize != 0 {
		t.Errorf("input after income section = %+v", in)
	}
	if err := ParseSection(f, SectionDeductions, &in); !errors.Is(err, ErrNotANumber) {
		t.Errorf("deductions section err = %v, want ErrNotANumber", err)
	}
}
