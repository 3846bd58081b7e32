package session

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

func mustNext(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Next(); err != nil {
		t.Fatalf("Next at %v: %v", s.Step(), err)
	}
}

func mustEdit(t *testing.T, s *Session, fn func(*model.HouseholdForm)) {
	t.Helper()
	if err := s.Edit(fn); err != nil {
		t.Fatalf("Edit at %v: %v", s.Step(), err)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := New(params.Default())
	if s.Step() != StepHousehold {
		t.Errorf("Step = %v, want household", s.Step())
	}
	f := s.Form()
	if f.HouseholdSize != "1" || f.UtilityTier != model.UtilityWithHeat {
		t.Errorf("defaults = %+v", f)
	}
}

func TestWalkThroughAllSteps(t *testing.T) {
	s := New(params.Default())

	mustEdit(t, s, func(f *model.HouseholdForm) { f.HouseholdSize = "1" })
	mustNext(t, s)

	mustEdit(t, s, func(f *model.HouseholdForm) { f.EarnedIncome = []string{"950"} })
	if got := s.Result().NetEarnedIncome; !got.Equal(decimal.NewFromInt(760)) {
		t.Errorf("NetEarnedIncome after edit = %s, want 760", got)
	}
	mustNext(t, s)
	mustNext(t, s) // unearned income left empty

	if s.Step() != StepEligibility || s.Ineligible() {
		t.Fatalf("step = %v, ineligible = %v", s.Step(), s.Ineligible())
	}
	mustNext(t, s)
	mustNext(t, s) // no deductions

	mustEdit(t, s, func(f *model.HouseholdForm) { f.ShelterCosts = []string{"400"} })
	mustNext(t, s)

	if s.Step() != StepResult {
		t.Fatalf("step = %v, want result", s.Step())
	}
	if got := s.Result().BenefitAllotment; !got.Equal(decimal.NewFromInt(163)) {
		t.Errorf("BenefitAllotment = %s, want 163", got)
	}

	// Next on the last step stays put.
	mustNext(t, s)
	if s.Step() != StepResult {
		t.Errorf("step after final Next = %v", s.Step())
	}
}

func TestNextRefusesIneligibleHousehold(t *testing.T) {
	s := New(params.Default())
	mustEdit(t, s, func(f *model.HouseholdForm) { f.HouseholdSize = "3" })
	mustNext(t, s)
	mustNext(t, s)
	mustEdit(t, s, func(f *model.HouseholdForm) { f.UnearnedIncome = []string{"3200"} })
	mustNext(t, s)

	if !s.Ineligible() {
		t.Fatal("household with 3200 income should be ineligible")
	}
	if err := s.Next(); !errors.Is(err, ErrIneligible) {
		t.Fatalf("Next = %v, want ErrIneligible", err)
	}
	if s.Step() != StepEligibility {
		t.Errorf("step = %v, want eligibility", s.Step())
	}

	// Going back and declaring a senior member makes the household
	// automatically eligible; the gate is recomputed, never cached.
	s.Back()
	s.Back()
	s.Back()
	mustEdit(t, s, func(f *model.HouseholdForm) { f.HasSeniorOrDisabledMember = true })
	for s.Step() < StepEligibility {
		mustNext(t, s)
	}
	if s.Ineligible() || !s.Result().AutomaticallyEligible {
		t.Fatalf("senior household should pass: %+v", s.Result().EligibilityResult)
	}
	mustNext(t, s)
	if s.Step() != StepDeductions {
		t.Errorf("step = %v, want deductions", s.Step())
	}
}

func TestFailedEditKeepsPublishedResult(t *testing.T) {
	s := New(params.Default())
	mustNext(t, s)
	mustEdit(t, s, func(f *model.HouseholdForm) { f.EarnedIncome = []string{"500"} })

	err := s.Edit(func(f *model.HouseholdForm) { f.EarnedIncome = []string{"500", "abc"} })
	if !errors.Is(err, input.ErrNotANumber) {
		t.Fatalf("Edit = %v, want ErrNotANumber", err)
	}
	fe, _ := input.AsFieldError(err)
	if fe.Field != model.Line(model.FieldEarnedIncome, 1) {
		t.Errorf("Field = %v", fe.Field)
	}
	if got := s.Result().GrossEarnedIncome; !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("GrossEarnedIncome = %s, want previous 500", got)
	}
	if got := s.Form().EarnedIncome; len(got) != 2 {
		t.Errorf("raw edit should be kept, got %q", got)
	}
	if err := s.Next(); err == nil {
		t.Error("Next should fail while a field is invalid")
	}
	if s.Step() != StepEarnedIncome {
		t.Errorf("step = %v, want earned income", s.Step())
	}
}

func TestBackStopsAtFirstStep(t *testing.T) {
	s := New(params.Default())
	s.Back()
	if s.Step() != StepHousehold {
		t.Errorf("step = %v, want household", s.Step())
	}
}

func TestHouseholdSizeValidation(t *testing.T) {
	s := New(params.Default())
	err := s.Edit(func(f *model.HouseholdForm) { f.HouseholdSize = "" })
	if !errors.Is(err, input.ErrEmptyValue) {
		t.Fatalf("Edit = %v, want ErrEmptyValue", err)
	}
	if err := s.Next(); err == nil {
		t.Fatal("Next should refuse an empty household size")
	}
}

func TestMedicalOnlyForSeniorHouseholds(t *testing.T) {
	s := New(params.Default())
	mustEdit(t, s, func(f *model.HouseholdForm) {
		f.EarnedIncome = []string{"1000"}
		f.MedicalExpenses = "300"
	})
	for s.Step() < StepDeductions {
		mustNext(t, s)
	}
	if got := s.Result().MedicalDeduction; !got.IsZero() {
		t.Errorf("MedicalDeduction = %s, want 0 for a household without senior members", got)
	}

	for s.Step() > StepHousehold {
		s.Back()
	}
	mustEdit(t, s, func(f *model.HouseholdForm) { f.HasSeniorOrDisabledMember = true })
	for s.Step() < StepDeductions {
		mustNext(t, s)
	}
	if got := s.Result().MedicalDeduction; !got.Equal(decimal.NewFromInt(265)) {
		t.Errorf("MedicalDeduction = %s, want 265", got)
	}
}

func TestStepMetadata(t *testing.T) {
	if len(Steps) != 7 {
		t.Fatalf("len(Steps) = %d, want 7", len(Steps))
	}
	for i, st := range Steps {
		if st.Number() != i+1 {
			t.Errorf("%v.Number() = %d, want %d", st, st.Number(), i+1)
		}
		if st.Title() == "" {
			t.Errorf("%v has no title", st)
		}
	}
	if StepShelter.String() != "shelter" {
		t.Errorf("StepShelter.String() = %q", StepShelter.String())
	}
}

func TestFractionalHouseholdSizeStaysOnFirstStep(t *testing.T) {
	s := New(params.Default())
	err := s.Edit(func(f *model.HouseholdForm) {
		f.HouseholdSize = "0.5"
		f.UnearnedIncome = []string{"5000"}
	})
	if !errors.Is(err, input.ErrNegativeValue) {
		t.Fatalf("Edit = %v, want ErrNegativeValue", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Next(); err == nil {
			t.Fatalf("Next #%d accepted household size 0.5", i+1)
		}
	}
	if s.Step() != StepHousehold {
		t.Errorf("step = %v, want household", s.Step())
	}
	if s.Ineligible() {
		t.Error("household step cannot be ineligible")
	}
}

func TestEnteringStepWithInvalidFieldIsPending(t *testing.T) {
	s := New(params.Default())
	mustEdit(t, s, func(f *model.HouseholdForm) {
		f.EarnedIncome = []string{"950"}
		f.Deductions = []string{"abc"}
	})
	for s.Step() < StepDeductions {
		mustNext(t, s)
	}

	fe, ok := input.AsFieldError(s.Pending())
	if !ok || fe.Field != model.Line(model.FieldDeduction, 0) {
		t.Fatalf("Pending = %v, want deduction[0] error", s.Pending())
	}
	if !s.Result().AdjustedIncome.IsZero() {
		t.Errorf("AdjustedIncome = %s, want unpublished", s.Result().AdjustedIncome)
	}
	if err := s.Next(); err == nil {
		t.Fatal("Next should refuse the invalid deduction")
	}

	mustEdit(t, s, func(f *model.HouseholdForm) { f.Deductions = nil })
	if s.Pending() != nil {
		t.Errorf("Pending = %v after a fixing edit", s.Pending())
	}
	if got := s.Result().AdjustedIncome; !got.Equal(decimal.NewFromInt(600)) {
		t.Errorf("AdjustedIncome = %s, want 600", got)
	}
}
