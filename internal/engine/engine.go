// Package engine implements the eligibility and benefit formulas. Every
// function is pure: the same household and parameter table always produce the
// same result, and nothing here holds state between calls.
package engine

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

var (
	// earnedIncomeShare is what remains after the 20% earned income disregard.
	earnedIncomeShare = decimal.RequireFromString("0.8")
	// benefitReductionRate is the share of net income the household is
	// expected to spend on food.
	benefitReductionRate = decimal.RequireFromString("0.3")

	medicalThreshold       = decimal.NewFromInt(35)
	medicalStandardCeiling = decimal.NewFromInt(173)

	// ShelterDeductionCap limits the excess shelter deduction for households
	// without a senior or disabled member.
	ShelterDeductionCap = decimal.NewFromInt(504)

	two = decimal.NewFromInt(2)
)

func checkHouseholdSize(size int) error {
	if size < 1 {
		return &input.FieldError{
			Field:        model.Single(model.FieldHouseholdSize),
			Kind:         input.ErrNegativeValue,
			Raw:          strconv.Itoa(size),
			ZeroRejected: true,
		}
	}
	return nil
}

// Stage names how far through the chain an evaluation goes.
type Stage int

const (
	StageHousehold Stage = iota
	StageIncome
	StageEligibility
	StageDeductions
	StageShelter
)

// Calculate runs the whole chain for an already parsed household: income, the
// gross income gate, deductions, shelter and the benefit allotment. The first
// invalid field aborts the calculation.
//
// A household that fails the gross income test stops at the gate. Only the
// income and eligibility figures are filled in; callers check
// PassesIncomeTest before reading anything later.
func Calculate(in model.HouseholdInput, p params.ProgramParameters) (model.CalculationResult, error) {
	return run(&in, p, StageShelter, func(input.Section) error { return nil })
}

// Evaluate parses the raw form section by section and computes every figure
// up to and including the given stage. Fields belonging to later stages are
// not looked at. The gate stops the chain the same way Calculate does.
func Evaluate(f model.HouseholdForm, p params.ProgramParameters, through Stage) (model.HouseholdInput, model.CalculationResult, error) {
	in := input.NewHousehold(f)
	res, err := run(&in, p, through, func(s input.Section) error {
		return input.ParseSection(f, s, &in)
	})
	return in, res, err
}

// run interleaves parsing with computation. parse fills in the fields of a
// section just before the step that needs them.
func run(in *model.HouseholdInput, p params.ProgramParameters, through Stage, parse func(input.Section) error) (model.CalculationResult, error) {
	var res model.CalculationResult

	if err := parse(input.SectionHousehold); err != nil {
		return res, err
	}
	if err := checkHouseholdSize(in.HouseholdSize); err != nil {
		return res, err
	}
	if through < StageIncome {
		return res, nil
	}

	if err := parse(input.SectionIncome); err != nil {
		return res, err
	}
	income, err := ComputeIncome(*in)
	if err != nil {
		return res, err
	}
	res.IncomeResult = income
	if through < StageEligibility {
		return res, nil
	}

	eligibility, err := CheckEligibility(*in, p, income)
	if err != nil {
		return model.CalculationResult{}, err
	}
	res.EligibilityResult = eligibility
	if through < StageDeductions || !eligibility.PassesIncomeTest() {
		return res, nil
	}

	if err := parse(input.SectionDeductions); err != nil {
		return model.CalculationResult{}, err
	}
	deductions, err := ComputeAdjustedIncome(*in, p, income)
	if err != nil {
		return model.CalculationResult{}, err
	}
	res.DeductionResult = deductions
	if through < StageShelter {
		return res, nil
	}

	if err := parse(input.SectionShelter); err != nil {
		return model.CalculationResult{}, err
	}
	shelter, err := ComputeShelterAndBenefit(*in, p, deductions.AdjustedIncome, in.HasSeniorOrDisabledMember)
	if err != nil {
		return model.CalculationResult{}, err
	}
	res.ShelterResult = shelter
	return res, nil
}
