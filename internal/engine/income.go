package engine

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// ComputeIncome totals earned and unearned income.
//
// Only senior or disabled households total the net (disregarded) earned
// income; every other household totals the gross amount.
func ComputeIncome(in model.HouseholdInput) (model.IncomeResult, error) {
	gross, err := input.SumItems(model.FieldEarnedIncome, in.EarnedIncomeItems, true)
	if err != nil {
		return model.IncomeResult{}, err
	}
	unearned, err := input.SumItems(model.FieldUnearnedIncome, in.UnearnedIncomeItems, true)
	if err != nil {
		return model.IncomeResult{}, err
	}

	net := gross.Mul(earnedIncomeShare)
	total := gross.Add(unearned)
	if in.HasSeniorOrDisabledMember {
		total = net.Add(unearned)
	}

	return model.IncomeResult{
		GrossEarnedIncome:   gross,
		NetEarnedIncome:     net,
		TotalUnearnedIncome: unearned,
		TotalIncome:         total,
	}, nil
}

// GrossIncomeLimit returns the gross monthly income limit for a household size.
func GrossIncomeLimit(size int, p params.ProgramParameters) decimal.Decimal {
	return p.GrossIncomeLimit.For(size)
}

// CheckEligibility evaluates the gross income gate from current input.
func CheckEligibility(in model.HouseholdInput, p params.ProgramParameters, income model.IncomeResult) (model.EligibilityResult, error) {
	if err := checkHouseholdSize(in.HouseholdSize); err != nil {
		return model.EligibilityResult{}, err
	}
	limit := GrossIncomeLimit(in.HouseholdSize, p)
	return model.EligibilityResult{
		GrossIncomeLimit:      limit,
		AutomaticallyEligible: in.AutomaticallyEligible(),
		AboveIncomeLimit:      income.TotalIncome.GreaterThan(limit),
	}, nil
}
