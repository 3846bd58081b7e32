package engine

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// ComputeShelterAndBenefit applies the excess shelter deduction to adjusted
// income and derives the benefit allotment.
func ComputeShelterAndBenefit(
	in model.HouseholdInput,
	p params.ProgramParameters,
	adjustedIncome decimal.Decimal,
	hasSeniorOrDisabled bool,
) (model.ShelterResult, error) {
	if err := checkHouseholdSize(in.HouseholdSize); err != nil {
		return model.ShelterResult{}, err
	}
	costs, err := input.SumItems(model.FieldShelterCost, in.ShelterCostItems, false)
	if err != nil {
		return model.ShelterResult{}, err
	}

	utility := p.UtilityStandard.For(in.UtilityTier)
	total := costs.Add(utility)

	excess := total.Sub(adjustedIncome.Div(two))
	deduction := decimal.Max(decimal.Zero, excess)
	if !hasSeniorOrDisabled {
		deduction = decimal.Min(deduction, ShelterDeductionCap)
	}

	net := decimal.Max(decimal.Zero, adjustedIncome.Sub(deduction))

	return model.ShelterResult{
		UtilityAllowance: utility,
		TotalShelterCost: total,
		ShelterDeduction: deduction,
		MonthlyNetIncome: net,
		BenefitAllotment: CalcBenefitAllotment(net, in.HouseholdSize, p),
	}, nil
}

// MaximumBenefit returns the maximum allotment for a household size.
func MaximumBenefit(size int, p params.ProgramParameters) decimal.Decimal {
	return p.MaximumBenefit.For(size)
}

// CalcBenefitAllotment reduces the maximum benefit by 30% of net income,
// rounded up. The result is not floored at zero.
func CalcBenefitAllotment(monthlyNetIncome decimal.Decimal, size int, p params.ProgramParameters) decimal.Decimal {
	maxBenefit := MaximumBenefit(size, p)
	if !monthlyNetIncome.IsPositive() {
		return maxBenefit
	}
	return maxBenefit.Sub(monthlyNetIncome.Mul(benefitReductionRate).Ceil())
}
