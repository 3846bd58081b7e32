package engine

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// StandardDeduction returns the standard deduction for a household size.
func StandardDeduction(size int, p params.ProgramParameters) decimal.Decimal {
	return p.StandardDeductionFor(size)
}

// MedicalDeduction maps monthly medical expenses to a deduction: the flat
// standard amount from 35 through 173, everything over 35 above that, and
// nothing below 35.
func MedicalDeduction(expenses decimal.Decimal, p params.ProgramParameters) decimal.Decimal {
	switch {
	case expenses.GreaterThan(medicalStandardCeiling):
		return expenses.Sub(medicalThreshold)
	case expenses.GreaterThanOrEqual(medicalThreshold):
		return p.MedicalStandardDeduction
	default:
		return decimal.Zero
	}
}

// ComputeAdjustedIncome subtracts the standard, claimed and medical deductions
// from net income. Claimed deduction lines must be positive. The medical
// deduction only applies to senior or disabled households.
func ComputeAdjustedIncome(in model.HouseholdInput, p params.ProgramParameters, income model.IncomeResult) (model.DeductionResult, error) {
	if err := checkHouseholdSize(in.HouseholdSize); err != nil {
		return model.DeductionResult{}, err
	}
	claimed, err := input.SumItems(model.FieldDeduction, in.DeductionItems, false)
	if err != nil {
		return model.DeductionResult{}, err
	}
	if err := input.CheckAmount(model.Single(model.FieldMedicalExpenses), in.MedicalExpenses, true); err != nil {
		return model.DeductionResult{}, err
	}

	standard := StandardDeduction(in.HouseholdSize, p)
	medical := decimal.Zero
	if in.HasSeniorOrDisabledMember {
		medical = MedicalDeduction(in.MedicalExpenses, p)
	}
	total := standard.Add(claimed).Add(medical)

	beforeDeductions := income.NetEarnedIncome.Add(income.TotalUnearnedIncome)
	adjusted := decimal.Max(decimal.Zero, beforeDeductions.Sub(total)).Round(0)

	return model.DeductionResult{
		StandardDeduction: standard,
		MedicalDeduction:  medical,
		TotalDeduction:    total,
		AdjustedIncome:    adjusted,
	}, nil
}
