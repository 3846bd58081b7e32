package model

import "github.com/shopspring/decimal"

// IncomeResult is the output of the income step.
type IncomeResult struct {
	GrossEarnedIncome   decimal.Decimal
	NetEarnedIncome     decimal.Decimal
	TotalUnearnedIncome decimal.Decimal
	TotalIncome         decimal.Decimal
}

// EligibilityResult is the output of the gross income gate.
type EligibilityResult struct {
	GrossIncomeLimit      decimal.Decimal
	AutomaticallyEligible bool
	AboveIncomeLimit      bool
}

// PassesIncomeTest reports whether the household may continue past the gate.
func (e EligibilityResult) PassesIncomeTest() bool {
	return e.AutomaticallyEligible || !e.AboveIncomeLimit
}

// DeductionResult is the output of the deduction step.
type DeductionResult struct {
	StandardDeduction decimal.Decimal
	MedicalDeduction  decimal.Decimal
	TotalDeduction    decimal.Decimal
	AdjustedIncome    decimal.Decimal
}

// ShelterResult is the output of the shelter and benefit step.
type ShelterResult struct {
	UtilityAllowance decimal.Decimal
	TotalShelterCost decimal.Decimal
	ShelterDeduction decimal.Decimal
	MonthlyNetIncome decimal.Decimal
	BenefitAllotment decimal.Decimal
}

// CalculationResult is every derived figure for one household. Fields are only
// ever produced by the engine; nothing sets them from user input.
type CalculationResult struct {
	IncomeResult
	EligibilityResult
	DeductionResult
	ShelterResult
}

// ReceivesBenefit reports whether the computed allotment is positive.
func (r CalculationResult) ReceivesBenefit() bool {
	return r.BenefitAllotment.IsPositive()
}
