// Package params holds the program parameter tables the engine is evaluated
// against: deductions, income limits, benefit maximums and utility allowances.
// Tables change yearly; the formulas that read them do not.
package params

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/model"
)

const (
	// TableSizes is the largest household size with an explicit table entry.
	TableSizes = 10
	// StandardDeductionCap is the household size whose tier applies to all
	// larger households.
	StandardDeductionCap = 6
)

// ErrInvalidParameters is returned when a table breaks its invariants.
var ErrInvalidParameters = errors.New("invalid program parameters")

// TieredTable maps household sizes 1..TableSizes to an amount, extrapolating
// linearly above that.
type TieredTable struct {
	BySize     map[int]decimal.Decimal
	Additional decimal.Decimal
}

// For returns the amount for a household of the given size.
func (t TieredTable) For(size int) decimal.Decimal {
	if size <= TableSizes {
		return t.BySize[size]
	}
	extra := decimal.NewFromInt(int64(size - TableSizes))
	return t.BySize[TableSizes].Add(extra.Mul(t.Additional))
}

// UtilityStandard holds the standard utility allowance tiers.
type UtilityStandard struct {
	WithHeat    decimal.Decimal
	WithoutHeat decimal.Decimal
	PhoneOnly   decimal.Decimal
}

// For returns the allowance for a tier. Unknown tiers get the with-heat amount.
func (u UtilityStandard) For(tier model.UtilityTier) decimal.Decimal {
	switch tier {
	case model.UtilityWithoutHeat:
		return u.WithoutHeat
	case model.UtilityPhoneOnly:
		return u.PhoneOnly
	default:
		return u.WithHeat
	}
}

// ProgramParameters is one published version of the parameter table.
type ProgramParameters struct {
	Version       string
	EffectiveFrom time.Time

	StandardDeduction        map[int]decimal.Decimal
	GrossIncomeLimit         TieredTable
	MedicalStandardDeduction decimal.Decimal
	MaximumBenefit           TieredTable
	UtilityStandard          UtilityStandard
}

// StandardDeductionFor returns the standard deduction, capped at the
// StandardDeductionCap tier.
func (p ProgramParameters) StandardDeductionFor(size int) decimal.Decimal {
	if size >= StandardDeductionCap {
		return p.StandardDeduction[StandardDeductionCap]
	}
	return p.StandardDeduction[size]
}

// Validate checks that every amount is non-negative and that the size keys
// are dense.
func (p ProgramParameters) Validate() error {
	if err := checkDense("standard_deduction", p.StandardDeduction, StandardDeductionCap); err != nil {
		return err
	}
	if err := checkTiered("gross_income_limit", p.GrossIncomeLimit); err != nil {
		return err
	}
	if err := checkTiered("maximum_benefit", p.MaximumBenefit); err != nil {
		return err
	}
	scalars := []struct {
		name string
		v    decimal.Decimal
	}{
		{"medical_standard_deduction", p.MedicalStandardDeduction},
		{"utility_standard.with_heat", p.UtilityStandard.WithHeat},
		{"utility_standard.without_heat", p.UtilityStandard.WithoutHeat},
		{"utility_standard.phone_only", p.UtilityStandard.PhoneOnly},
	}
	for _, s := range scalars {
		if s.v.IsNegative() {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidParameters, s.name, s.v)
		}
	}
	return nil
}

func checkTiered(name string, t TieredTable) error {
	if err := checkDense(name, t.BySize, TableSizes); err != nil {
		return err
	}
	if t.Additional.IsNegative() {
		return fmt.Errorf("%w: %s.additional is negative (%s)", ErrInvalidParameters, name, t.Additional)
	}
	return nil
}

func checkDense(name string, m map[int]decimal.Decimal, upTo int) error {
	for size := 1; size <= upTo; size++ {
		v, ok := m[size]
		if !ok {
			return fmt.Errorf("%w: %s has no entry for household size %d", ErrInvalidParameters, name, size)
		}
		if v.IsNegative() {
			return fmt.Errorf("%w: %s[%d] is negative (%s)", ErrInvalidParameters, name, size, v)
		}
	}
	return nil
}
