// Package model defines the household and calculation types shared by the
// engine, the step sequencer and every presentation surface.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UtilityTier selects which standard utility allowance applies to a household.
type UtilityTier string

const (
	UtilityWithHeat    UtilityTier = "with_heat"
	UtilityWithoutHeat UtilityTier = "without_heat"
	UtilityPhoneOnly   UtilityTier = "phone_only"
)

// UtilityTiers lists the tiers in the order they are offered to users.
var UtilityTiers = []UtilityTier{UtilityWithHeat, UtilityWithoutHeat, UtilityPhoneOnly}

// ParseUtilityTier maps a config or flag value to a tier. Empty means with-heat.
func ParseUtilityTier(s string) (UtilityTier, error) {
	switch UtilityTier(s) {
	case "", UtilityWithHeat:
		return UtilityWithHeat, nil
	case UtilityWithoutHeat:
		return UtilityWithoutHeat, nil
	case UtilityPhoneOnly:
		return UtilityPhoneOnly, nil
	}
	return "", fmt.Errorf("unknown utility tier %q (want with_heat, without_heat or phone_only)", s)
}

// Label returns the human-facing name of the tier.
func (t UtilityTier) Label() string {
	switch t {
	case UtilityWithoutHeat:
		return "Without heat"
	case UtilityPhoneOnly:
		return "Phone only"
	default:
		return "With heat"
	}
}

// HouseholdInput is the parsed, typed view of everything a household declared.
// It lives for one session and is never persisted.
type HouseholdInput struct {
	HouseholdSize int

	// HasSeniorOrDisabledMember drives the income, medical and shelter branches.
	HasSeniorOrDisabledMember       bool
	ReceivesDisabilityBenefits      bool
	ParticipatesInAssistanceProgram bool

	EarnedIncomeItems   []decimal.Decimal
	UnearnedIncomeItems []decimal.Decimal
	DeductionItems      []decimal.Decimal
	MedicalExpenses     decimal.Decimal
	ShelterCostItems    []decimal.Decimal

	UtilityTier UtilityTier
}

// AutomaticallyEligible reports whether any categorical condition lets the
// household skip the gross income test.
func (h HouseholdInput) AutomaticallyEligible() bool {
	return h.HasSeniorOrDisabledMember ||
		h.ReceivesDisabilityBenefits ||
		h.ParticipatesInAssistanceProgram
}

// HouseholdForm holds raw field text exactly as a presentation layer collected it.
// Line-item slices only contain lines the user actually filled in.
type HouseholdForm struct {
	HouseholdSize string

	HasSeniorOrDisabledMember       bool
	ReceivesDisabilityBenefits      bool
	ParticipatesInAssistanceProgram bool

	EarnedIncome    []string
	UnearnedIncome  []string
	Deductions      []string
	MedicalExpenses string
	ShelterCosts    []string

	UtilityTier UtilityTier
}

// Clone returns a copy that shares no slices with f.
func (f HouseholdForm) Clone() HouseholdForm {
	c := f
	c.EarnedIncome = append([]string(nil), f.EarnedIncome...)
	c.UnearnedIncome = append([]string(nil), f.UnearnedIncome...)
	c.Deductions = append([]string(nil), f.Deductions...)
	c.ShelterCosts = append([]string(nil), f.ShelterCosts...)
	return c
}
