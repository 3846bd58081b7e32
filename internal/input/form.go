package input

import (
	"github.com/theirongolddev/snapcalc/internal/model"
)

// Section is a group of form fields that are asked for together. Sections
// are declared in the order the wizard asks for them.
type Section int

const (
	SectionHousehold Section = iota
	SectionIncome
	SectionDeductions
	SectionShelter
)

// NewHousehold copies the yes/no answers and the utility tier from f. Numeric
// fields are left for ParseSection.
func NewHousehold(f model.HouseholdForm) model.HouseholdInput {
	in := model.HouseholdInput{
		HasSeniorOrDisabledMember:       f.HasSeniorOrDisabledMember,
		ReceivesDisabilityBenefits:      f.ReceivesDisabilityBenefits,
		ParticipatesInAssistanceProgram: f.ParticipatesInAssistanceProgram,
		UtilityTier:                     f.UtilityTier,
	}
	if in.UtilityTier == "" {
		in.UtilityTier = model.UtilityWithHeat
	}
	return in
}

// ParseHouseholdSize validates the household size field. Sizes are truncated
// toward zero, and a size that truncates below one is rejected.
func ParseHouseholdSize(f model.HouseholdForm) (int, error) {
	ref := model.Single(model.FieldHouseholdSize)
	size, err := ParsePositiveInteger(ref, f.HouseholdSize, false)
	if err != nil {
		return 0, err
	}
	if size < 1 {
		return 0, &FieldError{Field: ref, Kind: ErrNegativeValue, Raw: f.HouseholdSize, ZeroRejected: true}
	}
	return size, nil
}

// ParseSection parses the fields of one section into in. Fields are checked
// in declaration order and the first invalid one is returned.
func ParseSection(f model.HouseholdForm, s Section, in *model.HouseholdInput) error {
	var err error
	switch s {
	case SectionHousehold:
		in.HouseholdSize, err = ParseHouseholdSize(f)
	case SectionIncome:
		if in.EarnedIncomeItems, err = ParseItems(model.FieldEarnedIncome, f.EarnedIncome, true); err != nil {
			return err
		}
		in.UnearnedIncomeItems, err = ParseItems(model.FieldUnearnedIncome, f.UnearnedIncome, true)
	case SectionDeductions:
		if in.DeductionItems, err = ParseItems(model.FieldDeduction, f.Deductions, false); err != nil {
			return err
		}
		// Medical expenses are only asked of senior or disabled households.
		if in.HasSeniorOrDisabledMember {
			in.MedicalExpenses, err = ParseOptionalNumber(model.Single(model.FieldMedicalExpenses), f.MedicalExpenses)
		}
	case SectionShelter:
		in.ShelterCostItems, err = ParseItems(model.FieldShelterCost, f.ShelterCosts, false)
	}
	return err
}

// ParseHousehold converts a whole form into a HouseholdInput, checking every
// section in order. The first invalid field is returned.
func ParseHousehold(f model.HouseholdForm) (model.HouseholdInput, error) {
	in := NewHousehold(f)
	for s := SectionHousehold; s <= SectionShelter; s++ {
		if err := ParseSection(f, s, &in); err != nil {
			return in, err
		}
	}
	return in, nil
}
