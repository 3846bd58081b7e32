package model

import "fmt"

// Field names a logical input, independent of any UI element.
type Field string

const (
	FieldHouseholdSize   Field = "household_size"
	FieldEarnedIncome    Field = "earned_income"
	FieldUnearnedIncome  Field = "unearned_income"
	FieldDeduction       Field = "deduction"
	FieldMedicalExpenses Field = "medical_expenses"
	FieldShelterCost     Field = "shelter_cost"
)

// FieldRef points at one field, or one line of a repeated field.
// Index is -1 for single-valued fields.
type FieldRef struct {
	Field Field `json:"field"`
	Index int   `json:"index"`
}

// Single returns a reference to a single-valued field.
func Single(f Field) FieldRef {
	return FieldRef{Field: f, Index: -1}
}

// Line returns a reference to line i of a repeated field.
func Line(f Field, i int) FieldRef {
	return FieldRef{Field: f, Index: i}
}

func (r FieldRef) String() string {
	if r.Index < 0 {
		return string(r.Field)
	}
	return fmt.Sprintf("%s[%d]", r.Field, r.Index)
}
