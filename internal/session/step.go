package session

import (
	"fmt"

	"github.com/theirongolddev/snapcalc/internal/engine"
)

// Step is one screen of the eligibility wizard.
type Step int

const (
	StepHousehold Step = iota + 1
	StepEarnedIncome
	StepUnearnedIncome
	StepEligibility
	StepDeductions
	StepShelter
	StepResult
)

// Steps lists every step in order.
var Steps = []Step{
	StepHousehold,
	StepEarnedIncome,
	StepUnearnedIncome,
	StepEligibility,
	StepDeductions,
	StepShelter,
	StepResult,
}

func (s Step) String() string {
	switch s {
	case StepHousehold:
		return "household"
	case StepEarnedIncome:
		return "earned_income"
	case StepUnearnedIncome:
		return "unearned_income"
	case StepEligibility:
		return "eligibility"
	case StepDeductions:
		return "deductions"
	case StepShelter:
		return "shelter"
	case StepResult:
		return "result"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Title is the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepHousehold:
		return "Your household"
	case StepEarnedIncome:
		return "Earned income"
	case StepUnearnedIncome:
		return "Unearned income"
	case StepEligibility:
		return "Gross income test"
	case StepDeductions:
		return "Deductions"
	case StepShelter:
		return "Shelter costs"
	case StepResult:
		return "Estimated benefit"
	}
	return s.String()
}

// Number is the 1-based position shown to users.
func (s Step) Number() int { return int(s) }

// stage is how far the engine has to evaluate for the step to be shown.
func (s Step) stage() engine.Stage {
	switch {
	case s <= StepHousehold:
		return engine.StageHousehold
	case s <= StepUnearnedIncome:
		return engine.StageIncome
	case s == StepEligibility:
		return engine.StageEligibility
	case s == StepDeductions:
		return engine.StageDeductions
	}
	return engine.StageShelter
}
