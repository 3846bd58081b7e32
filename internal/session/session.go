// Package session sequences the eligibility wizard. It owns one household's
// raw field values, recomputes the derived figures whenever a field changes
// and only lets the user move forward when the current step is valid.
package session

import (
	"errors"

	"github.com/theirongolddev/snapcalc/internal/engine"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// ErrIneligible is returned by Next when the household fails the gross income
// test and is not automatically eligible.
var ErrIneligible = errors.New("household income is above the gross income limit")

// Session is a single wizard run. It is not safe for concurrent use.
type Session struct {
	params params.ProgramParameters
	step   Step

	form   model.HouseholdForm
	input  model.HouseholdInput
	result model.CalculationResult

	// pending is the field error that kept the current step's figures from
	// being published when the step was entered.
	pending error
}

// New starts a session at the household step with the wizard defaults.
func New(p params.ProgramParameters) *Session {
	return &Session{
		params: p,
		step:   StepHousehold,
		form: model.HouseholdForm{
			HouseholdSize: "1",
			UtilityTier:   model.UtilityWithHeat,
		},
	}
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Params returns the parameter table the session evaluates against.
func (s *Session) Params() params.ProgramParameters { return s.params }

// Form returns a copy of the current raw field values.
func (s *Session) Form() model.HouseholdForm { return s.form.Clone() }

// Input returns the household as of the last successful computation.
func (s *Session) Input() model.HouseholdInput { return s.input }

// Result returns the figures as of the last successful computation.
func (s *Session) Result() model.CalculationResult { return s.result }

// Edit applies a change to the raw field values and recomputes every figure up
// to the current step. The edit is always kept; on a validation error the
// previously published figures stay as they were.
func (s *Session) Edit(fn func(*model.HouseholdForm)) error {
	next := s.form.Clone()
	fn(&next)
	s.form = next
	return s.recompute()
}

// Next validates the current step and moves forward. Entering a step computes
// its figures from whatever is already filled in. When a field of the new step
// is invalid, only the figures of earlier steps stay published and Pending
// reports the field until an edit fixes it.
func (s *Session) Next() error {
	if err := s.recompute(); err != nil {
		return err
	}
	if s.step == StepEligibility && !s.result.PassesIncomeTest() {
		return ErrIneligible
	}
	if s.step == StepResult {
		return nil
	}
	s.step++
	s.pending = s.recompute()
	return nil
}

// Back moves to the previous step and recomputes its figures from the current
// field values. Nothing typed on later steps is discarded.
func (s *Session) Back() {
	if s.step > StepHousehold {
		s.step--
		s.pending = s.recompute()
	}
}

// Ineligible reports whether the household is stopped at the income test.
func (s *Session) Ineligible() bool {
	return s.step >= StepEligibility && !s.result.PassesIncomeTest()
}

// Pending returns the field error that kept the current step's figures from
// being published by the last edit or step change, or nil when they are
// current.
func (s *Session) Pending() error { return s.pending }

func (s *Session) recompute() error {
	in, res, err := engine.Evaluate(s.form, s.params, s.step.stage())
	if err != nil {
		s.pending = err
		return err
	}
	s.input = in
	s.result = res
	s.pending = nil
	return nil
}
