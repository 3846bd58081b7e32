package server

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// CalculateRequest carries raw field values exactly as a form collected them.
type CalculateRequest struct {
	HouseholdSize      string   `json:"household_size"`
	SeniorOrDisabled   bool     `json:"senior_or_disabled"`
	DisabilityBenefits bool     `json:"disability_benefits"`
	AssistanceProgram  bool     `json:"assistance_program"`
	EarnedIncome       []string `json:"earned_income"`
	UnearnedIncome     []string `json:"unearned_income"`
	Deductions         []string `json:"deductions"`
	MedicalExpenses    string   `json:"medical_expenses"`
	ShelterCosts       []string `json:"shelter_costs"`
	UtilityTier        string   `json:"utility_tier,omitempty"`
	// AsOf selects the parameter table in effect on that date (YYYY-MM-DD).
	AsOf string `json:"as_of,omitempty"`
}

// Form converts the request into the raw household form.
func (r CalculateRequest) Form() (model.HouseholdForm, error) {
	tier, err := model.ParseUtilityTier(r.UtilityTier)
	if err != nil {
		return model.HouseholdForm{}, err
	}
	return model.HouseholdForm{
		HouseholdSize:                   r.HouseholdSize,
		HasSeniorOrDisabledMember:       r.SeniorOrDisabled,
		ReceivesDisabilityBenefits:      r.DisabilityBenefits,
		ParticipatesInAssistanceProgram: r.AssistanceProgram,
		EarnedIncome:                    r.EarnedIncome,
		UnearnedIncome:                  r.UnearnedIncome,
		Deductions:                      r.Deductions,
		MedicalExpenses:                 r.MedicalExpenses,
		ShelterCosts:                    r.ShelterCosts,
		UtilityTier:                     tier,
	}, nil
}

// ResultPayload is the JSON shape of a calculation result. Amounts are
// decimal strings. A household that fails the gross income test stops at the
// gate, so the deduction, shelter and benefit figures are left out.
type ResultPayload struct {
	GrossEarnedIncome     decimal.Decimal  `json:"gross_earned_income"`
	NetEarnedIncome       decimal.Decimal  `json:"net_earned_income"`
	TotalUnearnedIncome   decimal.Decimal  `json:"total_unearned_income"`
	TotalIncome           decimal.Decimal  `json:"total_income"`
	GrossIncomeLimit      decimal.Decimal  `json:"gross_income_limit"`
	AutomaticallyEligible bool             `json:"automatically_eligible"`
	AboveIncomeLimit      bool             `json:"above_income_limit"`
	PassesIncomeTest      bool             `json:"passes_income_test"`
	StandardDeduction     *decimal.Decimal `json:"standard_deduction,omitempty"`
	MedicalDeduction      *decimal.Decimal `json:"medical_deduction,omitempty"`
	TotalDeduction        *decimal.Decimal `json:"total_deduction,omitempty"`
	AdjustedIncome        *decimal.Decimal `json:"adjusted_income,omitempty"`
	UtilityAllowance      *decimal.Decimal `json:"utility_allowance,omitempty"`
	TotalShelterCost      *decimal.Decimal `json:"total_shelter_cost,omitempty"`
	ShelterDeduction      *decimal.Decimal `json:"shelter_deduction,omitempty"`
	MonthlyNetIncome      *decimal.Decimal `json:"monthly_net_income,omitempty"`
	BenefitAllotment      *decimal.Decimal `json:"benefit_allotment,omitempty"`
}

// NewResultPayload flattens a result for JSON output.
func NewResultPayload(res model.CalculationResult) ResultPayload {
	out := ResultPayload{
		GrossEarnedIncome:     res.GrossEarnedIncome,
		NetEarnedIncome:       res.NetEarnedIncome,
		TotalUnearnedIncome:   res.TotalUnearnedIncome,
		TotalIncome:           res.TotalIncome,
		GrossIncomeLimit:      res.GrossIncomeLimit,
		AutomaticallyEligible: res.AutomaticallyEligible,
		AboveIncomeLimit:      res.AboveIncomeLimit,
		PassesIncomeTest:      res.PassesIncomeTest(),
	}
	if !out.PassesIncomeTest {
		return out
	}
	out.StandardDeduction = &res.StandardDeduction
	out.MedicalDeduction = &res.MedicalDeduction
	out.TotalDeduction = &res.TotalDeduction
	out.AdjustedIncome = &res.AdjustedIncome
	out.UtilityAllowance = &res.UtilityAllowance
	out.TotalShelterCost = &res.TotalShelterCost
	out.ShelterDeduction = &res.ShelterDeduction
	out.MonthlyNetIncome = &res.MonthlyNetIncome
	out.BenefitAllotment = &res.BenefitAllotment
	return out
}

// CalculateResponse is returned by POST /v1/calculate.
type CalculateResponse struct {
	CalculationID string        `json:"calculation_id"`
	ParamsVersion string        `json:"params_version"`
	Result        ResultPayload `json:"result"`
}

// ErrorResponse is returned for every non-2xx response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

func fieldErrorResponse(status int, fe *input.FieldError) ErrorResponse {
	return ErrorResponse{
		Status:  status,
		Message: fe.Message(),
		Field:   fe.Field.String(),
		Kind:    fe.KindName(),
	}
}

// ParamsPayload is the JSON shape of a parameter table.
type ParamsPayload struct {
	Version                  string                     `json:"version"`
	EffectiveFrom            string                     `json:"effective_from,omitempty"`
	StandardDeduction        map[string]decimal.Decimal `json:"standard_deduction"`
	GrossIncomeLimit         TieredPayload              `json:"gross_income_limit"`
	MedicalStandardDeduction decimal.Decimal            `json:"medical_standard_deduction"`
	MaximumBenefit           TieredPayload              `json:"maximum_benefit"`
	UtilityStandard          map[string]decimal.Decimal `json:"utility_standard"`
}

// TieredPayload is a size table plus the per-member increment.
type TieredPayload struct {
	BySize     map[string]decimal.Decimal `json:"by_size"`
	Additional decimal.Decimal            `json:"additional"`
}

// NewParamsPayload flattens a parameter table for JSON output.
func NewParamsPayload(p params.ProgramParameters) ParamsPayload {
	out := ParamsPayload{
		Version:                  p.Version,
		StandardDeduction:        sizeKeys(p.StandardDeduction),
		GrossIncomeLimit:         TieredPayload{BySize: sizeKeys(p.GrossIncomeLimit.BySize), Additional: p.GrossIncomeLimit.Additional},
		MedicalStandardDeduction: p.MedicalStandardDeduction,
		MaximumBenefit:           TieredPayload{BySize: sizeKeys(p.MaximumBenefit.BySize), Additional: p.MaximumBenefit.Additional},
		UtilityStandard: map[string]decimal.Decimal{
			string(model.UtilityWithHeat):    p.UtilityStandard.WithHeat,
			string(model.UtilityWithoutHeat): p.UtilityStandard.WithoutHeat,
			string(model.UtilityPhoneOnly):   p.UtilityStandard.PhoneOnly,
		},
	}
	if !p.EffectiveFrom.IsZero() {
		out.EffectiveFrom = p.EffectiveFrom.Format("2006-01-02")
	}
	return out
}

// sizeKeys keys a size table by the size as a string, as JSON objects need.
func sizeKeys(m map[int]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for size, v := range m {
		out[strconv.Itoa(size)] = v
	}
	return out
}
