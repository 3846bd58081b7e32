package params

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

func amounts(values ...int64) map[int]decimal.Decimal {
	m := make(map[int]decimal.Decimal, len(values))
	for i, v := range values {
		m[i+1] = decimal.NewFromInt(v)
	}
	return m
}

// ffy2019 is the table published for the federal fiscal year starting
// October 2018.
func ffy2019() ProgramParameters {
	return ProgramParameters{
		Version:           "FFY2019",
		EffectiveFrom:     time.Date(2018, time.October, 1, 0, 0, 0, 0, time.UTC),
		StandardDeduction: amounts(160, 160, 160, 170, 199, 228),
		GrossIncomeLimit: TieredTable{
			BySize:     amounts(1860, 2505, 3149, 3793, 4439, 5082, 5762, 6372, 7018, 7633),
			Additional: decimal.NewFromInt(646),
		},
		MedicalStandardDeduction: decimal.NewFromInt(138),
		MaximumBenefit: TieredTable{
			BySize:     amounts(192, 352, 504, 640, 760, 913, 1009, 1153, 1297, 1441),
			Additional: decimal.NewFromInt(144),
		},
		UtilityStandard: UtilityStandard{
			WithHeat:    decimal.NewFromInt(808),
			WithoutHeat: decimal.NewFromInt(232),
			PhoneOnly:   decimal.NewFromInt(36),
		},
	}
}

// builtinHistory is the compiled-in table history.
// Entries must be sorted by EffectiveFrom ascending.
var builtinHistory = History{ffy2019()}

// Builtin returns a copy of the compiled-in history.
func Builtin() History {
	h := make(History, len(builtinHistory))
	copy(h, builtinHistory)
	return h
}

// Default returns the latest compiled-in table.
func Default() ProgramParameters {
	return builtinHistory.Latest()
}

// History is a set of table versions ordered by effective date.
type History []ProgramParameters

// Sort orders the history by EffectiveFrom ascending.
func (h History) Sort() {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].EffectiveFrom.Before(h[j].EffectiveFrom)
	})
}

// Latest returns the most recent version, or the zero table for an empty history.
func (h History) Latest() ProgramParameters {
	if len(h) == 0 {
		return ProgramParameters{}
	}
	return h[len(h)-1]
}

// At returns the version in effect at the given time. A zero time selects the
// latest version. Dates before the first version fall back to the first one.
func (h History) At(at time.Time) (ProgramParameters, bool) {
	if len(h) == 0 {
		return ProgramParameters{}, false
	}
	if at.IsZero() {
		return h.Latest(), true
	}

	at = at.UTC()
	selected := h[0]
	for _, v := range h {
		if v.EffectiveFrom.IsZero() || !at.Before(v.EffectiveFrom.UTC()) {
			selected = v
			continue
		}
		break
	}
	return selected, true
}
