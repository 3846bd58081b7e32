package params

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// document is the TOML shape maintainers edit.
type document struct {
	Version                  string             `toml:"version"`
	EffectiveFrom            string             `toml:"effective_from"`
	MedicalStandardDeduction float64            `toml:"medical_standard_deduction"`
	StandardDeduction        map[string]float64 `toml:"standard_deduction"`
	GrossIncomeLimit         tieredDocument     `toml:"gross_income_limit"`
	MaximumBenefit           tieredDocument     `toml:"maximum_benefit"`
	UtilityStandard          utilityDocument    `toml:"utility_standard"`
}

type tieredDocument struct {
	Additional float64            `toml:"additional"`
	BySize     map[string]float64 `toml:"by_size"`
}

type utilityDocument struct {
	WithHeat    float64 `toml:"with_heat"`
	WithoutHeat float64 `toml:"without_heat"`
	PhoneOnly   float64 `toml:"phone_only"`
}

// Decode parses and validates a TOML parameter document.
func Decode(data []byte) (ProgramParameters, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return ProgramParameters{}, fmt.Errorf("parsing parameters: %w", err)
	}

	p := ProgramParameters{
		Version:                  doc.Version,
		MedicalStandardDeduction: decimal.NewFromFloat(doc.MedicalStandardDeduction),
		UtilityStandard: UtilityStandard{
			WithHeat:    decimal.NewFromFloat(doc.UtilityStandard.WithHeat),
			WithoutHeat: decimal.NewFromFloat(doc.UtilityStandard.WithoutHeat),
			PhoneOnly:   decimal.NewFromFloat(doc.UtilityStandard.PhoneOnly),
		},
	}
	if doc.EffectiveFrom != "" {
		t, err := time.Parse(dateLayout, doc.EffectiveFrom)
		if err != nil {
			return ProgramParameters{}, fmt.Errorf("%w: effective_from %q is not a YYYY-MM-DD date", ErrInvalidParameters, doc.EffectiveFrom)
		}
		p.EffectiveFrom = t
	}

	var err error
	if p.StandardDeduction, err = sizeMap("standard_deduction", doc.StandardDeduction); err != nil {
		return ProgramParameters{}, err
	}
	if p.GrossIncomeLimit, err = tiered("gross_income_limit", doc.GrossIncomeLimit); err != nil {
		return ProgramParameters{}, err
	}
	if p.MaximumBenefit, err = tiered("maximum_benefit", doc.MaximumBenefit); err != nil {
		return ProgramParameters{}, err
	}

	if err := p.Validate(); err != nil {
		return ProgramParameters{}, err
	}
	return p, nil
}

// Load reads a parameter document from disk.
func Load(path string) (ProgramParameters, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the local maintainer
	if err != nil {
		return ProgramParameters{}, fmt.Errorf("reading parameters: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return ProgramParameters{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Encode renders p as a TOML parameter document.
func Encode(p ProgramParameters) ([]byte, error) {
	doc := document{
		Version:                  p.Version,
		MedicalStandardDeduction: p.MedicalStandardDeduction.InexactFloat64(),
		StandardDeduction:        floatMap(p.StandardDeduction),
		GrossIncomeLimit: tieredDocument{
			Additional: p.GrossIncomeLimit.Additional.InexactFloat64(),
			BySize:     floatMap(p.GrossIncomeLimit.BySize),
		},
		MaximumBenefit: tieredDocument{
			Additional: p.MaximumBenefit.Additional.InexactFloat64(),
			BySize:     floatMap(p.MaximumBenefit.BySize),
		},
		UtilityStandard: utilityDocument{
			WithHeat:    p.UtilityStandard.WithHeat.InexactFloat64(),
			WithoutHeat: p.UtilityStandard.WithoutHeat.InexactFloat64(),
			PhoneOnly:   p.UtilityStandard.PhoneOnly.InexactFloat64(),
		},
	}
	if !p.EffectiveFrom.IsZero() {
		doc.EffectiveFrom = p.EffectiveFrom.UTC().Format(dateLayout)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}
	return buf.Bytes(), nil
}

func sizeMap(name string, raw map[string]float64) (map[int]decimal.Decimal, error) {
	m := make(map[int]decimal.Decimal, len(raw))
	for k, v := range raw {
		size, err := strconv.Atoi(k)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("%w: %s key %q is not a household size", ErrInvalidParameters, name, k)
		}
		m[size] = decimal.NewFromFloat(v)
	}
	return m, nil
}

func tiered(name string, doc tieredDocument) (TieredTable, error) {
	bySize, err := sizeMap(name+".by_size", doc.BySize)
	if err != nil {
		return TieredTable{}, err
	}
	return TieredTable{BySize: bySize, Additional: decimal.NewFromFloat(doc.Additional)}, nil
}

func floatMap(m map[int]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for size, v := range m {
		out[strconv.Itoa(size)] = v.InexactFloat64()
	}
	return out
}
