// Package input validates raw field text into currency amounts and counts.
package input

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/snapcalc/internal/model"
)

var maxInt = decimal.NewFromInt(math.MaxInt)

func parseNumber(ref model.FieldRef, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, &FieldError{Field: ref, Kind: ErrEmptyValue, Raw: raw}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Field: ref, Kind: ErrNotANumber, Raw: raw}
	}
	return d, nil
}

// CheckAmount rejects negative amounts, and zero too unless allowZero is set.
func CheckAmount(ref model.FieldRef, d decimal.Decimal, allowZero bool) error {
	if d.IsNegative() || (!allowZero && d.IsZero()) {
		return &FieldError{Field: ref, Kind: ErrNegativeValue, Raw: d.String(), ZeroRejected: !allowZero}
	}
	return nil
}

// ParsePositiveNumber parses raw as a non-negative amount (positive when
// allowZero is false).
func ParsePositiveNumber(ref model.FieldRef, raw string, allowZero bool) (decimal.Decimal, error) {
	d, err := parseNumber(ref, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if err := CheckAmount(ref, d, allowZero); err != nil {
		if fe, ok := AsFieldError(err); ok {
			fe.Raw = raw
		}
		return decimal.Zero, err
	}
	return d, nil
}

// ParsePositiveInteger validates like ParsePositiveNumber and then truncates
// toward zero, so "2.9" yields 2. Values too large for an int are rejected
// with ErrOutOfRange.
func ParsePositiveInteger(ref model.FieldRef, raw string, allowZero bool) (int, error) {
	d, err := ParsePositiveNumber(ref, raw, allowZero)
	if err != nil {
		return 0, err
	}
	whole := d.Truncate(0)
	if whole.GreaterThan(maxInt) {
		return 0, &FieldError{Field: ref, Kind: ErrOutOfRange, Raw: raw}
	}
	return int(whole.IntPart()), nil
}

// ParseItems parses every line of a repeated field. The first failing line
// is reported.
func ParseItems(field model.Field, raws []string, allowZero bool) ([]decimal.Decimal, error) {
	items := make([]decimal.Decimal, 0, len(raws))
	for i, raw := range raws {
		d, err := ParsePositiveNumber(model.Line(field, i), raw, allowZero)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

// ParseOptionalNumber treats blank input as zero and otherwise behaves like
// ParsePositiveNumber with zero allowed.
func ParseOptionalNumber(ref model.FieldRef, raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return ParsePositiveNumber(ref, raw, true)
}

// SumItems adds amounts after checking each one, reporting the first bad line.
func SumItems(field model.Field, items []decimal.Decimal, allowZero bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, d := range items {
		if err := CheckAmount(model.Line(field, i), d, allowZero); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(d)
	}
	return total, nil
}
