package input

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/snapcalc/internal/model"
)

var (
	ErrEmptyValue    = errors.New("value cannot be empty")
	ErrNotANumber    = errors.New("value must be a number")
	ErrNegativeValue = errors.New("value cannot be negative")
	ErrOutOfRange    = errors.New("value is too large")
)

// FieldError is a validation failure attributed to one logical field.
type FieldError struct {
	Field model.FieldRef
	Kind  error
	Raw   string

	// ZeroRejected is set when the field also disallowed zero.
	ZeroRejected bool
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message())
}

// Message is the user-facing text without the field prefix.
func (e *FieldError) Message() string {
	if errors.Is(e.Kind, ErrNegativeValue) && e.ZeroRejected {
		return "value cannot be negative or zero"
	}
	return e.Kind.Error()
}

func (e *FieldError) Unwrap() error { return e.Kind }

// KindName returns a stable identifier for the error kind.
func (e *FieldError) KindName() string {
	switch {
	case errors.Is(e.Kind, ErrEmptyValue):
		return "empty_value"
	case errors.Is(e.Kind, ErrNotANumber):
		return "not_a_number"
	case errors.Is(e.Kind, ErrNegativeValue):
		return "negative_value"
	case errors.Is(e.Kind, ErrOutOfRange):
		return "out_of_range"
	}
	return "invalid"
}

// AsFieldError unwraps err into a *FieldError when it carries one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
