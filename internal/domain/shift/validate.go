package shift

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report JSON names so messages line up with the form fields.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f == math.Trunc(f)
		})
	})
	return validate
}

// Validate checks that earnings, hours_online and tasks_completed are
// positive, tasks_completed is a whole number and no amount is negative.
func (s Shift) Validate() error {
	return structValidator().Struct(s)
}

// ValidateBatch rejects the batch if it is empty or any shift is missing a
// required value or holds an out-of-range one. The first offending shift is
// reported; a missing value takes precedence in the message.
func ValidateBatch(shifts []Shift) error {
	if len(shifts) == 0 {
		return &ValidationError{Message: MissingFieldsMessage}
	}
	for i, s := range shifts {
		err := s.Validate()
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &ValidationError{Message: MissingFieldsMessage, Index: i + 1}
		}
		msg := InvalidValuesMessage
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
			if fe.Tag() == "required" {
				msg = MissingFieldsMessage
			}
		}
		return &ValidationError{Message: msg, Index: i + 1, Fields: fields}
	}
	return nil
}

// Collect normalizes raw form entries and validates the batch. On failure no
// shifts are returned.
func Collect(raw []RawShift) ([]Shift, error) {
	shifts := make([]Shift, len(raw))
	for i, r := range raw {
		shifts[i] = FromRaw(r)
	}
	if err := ValidateBatch(shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Prepare normalizes already-typed shifts and validates the batch.
func Prepare(in []Shift) ([]Shift, error) {
	shifts := make([]Shift, len(in))
	for i, s := range in {
		shifts[i] = s.Normalized()
	}
	if err := ValidateBatch(shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}
