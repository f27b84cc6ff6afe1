package shift

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel every *ValidationError unwraps to.
var ErrValidation = errors.New("shift validation failed")

// MissingFieldsMessage is shown to the worker when a batch is rejected.
const MissingFieldsMessage = "Please fill earnings, hours, and tasks for every shift."

// InvalidValuesMessage is shown when every field is filled but a value is out
// of range.
const InvalidValuesMessage = "Amounts cannot be negative, hours must be positive and tasks a whole number."

// ValidationError rejects a whole batch before submission.
type ValidationError struct {
	Message string
	// Index is the 1-based position of the first offending shift, 0 for batch-level problems.
	Index int
	// Fields lists the JSON names of the missing fields on that shift.
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Index > 0 && len(e.Fields) > 0 {
		return fmt.Sprintf("%s (shift %d: %s)", e.Message, e.Index, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
