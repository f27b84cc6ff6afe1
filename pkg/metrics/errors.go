package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrUnknownOutcome = errors.New("unknown analysis outcome")
)

// ValidateOutcome reports whether outcome is one of the Outcome* label values.
func ValidateOutcome(outcome string) error {
	switch outcome {
	case OutcomeSuccess, OutcomeInvalid, OutcomeFailed, OutcomeRejected:
		return nil
	default:
		return ErrUnknownOutcome
	}
}
