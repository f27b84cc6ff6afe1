package client

import (
	"errors"
	"fmt"
)

// ErrAnalysis is the sentinel every *AnalysisError unwraps to.
var ErrAnalysis = errors.New("remote analysis failed")

// DefaultFailureMessage is used when the service gives no reason.
const DefaultFailureMessage = "Analysis failed"

// AnalysisError reports a failed call to the scoring service.
type AnalysisError struct {
	Op string
	// Status is the HTTP status code, 0 when no response was received.
	Status  int
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = DefaultFailureMessage
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *AnalysisError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrAnalysis, e.Cause}
	}
	return []error{ErrAnalysis}
}

// UserMessage is the text shown to the worker.
func (e *AnalysisError) UserMessage() string {
	if e.Message == "" {
		return DefaultFailureMessage
	}
	return e.Message
}
