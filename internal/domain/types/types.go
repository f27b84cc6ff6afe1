// Package types contains the JSON contract shared by the scoring API and its client.
package types

import (
	"github.com/fairpay/fairpay/internal/domain/audit"
	"github.com/fairpay/fairpay/internal/domain/shift"
)

// Metrics mirrors the audit metrics object in analysis responses.
type Metrics = audit.Metrics

// PreviewRow is one echoed shift with its hourly rate.
type PreviewRow = audit.PreviewRow

// ShiftBatch is the request body of /analyze-form and /generate-appeal-form.
type ShiftBatch struct {
	Shifts []shift.Shift `json:"shifts"`
}

// AnalysisResponse is the body returned by /analyze-form.
type AnalysisResponse struct {
	FairnessScore float64      `json:"fairness_score"`
	Anomalies     []string     `json:"anomalies"`
	Metrics       Metrics      `json:"metrics"`
	Preview       []PreviewRow `json:"preview,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// AppealResponse is the body returned by /generate-appeal-form.
type AppealResponse struct {
	FairnessScore float64 `json:"fairness_score"`
	AppealLetter  string  `json:"appeal_letter"`
	Error         string  `json:"error,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error          string   `json:"error"`
	Details        string   `json:"details,omitempty"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewAnalysisResponse converts an audit report to its wire shape.
func NewAnalysisResponse(r audit.Report) AnalysisResponse {
	return AnalysisResponse{
		FairnessScore: float64(r.Metrics.FairnessScore),
		Anomalies:     r.Anomalies,
		Metrics:       r.Metrics,
		Preview:       r.Preview,
	}
}
