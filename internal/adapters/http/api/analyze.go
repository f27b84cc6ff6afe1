package api

import (
	"errors"
	"net/http"

	"github.com/fairpay/fairpay/internal/domain/audit"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	"github.com/fairpay/fairpay/pkg/logger"
	"github.com/fairpay/fairpay/pkg/metrics"
)

// AnalyzeHandler audits shift batches.
type AnalyzeHandler struct {
	in  batchReader
	log logger.Logger
}

// HandleForm handles POST /analyze-form.
func (h *AnalyzeHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, sourceForm, h.in.fromJSON)
}

// HandleCSV handles POST /analyze with a multipart CSV upload.
func (h *AnalyzeHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, sourceCSV, h.in.fromCSV)
}

func (h *AnalyzeHandler) handle(w http.ResponseWriter, r *http.Request, source string, read func(*http.Request) ([]shift.Shift, error)) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	log := h.log.With(logger.String("request_id", RequestIDFromContext(ctx)), logger.String("source", source))

	shifts, err := read(r)
	if err != nil {
		recordRejection(source, err)
		log.Warn(ctx, "analysis rejected", logger.Error(err))
		writeError(w, err)
		return
	}

	report := audit.Run(shifts)
	metrics.RecordAnalysis(source, metrics.OutcomeSuccess)
	metrics.ObserveScore(source, report.Metrics.FairnessScore)
	metrics.AddShiftsAnalyzed(len(shifts))
	log.Info(ctx, "analysis completed",
		logger.Int("shifts", len(shifts)),
		logger.Int("fairness_score", report.Metrics.FairnessScore),
		logger.Int("anomalies", len(report.Anomalies)))

	writeJSON(w, http.StatusOK, types.NewAnalysisResponse(report))
}

func recordRejection(source string, err error) {
	if errors.Is(err, shift.ErrValidation) {
		metrics.RecordValidationFailure()
	}
	metrics.RecordAnalysis(source, metrics.OutcomeInvalid)
}
