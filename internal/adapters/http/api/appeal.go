package api

import (
	"net/http"

	"github.com/fairpay/fairpay/internal/domain/audit"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	"github.com/fairpay/fairpay/pkg/logger"
	"github.com/fairpay/fairpay/pkg/metrics"
)

// AppealHandler drafts appeal letters from shift batches.
type AppealHandler struct {
	in  batchReader
	log logger.Logger
}

// HandleForm handles POST /generate-appeal-form.
func (h *AppealHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, sourceForm, h.in.fromJSON)
}

// HandleCSV handles POST /generate-appeal with a multipart CSV upload.
func (h *AppealHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, sourceCSV, h.in.fromCSV)
}

func (h *AppealHandler) handle(w http.ResponseWriter, r *http.Request, source string, read func(*http.Request) ([]shift.Shift, error)) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	log := h.log.With(logger.String("request_id", RequestIDFromContext(ctx)), logger.String("source", source))

	shifts, err := read(r)
	if err != nil {
		recordRejection(source, err)
		log.Warn(ctx, "appeal rejected", logger.Error(err))
		writeError(w, err)
		return
	}

	m := audit.Evaluate(shifts)
	letter, err := audit.AppealLetter(m)
	if err != nil {
		metrics.RecordErrorByComponent("appeal", "render")
		log.Error(ctx, "appeal rendering failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to generate appeal letter"})
		return
	}

	metrics.RecordAppealLetter()
	log.Info(ctx, "appeal generated", logger.Int("fairness_score", m.FairnessScore))
	writeJSON(w, http.StatusOK, types.AppealResponse{
		FairnessScore: float64(m.FairnessScore),
		AppealLetter:  letter,
	})
}
