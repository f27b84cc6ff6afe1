package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/pkg/logger"
	"github.com/fairpay/fairpay/pkg/metrics"
)

// OfferHandler scores a single aggregate offer with the local heuristic.
type OfferHandler struct {
	scorer scoring.Scorer
	log    logger.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(scorer scoring.Scorer, log logger.Logger) *OfferHandler {
	if scorer == nil {
		scorer = scoring.NewHeuristic()
	}
	return &OfferHandler{scorer: scorer, log: log}
}

// HandleOffer handles POST /analyze-offer.
func (h *OfferHandler) HandleOffer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	var offer scoring.Offer
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(&offer); err != nil {
		metrics.RecordAnalysis(sourceOffer, metrics.OutcomeInvalid)
		writeError(w, fmt.Errorf("%w: invalid JSON body: %w", ErrBadRequest, err))
		return
	}

	res, err := h.scorer.Score(ctx, offer)
	if err != nil {
		metrics.RecordAnalysis(sourceOffer, metrics.OutcomeFailed)
		h.log.Warn(ctx, "offer scoring failed", logger.Error(err))
		writeError(w, err)
		return
	}

	metrics.RecordAnalysis(sourceOffer, metrics.OutcomeSuccess)
	metrics.ObserveScore(sourceOffer, res.Score)
	h.log.Debug(ctx, "offer scored",
		logger.String("request_id", RequestIDFromContext(ctx)),
		logger.Int("score", res.Score),
		logger.Float64("ratio", res.Ratio))
	writeJSON(w, http.StatusOK, res)
}
