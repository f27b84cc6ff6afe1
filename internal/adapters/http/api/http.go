// Package api serves the scoring endpoints consumed by the FairPay client.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	"github.com/fairpay/fairpay/pkg/logger"
)

// Request limits.
const (
	DefaultMaxShifts = 1000
	maxJSONBody      = 1 << 20
	maxUploadBytes   = 8 << 20
)

// Metric source labels.
const (
	sourceForm  = "form"
	sourceCSV   = "csv"
	sourceOffer = "offer"
)

// Server wires HTTP routes for the scoring API.
type Server struct {
	healthHandler  *HealthHandler
	analyzeHandler *AnalyzeHandler
	appealHandler  *AppealHandler
	offerHandler   *OfferHandler
}

// Option configures the server.
type Option func(*serverConfig)

type serverConfig struct {
	log       logger.Logger
	maxShifts int
}

// WithLogger sets the logger shared by all handlers.
func WithLogger(l logger.Logger) Option {
	return func(c *serverConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMaxShifts bounds the number of shifts accepted per request.
func WithMaxShifts(n int) Option {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxShifts = n
		}
	}
}

// NewServer creates a new API server with all handlers. The scorer backs
// POST /analyze-offer.
func NewServer(scorer scoring.Scorer, opts ...Option) *Server {
	cfg := serverConfig{log: logger.Nop(), maxShifts: DefaultMaxShifts}
	for _, opt := range opts {
		opt(&cfg)
	}
	in := batchReader{maxShifts: cfg.maxShifts}
	return &Server{
		healthHandler:  NewHealthHandler(),
		analyzeHandler: &AnalyzeHandler{in: in, log: cfg.log},
		appealHandler:  &AppealHandler{in: in, log: cfg.log},
		offerHandler:   NewOfferHandler(scorer, cfg.log),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(path, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}
	route("/health", "health", s.healthHandler.HandleHealth)
	route("/metrics", "metrics", s.healthHandler.HandleMetrics)
	route("/analyze-form", "analyze_form", s.analyzeHandler.HandleForm)
	route("/analyze", "analyze", s.analyzeHandler.HandleCSV)
	route("/generate-appeal-form", "generate_appeal_form", s.appealHandler.HandleForm)
	route("/generate-appeal", "generate_appeal", s.appealHandler.HandleCSV)
	route("/analyze-offer", "analyze_offer", s.offerHandler.HandleOffer)
}

// batchReader decodes shift batches from either request flavour.
type batchReader struct {
	maxShifts int
}

// fromJSON decodes {"shifts": [...]} and validates every shift.
func (b batchReader) fromJSON(r *http.Request) ([]shift.Shift, error) {
	var req types.ShiftBatch
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON body: %w", ErrBadRequest, err)
	}
	if len(req.Shifts) == 0 {
		return nil, ErrNoShifts
	}
	if len(req.Shifts) > b.maxShifts {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyShifts, len(req.Shifts), b.maxShifts)
	}
	return shift.Prepare(req.Shifts)
}

// fromCSV reads the multipart "file" field.
func (b batchReader) fromCSV(r *http.Request) ([]shift.Shift, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessFile, err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessFile, err)
	}
	defer f.Close()

	shifts, err := ReadShiftsCSV(f)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, ErrNoShifts
	}
	if len(shifts) > b.maxShifts {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyShifts, len(shifts), b.maxShifts)
	}
	return shifts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to the error body; every failure is a 400.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody(err))
}

func errorBody(err error) types.ErrorResponse {
	var (
		ve *shift.ValidationError
		mc *MissingColumnsError
	)
	switch {
	case errors.As(err, &ve):
		return types.ErrorResponse{Error: ve.Message, Details: ve.Error()}
	case errors.As(err, &mc):
		return types.ErrorResponse{Error: ErrMissingColumns.Error(), MissingColumns: mc.Columns}
	case errors.Is(err, ErrNoShifts):
		return types.ErrorResponse{Error: ErrNoShifts.Error()}
	case errors.Is(err, ErrProcessFile):
		return types.ErrorResponse{Error: ErrProcessFile.Error(), Details: err.Error()}
	case errors.Is(err, ErrTooManyShifts):
		return types.ErrorResponse{Error: "Too many shifts", Details: err.Error()}
	default:
		return types.ErrorResponse{Error: "Invalid request", Details: err.Error()}
	}
}
