// Package service is the UI-agnostic FairPay controller. Presentation layers
// call its commands and render the returned values; the only retained state
// is the selected language and the last report.
package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/fairpay/fairpay/internal/adapters/http/client"
	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	"github.com/fairpay/fairpay/internal/render"
	"github.com/fairpay/fairpay/pkg/logger"
	"github.com/fairpay/fairpay/pkg/metrics"
)

const metricsSource = "controller"

// Analyzer is the remote scoring collaborator.
type Analyzer interface {
	Analyze(ctx context.Context, shifts []shift.Shift) (types.AnalysisResponse, error)
	GenerateAppeal(ctx context.Context, shifts []shift.Shift) (types.AppealResponse, error)
}

// State is a snapshot of the controller.
type State struct {
	Language render.Language
	// Last is nil until an analysis succeeds or after ResetState.
	Last *Report
}

// Service runs at most one remote call at a time.
type Service struct {
	mu       sync.RWMutex
	language render.Language
	last     *Report

	// Single in-flight slot shared by analyses and appeals.
	guard *semaphore.Weighted

	analyzer Analyzer
	offers   *scoring.Heuristic
	logger   logger.Logger
	now      func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithAnalyzer sets the remote scoring collaborator.
func WithAnalyzer(a Analyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguage sets the initial UI language.
func WithLanguage(lang render.Language) Option {
	return func(s *Service) {
		if slices.Contains(render.Languages, lang) {
			s.language = lang
		}
	}
}

// WithOfferScorer replaces the heuristic used by EstimateOffer.
func WithOfferScorer(h *scoring.Heuristic) Option {
	return func(s *Service) {
		if h != nil {
			s.offers = h
		}
	}
}

// WithClock overrides the time source used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service. Without WithAnalyzer it talks to the default
// local scoring endpoint.
func New(opts ...Option) *Service {
	s := &Service{
		language: render.English,
		guard:    semaphore.NewWeighted(1),
		offers:   scoring.NewHeuristic(),
		logger:   logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.analyzer == nil {
		s.analyzer = client.New(client.WithLogger(s.logger))
	}
	return s
}

// SubmitAnalysis validates raw form entries, sends them for analysis and
// stores the result as the last report. On any failure the previous state is
// left untouched.
func (s *Service) SubmitAnalysis(ctx context.Context, raw []shift.RawShift) (*Report, error) {
	shifts, err := shift.Collect(raw)
	if err != nil {
		s.rejected(ctx, "analysis", err)
		return nil, err
	}
	return s.analyze(ctx, shifts)
}

// SubmitShifts is SubmitAnalysis for already-typed shifts.
func (s *Service) SubmitShifts(ctx context.Context, in []shift.Shift) (*Report, error) {
	shifts, err := shift.Prepare(in)
	if err != nil {
		s.rejected(ctx, "analysis", err)
		return nil, err
	}
	return s.analyze(ctx, shifts)
}

func (s *Service) analyze(ctx context.Context, shifts []shift.Shift) (*Report, error) {
	if !s.guard.TryAcquire(1) {
		metrics.RecordAnalysis(metricsSource, metrics.OutcomeRejected)
		return nil, ErrBusy
	}
	defer s.guard.Release(1)

	resp, err := s.analyzer.Analyze(ctx, shifts)
	if err != nil {
		metrics.RecordAnalysis(metricsSource, metrics.OutcomeFailed)
		s.logger.Warn(ctx, "analysis failed", logger.Int("shifts", len(shifts)), logger.Error(err))
		return nil, fmt.Errorf("analyze shifts: %w", err)
	}

	s.mu.Lock()
	report := newReport(uuid.NewString(), resp, shifts, s.language, s.now())
	s.last = report
	s.mu.Unlock()

	metrics.RecordAnalysis(metricsSource, metrics.OutcomeSuccess)
	metrics.ObserveScore(metricsSource, report.Score)
	s.logger.Info(ctx, "analysis stored",
		logger.String("report_id", report.ID),
		logger.Int("score", report.Score),
		logger.String("tag", report.Tag))
	return report, nil
}

// GenerateAppeal validates raw form entries and asks the service for an
// appeal letter.
func (s *Service) GenerateAppeal(ctx context.Context, raw []shift.RawShift) (string, error) {
	shifts, err := shift.Collect(raw)
	if err != nil {
		s.rejected(ctx, "appeal", err)
		return "", err
	}
	return s.appeal(ctx, shifts)
}

// GenerateAppealShifts is GenerateAppeal for already-typed shifts.
func (s *Service) GenerateAppealShifts(ctx context.Context, in []shift.Shift) (string, error) {
	shifts, err := shift.Prepare(in)
	if err != nil {
		s.rejected(ctx, "appeal", err)
		return "", err
	}
	return s.appeal(ctx, shifts)
}

func (s *Service) appeal(ctx context.Context, shifts []shift.Shift) (string, error) {
	if !s.guard.TryAcquire(1) {
		return "", ErrBusy
	}
	defer s.guard.Release(1)

	resp, err := s.analyzer.GenerateAppeal(ctx, shifts)
	if err != nil {
		s.logger.Warn(ctx, "appeal failed", logger.Error(err))
		return "", fmt.Errorf("generate appeal: %w", err)
	}
	metrics.RecordAppealLetter()
	return resp.AppealLetter, nil
}

func (s *Service) rejected(ctx context.Context, op string, err error) {
	metrics.RecordValidationFailure()
	metrics.RecordAnalysis(metricsSource, metrics.OutcomeInvalid)
	s.logger.Debug(ctx, "batch rejected", logger.String("op", op), logger.Error(err))
}

// ResetState forgets the last report. The language is kept.
func (s *Service) ResetState() {
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
}

// EstimateOffer scores one aggregate offer locally.
func (s *Service) EstimateOffer(offer scoring.Offer) scoring.Result {
	res := s.offers.Evaluate(offer)
	metrics.RecordAnalysis("offer", metrics.OutcomeSuccess)
	metrics.ObserveScore("offer", res.Score)
	return res
}

// SetLanguage switches the UI language.
func (s *Service) SetLanguage(lang render.Language) error {
	if !slices.Contains(render.Languages, lang) {
		return fmt.Errorf("%w: %q", render.ErrUnknownLanguage, lang)
	}
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
	return nil
}

// State returns a snapshot of the controller state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Language: s.language, Last: s.last}
}

// QuickExample returns the two sample shifts as raw form entries.
func QuickExample() []shift.RawShift {
	presets := shift.Presets()
	out := make([]shift.RawShift, len(presets))
	for i, p := range presets {
		out[i] = shift.RawShift{
			shift.FieldHoursOnline:     p.HoursOnline,
			shift.FieldTasksCompleted:  p.TasksCompleted,
			shift.FieldEarnings:        p.Earnings,
			shift.FieldBonusesReceived: p.BonusesReceived,
			shift.FieldBonusesExpected: p.BonusesExpected,
			shift.FieldDeductions:      p.Deductions,
		}
	}
	return out
}
