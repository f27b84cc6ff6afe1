// Package metrics provides Prometheus metrics for the FairPay scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for analyses.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// Manager owns every FairPay collector.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	constLabels    map[string]string
	registry       prometheus.Registerer

	// Scoring
	analyses           *prometheus.CounterVec
	fairnessScore      *prometheus.HistogramVec
	validationFailures prometheus.Counter
	appealLetters      prometheus.Counter
	shiftsAnalyzed     prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByEndpoint  *prometheus.CounterVec
	errorsByType      *prometheus.CounterVec
	errorsByComponent *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by the Record* helpers

// customRegistry keeps the default Go collectors out of /metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "fairpay",
		subsystem:      "scoring",
		latencyBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		registry:       prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analyses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "analyses_total",
		Help:        "Shift batch analyses by outcome",
		ConstLabels: m.constLabels,
	}, []string{"source", "outcome"})

	m.fairnessScore = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "fairness_score",
		Help:        "Distribution of computed fairness scores",
		Buckets:     []float64{10, 20, 35, 45, 55, 70, 85, 95, 100},
		ConstLabels: m.constLabels,
	}, []string{"source"})

	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "validation_failures_total",
		Help:        "Shift batches rejected before analysis",
		ConstLabels: m.constLabels,
	})

	m.appealLetters = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "appeal_letters_total",
		Help:        "Appeal letters generated",
		ConstLabels: m.constLabels,
	})

	m.shiftsAnalyzed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "shifts_analyzed_total",
		Help:        "Individual shifts that went through the audit engine",
		ConstLabels: m.constLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "HTTP requests by endpoint, method and status code",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.latencyBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_endpoint_total",
		Help:        "Errors by endpoint, method and error type",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "error_type"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_type_total",
		Help:        "Errors by type and severity",
		ConstLabels: m.constLabels,
	}, []string{"error_type", "severity"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_component_total",
		Help:        "Errors by component and type",
		ConstLabels: m.constLabels,
	}, []string{"component", "error_type"})
}

// RecordAnalysis counts one analysis. source is "api", "offer" or "client".
// Unknown outcomes are dropped and counted as a metrics error.
func (m *Manager) RecordAnalysis(source, outcome string) {
	if err := ValidateOutcome(outcome); err != nil {
		m.errorsByComponent.WithLabelValues("metrics", "unknown_outcome").Inc()
		return
	}
	m.analyses.WithLabelValues(source, outcome).Inc()
}

// ObserveScore records a computed fairness score.
func (m *Manager) ObserveScore(source string, score int) {
	m.fairnessScore.WithLabelValues(source).Observe(float64(score))
}

// RecordAnalysis counts one analysis on the global manager.
func RecordAnalysis(source, outcome string) {
	globalManager.RecordAnalysis(source, outcome)
}

// ObserveScore records a computed fairness score on the global manager.
func ObserveScore(source string, score int) {
	globalManager.ObserveScore(source, score)
}

// RecordValidationFailure counts a rejected shift batch.
func RecordValidationFailure() {
	globalManager.validationFailures.Inc()
}

// RecordAppealLetter counts a generated appeal letter.
func RecordAppealLetter() {
	globalManager.appealLetters.Inc()
}

// AddShiftsAnalyzed adds n shifts to the audit counter.
func AddShiftsAnalyzed(n int) {
	if n > 0 {
		globalManager.shiftsAnalyzed.Add(float64(n))
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error with endpoint, method and type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
