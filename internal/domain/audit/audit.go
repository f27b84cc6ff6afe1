// Package audit inspects a batch of shifts for signs of underpayment and
// produces the penalty-based fairness score served by the scoring API.
package audit

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
)

// Penalty weights.
const (
	lowRateFactor        = 0.8
	rateDropPenalty      = 10
	bonusMismatchPenalty = 5
	deductionStep        = 50.0
	maxDeductionPenalty  = 20
	previewSize          = 5
)

// NoAnomaliesMessage is reported when nothing suspicious was found.
const NoAnomaliesMessage = "No major anomalies detected. Earnings appear consistent."

// Metrics summarizes one batch.
type Metrics struct {
	SuspiciousRateDrops int     `json:"suspicious_rate_drops"`
	BonusMismatchCount  int     `json:"bonus_mismatch_count"`
	TotalDeductions     float64 `json:"total_deductions"`
	FairnessScore       int     `json:"fairness_score"`
}

// PreviewRow is a shift echoed back with its hourly rate.
type PreviewRow struct {
	shift.Shift
	HourlyRate float64 `json:"hourly_rate"`
}

// Report is the full outcome of auditing a batch.
type Report struct {
	Metrics   Metrics
	Anomalies []string
	Preview   []PreviewRow
}

// Evaluate computes batch metrics. Shifts with zero hours are rated as if
// they lasted one hour.
func Evaluate(shifts []shift.Shift) Metrics {
	var m Metrics
	if len(shifts) == 0 {
		m.FairnessScore = scoring.MaxScore
		return m
	}

	rates := make([]float64, len(shifts))
	var sum float64
	for i, s := range shifts {
		rates[i] = s.HourlyRate()
		sum += rates[i]
	}
	threshold := sum / float64(len(shifts)) * lowRateFactor

	var deductions float64
	for i, s := range shifts {
		if rates[i] < threshold {
			m.SuspiciousRateDrops++
		}
		if s.BonusesExpected-s.BonusesReceived > 0 {
			m.BonusMismatchCount++
		}
		deductions += s.Deductions
	}
	m.TotalDeductions = round2(deductions)
	m.FairnessScore = penaltyScore(m)
	return m
}

func penaltyScore(m Metrics) int {
	score := scoring.MaxScore
	score -= m.SuspiciousRateDrops * rateDropPenalty
	score -= m.BonusMismatchCount * bonusMismatchPenalty
	score -= min(max(int(m.TotalDeductions/deductionStep), 0), maxDeductionPenalty)
	return min(max(score, scoring.MinScore), scoring.MaxScore)
}

// Anomalies turns metrics into worker-facing messages.
func Anomalies(m Metrics) []string {
	var out []string
	if m.SuspiciousRateDrops > 0 {
		out = append(out, fmt.Sprintf("%d shift(s) had earnings far below the worker's normal hourly rate.", m.SuspiciousRateDrops))
	}
	if m.BonusMismatchCount > 0 {
		out = append(out, fmt.Sprintf("%d instance(s) where expected bonuses were not fully received.", m.BonusMismatchCount))
	}
	if m.TotalDeductions > 0 {
		out = append(out, fmt.Sprintf("Total deductions amounted to ₹%s.", formatAmount(m.TotalDeductions)))
	}
	if len(out) == 0 {
		out = append(out, NoAnomaliesMessage)
	}
	return out
}

// Preview returns up to the first five shifts with their hourly rate.
func Preview(shifts []shift.Shift) []PreviewRow {
	n := min(len(shifts), previewSize)
	rows := make([]PreviewRow, n)
	for i := 0; i < n; i++ {
		rows[i] = PreviewRow{Shift: shifts[i], HourlyRate: shifts[i].HourlyRate()}
	}
	return rows
}

// Run evaluates a batch and assembles the full report.
func Run(shifts []shift.Shift) Report {
	m := Evaluate(shifts)
	return Report{
		Metrics:   m,
		Anomalies: Anomalies(m),
		Preview:   Preview(shifts),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatAmount prints v rounded to two decimals with trailing zeros dropped.
func formatAmount(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}
