// Package shift models one unit of gig work and the arithmetic over batches of them.
package shift

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Shift count bounds offered by the entry form.
const (
	MinShiftCount = 1
	MaxShiftCount = 10
)

// Shift is one discrete unit of gig work. JSON names match the scoring API.
type Shift struct {
	HoursOnline     float64 `json:"hours_online" yaml:"hours_online" validate:"required,gt=0"`
	TasksCompleted  float64 `json:"tasks_completed" yaml:"tasks_completed" validate:"required,gt=0,whole"`
	Earnings        float64 `json:"earnings" yaml:"earnings" validate:"required,gt=0"`
	BonusesReceived float64 `json:"bonuses_received" yaml:"bonuses_received" validate:"gte=0"`
	BonusesExpected float64 `json:"bonuses_expected" yaml:"bonuses_expected" validate:"gte=0"`
	Deductions      float64 `json:"deductions" yaml:"deductions" validate:"gte=0"`
}

// RawShift holds unparsed form values keyed by field name
// (hours_online, tasks_completed, earnings, bonuses_received,
// bonuses_expected, deductions).
type RawShift map[string]any

// Field names accepted in a RawShift.
const (
	FieldHoursOnline     = "hours_online"
	FieldTasksCompleted  = "tasks_completed"
	FieldEarnings        = "earnings"
	FieldBonusesReceived = "bonuses_received"
	FieldBonusesExpected = "bonuses_expected"
	FieldDeductions      = "deductions"
)

// NormalizeNumber returns the numeric value of v, or 0 when v is missing,
// empty, unparsable or not finite.
func NormalizeNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FromRaw converts raw form values into a Shift. A missing or zero
// bonuses_expected falls back to bonuses_received.
func FromRaw(raw RawShift) Shift {
	s := Shift{
		HoursOnline:     NormalizeNumber(raw[FieldHoursOnline]),
		TasksCompleted:  NormalizeNumber(raw[FieldTasksCompleted]),
		Earnings:        NormalizeNumber(raw[FieldEarnings]),
		BonusesReceived: NormalizeNumber(raw[FieldBonusesReceived]),
		BonusesExpected: NormalizeNumber(raw[FieldBonusesExpected]),
		Deductions:      NormalizeNumber(raw[FieldDeductions]),
	}
	return s.withExpectedFallback()
}

func (s Shift) withExpectedFallback() Shift {
	if s.BonusesExpected == 0 && s.BonusesReceived != 0 {
		s.BonusesExpected = s.BonusesReceived
	}
	return s
}

// Normalized returns a copy with every non-finite field zeroed and the
// bonuses_expected fallback applied.
func (s Shift) Normalized() Shift {
	s.HoursOnline = finite(s.HoursOnline)
	s.TasksCompleted = finite(s.TasksCompleted)
	s.Earnings = finite(s.Earnings)
	s.BonusesReceived = finite(s.BonusesReceived)
	s.BonusesExpected = finite(s.BonusesExpected)
	s.Deductions = finite(s.Deductions)
	return s.withExpectedFallback()
}

// HourlyRate returns earnings per online hour. Zero hours count as one hour.
func (s Shift) HourlyRate() float64 {
	hours := s.HoursOnline
	if hours == 0 {
		hours = 1
	}
	return s.Earnings / hours
}

// Net returns earnings plus received bonuses minus deductions.
func (s Shift) Net() float64 {
	return s.Earnings + s.BonusesReceived - s.Deductions
}

// ClampShiftCount bounds a requested number of form entries to [MinShiftCount, MaxShiftCount].
func ClampShiftCount(n int) int {
	if n < MinShiftCount {
		return MinShiftCount
	}
	if n > MaxShiftCount {
		return MaxShiftCount
	}
	return n
}

// Presets returns the two sample shifts used to demo the analysis.
func Presets() []Shift {
	return []Shift{
		{HoursOnline: 8, TasksCompleted: 14, Earnings: 3200, BonusesReceived: 400, BonusesExpected: 500, Deductions: 150},
		{HoursOnline: 6, TasksCompleted: 11, Earnings: 2400, BonusesReceived: 250, BonusesExpected: 300, Deductions: 120},
	}
}
