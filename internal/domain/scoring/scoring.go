// Package scoring maps worker earnings to a 0-100 fairness score.
package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// Fair band multipliers applied to the base rate.
const (
	fairLowFactor  = 0.9
	fairHighFactor = 1.2
	targetFactor   = 1.05
)

// Gig types and city tiers known to the base rate table.
const (
	GigRide     = "ride"
	GigDelivery = "delivery"
	GigParcel   = "parcel"
	GigOther    = "other"

	TierMetro = "metro"
	Tier2     = "tier2"
	Tier3     = "tier3"
)

// Offer is an aggregate gig offer over one reporting period (a month).
type Offer struct {
	GigType         string  `json:"gigType"`
	CityTier        string  `json:"cityTier"`
	Vehicle         string  `json:"vehicle"`
	HoursOnline     float64 `json:"hoursOnline"`
	TasksCompleted  float64 `json:"tasksCompleted"`
	Earnings        float64 `json:"earnings"`
	BonusesReceived float64 `json:"bonusesReceived"`
	Deductions      float64 `json:"deductions"`
	PlatformFees    float64 `json:"platformFees"`
	ExtraCosts      float64 `json:"extraCosts"`
}

// Result is the outcome of scoring an Offer.
type Result struct {
	Score      int     `json:"score"`
	Tag        string  `json:"tag"`
	Tone       Tone    `json:"tone"`
	NetMonthly float64 `json:"netMonthly"`
	NetPerHour float64 `json:"netPerHour"`
	NetPerTask float64 `json:"netPerTask"`
	Base       float64 `json:"base"`
	Ratio      float64 `json:"ratio"`
	FairLow    float64 `json:"fairLow"`
	FairHigh   float64 `json:"fairHigh"`
	Target     float64 `json:"target"`
}

// Scorer computes a fairness result for an offer.
type Scorer interface {
	Score(ctx context.Context, offer Offer) (Result, error)
}

// RateTable maps gig type -> city tier -> fair net rupees per hour.
type RateTable map[string]map[string]float64

// DefaultRates is the reference fair net-per-hour table.
func DefaultRates() RateTable {
	return RateTable{
		GigRide:     {TierMetro: 290, Tier2: 240, Tier3: 200},
		GigDelivery: {TierMetro: 230, Tier2: 190, Tier3: 160},
		GigParcel:   {TierMetro: 210, Tier2: 175, Tier3: 150},
		GigOther:    {TierMetro: 200, Tier2: 170, Tier3: 140},
	}
}

// Option configures a Heuristic.
type Option func(*Heuristic)

// WithRates overrides entries of the base rate table. Non-positive rates are ignored.
func WithRates(rates RateTable) Option {
	return func(h *Heuristic) {
		for gig, tiers := range rates {
			gig = normalizeKey(gig)
			if _, ok := h.rates[gig]; !ok {
				h.rates[gig] = make(map[string]float64)
			}
			for tier, rate := range tiers {
				if rate > 0 {
					h.rates[gig][normalizeKey(tier)] = rate
				}
			}
		}
	}
}

// WithVehicleFactor sets the multiplier for a vehicle name.
func WithVehicleFactor(vehicle string, factor float64) Option {
	return func(h *Heuristic) {
		if factor > 0 {
			h.vehicles[normalizeKey(vehicle)] = factor
		}
	}
}

// Heuristic is the local, table-driven Scorer.
type Heuristic struct {
	rates    RateTable
	vehicles map[string]float64
}

// NewHeuristic creates a Heuristic with the default tables.
func NewHeuristic(opts ...Option) *Heuristic {
	h := &Heuristic{
		rates: DefaultRates(),
		vehicles: map[string]float64{
			"car":   1.1,
			"tempo": 1.1,
			"cycle": 0.9,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Score implements Scorer. It never fails on numeric input; the error is
// reserved for a cancelled context.
func (h *Heuristic) Score(ctx context.Context, offer Offer) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("score offer: %w", err)
	}
	return h.Evaluate(offer), nil
}

// Evaluate scores an offer synchronously.
func (h *Heuristic) Evaluate(o Offer) Result {
	netMonthly := (o.Earnings + o.BonusesReceived) - (o.Deductions + o.PlatformFees + o.ExtraCosts)

	var netPerHour, netPerTask float64
	if o.HoursOnline > 0 {
		netPerHour = netMonthly / o.HoursOnline
	}
	if o.TasksCompleted > 0 {
		netPerTask = netMonthly / o.TasksCompleted
	}

	base := h.BaseRate(o.GigType, o.CityTier) * h.VehicleFactor(o.Vehicle)

	var ratio float64
	if base != 0 && isFinite(netPerHour) {
		ratio = netPerHour / base
	}

	score := ScoreRatio(netPerHour, ratio)
	tag, tone := ToneForScore(score)
	return Result{
		Score:      score,
		Tag:        tag,
		Tone:       tone,
		NetMonthly: netMonthly,
		NetPerHour: netPerHour,
		NetPerTask: netPerTask,
		Base:       base,
		Ratio:      ratio,
		FairLow:    base * fairLowFactor,
		FairHigh:   base * fairHighFactor,
		Target:     base * targetFactor,
	}
}

// BaseRate looks up the fair rate. Unknown gig types use "other"; unknown
// tiers use the metro column of the gig type.
func (h *Heuristic) BaseRate(gigType, cityTier string) float64 {
	tiers, ok := h.rates[normalizeKey(gigType)]
	if !ok {
		tiers = h.rates[GigOther]
	}
	if rate, ok := tiers[normalizeKey(cityTier)]; ok {
		return rate
	}
	return tiers[TierMetro]
}

// VehicleFactor returns the multiplier for vehicle, 1.0 when unknown.
func (h *Heuristic) VehicleFactor(vehicle string) float64 {
	if f, ok := h.vehicles[normalizeKey(vehicle)]; ok {
		return f
	}
	return 1.0
}

// ScoreRatio applies the piecewise curve to netPerHour/base. Segments are
// evaluated in order and the first match wins.
func ScoreRatio(netPerHour, ratio float64) int {
	if netPerHour <= 0 || !isFinite(netPerHour) || !isFinite(ratio) {
		return MinScore
	}
	var raw float64
	switch {
	case ratio < 0.6:
		raw = 15 + ratio*20
	case ratio < 0.8:
		raw = 30 + (ratio-0.6)*75
	case ratio < 1.0:
		raw = 50 + (ratio-0.8)*75
	case ratio < 1.2:
		raw = 70 + (ratio-1.0)*80
	case ratio < 1.5:
		raw = 86 + (ratio-1.2)*40
	default:
		raw = MaxScore
	}
	return Clamp(raw)
}

// Clamp rounds half away from zero and bounds to [MinScore, MaxScore].
// Non-finite input yields MinScore.
func Clamp(v float64) int {
	if !isFinite(v) {
		return MinScore
	}
	r := math.Round(v)
	if r < MinScore {
		return MinScore
	}
	if r > MaxScore {
		return MaxScore
	}
	return int(r)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
