package shift

// Totals aggregates a batch of shifts.
type Totals struct {
	TotalHours    float64 `json:"total_hours"`
	TotalEarnings float64 `json:"total_earnings"`
	HourlyRate    float64 `json:"hourly_rate"`
}

// ComputeTotals sums hours and net earnings (earnings + bonuses received -
// deductions) over the batch. HourlyRate is 0 when no hours were logged.
func ComputeTotals(shifts []Shift) Totals {
	var t Totals
	for _, s := range shifts {
		s = s.Normalized()
		t.TotalHours += s.HoursOnline
		t.TotalEarnings += s.Net()
	}
	if t.TotalHours > 0 {
		t.HourlyRate = t.TotalEarnings / t.TotalHours
	}
	return t
}
