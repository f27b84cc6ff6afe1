package service

import (
	"time"

	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	"github.com/fairpay/fairpay/internal/render"
)

// DefaultHeadline is shown when the service reports no anomalies.
const DefaultHeadline = "Analysis complete"

// Report is the controller's view of one successful analysis.
type Report struct {
	ID        string
	Score     int
	Tag       string
	Tone      scoring.Tone
	Headline  string
	Anomalies []string
	Metrics   types.Metrics
	Totals    shift.Totals
	Preview   []types.PreviewRow
	Language  render.Language
	CreatedAt time.Time
}

func newReport(id string, resp types.AnalysisResponse, shifts []shift.Shift, lang render.Language, at time.Time) *Report {
	score := scoring.Clamp(shift.NormalizeNumber(resp.FairnessScore))
	tag, tone := scoring.ToneForScore(score)
	headline := DefaultHeadline
	if len(resp.Anomalies) > 0 && resp.Anomalies[0] != "" {
		headline = resp.Anomalies[0]
	}
	return &Report{
		ID:        id,
		Score:     score,
		Tag:       tag,
		Tone:      tone,
		Headline:  headline,
		Anomalies: resp.Anomalies,
		Metrics:   resp.Metrics,
		Totals:    shift.ComputeTotals(shifts),
		Preview:   resp.Preview,
		Language:  lang,
		CreatedAt: at,
	}
}

// View adapts the report for the text renderer.
func (r *Report) View() render.ReportView {
	return render.ReportView{
		ID:        r.ID,
		Score:     r.Score,
		Tag:       r.Tag,
		Tone:      r.Tone,
		Headline:  r.Headline,
		Anomalies: r.Anomalies,
		Metrics:   r.Metrics,
		Totals:    r.Totals,
		Preview:   r.Preview,
	}
}
