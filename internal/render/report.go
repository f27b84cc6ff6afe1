package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fairpay/fairpay/internal/domain/audit"
	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
)

const barWidth = 20

// ReportView is everything RenderReport shows for one analysis.
type ReportView struct {
	ID        string
	Score     int
	Tag       string
	Tone      scoring.Tone
	Headline  string
	Anomalies []string
	Metrics   audit.Metrics
	Totals    shift.Totals
	Preview   []audit.PreviewRow
}

// textWriter keeps the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) row(label, value string) {
	t.printf("  %-22s %s\n", label+":", value)
}

// ScoreBar draws score on a fixed-width gauge, e.g. "[#########-----------]".
func ScoreBar(score int) string {
	score = scoring.Clamp(float64(score))
	filled := score * barWidth / scoring.MaxScore
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// RenderReport writes the analysis view in language l.
func RenderReport(w io.Writer, l Language, v ReportView) error {
	t := &textWriter{w: w}
	t.printf("%s\n", lookup(l, keyTitle))
	if v.ID != "" {
		t.printf("%s %s\n", lookup(l, keyReportID), v.ID)
	}
	t.printf("\n%s: %d/100 %s %s (%s)\n", lookup(l, keyScore), v.Score, ScoreBar(v.Score), TagLabel(l, v.Tag), v.Tone)

	headline := v.Headline
	if headline == "" {
		headline = lookup(l, keyAnalysisComplete)
	}
	t.printf("%s\n\n%s:\n", headline, lookup(l, keyAnomalies))
	if len(v.Anomalies) == 0 {
		t.printf("  %s\n", lookup(l, keyNoAnomalies))
	}
	for _, a := range v.Anomalies {
		t.printf("  • %s\n", a)
	}

	t.printf("\n")
	t.row(lookup(l, keyLowRateShifts), fmt.Sprint(v.Metrics.SuspiciousRateDrops))
	t.row(lookup(l, keyBonusMismatches), fmt.Sprint(v.Metrics.BonusMismatchCount))
	t.row(lookup(l, keyTotalDeductions), FormatCurrency(v.Metrics.TotalDeductions))

	t.printf("\n")
	t.row(lookup(l, keyTotalHours), FormatNumber(v.Totals.TotalHours))
	t.row(lookup(l, keyTotalEarnings), FormatCurrency(v.Totals.TotalEarnings))
	t.row(lookup(l, keyAvgHourly), FormatCurrency(v.Totals.HourlyRate))

	if len(v.Preview) > 0 {
		first := v.Preview[0]
		t.printf("\n")
		t.row(lookup(l, keyHourlyRate), FormatCurrency(first.HourlyRate))
		t.row(lookup(l, keyEarnings), FormatCurrency(first.Earnings))
		t.row(lookup(l, keyHoursOnline), FormatNumber(first.HoursOnline))
	}
	return t.err
}

// RenderOffer writes a local offer estimate in language l.
func RenderOffer(w io.Writer, l Language, r scoring.Result) error {
	t := &textWriter{w: w}
	t.printf("%s\n\n", lookup(l, keyOfferTitle))
	t.printf("%s: %d/100 %s %s (%s)\n\n", lookup(l, keyScore), r.Score, ScoreBar(r.Score), TagLabel(l, r.Tag), r.Tone)
	t.row(lookup(l, keyNetMonthly), FormatCurrency(r.NetMonthly))
	t.row(lookup(l, keyNetPerHour), FormatCurrency(r.NetPerHour))
	t.row(lookup(l, keyNetPerTask), FormatCurrency(r.NetPerTask))
	t.row(lookup(l, keyFairRange), FormatCurrency(r.FairLow)+" - "+FormatCurrency(r.FairHigh))
	t.row(lookup(l, keyTarget), FormatCurrency(r.Target))
	return t.err
}

// RenderAppeal writes the letter under a localized heading.
func RenderAppeal(w io.Writer, l Language, letter string) error {
	t := &textWriter{w: w}
	title := lookup(l, keyAppealTitle)
	t.printf("%s\n%s\n\n%s\n", title, strings.Repeat("=", len([]rune(title))), strings.TrimSpace(letter))
	return t.err
}
