package audit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const noAnomalyBullet = "- No major anomalies detected, but I would still like clarification regarding my recent payout."

var appealTemplate = template.Must(template.New("appeal").Parse(`
To the Support Team,

I hope you are doing well. I am writing to request a review of my recent earnings and account activity.

An independent analysis of my work logs generated a Fairness Score of **{{.Score}}/100**, and identified the following issues:

{{range .Bullets}}{{.}}
{{end}}
These irregularities may indicate unintentional calculation errors or system inconsistencies. I kindly request your assistance in reviewing my payout details and providing clarification or corrections where necessary.

Thank you for your time and support.
Warm regards,
{{.Signature}}
`))

// AppealOption customizes the generated letter.
type AppealOption func(*appealData)

type appealData struct {
	Score     int
	Bullets   []string
	Signature string
}

// WithSignature replaces the "[Your Name]" placeholder.
func WithSignature(name string) AppealOption {
	return func(d *appealData) {
		if n := strings.TrimSpace(name); n != "" {
			d.Signature = n
		}
	}
}

// AppealLetter drafts a support request summarizing the batch metrics.
func AppealLetter(m Metrics, opts ...AppealOption) (string, error) {
	d := appealData{Score: m.FairnessScore, Signature: "[Your Name]"}
	for _, opt := range opts {
		opt(&d)
	}

	if m.SuspiciousRateDrops > 0 {
		d.Bullets = append(d.Bullets, fmt.Sprintf("- %d shift(s) showed unusually low hourly earnings compared to my normal rate.", m.SuspiciousRateDrops))
	}
	if m.BonusMismatchCount > 0 {
		d.Bullets = append(d.Bullets, fmt.Sprintf("- %d instance(s) where expected bonuses were not fully credited.", m.BonusMismatchCount))
	}
	if m.TotalDeductions > 0 {
		d.Bullets = append(d.Bullets, fmt.Sprintf("- Total deductions of ₹%s, which appear higher than expected.", formatAmount(m.TotalDeductions)))
	}
	if len(d.Bullets) == 0 {
		d.Bullets = []string{noAnomalyBullet}
	}

	var buf bytes.Buffer
	if err := appealTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render appeal letter: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
