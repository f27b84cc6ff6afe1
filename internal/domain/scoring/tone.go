package scoring

// Tone is a coarse severity bucket used for color coding.
type Tone string

// Tones from worst to best.
const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneAmber   Tone = "amber"
	ToneGood    Tone = "good"
	TonePremium Tone = "premium"
)

// Tags paired with each tone.
const (
	TagSevere    = "Severe risk"
	TagUnderpaid = "Underpaid"
	TagNearFair  = "Near fair"
	TagFair      = "Fair"
	TagPremium   = "Premium"
)

// ToneForScore maps a score to its qualitative tag and tone. Used for both
// local offer scores and remote batch scores.
func ToneForScore(score int) (string, Tone) {
	switch {
	case score < 35:
		return TagSevere, ToneDanger
	case score < 55:
		return TagUnderpaid, ToneWarning
	case score < 70:
		return TagNearFair, ToneAmber
	case score < 85:
		return TagFair, ToneGood
	default:
		return TagPremium, TonePremium
	}
}
