package render

type key string

const (
	keyLanguageName     key = "language_name"
	keyTitle            key = "title"
	keyScore            key = "score"
	keyAnalysisComplete key = "analysis_complete"
	keyAnomalies        key = "anomalies"
	keyNoAnomalies      key = "no_anomalies"
	keyLowRateShifts    key = "low_rate_shifts"
	keyBonusMismatches  key = "bonus_mismatches"
	keyTotalDeductions  key = "total_deductions"
	keyTotalHours       key = "total_hours"
	keyTotalEarnings    key = "total_earnings"
	keyAvgHourly        key = "avg_hourly"
	keyHourlyRate       key = "hourly_rate"
	keyEarnings         key = "earnings"
	keyHoursOnline      key = "hours_online"
	keyOfferTitle       key = "offer_title"
	keyNetMonthly       key = "net_monthly"
	keyNetPerHour       key = "net_per_hour"
	keyNetPerTask       key = "net_per_task"
	keyFairRange        key = "fair_range"
	keyTarget           key = "target"
	keyAppealTitle      key = "appeal_title"
	keyReportID         key = "report_id"
)

// Qualitative tags as produced by scoring.ToneForScore.
const (
	tagSevere   key = "Severe risk"
	tagUnder    key = "Underpaid"
	tagNearFair key = "Near fair"
	tagFair     key = "Fair"
	tagPremium  key = "Premium"
)

var dictionary = map[Language]map[key]string{
	English: {
		keyLanguageName:     "English",
		keyTitle:            "FairPay analysis",
		keyScore:            "Fairness score",
		keyAnalysisComplete: "Analysis complete",
		keyAnomalies:        "Anomalies",
		keyNoAnomalies:      "No anomalies reported.",
		keyLowRateShifts:    "Low-rate shifts",
		keyBonusMismatches:  "Bonus mismatches",
		keyTotalDeductions:  "Total deductions",
		keyTotalHours:       "Total hours",
		keyTotalEarnings:    "Total earnings",
		keyAvgHourly:        "Avg hourly income",
		keyHourlyRate:       "Hourly rate",
		keyEarnings:         "Earnings",
		keyHoursOnline:      "Hours online",
		keyOfferTitle:       "Offer estimate",
		keyNetMonthly:       "Net monthly",
		keyNetPerHour:       "Net per hour",
		keyNetPerTask:       "Net per task",
		keyFairRange:        "Fair range",
		keyTarget:           "Target",
		keyAppealTitle:      "Appeal letter",
		keyReportID:         "Report",
		tagSevere:           "Severe risk",
		tagUnder:            "Underpaid",
		tagNearFair:         "Near fair",
		tagFair:             "Fair",
		tagPremium:          "Premium",
	},
	Hindi: {
		keyLanguageName:     "हिन्दी",
		keyTitle:            "फेयरपे विश्लेषण",
		keyScore:            "निष्पक्षता स्कोर",
		keyAnalysisComplete: "विश्लेषण पूरा हुआ",
		keyAnomalies:        "विसंगतियाँ",
		keyNoAnomalies:      "कोई विसंगति नहीं मिली।",
		keyLowRateShifts:    "कम दर वाली शिफ्ट",
		keyBonusMismatches:  "बोनस में अंतर",
		keyTotalDeductions:  "कुल कटौती",
		keyTotalHours:       "कुल घंटे",
		keyTotalEarnings:    "कुल कमाई",
		keyAvgHourly:        "औसत प्रति घंटा आय",
		keyHourlyRate:       "प्रति घंटा दर",
		keyEarnings:         "कमाई",
		keyHoursOnline:      "ऑनलाइन घंटे",
		keyOfferTitle:       "ऑफ़र अनुमान",
		keyNetMonthly:       "शुद्ध मासिक",
		keyNetPerHour:       "शुद्ध प्रति घंटा",
		keyNetPerTask:       "शुद्ध प्रति कार्य",
		keyFairRange:        "उचित सीमा",
		keyTarget:           "लक्ष्य",
		keyAppealTitle:      "अपील पत्र",
		keyReportID:         "रिपोर्ट",
		tagSevere:           "गंभीर जोखिम",
		tagUnder:            "कम भुगतान",
		tagNearFair:         "लगभग उचित",
		tagFair:             "उचित",
		tagPremium:          "उत्कृष्ट",
	},
	Kannada: {
		keyLanguageName:     "ಕನ್ನಡ",
		keyTitle:            "ಫೇರ್‌ಪೇ ವಿಶ್ಲೇಷಣೆ",
		keyScore:            "ನ್ಯಾಯಸಮ್ಮತ ಅಂಕ",
		keyAnalysisComplete: "ವಿಶ್ಲೇಷಣೆ ಪೂರ್ಣಗೊಂಡಿದೆ",
		keyAnomalies:        "ಅಸಂಗತತೆಗಳು",
		keyNoAnomalies:      "ಯಾವುದೇ ಅಸಂಗತತೆ ಕಂಡುಬಂದಿಲ್ಲ.",
		keyLowRateShifts:    "ಕಡಿಮೆ ದರದ ಶಿಫ್ಟ್‌ಗಳು",
		keyBonusMismatches:  "ಬೋನಸ್ ವ್ಯತ್ಯಾಸಗಳು",
		keyTotalDeductions:  "ಒಟ್ಟು ಕಡಿತಗಳು",
		keyTotalHours:       "ಒಟ್ಟು ಗಂಟೆಗಳು",
		keyTotalEarnings:    "ಒಟ್ಟು ಗಳಿಕೆ",
		keyAvgHourly:        "ಸರಾಸರಿ ಗಂಟೆಯ ಆದಾಯ",
		keyHourlyRate:       "ಗಂಟೆಯ ದರ",
		keyEarnings:         "ಗಳಿಕೆ",
		keyHoursOnline:      "ಆನ್‌ಲೈನ್ ಗಂಟೆಗಳು",
		keyOfferTitle:       "ಆಫರ್ ಅಂದಾಜು",
		keyNetMonthly:       "ನಿವ್ವಳ ಮಾಸಿಕ",
		keyNetPerHour:       "ಗಂಟೆಗೆ ನಿವ್ವಳ",
		keyNetPerTask:       "ಕೆಲಸಕ್ಕೆ ನಿವ್ವಳ",
		keyFairRange:        "ನ್ಯಾಯಯುತ ವ್ಯಾಪ್ತಿ",
		keyTarget:           "ಗುರಿ",
		keyAppealTitle:      "ಮನವಿ ಪತ್ರ",
		keyReportID:         "ವರದಿ",
		tagSevere:           "ತೀವ್ರ ಅಪಾಯ",
		tagUnder:            "ಕಡಿಮೆ ವೇತನ",
		tagNearFair:         "ಬಹುತೇಕ ನ್ಯಾಯಯುತ",
		tagFair:             "ನ್ಯಾಯಯುತ",
		tagPremium:          "ಉತ್ತಮ",
	},
}

// lookup returns the entry for l, falling back to English and then to the
// key itself.
func lookup(l Language, k key) string {
	if s, ok := dictionary[l][k]; ok {
		return s
	}
	if s, ok := dictionary[English][k]; ok {
		return s
	}
	return string(k)
}

// Text returns the UI string named by k in language l.
func Text(l Language, k string) string {
	return lookup(l, key(k))
}

// TagLabel translates a qualitative tag such as "Underpaid".
func TagLabel(l Language, tag string) string {
	return lookup(l, key(tag))
}
