// Package render formats FairPay results for plain-text presentation.
package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

// ErrParseCurrency is returned when a string does not hold an amount.
var ErrParseCurrency = errors.New("not a currency amount")

// Amounts are always grouped the Indian way regardless of UI language.
var indianEnglish = language.MustParse("en-IN")

// int64Limit is 2^63; whole floats below it convert to int64 exactly.
const int64Limit = 1 << 63

func grouped(n int64) string {
	return message.NewPrinter(indianEnglish).Sprintf("%d", n)
}

// groupedWhole formats an already rounded value. Amounts past the int64
// range go through the float verb instead of overflowing.
func groupedWhole(r float64) string {
	if math.Abs(r) < int64Limit {
		return grouped(int64(r))
	}
	return message.NewPrinter(indianEnglish).Sprintf("%.0f", r)
}

// FormatCurrency rounds x to whole rupees, e.g. "₹ 5,980". Non-finite
// values render as "₹ 0".
func FormatCurrency(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return CurrencySymbol + " 0"
	}
	return CurrencySymbol + " " + groupedWhole(math.Round(x))
}

// FormatNumber rounds x to one decimal and drops a trailing ".0".
// Non-finite values render as "0".
func FormatNumber(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	scaled := math.Round(math.Abs(x) * 10)
	if scaled >= int64Limit {
		out := groupedWhole(math.Round(math.Abs(x)))
		if x < 0 {
			out = "-" + out
		}
		return out
	}
	tenths := int64(scaled)
	out := grouped(tenths / 10)
	if frac := tenths % 10; frac != 0 {
		out += "." + strconv.FormatInt(frac, 10)
	}
	if x < 0 && tenths != 0 {
		out = "-" + out
	}
	return out
}

// ParseCurrency reads an amount produced by FormatCurrency back, ignoring
// the symbol, whitespace and digit grouping.
func ParseCurrency(s string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\u00a0', '\u202f', '₹':
			return -1
		}
		return r
	}, s)
	clean = strings.TrimPrefix(clean, "Rs.")
	if clean == "" {
		return 0, fmt.Errorf("%w: %q", ErrParseCurrency, s)
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParseCurrency, s)
	}
	return v, nil
}
