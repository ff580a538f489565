// Package numfmt renders the text of a numeric input field to its display
// string and parses display strings back into numbers.  It is the formatting
// engine behind [numedit.Field].
//
// The public entry points are [Format] and [Parse].  Both are pure functions
// of their input text and a [Config]; neither ever fails.  Text that does not
// represent a number parses to NaN.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/TsubasaBE/go-numedit/internal/textutil"
)

// Format renders raw (text the validator accepted) into canonical display
// text:
//
//   - the integer part keeps only its digits, loses its leading zeros (a
//     lone "0" survives) and is regrouped every three digits from the right
//   - the fractional part, when a decimal separator is present, is appended
//     verbatim
//   - the currency symbol is affixed per cfg.CurrencyPattern when
//     cfg.ShowCurrencySymbol is set
//
// Format is idempotent: Format(Format(s, cfg), cfg) == Format(s, cfg).
func Format(raw string, cfg Config) string {
	text := StripCurrency(raw, cfg)

	intPart, fracPart, hasFrac := cut(text, cfg.DecimalSeparator)
	digits := textutil.TrimLeadingZeros(textutil.KeepDigits(intPart))
	number := Group(digits, cfg.GroupingSeparator)
	if hasFrac {
		number += cfg.DecimalSeparator + fracPart
	}
	return affixCurrency(number, cfg)
}

// Group inserts sep every three digits counted from the right of digits.
//
// The digit string is reversed, split into runs of three starting at the
// (new) front, and each run is put back in order, so the short run always
// lands on the most significant end and no separator leads the result.
func Group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	rev := textutil.Reverse(digits)
	runs := make([]string, 0, len(rev)/3+1)
	for len(rev) > 3 {
		runs = append(runs, rev[:3])
		rev = rev[3:]
	}
	runs = append(runs, rev)

	// runs is least-significant first; flip both the order and each run.
	out := make([]string, len(runs))
	for i, r := range runs {
		out[len(runs)-1-i] = textutil.Reverse(r)
	}
	return textutil.RemovePrefix(strings.Join(out, sep), sep)
}

// Parse converts display text back to a number.  Every rune that is neither
// an ASCII digit nor part of the decimal separator is dropped (grouping
// separators, currency symbol, spaces), the decimal separator is normalised
// and the remainder is parsed.
//
// Parse fails closed: empty, ambiguous or out-of-range text yields NaN.
func Parse(display string, cfg Config) float64 {
	text := StripCurrency(display, cfg)

	var s string
	if cfg.DecimalSeparator == "" {
		s = textutil.KeepDigits(text)
	} else {
		parts := strings.Split(text, cfg.DecimalSeparator)
		for i := range parts {
			parts[i] = textutil.KeepDigits(parts[i])
		}
		s = strings.Join(parts, ".")
	}
	if s == "" || s == "." {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatValue renders a numeric value as display text with exactly
// cfg.MaxDigitsAfterDecimal fractional digits.  NaN and infinities render as
// the empty string; the sign of a negative value is not representable in a
// field and is dropped.
func FormatValue(v float64, cfg Config) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', cfg.MaxDigitsAfterDecimal, 64)
	if intStr, fracStr, ok := strings.Cut(s, "."); ok {
		s = intStr + cfg.DecimalSeparator + fracStr
	}
	return Format(s, cfg)
}

// StripCurrency removes every occurrence of the currency symbol from text,
// together with the space the pattern puts between symbol and number.  The
// space goes with the symbol wherever it sits: a host that keeps the caret at
// the end of "1. $" proposes "1. $5", which strips to "1.5".  It is a no-op
// when the symbol is not shown.
func StripCurrency(text string, cfg Config) string {
	if !cfg.ShowCurrencySymbol || cfg.CurrencySymbol == "" {
		return text
	}
	sym := cfg.CurrencySymbol
	switch cfg.CurrencyPattern {
	case SymbolSpaceNumber:
		text = strings.ReplaceAll(text, sym+" ", "")
		text = strings.ReplaceAll(text, sym, "")
		text = strings.TrimPrefix(text, " ")
	case NumberSpaceSymbol:
		text = strings.ReplaceAll(text, " "+sym, "")
		text = strings.ReplaceAll(text, sym, "")
		text = strings.TrimSuffix(text, " ")
	default:
		text = strings.ReplaceAll(text, sym, "")
	}
	return text
}

// IsCurrencyOnly reports whether text consists of nothing but the currency
// affix, e.g. "$" or "$ ".
func IsCurrencyOnly(text string, cfg Config) bool {
	if !cfg.ShowCurrencySymbol || cfg.CurrencySymbol == "" || text == "" {
		return false
	}
	return text == cfg.CurrencySymbol || strings.TrimSpace(text) == cfg.CurrencySymbol
}

// affixCurrency attaches the currency symbol to a non-empty number.
func affixCurrency(number string, cfg Config) string {
	if !cfg.ShowCurrencySymbol || cfg.CurrencySymbol == "" || number == "" {
		return number
	}
	switch cfg.CurrencyPattern {
	case NumberSymbol:
		return number + cfg.CurrencySymbol
	case SymbolSpaceNumber:
		return cfg.CurrencySymbol + " " + number
	case NumberSpaceSymbol:
		return number + " " + cfg.CurrencySymbol
	default:
		return cfg.CurrencySymbol + number
	}
}

// cut is strings.Cut that treats an empty separator as absent.
func cut(s, sep string) (before, after string, found bool) {
	if sep == "" {
		return s, "", false
	}
	return strings.Cut(s, sep)
}
