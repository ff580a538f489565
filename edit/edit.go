// Package edit decides, for every keystroke-driven change of a numeric field,
// whether the proposed text is accepted, rejected (the field reverts to the
// last accepted text) or turns the field into the cleared state.
//
// The public entry point is [Validate].  It is a pure function: the last
// accepted text is passed in and never stored here.
package edit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/TsubasaBE/go-numedit/internal/textutil"
	"github.com/TsubasaBE/go-numedit/numfmt"
)

// Outcome is the terminal result of validating one proposed edit.
type Outcome int

const (
	// Accept passes the proposed text on to the formatter.
	Accept Outcome = iota
	// Reject restores the last accepted text.
	Reject
	// Clear empties the field; no formatting is applied.
	Clear
)

// String returns "accept", "reject" or "clear".
func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Clear:
		return "clear"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Rule identifies the check that produced a Decision.  RuleNone marks a plain
// Accept.
type Rule int

const (
	// RuleNone: no rule fired.
	RuleNone Rule = iota
	// RuleCurrencyOnly: the text is the bare currency symbol.
	RuleCurrencyOnly
	// RuleGroupingInFraction: a grouping separator follows the decimal separator.
	RuleGroupingInFraction
	// RuleLoneDecimal: the text is only the decimal separator.
	RuleLoneDecimal
	// RuleIntegerDigits: too many integer digits.
	RuleIntegerDigits
	// RuleFractionDigits: too many fractional digits.
	RuleFractionDigits
	// RuleRepeatedSeparator: the text ends in the same separator twice.
	RuleRepeatedSeparator
	// RuleMultipleDecimals: more than one decimal separator.
	RuleMultipleDecimals
	// RuleEmpty: the text is empty.
	RuleEmpty
)

var ruleNames = [...]string{
	RuleNone:               "none",
	RuleCurrencyOnly:       "currency-only",
	RuleGroupingInFraction: "grouping-in-fraction",
	RuleLoneDecimal:        "lone-decimal",
	RuleIntegerDigits:      "integer-digits",
	RuleFractionDigits:     "fraction-digits",
	RuleRepeatedSeparator:  "repeated-separator",
	RuleMultipleDecimals:   "multiple-decimals",
	RuleEmpty:              "empty",
}

// String returns the kebab-case rule name, e.g. "fraction-digits".
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}
	return ruleNames[r]
}

// Decision is the verdict on one proposed edit.
type Decision struct {
	Outcome Outcome
	Rule    Rule
	// Text is what the field should hold next: the previous text on Reject,
	// the proposed (still unformatted) text on Accept, "" on Clear.
	Text string
}

// Validate checks proposed against the structural rules below, in order; the
// first rule that matches decides.
//
//  1. text that is only the currency affix                → Clear
//  2. a grouping separator after the first decimal point   → Reject
//  3. a lone decimal separator                             → Reject
//  4. more integer digits than MaxDigitsBeforeDecimal (>0) → Reject
//  5. more fraction runes than MaxDigitsAfterDecimal       → Reject
//  6. text ending in the same separator twice              → Reject
//  7. more than one decimal separator                      → Reject
//  8. empty text                                           → Clear
//
// Anything else is accepted.  Rules 2–8 look at the text with the currency
// affix removed, so a suffix symbol never hides a trailing separator and the
// symbol never counts as a digit.  cfg must satisfy [numfmt.Config.Validate].
func Validate(previous, proposed string, cfg numfmt.Config) Decision {
	if numfmt.IsCurrencyOnly(proposed, cfg) {
		return cleared(RuleCurrencyOnly)
	}

	text := numfmt.StripCurrency(proposed, cfg)
	dec, grp := cfg.DecimalSeparator, cfg.GroupingSeparator

	if pos := strings.Index(text, dec); pos > 0 && grp != "" {
		if strings.Contains(text[pos+len(dec):], grp) {
			return reject(previous, RuleGroupingInFraction)
		}
	}

	if text == dec {
		return reject(previous, RuleLoneDecimal)
	}

	intPart, fracPart, hasFrac := strings.Cut(text, dec)

	if cfg.MaxDigitsBeforeDecimal > 0 {
		if utf8.RuneCountInString(strings.ReplaceAll(intPart, grp, "")) > cfg.MaxDigitsBeforeDecimal {
			return reject(previous, RuleIntegerDigits)
		}
	}

	if hasFrac && utf8.RuneCountInString(fracPart) > cfg.MaxDigitsAfterDecimal {
		return reject(previous, RuleFractionDigits)
	}

	if utf8.RuneCountInString(text) > 2 &&
		(textutil.EndsWithRepeat(text, dec) || textutil.EndsWithRepeat(text, grp)) {
		return reject(previous, RuleRepeatedSeparator)
	}

	if textutil.CountMatches(text, dec) > 1 {
		return reject(previous, RuleMultipleDecimals)
	}

	if text == "" {
		return cleared(RuleEmpty)
	}

	return Decision{Outcome: Accept, Rule: RuleNone, Text: proposed}
}

func reject(previous string, r Rule) Decision {
	return Decision{Outcome: Reject, Rule: r, Text: previous}
}

func cleared(r Rule) Decision {
	return Decision{Outcome: Clear, Rule: r}
}
