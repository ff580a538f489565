package numfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// CurrencyPattern selects where the currency symbol sits relative to the
// number and whether a space separates them.
type CurrencyPattern int

const (
	// SymbolNumber renders "$1,234.56".
	SymbolNumber CurrencyPattern = iota
	// NumberSymbol renders "1,234.56$".
	NumberSymbol
	// SymbolSpaceNumber renders "$ 1,234.56".
	SymbolSpaceNumber
	// NumberSpaceSymbol renders "1,234.56 $".
	NumberSpaceSymbol
)

var patternNames = [...]string{
	SymbolNumber:      "symbol-number",
	NumberSymbol:      "number-symbol",
	SymbolSpaceNumber: "symbol-space-number",
	NumberSpaceSymbol: "number-space-symbol",
}

// String returns the kebab-case name of p, e.g. "number-space-symbol".
func (p CurrencyPattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("CurrencyPattern(%d)", int(p))
	}
	return patternNames[p]
}

// SymbolFirst reports whether the symbol precedes the number.
func (p CurrencyPattern) SymbolFirst() bool {
	return p == SymbolNumber || p == SymbolSpaceNumber
}

// Spaced reports whether a single space separates symbol and number.
func (p CurrencyPattern) Spaced() bool {
	return p == SymbolSpaceNumber || p == NumberSpaceSymbol
}

// ParseCurrencyPattern accepts the names produced by [CurrencyPattern.String]
// as well as their CamelCase spelling ("NumberSpaceSymbol").  Case, '-', '_'
// and spaces are ignored.
func ParseCurrencyPattern(s string) (CurrencyPattern, error) {
	norm := normalizeName(s)
	for i, name := range patternNames {
		if normalizeName(name) == norm {
			return CurrencyPattern(i), nil
		}
	}
	return 0, fmt.Errorf("numfmt: unknown currency pattern %q", s)
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Sentinel errors returned by [Config.Validate].
var (
	ErrEmptySeparator = errors.New("numfmt: separator must not be empty")
	ErrSameSeparator  = errors.New("numfmt: decimal and grouping separators must differ")
)

// Config is the immutable formatting configuration of one numeric field.
//
// Separators are matched literally.  The host resolves them (and the currency
// symbol) from its locale before building a Config; see package locale for a
// ready-made resolver.
type Config struct {
	// DecimalSeparator splits integer and fractional digits, e.g. "." or ",".
	DecimalSeparator string
	// GroupingSeparator is inserted every three integer digits, e.g. ",".
	GroupingSeparator string
	// MaxDigitsBeforeDecimal caps the integer digit count.  0 means unlimited.
	MaxDigitsBeforeDecimal int
	// MaxDigitsAfterDecimal caps the fractional digit count.
	MaxDigitsAfterDecimal int
	// ShowCurrencySymbol enables the currency affix on display text.
	ShowCurrencySymbol bool
	// CurrencySymbol is the affix written when ShowCurrencySymbol is set.
	CurrencySymbol string
	// CurrencyPattern places CurrencySymbol relative to the number.
	CurrencyPattern CurrencyPattern
}

// Default limits applied when the host supplies none.
const (
	DefaultDigitsBeforeDecimal = 0
	DefaultDigitsAfterDecimal  = 2
)

// DefaultConfig returns the invariant-culture configuration: "." decimal,
// "," grouping, unlimited integer digits, two fractional digits and a "$"
// symbol that is not shown.
func DefaultConfig() Config {
	return Config{
		DecimalSeparator:       ".",
		GroupingSeparator:      ",",
		MaxDigitsBeforeDecimal: DefaultDigitsBeforeDecimal,
		MaxDigitsAfterDecimal:  DefaultDigitsAfterDecimal,
		CurrencySymbol:         "$",
		CurrencyPattern:        SymbolNumber,
	}
}

// Validate checks the invariants every formatting routine relies on.
func (c Config) Validate() error {
	if c.DecimalSeparator == "" || c.GroupingSeparator == "" {
		return ErrEmptySeparator
	}
	if c.DecimalSeparator == c.GroupingSeparator {
		return fmt.Errorf("%w: both are %q", ErrSameSeparator, c.DecimalSeparator)
	}
	if hasDigit(c.DecimalSeparator) || hasDigit(c.GroupingSeparator) {
		return fmt.Errorf("numfmt: separators must not contain digits (decimal %q, grouping %q)",
			c.DecimalSeparator, c.GroupingSeparator)
	}
	if c.MaxDigitsBeforeDecimal < 0 || c.MaxDigitsAfterDecimal < 0 {
		return fmt.Errorf("numfmt: digit limits must be >= 0 (before %d, after %d)",
			c.MaxDigitsBeforeDecimal, c.MaxDigitsAfterDecimal)
	}
	if c.CurrencyPattern < SymbolNumber || c.CurrencyPattern > NumberSpaceSymbol {
		return fmt.Errorf("numfmt: invalid currency pattern %d", int(c.CurrencyPattern))
	}
	if c.ShowCurrencySymbol {
		if c.CurrencySymbol == "" {
			return errors.New("numfmt: currency symbol is shown but empty")
		}
		if hasDigit(c.CurrencySymbol) {
			return fmt.Errorf("numfmt: currency symbol %q must not contain digits", c.CurrencySymbol)
		}
	}
	return nil
}

// Suffix returns the affix Format writes after the number: the symbol, with
// its space for NumberSpaceSymbol.  It is "" when the symbol is hidden or
// leads.
func (c Config) Suffix() string {
	if !c.ShowCurrencySymbol || c.CurrencySymbol == "" {
		return ""
	}
	switch c.CurrencyPattern {
	case NumberSymbol:
		return c.CurrencySymbol
	case NumberSpaceSymbol:
		return " " + c.CurrencySymbol
	}
	return ""
}

// Accepts reports whether r can ever be part of a display text under c:
// ASCII digits, runes of either separator, and, when the symbol is shown,
// runes of the currency symbol plus the pattern's space.
func (c Config) Accepts(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case strings.ContainsRune(c.DecimalSeparator, r), strings.ContainsRune(c.GroupingSeparator, r):
		return true
	case c.ShowCurrencySymbol && strings.ContainsRune(c.CurrencySymbol, r):
		return true
	case c.ShowCurrencySymbol && c.CurrencyPattern.Spaced() && r == ' ':
		return true
	}
	return false
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
