// Package locale resolves the locale-dependent defaults of a numeric field
// (decimal and grouping separators, currency symbol and its placement) for a
// BCP 47 language tag.
//
// It runs on the host side, once, before a field is built: the edit pipeline
// itself never consults a locale.  Separator and symbol data come from CLDR
// through golang.org/x/text; the symbol placement comes from a small table of
// the conventional currency layouts.
package locale

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/TsubasaBE/go-numedit/numfmt"
)

// probe is rendered in the target locale to read its separators: it has a
// grouping boundary and exactly one fraction digit.
const probe = 1234567.5

// Resolve returns [numfmt.DefaultConfig] with the separators, currency symbol
// and currency pattern of tag.  Digit limits and ShowCurrencySymbol keep their
// defaults.
func Resolve(tag language.Tag) numfmt.Config {
	cfg := numfmt.DefaultConfig()

	p := message.NewPrinter(tag)
	if dec, grp, ok := separators(p.Sprint(number.Decimal(probe, number.Scale(1)))); ok {
		cfg.DecimalSeparator = dec
		cfg.GroupingSeparator = grp
	}
	if sym := Symbol(tag); sym != "" {
		cfg.CurrencySymbol = sym
	}
	cfg.CurrencyPattern = Pattern(tag)
	return cfg
}

// ResolveString parses s as a BCP 47 tag ("de-DE", "pt_BR", "en") and
// resolves it.
func ResolveString(s string) (numfmt.Config, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return numfmt.Config{}, fmt.Errorf("locale: parse %q: %w", s, err)
	}
	return Resolve(tag), nil
}

// Symbol returns the narrow currency symbol of the currency used in tag's
// region, or "" when no currency can be inferred.
func Symbol(tag language.Tag) string {
	cur, conf := currency.FromTag(tag)
	if conf == language.No {
		return ""
	}
	out := message.NewPrinter(tag).Sprint(currency.NarrowSymbol(cur.Amount(1)))
	for _, f := range strings.Fields(out) {
		if !strings.ContainsFunc(f, unicode.IsDigit) {
			return f
		}
	}
	return ""
}

// separators reads the decimal and grouping separators out of a rendering of
// probe: the last non-digit run is the decimal separator, the first one the
// grouping separator.
func separators(rendered string) (dec, grp string, ok bool) {
	var runs []string
	var cur strings.Builder
	for _, r := range rendered {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}
	if len(runs) < 2 {
		return "", "", false
	}
	dec, grp = runs[len(runs)-1], runs[0]
	if dec == grp {
		return "", "", false
	}
	return dec, grp, true
}

// Currency layouts that differ from the default symbol-first, no-space form.
// Keys are "lang-REGION" (checked first) or "lang".
var patterns = map[string]numfmt.CurrencyPattern{
	"pt-BR": numfmt.SymbolSpaceNumber,
	"de-CH": numfmt.SymbolSpaceNumber,
	"nl":    numfmt.SymbolSpaceNumber,

	"bg": numfmt.NumberSpaceSymbol,
	"cs": numfmt.NumberSpaceSymbol,
	"da": numfmt.NumberSpaceSymbol,
	"de": numfmt.NumberSpaceSymbol,
	"el": numfmt.NumberSpaceSymbol,
	"es": numfmt.NumberSpaceSymbol,
	"et": numfmt.NumberSpaceSymbol,
	"fi": numfmt.NumberSpaceSymbol,
	"fr": numfmt.NumberSpaceSymbol,
	"hr": numfmt.NumberSpaceSymbol,
	"hu": numfmt.NumberSpaceSymbol,
	"it": numfmt.NumberSpaceSymbol,
	"lt": numfmt.NumberSpaceSymbol,
	"lv": numfmt.NumberSpaceSymbol,
	"nb": numfmt.NumberSpaceSymbol,
	"pl": numfmt.NumberSpaceSymbol,
	"pt": numfmt.NumberSpaceSymbol,
	"ro": numfmt.NumberSpaceSymbol,
	"ru": numfmt.NumberSpaceSymbol,
	"sk": numfmt.NumberSpaceSymbol,
	"sl": numfmt.NumberSpaceSymbol,
	"sv": numfmt.NumberSpaceSymbol,
	"uk": numfmt.NumberSpaceSymbol,
}

// Pattern returns the conventional currency placement for tag.
func Pattern(tag language.Tag) numfmt.CurrencyPattern {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if p, ok := patterns[base.String()+"-"+region.String()]; ok {
		return p
	}
	if p, ok := patterns[base.String()]; ok {
		return p
	}
	return numfmt.SymbolNumber
}
