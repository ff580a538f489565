// Package styles maps spreadsheet-style number format codes onto field
// configuration.  A numeric field is often specified the way a spreadsheet
// cell is ("#,##0.00", "$#,##0", "#,##0.00 [$€-407]"); this package reads
// the fractional digit count and the currency affix out of such a code.
//
// Format-code tokenizing is delegated to [github.com/xuri/nfp]; this package
// only interprets the resulting token stream.
package styles

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-numedit/numfmt"
)

// ErrUnknownStyle is returned for a style ID or name with no built-in format.
var ErrUnknownStyle = errors.New("styles: unknown style")

// BuiltIn maps built-in style IDs to their format codes.  The IDs follow the
// built-in numFmtId table of ECMA-376 §18.8.30, restricted to the plain
// numeric and currency formats a text field can render (no dates, percent,
// fractions or scientific notation).  Multi-section codes only contribute
// their first (positive) section.
var BuiltIn = map[int]string{
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `($#,##0_);($#,##0)`,
	7:  `($#,##0.00_);($#,##0.00)`,
	37: `(#,##0_);(#,##0)`,
	39: `(#,##0.00_);(#,##0.00)`,
	42: `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`,
	44: `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`,
}

// Names maps friendly style names to built-in IDs.
var Names = map[string]int{
	"integer":        3,
	"decimal":        4,
	"currency":       7,
	"currency-whole": 5,
	"plain":          1,
	"plain-decimal":  2,
	"accounting":     44,
}

// Lookup returns the format code of a built-in style ID.
func Lookup(id int) (string, error) {
	code, ok := BuiltIn[id]
	if !ok {
		return "", fmt.Errorf("%w: id %d", ErrUnknownStyle, id)
	}
	return code, nil
}

// LookupName returns the format code of a named style.
func LookupName(name string) (string, error) {
	id, ok := Names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		known := make([]string, 0, len(Names))
		for n := range Names {
			known = append(known, n)
		}
		sort.Strings(known)
		return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownStyle, name, strings.Join(known, ", "))
	}
	return Lookup(id)
}

// Apply is ApplyFormatCode for a built-in style ID.
func Apply(id int, base numfmt.Config) (numfmt.Config, error) {
	code, err := Lookup(id)
	if err != nil {
		return base, err
	}
	return ApplyFormatCode(code, base)
}

// ApplyFormatCode returns base with the settings the format code implies:
//
//   - MaxDigitsAfterDecimal is the number of '0' and '#' placeholders after
//     the decimal point (0 when the code has no decimal point)
//   - a currency symbol, written as a literal ("$", "\"kr\"") or as a
//     [$sym-lcid] block, sets CurrencySymbol and ShowCurrencySymbol; its
//     position relative to the digit placeholders and an adjacent space pick
//     the CurrencyPattern
//   - a code without a currency symbol turns ShowCurrencySymbol off
//
// Separators and MaxDigitsBeforeDecimal are left as in base: in a format
// code "," and "." are always placeholders, never the locale's characters.
// "General" returns base unchanged.  Date, time and percent codes are
// rejected.
func ApplyFormatCode(code string, base numfmt.Config) (numfmt.Config, error) {
	if strings.TrimSpace(code) == "" || strings.EqualFold(code, "General") {
		return base, nil
	}
	parser := nfp.NumberFormatParser()
	sections := parser.Parse(code)
	if len(sections) == 0 {
		return base, fmt.Errorf("styles: empty format code %q", code)
	}

	cfg := base
	layout, err := scanSection(sections[0])
	if err != nil {
		return base, fmt.Errorf("styles: format code %q: %w", code, err)
	}
	if !layout.hasDigits {
		return base, fmt.Errorf("styles: format code %q has no digit placeholders", code)
	}

	cfg.MaxDigitsAfterDecimal = layout.fracDigits
	if layout.symbol == "" {
		cfg.ShowCurrencySymbol = false
		return cfg, nil
	}
	cfg.ShowCurrencySymbol = true
	cfg.CurrencySymbol = layout.symbol
	cfg.CurrencyPattern = layout.pattern()
	return cfg, nil
}

// ── section scanning ──────────────────────────────────────────────────────────

// element kinds of the simplified section layout.
const (
	elemNumber = 'N'
	elemSpace  = 'S'
	elemSymbol = 'C'
)

type sectionLayout struct {
	hasDigits  bool
	fracDigits int
	symbol     string
	elems      []byte // sequence of elemNumber / elemSpace / elemSymbol
}

// scanSection walks one nfp section and records digit placeholders, the
// first currency symbol and the spaces around it.
func scanSection(sec nfp.Section) (sectionLayout, error) {
	var l sectionLayout
	afterDecimal := false
	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			return l, errors.New("date and time formats are not numeric field styles")
		case nfp.TokenTypePercent:
			return l, errors.New("percent formats are not numeric field styles")

		case nfp.TokenTypeDecimalPoint:
			afterDecimal = true
			l.number()
		case nfp.TokenTypeThousandsSeparator:
			l.number()
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder:
			l.hasDigits = true
			if afterDecimal {
				l.fracDigits += len(tok.TValue)
			}
			l.number()

		case nfp.TokenTypeCurrencyLanguage:
			if sym := currencyBlockSymbol(tok.TValue); sym != "" {
				l.addSymbol(sym, false, false)
			}
		case nfp.TokenTypeLiteral:
			l.literal(tok.TValue)

		default:
			// Colours, conditions, alignment padding, fill characters.
		}
	}
	return l, nil
}

// literal classifies a literal token: pure whitespace, a currency symbol
// (possibly with surrounding spaces or brackets), or punctuation to ignore.
func (l *sectionLayout) literal(v string) {
	if strings.TrimSpace(v) == "" {
		if v != "" {
			l.push(elemSpace)
		}
		return
	}
	sym := strings.TrimSpace(strings.Trim(strings.TrimSpace(v), "()"))
	if !isSymbolText(sym) {
		return
	}
	i := strings.Index(v, sym)
	l.addSymbol(sym, hasSpace(v[:i]), hasSpace(v[i+len(sym):]))
}

func (l *sectionLayout) addSymbol(sym string, leadSpace, trailSpace bool) {
	if l.symbol != "" {
		return
	}
	if leadSpace {
		l.push(elemSpace)
	}
	l.symbol = sym
	l.push(elemSymbol)
	if trailSpace {
		l.push(elemSpace)
	}
}

// number records a digit-placeholder run, collapsing consecutive ones.
func (l *sectionLayout) number() {
	if n := len(l.elems); n > 0 && l.elems[n-1] == elemNumber {
		return
	}
	l.push(elemNumber)
}

func (l *sectionLayout) push(e byte) { l.elems = append(l.elems, e) }

// pattern derives the currency placement from the element sequence.
func (l *sectionLayout) pattern() numfmt.CurrencyPattern {
	sym := strings.IndexByte(string(l.elems), elemSymbol)
	num := strings.IndexByte(string(l.elems), elemNumber)
	if sym < num {
		if strings.IndexByte(string(l.elems[sym:num]), elemSpace) >= 0 {
			return numfmt.SymbolSpaceNumber
		}
		return numfmt.SymbolNumber
	}
	last := strings.LastIndexByte(string(l.elems[:sym]), elemNumber)
	if strings.IndexByte(string(l.elems[last:sym]), elemSpace) >= 0 {
		return numfmt.NumberSpaceSymbol
	}
	return numfmt.NumberSymbol
}

// currencyBlockSymbol extracts "€" from the body of a [$€-407] block.  The
// locale part after '-' is ignored; a block with no symbol yields "".
func currencyBlockSymbol(v string) string {
	v = strings.TrimSuffix(strings.TrimPrefix(v, "["), "]")
	v = strings.TrimPrefix(v, "$")
	sym, _, _ := strings.Cut(v, "-")
	return strings.TrimSpace(sym)
}

func hasSpace(s string) bool { return strings.ContainsAny(s, " \u00a0") }

// isSymbolText reports whether a trimmed literal can be a currency symbol:
// no digits and not purely sign or bracket punctuation.
func isSymbolText(s string) bool {
	hasSymbolRune := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			return false
		case strings.ContainsRune("()+-/:!&~{}<>=^'", r):
		default:
			hasSymbolRune = true
		}
	}
	return hasSymbolRune
}
