package locale

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-numedit/numfmt"
)

func TestResolveEnglish(t *testing.T) {
	cfg := Resolve(language.AmericanEnglish)
	if cfg.DecimalSeparator != "." || cfg.GroupingSeparator != "," {
		t.Errorf("separators = %q/%q, want \".\"/\",\"", cfg.DecimalSeparator, cfg.GroupingSeparator)
	}
	if cfg.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want %q", cfg.CurrencySymbol, "$")
	}
	if cfg.CurrencyPattern != numfmt.SymbolNumber {
		t.Errorf("CurrencyPattern = %v, want %v", cfg.CurrencyPattern, numfmt.SymbolNumber)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolveGerman(t *testing.T) {
	cfg := Resolve(language.MustParse("de-DE"))
	if cfg.DecimalSeparator != "," || cfg.GroupingSeparator != "." {
		t.Errorf("separators = %q/%q, want \",\"/\".\"", cfg.DecimalSeparator, cfg.GroupingSeparator)
	}
	if cfg.CurrencySymbol != "€" {
		t.Errorf("CurrencySymbol = %q, want %q", cfg.CurrencySymbol, "€")
	}
	if cfg.CurrencyPattern != numfmt.NumberSpaceSymbol {
		t.Errorf("CurrencyPattern = %v, want %v", cfg.CurrencyPattern, numfmt.NumberSpaceSymbol)
	}
}

func TestResolveFrenchSeparatorsDiffer(t *testing.T) {
	cfg := Resolve(language.French)
	if cfg.DecimalSeparator != "," {
		t.Errorf("DecimalSeparator = %q, want %q", cfg.DecimalSeparator, ",")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolveString(t *testing.T) {
	cfg, err := ResolveString("pt_BR")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CurrencyPattern != numfmt.SymbolSpaceNumber {
		t.Errorf("pt_BR CurrencyPattern = %v, want %v", cfg.CurrencyPattern, numfmt.SymbolSpaceNumber)
	}
	if cfg.DecimalSeparator != "," {
		t.Errorf("pt_BR DecimalSeparator = %q, want %q", cfg.DecimalSeparator, ",")
	}
	if _, err := ResolveString("not a tag!"); err == nil {
		t.Error("ResolveString(garbage) = nil error")
	}
}

func TestSeparators(t *testing.T) {
	tests := []struct {
		in       string
		dec, grp string
		ok       bool
	}{
		{"1,234,567.5", ".", ",", true},
		{"1.234.567,5", ",", ".", true},
		{"1 234 567,5", ",", " ", true},
		{"1’234’567.5", ".", "’", true},
		{"1234567.5", "", "", false},
		{"1,234,567,5", "", "", false},
	}
	for _, tc := range tests {
		dec, grp, ok := separators(tc.in)
		if ok != tc.ok || dec != tc.dec || grp != tc.grp {
			t.Errorf("separators(%q) = %q, %q, %v; want %q, %q, %v", tc.in, dec, grp, ok, tc.dec, tc.grp, tc.ok)
		}
	}
}

func TestPattern(t *testing.T) {
	tests := map[string]numfmt.CurrencyPattern{
		"en-US": numfmt.SymbolNumber,
		"ja":    numfmt.SymbolNumber,
		"fr-FR": numfmt.NumberSpaceSymbol,
		"de-AT": numfmt.NumberSpaceSymbol,
		"de-CH": numfmt.SymbolSpaceNumber,
		"nl-NL": numfmt.SymbolSpaceNumber,
		"pt-PT": numfmt.NumberSpaceSymbol,
	}
	for tag, want := range tests {
		if got := Pattern(language.MustParse(tag)); got != want {
			t.Errorf("Pattern(%s) = %v, want %v", tag, got, want)
		}
	}
}
