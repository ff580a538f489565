package edit_test

import (
	"testing"

	"github.com/TsubasaBE/go-numedit/edit"
	"github.com/TsubasaBE/go-numedit/numfmt"
)

func TestValidate(t *testing.T) {
	base := numfmt.DefaultConfig()

	limited := base
	limited.MaxDigitsBeforeDecimal = 3

	comma := base
	comma.DecimalSeparator = ","
	comma.GroupingSeparator = "."

	suffix := base
	suffix.ShowCurrencySymbol = true
	suffix.CurrencyPattern = numfmt.NumberSpaceSymbol

	suffixLimited := suffix
	suffixLimited.MaxDigitsBeforeDecimal = 3

	prefix := base
	prefix.ShowCurrencySymbol = true
	prefix.CurrencyPattern = numfmt.SymbolSpaceNumber

	tests := []struct {
		name     string
		cfg      numfmt.Config
		previous string
		proposed string
		outcome  edit.Outcome
		rule     edit.Rule
		text     string
	}{
		{"plain digit", base, "", "1", edit.Accept, edit.RuleNone, "1"},
		{"grouped growth", base, "1,234", "1,2345", edit.Accept, edit.RuleNone, "1,2345"},
		{"decimal point typed", base, "12", "12.", edit.Accept, edit.RuleNone, "12."},
		{"two fraction digits", base, "1.2", "1.23", edit.Accept, edit.RuleNone, "1.23"},
		{"repeated decimal", base, "12", "12..", edit.Reject, edit.RuleRepeatedSeparator, "12"},
		{"repeated grouping", base, "12", "12,,", edit.Reject, edit.RuleRepeatedSeparator, "12"},
		{"grouping in fraction", base, "1.2", "1.2,", edit.Reject, edit.RuleGroupingInFraction, "1.2"},
		{"lone decimal", base, "", ".", edit.Reject, edit.RuleLoneDecimal, ""},
		{"integer limit", limited, "123", "1234", edit.Reject, edit.RuleIntegerDigits, "123"},
		{"integer limit ignores grouping", limited, "", "1,23", edit.Accept, edit.RuleNone, "1,23"},
		{"integer limit with fraction", limited, "123", "123.4", edit.Accept, edit.RuleNone, "123.4"},
		{"fraction limit", base, "1.23", "1.234", edit.Reject, edit.RuleFractionDigits, "1.23"},
		{"two decimals", base, "1.2", "1.2.", edit.Reject, edit.RuleMultipleDecimals, "1.2"},
		{"two decimals inside limit", base, "1.", "1..", edit.Reject, edit.RuleRepeatedSeparator, "1."},
		{"decimals apart", base, ".1", ".1.", edit.Reject, edit.RuleMultipleDecimals, ".1"},
		{"empty", base, "5", "", edit.Clear, edit.RuleEmpty, ""},
		{"comma locale accept", comma, "1.234", "1.234,5", edit.Accept, edit.RuleNone, "1.234,5"},
		{"comma locale grouping in fraction", comma, "1,5", "1,5.", edit.Reject, edit.RuleGroupingInFraction, "1,5"},
		{"currency only", suffix, "1 $", "$", edit.Clear, edit.RuleCurrencyOnly, ""},
		{"currency only with space", prefix, "$ 1", "$ ", edit.Clear, edit.RuleCurrencyOnly, ""},
		{"suffix symbol hides nothing", suffix, "12 $", "12.. $", edit.Reject, edit.RuleRepeatedSeparator, "12 $"},
		{"suffix symbol fraction limit", suffix, "1.23 $", "1.234 $", edit.Reject, edit.RuleFractionDigits, "1.23 $"},
		{"suffix symbol accept", suffix, "1.2 $", "1.23 $", edit.Accept, edit.RuleNone, "1.23 $"},
		{"fraction digit after suffix", suffix, "1. $", "1. $5", edit.Accept, edit.RuleNone, "1. $5"},
		{"second fraction digit after suffix", suffix, "1.5 $", "1.5 $0", edit.Accept, edit.RuleNone, "1.5 $0"},
		{"third fraction digit after suffix", suffix, "1.50 $", "1.50 $1", edit.Reject, edit.RuleFractionDigits, "1.50 $"},
		{"integer digit after suffix", suffixLimited, "12 $", "12 $3", edit.Accept, edit.RuleNone, "12 $3"},
		{"integer limit after suffix", suffixLimited, "123 $", "123 $4", edit.Reject, edit.RuleIntegerDigits, "123 $"},
		{"repeated decimal after suffix", suffix, "12. $", "12. $.", edit.Reject, edit.RuleRepeatedSeparator, "12. $"},
		{"symbol hidden is just text", base, "1", "$1", edit.Accept, edit.RuleNone, "$1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := edit.Validate(tc.previous, tc.proposed, tc.cfg)
			if got.Outcome != tc.outcome {
				t.Fatalf("Validate(%q, %q).Outcome = %v, want %v (rule %v)",
					tc.previous, tc.proposed, got.Outcome, tc.outcome, got.Rule)
			}
			if got.Rule != tc.rule {
				t.Errorf("Validate(%q, %q).Rule = %v, want %v", tc.previous, tc.proposed, got.Rule, tc.rule)
			}
			if got.Text != tc.text {
				t.Errorf("Validate(%q, %q).Text = %q, want %q", tc.previous, tc.proposed, got.Text, tc.text)
			}
		})
	}
}

func TestValidateZeroFractionDigits(t *testing.T) {
	cfg := numfmt.DefaultConfig()
	cfg.MaxDigitsAfterDecimal = 0

	if got := edit.Validate("12", "12.", cfg); got.Outcome != edit.Accept {
		t.Errorf("trailing separator with no fraction digits: %v, want accept", got.Outcome)
	}
	if got := edit.Validate("12.", "12.5", cfg); got.Outcome != edit.Reject {
		t.Errorf("fraction digit with limit 0: %v, want reject", got.Outcome)
	}
}

func TestOutcomeString(t *testing.T) {
	for o, want := range map[edit.Outcome]string{edit.Accept: "accept", edit.Reject: "reject", edit.Clear: "clear", 7: "Outcome(7)"} {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
	if got := edit.RuleRepeatedSeparator.String(); got != "repeated-separator" {
		t.Errorf("RuleRepeatedSeparator.String() = %q", got)
	}
}

func TestRuleString(t *testing.T) {
	for r, want := range map[edit.Rule]string{
		edit.RuleNone:               "none",
		edit.RuleGroupingInFraction: "grouping-in-fraction",
		edit.RuleFractionDigits:     "fraction-digits",
		edit.RuleEmpty:              "empty",
		42:                          "Rule(42)",
	} {
		if got := r.String(); got != want {
			t.Errorf("Rule(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
