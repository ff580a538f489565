package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"format", "1234567.89"}, []string{"1,234,567.89"}},
		{[]string{"format", "007", "1,2,3,4"}, []string{"7", "1,234"}},
		{[]string{"format", "--locale", "de-DE", "1234,5"}, []string{"1.234,5"}},
		{[]string{"format", "--currency", "--symbol", "€", "--pattern", "number-space-symbol", "99"}, []string{"99 €"}},
		{[]string{"format", "--value", "1234.5"}, []string{"1,234.50"}},
		{[]string{"format", "--value", "--max-after", "0", "--", "-12"}, []string{"12"}},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			got := lines(out)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Errorf("output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatValueRejectsText(t *testing.T) {
	if _, err := execute(t, "format", "--value", "abc"); err == nil {
		t.Error("format --value abc: nil error")
	}
}

func TestParse(t *testing.T) {
	out, err := execute(t, "parse", "1,234.5", "$", "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1234.5", "NaN", "NaN"}
	if got := lines(out); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("parse output = %q, want %q", got, want)
	}
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "1234", "1,234..", "")
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(got), out)
	}
	for i, want := range [][]string{
		{`"1234"`, "accept", `"1,234"`, "1234"},
		{`"1,234.."`, "revert", `"1,234"`, "-", "repeated-separator"},
		{`""`, "clear", `""`, "-", "empty"},
	} {
		fields := strings.Fields(got[i])
		for j, w := range want {
			if j >= len(fields) || fields[j] != w {
				t.Errorf("line %d = %q, want fields %q", i, got[i], want)
				break
			}
		}
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")
	data := "decimal_separator: \",\"\ngrouping_separator: \".\"\nmax_digits_after_decimal: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "format", "--config", path, "1234,56")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "1.234,56" {
		t.Errorf("format with config = %q, want %q", got, "1.234,56")
	}

	// Flags override the file.
	out, err = execute(t, "format", "--config", path, "--grouping", " ", "1234,5")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimRight(out, "\n"); got != "1 234,5" {
		t.Errorf("format with override = %q, want %q", got, "1 234,5")
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := execute(t, "format", "--decimal", ",", "1"); err == nil {
		t.Error("same separators: nil error")
	}
	if _, err := execute(t, "parse", "--style", "roman", "1"); err == nil {
		t.Error("unknown style: nil error")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "numfield ") {
		t.Errorf("version output = %q", out)
	}
}
