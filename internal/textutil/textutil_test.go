package textutil

import "testing"

func TestCountMatches(t *testing.T) {
	tests := []struct {
		s, sub string
		want   int
	}{
		{"", ".", 0},
		{"123", ".", 0},
		{"1.2", ".", 1},
		{"1.2.3", ".", 2},
		{"1..", ".", 2},
		{"a::b::c", "::", 2},
		{"abc", "", 0},
	}
	for _, tc := range tests {
		if got := CountMatches(tc.s, tc.sub); got != tc.want {
			t.Errorf("CountMatches(%q, %q) = %d, want %d", tc.s, tc.sub, got, tc.want)
		}
	}
}

func TestReverse(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"1":     "1",
		"123":   "321",
		"1€2":   "2€1",
		"12345": "54321",
	}
	for in, want := range tests {
		if got := Reverse(in); got != want {
			t.Errorf("Reverse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKeepDigits(t *testing.T) {
	if got := KeepDigits("$1,234 567"); got != "1234567" {
		t.Errorf("KeepDigits = %q, want %q", got, "1234567")
	}
}

func TestTrimLeadingZeros(t *testing.T) {
	tests := map[string]string{
		"":     "",
		"0":    "0",
		"000":  "0",
		"007":  "7",
		"0100": "100",
		"10":   "10",
	}
	for in, want := range tests {
		if got := TrimLeadingZeros(in); got != want {
			t.Errorf("TrimLeadingZeros(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEndsWithRepeat(t *testing.T) {
	if !EndsWithRepeat("12..", ".") {
		t.Error(`EndsWithRepeat("12..", ".") = false, want true`)
	}
	if EndsWithRepeat("1.2.", ".") {
		t.Error(`EndsWithRepeat("1.2.", ".") = true, want false`)
	}
	if EndsWithRepeat("12", "") {
		t.Error(`EndsWithRepeat with empty separator = true, want false`)
	}
}
