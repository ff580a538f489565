// Package textutil provides the literal (non-regex) string helpers shared by
// numfmt and edit.
//
// It exists solely to eliminate duplicated code; it has no public-API
// contract of its own.  All callers are within the same module.
//
// Separators are matched literally: a "." separator is a dot, never a regex
// wildcard.
package textutil

import "strings"

// CountMatches returns the number of non-overlapping occurrences of sub in s.
// An empty sub never matches.
func CountMatches(s, sub string) int {
	if s == "" || sub == "" {
		return 0
	}
	n := 0
	for {
		i := strings.LastIndex(s, sub)
		if i < 0 {
			return n
		}
		n++
		s = s[:i]
	}
}

// RemovePrefix drops one leading occurrence of prefix from s.
func RemovePrefix(s, prefix string) string {
	if s == "" || prefix == "" {
		return s
	}
	return strings.TrimPrefix(s, prefix)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	if len(s) <= 1 {
		return s
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// KeepDigits returns s with every rune outside '0'–'9' removed.
func KeepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// TrimLeadingZeros removes the run of leading '0' digits from an all-digit
// string, keeping a single "0" when nothing else would remain.
func TrimLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

// EndsWithRepeat reports whether s ends with sep written twice in a row.
func EndsWithRepeat(s, sep string) bool {
	if sep == "" {
		return false
	}
	return strings.HasSuffix(s, sep+sep)
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
