// Package digits provides small helpers for working with pure-digit
// strings that are shared by the normalize, metadata, and phonenumber
// packages.
package digits

import (
	"errors"
	"strings"
)

// ErrNotDigits is returned when a string expected to hold only ASCII
// digits contains something else.
var ErrNotDigits = errors.New("digits: string contains a non-digit rune")

// IsASCIIDigits reports whether s is non-empty and consists only of the
// ASCII digits 0-9.
func IsASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CountLeadingZeros returns the number of leading '0' runes in s.
func CountLeadingZeros(s string) int {
	n := 0
	for n < len(s) && s[n] == '0' {
		n++
	}
	return n
}

// StripLeadingZeros removes leading '0' runes from s, returning the
// trimmed string and the count removed. A string of all zeros is
// trimmed down to a single "0".
func StripLeadingZeros(s string) (string, int) {
	n := CountLeadingZeros(s)
	if n == len(s) {
		if n == 0 {
			return s, 0
		}
		return "0", n - 1
	}
	return s[n:], n
}

// OnlyASCIIDigits returns s with every rune that is not an ASCII digit
// removed.
func OnlyASCIIDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
