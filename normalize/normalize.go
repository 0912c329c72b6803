// Package normalize turns raw, human-typed phone number text into the
// digit-only (or digit-and-plus) form the rest of the phonenumber
// module operates on. It is the low-level, stateless transform layer
// that sits under metadata and phonenumber, the same role the
// teacher's pdu package plays under sms: no error can occur here that
// isn't reported back to the caller as a plain bool or an unchanged
// string, and nothing here touches a metadata table.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// plusSigns are every rune accepted as a leading international-call
// marker, including the full-width form used by some IMEs.
const plusSigns = "+＋"

// keypad maps the standard phone keypad letters (case-insensitively)
// to their digit, as used by vanity numbers such as 1-800-FLOWERS.
var keypad = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// diallablePunctuation is the fixed set of separators recognized while
// scanning a viable number: ASCII and Unicode dash variants, ASCII and
// full-width parentheses, whitespace, tilde, dots, and slashes.
const diallablePunctuation = "-‐‑‒–—―－/／ \t()（）.~"

// extensionMarkers are tried in this order; the comparison is
// case-insensitive and "extensión" is matched with or without its
// combining acute accent.
var extensionMarkers = []string{
	";ext=", "extensión", "extension", "extn.", "extn", "ext.", "ext", "xt", "x", "#", ",", "int",
}

// KeypadDigit returns the ASCII digit a raw input rune maps to: itself
// if r is already a recognized decimal-digit script, or its keypad
// letter value for vanity-number input such as the "F" in "FLOWERS".
func KeypadDigit(r rune) (byte, bool) {
	if d, ok := foldDigit(r); ok {
		return d, true
	}
	if d, ok := keypad[unicode.ToUpper(r)]; ok {
		return d, true
	}
	return 0, false
}

// foldDigit returns the ASCII digit value of r if r is any of the
// decimal-digit scripts the parser must accept (Western, Arabic-Indic,
// Eastern Arabic, full-width); ok is false otherwise.
func foldDigit(r rune) (digit byte, ok bool) {
	r = foldWidth(r)
	if r >= '0' && r <= '9' {
		return byte(r), true
	}
	if unicode.IsDigit(r) && r <= 0xFFFF {
		// Non-Western decimal digit system (Arabic-Indic U+0660-0669,
		// Eastern Arabic U+06F0-06F9, Devanagari, etc.): every Unicode
		// "Nd" (decimal digit) block assigns its ten code points to 0-9
		// contiguously, so the value is the offset from the block start.
		for _, rt := range unicode.Nd.R16 {
			if uint16(r) >= rt.Lo && uint16(r) <= rt.Hi {
				v := (uint16(r) - rt.Lo) / rt.Stride % 10
				return byte('0' + v), true
			}
		}
	}
	return 0, false
}

// foldWidth returns the canonical-width form of r (full-width digits,
// plus sign and punctuation become their ASCII forms), or r itself
// when it has no folded variant.
func foldWidth(r rune) rune {
	if f := width.LookupRune(r).Folded(); f != 0 {
		return f
	}
	return r
}

// Normalize converts s into a digit-only string, mapping keypad
// letters to their digit and any recognized decimal-digit script to
// its ASCII equivalent. Non-digit, non-letter runes are dropped.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := foldDigit(r); ok {
			b.WriteByte(d)
			continue
		}
		up := unicode.ToUpper(r)
		if d, ok := keypad[up]; ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// NormalizeDigitsOnly converts s into a digit-only string without
// mapping letters, discarding anything that is not a recognized
// decimal digit.
func NormalizeDigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := foldDigit(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// ConvertAlphaCharactersInNumber rewrites only the letters of s to
// their keypad digit, leaving every other rune (including punctuation
// and already-present digits) untouched. Used to reconstruct a
// formatted alphanumeric number such as "1-800-FLOWERS" into
// "1-800-3569377" while preserving its original grouping.
func ConvertAlphaCharactersInNumber(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		up := unicode.ToUpper(r)
		if d, ok := keypad[up]; ok {
			b.WriteByte(d)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isStartChar reports whether r is acceptable as the first character
// of a possible phone number: a decimal digit or a plus sign. Keypad
// letters are not start characters; a vanity number's letters are
// only kept when they follow the first digit/plus.
func isStartChar(r rune) bool {
	if strings.ContainsRune(plusSigns, r) {
		return true
	}
	_, ok := foldDigit(r)
	return ok
}

// rtlMarkers are trimmed off the end of an extracted candidate; they
// are invisible bidi control characters that some platforms append
// when copying a number out of a right-to-left context.
var rtlMarkers = []rune{'‎', '‏', '؜'}

// ExtractPossibleNumber scans s for the first plausible start of a
// phone number (a digit or a plus sign) and returns the substring from
// there up to the last trailing digit or letter, with any trailing
// RTL marker stripped. It returns "" if s contains no such substring.
func ExtractPossibleNumber(s string) string {
	runes := []rune(s)
	start := -1
	for i, r := range runes {
		if isStartChar(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := len(runes)
	for end > start {
		r := runes[end-1]
		if unicode.IsDigit(foldWidth(r)) || unicode.IsLetter(r) {
			break
		}
		end--
	}
	for end > start && containsRTL(runes[end-1]) {
		end--
	}
	if end <= start {
		return ""
	}
	return string(runes[start:end])
}

func containsRTL(r rune) bool {
	for _, m := range rtlMarkers {
		if r == m {
			return true
		}
	}
	return false
}

// IsViablePhoneNumber reports whether s has at least three decimal
// digits (after digit-conversion) and otherwise consists only of an
// optional leading plus sign followed by digits and recognized
// punctuation or extension-marker characters.
func IsViablePhoneNumber(s string) bool {
	if len(strings.TrimSpace(s)) < 2 {
		return false
	}
	digitCount := 0
	seenNonLeadingPlus := false
	for i, r := range s {
		switch {
		case strings.ContainsRune(plusSigns, r):
			if i != 0 {
				seenNonLeadingPlus = true
			}
		case unicode.IsDigit(foldWidth(r)):
			digitCount++
		case unicode.IsLetter(r):
			// letters are only viable as part of an extension marker or
			// a vanity number; either way they don't disqualify the
			// candidate by themselves.
		case strings.ContainsRune(diallablePunctuation, r):
		case strings.ContainsRune("#,;=", r):
			// non-letter characters of the extension markers
		default:
			return false
		}
	}
	return digitCount >= 3 && !seenNonLeadingPlus
}

// SplitExtension looks for the last legal extension marker that
// follows at least one digit and splits s into the body before it and
// the digit-only extension after it (bounded to 7 digits). If no
// marker is found, ext is "" and body is s unchanged.
func SplitExtension(s string) (body, ext string) {
	lower := strings.ToLower(s)
	bestIdx := -1
	bestMarkerLen := 0
	for _, marker := range extensionMarkers {
		from := 0
		for {
			idx := strings.Index(lower[from:], marker)
			if idx < 0 {
				break
			}
			absIdx := from + idx
			if absIdx > 0 && hasPrecedingDigit(lower[:absIdx]) {
				if bestIdx < 0 || absIdx >= bestIdx+bestMarkerLen {
					bestIdx = absIdx
					bestMarkerLen = len(marker)
				}
			}
			from = absIdx + 1
		}
	}
	if bestIdx < 0 {
		return s, ""
	}
	tail := s[bestIdx+bestMarkerLen:]
	extDigits := NormalizeDigitsOnly(tail)
	if len(extDigits) > 7 {
		extDigits = extDigits[:7]
	}
	if extDigits == "" {
		return s, ""
	}
	return strings.TrimRight(s[:bestIdx], " \t"), extDigits
}

func hasPrecedingDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(foldWidth(r)) {
			return true
		}
	}
	return false
}
