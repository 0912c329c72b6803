package phonenumber

import (
	"strconv"
	"strings"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/normalize"
)

// AsYouTypeFormatter is a stateful formatter that renders a best-effort
// national or international grouping of digits as a user types them,
// per §4.6. It is a documented simplification of the real algorithm:
// this module re-evaluates candidate NumberFormat entries from scratch
// on every digit rather than maintaining the incremental prefix-tree
// state the original implementation builds, trading a little CPU for
// a much smaller, easier-to-follow state machine. The remembered-
// position and never-reorder invariants still hold exactly.
type AsYouTypeFormatter struct {
	defaultRegion string

	digits strings.Builder

	expectingCountryCode bool
	countryCode          uint32
	meta                 *metadata.PhoneMetadata

	rememberedDigitIndex int // index among all digits entered, country code included; -1 if unset
	lastPositionInOutput int
}

// NewAsYouTypeFormatter returns a formatter that renders digits
// against defaultRegion's numbering plan until a leading "+" switches
// it into country-code detection mode.
func NewAsYouTypeFormatter(defaultRegion string) *AsYouTypeFormatter {
	f := &AsYouTypeFormatter{defaultRegion: strings.ToUpper(defaultRegion)}
	f.meta = metadata.Default().GetForRegion(f.defaultRegion)
	f.rememberedDigitIndex = -1
	return f
}

// Clear resets the formatter to its just-constructed state.
func (f *AsYouTypeFormatter) Clear() {
	f.digits.Reset()
	f.expectingCountryCode = false
	f.countryCode = 0
	f.meta = metadata.Default().GetForRegion(f.defaultRegion)
	f.rememberedDigitIndex = -1
	f.lastPositionInOutput = 0
}

// InputDigit feeds one character (digit, "+", or recognized
// punctuation; anything else is ignored per §4.6) and returns the
// current best-effort formatted string.
func (f *AsYouTypeFormatter) InputDigit(ch rune) string {
	out, _ := f.input(ch, false)
	return out
}

// InputDigitAndRememberPosition behaves like InputDigit but also marks
// the position in the returned string corresponding to this digit, for
// later retrieval with GetRememberedPosition.
func (f *AsYouTypeFormatter) InputDigitAndRememberPosition(ch rune) string {
	out, _ := f.input(ch, true)
	return out
}

// GetRememberedPosition returns the cursor position recorded by the
// most recent InputDigitAndRememberPosition call within the string it
// returned, or -1 if no position has been remembered.
func (f *AsYouTypeFormatter) GetRememberedPosition() int {
	if f.rememberedDigitIndex < 0 {
		return -1
	}
	return f.lastPositionInOutput
}

func (f *AsYouTypeFormatter) input(ch rune, remember bool) (string, bool) {
	if ch == '+' || ch == '＋' {
		if f.digits.Len() == 0 {
			f.expectingCountryCode = true
		}
		return f.render(), false
	}
	d := normalize.NormalizeDigitsOnly(string(ch))
	if d == "" {
		return f.render(), false
	}
	f.digits.WriteByte(d[0])
	if remember {
		f.rememberedDigitIndex = f.digits.Len() - 1
		if f.countryCode != 0 {
			f.rememberedDigitIndex += len(strconv.Itoa(int(f.countryCode)))
		}
	}

	if f.expectingCountryCode && f.countryCode == 0 {
		f.tryResolveCountryCode()
	}

	out := f.render()
	if remember {
		f.lastPositionInOutput = f.positionOf(f.rememberedDigitIndex, out)
	}
	return out, true
}

func (f *AsYouTypeFormatter) tryResolveCountryCode() {
	accumulated := f.digits.String()
	for n := 1; n <= 3 && n <= len(accumulated); n++ {
		prefix := accumulated[:n]
		cc := 0
		for _, r := range prefix {
			cc = cc*10 + int(r-'0')
		}
		if m := metadata.Default().GetForCountryCode(cc); m != nil {
			f.countryCode = uint32(cc)
			f.meta = m
			f.digits.Reset()
			f.digits.WriteString(accumulated[n:])
			return
		}
	}
}

// render recomputes the best-effort formatted string from scratch
// against the accumulated digit buffer.
func (f *AsYouTypeFormatter) render() string {
	national := f.digits.String()
	var prefix string
	if f.countryCode != 0 {
		prefix = "+" + strconv.Itoa(int(f.countryCode)) + " "
	}
	if national == "" {
		return prefix
	}
	if len(national) < 3 || f.meta == nil {
		return prefix + national
	}
	nf, groups := bestEffortFormat(national, f.meta.NumberFormat)
	if nf == nil {
		return prefix + minimalGrouping(national)
	}
	formatted := nf.Format
	if f.countryCode == 0 && f.meta.NationalPrefix != "" {
		formatted = applyNationalPrefixRule(formatted, nf, f.meta, groups)
	}
	return prefix + substituteGroups(formatted, groups)
}

// bestEffortFormat picks the first NumberFormat whose
// leading_digits_patterns match and whose pattern matches the whole
// accumulated digit string, per §4.6. Partial matches are not
// considered: while the number is shorter than a pattern needs, that
// entry does not match, and render falls back to minimalGrouping.
func bestEffortFormat(national string, table []metadata.NumberFormat) (*metadata.NumberFormat, []string) {
	for i := range table {
		nf := &table[i]
		if !leadingDigitsMatch(national, nf.LeadingDigitsPatterns) {
			continue
		}
		re := metadata.PrefixMatch(nf.Pattern)
		loc := re.FindStringSubmatchIndex(national)
		if loc == nil {
			continue
		}
		if loc[1] != len(national) {
			continue
		}
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] < 0 {
				continue
			}
			groups[g] = national[loc[2*g]:loc[2*g+1]]
		}
		return nf, groups
	}
	return nil, nil
}

// minimalGrouping is the fallback emitted whenever no candidate format
// matches the whole accumulated digit string: groups of three from
// the left with a trailing remainder, which is the simplest grouping
// that satisfies the never-reorder invariant without claiming any
// particular region's convention.
func minimalGrouping(national string) string {
	var b strings.Builder
	for i := 0; i < len(national); i += 3 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 3
		if end > len(national) {
			end = len(national)
		}
		b.WriteString(national[i:end])
	}
	return b.String()
}

// positionOf finds where the digit at index idx among all digits
// entered (country code included) landed in the rendered output, by
// counting digit characters.
func (f *AsYouTypeFormatter) positionOf(idx int, rendered string) int {
	if idx < 0 {
		return -1
	}
	seen := 0
	for i, r := range rendered {
		if r >= '0' && r <= '9' {
			if seen == idx {
				return i
			}
			seen++
		}
	}
	return len(rendered)
}

