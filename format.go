package phonenumber

import (
	"strconv"
	"strings"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/normalize"
)

// PhoneNumberFormat enumerates the rendering styles of §4.5.
type PhoneNumberFormat int

// Formats are the four renderings Format (the function) can produce.
var Formats = struct {
	E164          PhoneNumberFormat
	International PhoneNumberFormat
	National      PhoneNumberFormat
	RFC3966       PhoneNumberFormat
}{
	E164:          0,
	International: 1,
	National:      2,
	RFC3966:       3,
}

// Format renders n according to style. Formatting is total: a number
// whose region is unknown to the metadata store still renders as E164
// or falls back to its bare national significant number, per §4.5's
// "no formatting operation raises".
func Format(n *PhoneNumber, style PhoneNumberFormat) string {
	if n == nil {
		return ""
	}
	nsn := n.NationalSignificantNumber()
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))

	switch style {
	case Formats.E164:
		return "+" + strconv.FormatUint(uint64(n.CountryCode), 10) + nsn
	case Formats.RFC3966:
		formatted := formatNationalPart(nsn, m, false)
		hyphenated := strings.ReplaceAll(formatted, " ", "-")
		out := "+" + strconv.FormatUint(uint64(n.CountryCode), 10) + "-" + hyphenated
		if n.Extension != "" {
			out += ";ext=" + n.Extension
		}
		return out
	case Formats.International:
		formatted := formatNationalPart(nsn, m, false)
		out := "+" + strconv.FormatUint(uint64(n.CountryCode), 10) + " " + formatted
		return appendExtension(out, n.Extension, m)
	default: // National
		formatted := formatNationalPart(nsn, m, true)
		return appendExtension(formatted, n.Extension, m)
	}
}

// appendExtension appends ext using m's PreferredExtnPrefix, per
// §4.5's "Append the extension with the viewpoint region's
// preferred_extn_prefix (default ' ext. ')". m may be nil (unknown
// region), in which case the default always applies.
func appendExtension(formatted, ext string, m *metadata.PhoneMetadata) string {
	if ext == "" {
		return formatted
	}
	prefix := " ext. "
	if m != nil && m.PreferredExtnPrefix != "" {
		prefix = m.PreferredExtnPrefix
	}
	return formatted + prefix + ext
}

// FormatByPattern renders nsn against m's formatting table the same
// way Format does, exposed separately so callers that already hold a
// PhoneMetadata (the as-you-type formatter, tests) don't need to round
// trip through the store.
func FormatByPattern(nsn string, m *metadata.PhoneMetadata, national bool) string {
	return formatNationalPart(nsn, m, national)
}

// FormatWithCarrierCode behaves like Format(n, NATIONAL) but substitutes
// carrierCode into the chosen NumberFormat's
// domestic_carrier_code_formatting_rule when one is present, per §4.5's
// carrier-code rendering and §6's DomesticCarrierCodeFormattingRule
// field. An empty carrierCode falls back to PreferredDomesticCarrierCode
// on n, then to plain NATIONAL formatting.
func FormatWithCarrierCode(n *PhoneNumber, carrierCode string) string {
	if n == nil {
		return ""
	}
	if carrierCode == "" {
		carrierCode = n.PreferredDomesticCarrierCode
	}
	nsn := n.NationalSignificantNumber()
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	nf, groups := selectFormat(nsn, m, true)
	if nf == nil {
		return appendExtension(formatNationalPart(nsn, m, true), n.Extension, m)
	}
	format := nf.Format
	if carrierCode != "" && nf.DomesticCarrierCodeFormattingRule != "" {
		rule := expandRule(nf.DomesticCarrierCodeFormattingRule, "", carrierCode, groups)
		format = substituteFirstGroup(format, rule)
	} else if m != nil {
		format = applyNationalPrefixRule(format, nf, m, groups)
	}
	return appendExtension(substituteGroups(format, groups), n.Extension, m)
}

// FormatNationalNumberWithPreferredCarrierCode is the same operation
// under the name §6 gives the underlying field's accessor family; it
// reads the carrier code straight off n.
func FormatNationalNumberWithPreferredCarrierCode(n *PhoneNumber, fallbackCarrierCode string) string {
	code := n.PreferredDomesticCarrierCode
	if !n.HasPreferredDomesticCarrierCode() {
		code = fallbackCarrierCode
	}
	return FormatWithCarrierCode(n, code)
}

// FormatOutOfCountryCallingNumber renders n the way a caller dialling
// from regionCallingFrom would need to dial it: international access
// code + format. The plain NATIONAL form is used only when
// regionCallingFrom is a NANPA region and n has the same country code;
// a caller elsewhere sharing n's country code still gets the
// international-prefix form.
func FormatOutOfCountryCallingNumber(n *PhoneNumber, regionCallingFrom string) string {
	if n == nil {
		return ""
	}
	fromMeta := metadata.Default().GetForRegion(strings.ToUpper(regionCallingFrom))
	if fromMeta == nil {
		return Format(n, Formats.International)
	}
	if fromMeta.CountryCode == int(n.CountryCode) && IsNANPACountry(strings.ToUpper(regionCallingFrom)) {
		return appendExtension(formatNationalPart(n.NationalSignificantNumber(), metadata.Default().GetForCountryCode(int(n.CountryCode)), true), n.Extension, fromMeta)
	}
	prefix := fromMeta.PreferredInternationalPrefix
	if prefix == "" {
		prefix = fromMeta.InternationalPrefix
	}
	if prefix == "" {
		return Format(n, Formats.International)
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	formatted := formatNationalPart(n.NationalSignificantNumber(), m, false)
	out := prefix + " " + strconv.FormatUint(uint64(n.CountryCode), 10) + " " + formatted
	return appendExtension(out, n.Extension, fromMeta)
}

// FormatOutOfCountryKeepingAlphaChars renders n the way
// FormatOutOfCountryCallingNumber does, but re-applies the chosen
// format template to n.RawInput instead of the digit-only national
// number, so a vanity number's letters (e.g. the "FLOWERS" in
// "1-800-FLOWERS", preserved verbatim in RawInput by
// ParseAndKeepRawInput since the parser only folds letters to digits
// for matching, never for storage) survive into the rendered string
// with their original case, per §4.5. Falls back to
// FormatOutOfCountryCallingNumber when RawInput is absent or the
// national number can't be located inside it (n wasn't parsed with
// ParseAndKeepRawInput, or the raw text doesn't actually contain the
// parsed digits).
func FormatOutOfCountryKeepingAlphaChars(n *PhoneNumber, regionCallingFrom string) string {
	if n == nil || n.RawInput == "" {
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	}

	// rawAlpha keeps only the digit/letter runes of RawInput, in order,
	// each paired with its folded digit in foldedDigits at the same
	// index; punctuation is dropped from both so a NumberFormat
	// pattern's capture-group offsets (measured against the digit-only
	// national number) can be sliced directly out of rawAlpha without
	// separators leaking across a group boundary.
	var rawAlpha []rune
	var foldedDigits []byte
	for _, r := range []rune(n.RawInput) {
		if d, ok := normalize.KeypadDigit(r); ok {
			rawAlpha = append(rawAlpha, r)
			foldedDigits = append(foldedDigits, d)
		}
	}
	nsn := n.NationalSignificantNumber()
	start := strings.LastIndex(string(foldedDigits), nsn)
	if start < 0 {
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	}

	fromMeta := metadata.Default().GetForRegion(strings.ToUpper(regionCallingFrom))
	if fromMeta == nil {
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	}
	national := fromMeta.CountryCode == int(n.CountryCode) && IsNANPACountry(strings.ToUpper(regionCallingFrom))

	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	nf, groups := selectFormat(nsn, m, national)
	if nf == nil {
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	}
	loc := metadata.FullMatch(nf.Pattern).FindStringSubmatchIndex(nsn)
	if loc == nil {
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	}

	rawGroups := make([]string, len(groups))
	for g := 1; g < len(groups); g++ {
		if loc[2*g] < 0 {
			continue
		}
		rawGroups[g] = string(rawAlpha[start+loc[2*g] : start+loc[2*g+1]])
	}

	format := nf.Format
	if national && m != nil && nf.NationalPrefixFormattingRule != "" && m.NationalPrefix != "" {
		rule := expandRule(nf.NationalPrefixFormattingRule, m.NationalPrefix, "", rawGroups)
		format = substituteFirstGroup(format, rule)
	}
	formattedNational := substituteGroups(format, rawGroups)

	if national {
		return appendExtension(formattedNational, n.Extension, fromMeta)
	}
	prefix := fromMeta.PreferredInternationalPrefix
	if prefix == "" {
		prefix = fromMeta.InternationalPrefix
	}
	if prefix == "" {
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	}
	out := prefix + " " + strconv.FormatUint(uint64(n.CountryCode), 10) + " " + formattedNational
	return appendExtension(out, n.Extension, fromMeta)
}

// FormatInOriginalFormat reconstructs n's presentation using
// RawInput and CountryCodeSource when ParseAndKeepRawInput captured
// them, falling back to NATIONAL or a region-qualified rendering
// otherwise, per §4.5's "reconstruction to the original format"
// clause.
func FormatInOriginalFormat(n *PhoneNumber, regionCallingFrom string) string {
	if n == nil {
		return ""
	}
	if n.RawInput == "" {
		return Format(n, Formats.National)
	}
	switch n.CountryCodeSource {
	case CountryCodeSources.FromNumberWithPlusSign:
		return Format(n, Formats.International)
	case CountryCodeSources.FromNumberWithIDD, CountryCodeSources.FromNumberWithoutPlusSign:
		return FormatOutOfCountryCallingNumber(n, regionCallingFrom)
	default:
		return Format(n, Formats.National)
	}
}

// FormatNumberForMobileDialing renders n the way a handset in
// regionCallingFrom should dial it: E164 when leaving the country;
// otherwise the NATIONAL rendering when withFormatting is true, or the
// same national digits with all punctuation and spacing removed when
// it is false, per §4.5 and §4.7's mobile-dialling note.
func FormatNumberForMobileDialing(n *PhoneNumber, regionCallingFrom string, withFormatting bool) string {
	if n == nil {
		return ""
	}
	fromMeta := metadata.Default().GetForRegion(strings.ToUpper(regionCallingFrom))
	if fromMeta == nil || fromMeta.CountryCode != int(n.CountryCode) {
		return Format(n, Formats.E164)
	}
	if withFormatting {
		return Format(n, Formats.National)
	}
	return stripFormatting(formatNationalPart(n.NationalSignificantNumber(), metadata.Default().GetForCountryCode(int(n.CountryCode)), true))
}

func stripFormatting(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatNationalPart implements §4.5's "Formatted-national-part
// selection": walk the region's ordered NumberFormat list (the main
// list for national rendering, the international list when distinct
// and style isn't NATIONAL), pick the first entry whose
// leading_digits_patterns and pattern both match, and apply its
// template. When national is true the chosen entry's
// national_prefix_formatting_rule is also applied; for international
// rendering the rule is always stripped per §4.5.
func formatNationalPart(nsn string, m *metadata.PhoneMetadata, national bool) string {
	if m == nil {
		return nsn
	}
	table := m.NumberFormat
	if !national && len(m.IntlNumberFormat) > 0 {
		table = m.IntlNumberFormat
	}
	nf, groups := selectFormatFrom(nsn, table)
	if nf == nil {
		return nsn
	}
	format := nf.Format
	if national {
		format = applyNationalPrefixRule(format, nf, m, groups)
	}
	return substituteGroups(format, groups)
}

// selectFormat is formatNationalPart's table selection (the main table
// when national is true, the international table when it is false and
// one exists) exposed for callers (FormatWithCarrierCode) that need
// the matched NumberFormat and capture groups, not just the rendered
// string.
func selectFormat(nsn string, m *metadata.PhoneMetadata, national bool) (*metadata.NumberFormat, []string) {
	if m == nil {
		return nil, nil
	}
	table := m.NumberFormat
	if !national && len(m.IntlNumberFormat) > 0 {
		table = m.IntlNumberFormat
	}
	return selectFormatFrom(nsn, table)
}

func selectFormatFrom(nsn string, table []metadata.NumberFormat) (*metadata.NumberFormat, []string) {
	for i := range table {
		nf := &table[i]
		if !leadingDigitsMatch(nsn, nf.LeadingDigitsPatterns) {
			continue
		}
		re := metadata.FullMatch(nf.Pattern)
		groups := re.FindStringSubmatch(nsn)
		if groups == nil {
			continue
		}
		return nf, groups
	}
	return nil, nil
}

func leadingDigitsMatch(nsn string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	// §6: leading_digits_patterns are ANDed, but each entry in the
	// original tables is itself an alternation over the allowed
	// leading-digit prefixes, so only the last (most specific) entry
	// needs to hold for a well-formed table; this module carries at
	// most one entry per format, so AND-ing collapses to checking all.
	for _, p := range patterns {
		if !metadata.PrefixMatch(p).MatchString(nsn) {
			return false
		}
	}
	return true
}

// applyNationalPrefixRule substitutes national into the format
// template's first $1 occurrence using the region's national prefix
// and the first captured group, then returns the template ready for
// the normal $1..$N pass. See DESIGN.md for the substitution mechanism
// this implements: national_prefix_formatting_rule is not applied as
// a wrapper around the finished output, it is expanded and spliced
// into the position of the template's own first group reference.
func applyNationalPrefixRule(format string, nf *metadata.NumberFormat, m *metadata.PhoneMetadata, groups []string) string {
	if nf.NationalPrefixFormattingRule == "" || m.NationalPrefix == "" {
		return format
	}
	rule := expandRule(nf.NationalPrefixFormattingRule, m.NationalPrefix, "", groups)
	return substituteFirstGroup(format, rule)
}

// expandRule replaces $NP with nationalPrefix, $CC with carrierCode,
// and $FG with the first captured group's text.
func expandRule(rule, nationalPrefix, carrierCode string, groups []string) string {
	out := strings.ReplaceAll(rule, "$NP", nationalPrefix)
	out = strings.ReplaceAll(out, "$CC", carrierCode)
	if len(groups) > 1 {
		out = strings.ReplaceAll(out, "$FG", groups[1])
	}
	return out
}

// substituteFirstGroup replaces the first "$1" occurrence in format
// with expandedRule, leaving any other $N placeholders untouched for
// the subsequent substituteGroups pass.
func substituteFirstGroup(format, expandedRule string) string {
	idx := strings.Index(format, "$1")
	if idx < 0 {
		return format
	}
	return format[:idx] + expandedRule + format[idx+2:]
}

// substituteGroups runs the plain $1..$N replacement pass described in
// §6's NumberFormat.format field, replacing from the highest index
// down so "$10" isn't clobbered by a prior "$1" replacement.
func substituteGroups(format string, groups []string) string {
	out := format
	for i := len(groups) - 1; i >= 1; i-- {
		out = strings.ReplaceAll(out, "$"+strconv.Itoa(i), groups[i])
	}
	return out
}
