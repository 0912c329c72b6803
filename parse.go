package phonenumber

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xlab/phonenumber/internal/digits"
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/normalize"
)

// maxRawInputLength is the longest raw string Parse will look at
// before giving up with TOO_LONG (§4.3 step 1, B1).
const maxRawInputLength = 250

// maxNationalNumberDigits and minNationalNumberDigits bound the
// converted national number per §4.3 step 7 (B2, B3).
const (
	minNationalNumberDigits = 2
	maxNationalNumberDigits = 17
)

// Parse converts raw into a PhoneNumber using defaultRegion to resolve
// a country code when raw carries none of its own. defaultRegion may
// be "" (unknown) only when raw begins with a recognized international
// call marker.
func Parse(raw, defaultRegion string) (*PhoneNumber, error) {
	return parse(raw, defaultRegion, false)
}

// ParseAndKeepRawInput behaves like Parse but additionally records
// RawInput and CountryCodeSource (and, when captured, the preferred
// domestic carrier code) on the result.
func ParseAndKeepRawInput(raw, defaultRegion string) (*PhoneNumber, error) {
	return parse(raw, defaultRegion, true)
}

func parse(raw, defaultRegion string, keepRaw bool) (*PhoneNumber, error) {
	if len(raw) > maxRawInputLength {
		return nil, newParseError(ParseErrorCodes.TooLong, "raw input exceeds maximum length")
	}

	candidate := normalize.ExtractPossibleNumber(raw)
	if candidate == "" || !normalize.IsViablePhoneNumber(candidate) {
		return nil, newParseError(ParseErrorCodes.NotANumber, "input is not a viable phone number")
	}

	body, ext := normalize.SplitExtension(candidate)

	defaultRegion = strings.ToUpper(defaultRegion)
	defaultMeta := metadata.Default().GetForRegion(defaultRegion)

	cc, source, carrierCode, nsn, err := extractCountryCode(body, defaultMeta)
	if err != nil {
		return nil, err
	}
	regionMeta := metadata.Default().GetForCountryCode(int(cc))

	nsn, strippedCarrier, stripped := stripNationalPrefix(nsn, regionMeta)
	if strippedCarrier != "" {
		carrierCode = strippedCarrier
	}
	_ = stripped

	leadingZero, zeroCount, nsn := extractItalianLeadingZero(nsn, regionMeta)

	if len(nsn) < minNationalNumberDigits {
		return nil, newParseError(ParseErrorCodes.TooShortNSN, "national number has fewer than 2 digits")
	}
	if len(nsn) > maxNationalNumberDigits {
		return nil, newParseError(ParseErrorCodes.TooLong, "national number has more than 17 digits")
	}

	national, err := strconv.ParseUint(nsn, 10, 64)
	if err != nil {
		return nil, newParseError(ParseErrorCodes.TooLong, "national number does not fit in 64 bits")
	}

	b := NewBuilder().
		SetCountryCode(cc).
		SetNationalNumber(national).
		SetExtension(ext).
		SetItalianLeadingZero(leadingZero).
		SetNumberOfLeadingZeros(zeroCount)
	if keepRaw {
		b.SetRawInput(candidate).SetCountryCodeSource(source)
		if carrierCode != "" || source == CountryCodeSources.FromDefaultCountry {
			b.SetPreferredDomesticCarrierCode(carrierCode)
		}
	}
	return b.Build(), nil
}

// extractCountryCode implements §4.3 step 4. It returns the resolved
// country code, how it was derived, and the remaining national-number
// digit string. The carrierCode result is always ""; domestic carrier
// codes are captured later, when the national prefix is stripped.
func extractCountryCode(body string, defaultMeta *metadata.PhoneMetadata) (cc uint32, source CountryCodeSource, carrierCode, remaining string, err error) {
	trimmed := strings.TrimLeft(body, " \t")
	if r, size := utf8.DecodeRuneInString(trimmed); r == '+' || r == '＋' {
		digitsStr := normalize.Normalize(trimmed[size:])
		found, ok := greedyCountryCode(digitsStr)
		if !ok {
			return 0, 0, "", "", newParseError(ParseErrorCodes.InvalidCountryCode, "no known country code after +")
		}
		return found.cc, CountryCodeSources.FromNumberWithPlusSign, "", found.rest, nil
	}

	allDigits := normalize.Normalize(body)

	if defaultMeta != nil && defaultMeta.InternationalPrefix != "" {
		if rest, ok := stripIDD(allDigits, defaultMeta.InternationalPrefix); ok {
			if rest == "" {
				return 0, 0, "", "", newParseError(ParseErrorCodes.TooShortAfterIDD, "nothing follows the international prefix")
			}
			found, ok := greedyCountryCode(rest)
			if !ok {
				return 0, 0, "", "", newParseError(ParseErrorCodes.InvalidCountryCode, "no known country code after IDD")
			}
			return found.cc, CountryCodeSources.FromNumberWithIDD, "", found.rest, nil
		}
	}

	if defaultMeta != nil {
		ccStr := strconv.Itoa(defaultMeta.CountryCode)
		if strings.HasPrefix(allDigits, ccStr) {
			rest := allDigits[len(ccStr):]
			if isPossibleForMetadata(rest, defaultMeta) {
				return uint32(defaultMeta.CountryCode), CountryCodeSources.FromNumberWithoutPlusSign, "", rest, nil
			}
		}
	}

	if defaultMeta == nil {
		return 0, 0, "", "", newParseError(ParseErrorCodes.InvalidCountryCode, "default region is unknown and no + was present")
	}
	return uint32(defaultMeta.CountryCode), CountryCodeSources.FromDefaultCountry, "", allDigits, nil
}

type ccMatch struct {
	cc   uint32
	rest string
}

// greedyCountryCode tries 1, then 2, then 3 leading digits of digitStr
// against the metadata store and returns the first length that names a
// registered country code. Every real ITU country-code allocation has
// the property that no valid code is a proper prefix of another, so
// trying lengths shortest-first or longest-first yields the same
// result; shortest-first is what this module implements since it is
// the cheaper check.
func greedyCountryCode(digitStr string) (ccMatch, bool) {
	for n := 1; n <= 3 && n <= len(digitStr); n++ {
		prefix := digitStr[:n]
		cc, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if metadata.Default().GetForCountryCode(cc) != nil {
			return ccMatch{cc: uint32(cc), rest: digitStr[n:]}, true
		}
	}
	return ccMatch{}, false
}

// stripIDD reports whether digitStr begins with a match of the
// region's international_prefix pattern and, if so, returns what
// follows it.
func stripIDD(digitStr, internationalPrefixPattern string) (string, bool) {
	re := metadata.PrefixMatch(internationalPrefixPattern)
	loc := re.FindStringIndex(digitStr)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return digitStr[loc[1]:], true
}

// isPossibleForMetadata reports whether digitStr's length is among the
// possible lengths of m's general description.
func isPossibleForMetadata(digitStr string, m *metadata.PhoneMetadata) bool {
	if digitStr == "" || m == nil || m.GeneralDesc == nil {
		return false
	}
	l := len(digitStr)
	for _, pl := range m.GeneralDesc.PossibleLength {
		if pl == l {
			return true
		}
	}
	return false
}

// stripNationalPrefix implements §4.3 step 5: it strips the region's
// national_prefix_for_parsing (applying national_prefix_transform_rule
// when present) only if the stripped result still matches the general
// description pattern; otherwise it returns nsn unchanged.
func stripNationalPrefix(nsn string, m *metadata.PhoneMetadata) (result, carrierCode string, stripped bool) {
	if m == nil || m.NationalPrefixForParsing == "" {
		return nsn, "", false
	}
	re := metadata.PrefixMatch(m.NationalPrefixForParsing)
	loc := re.FindStringSubmatchIndex(nsn)
	if loc == nil || loc[0] != 0 {
		return nsn, "", false
	}
	matched := nsn[:loc[1]]
	var candidate string
	if m.NationalPrefixTransformRule != "" {
		groups := re.FindStringSubmatch(nsn)
		candidate = applyTransformRule(m.NationalPrefixTransformRule, groups) + nsn[loc[1]:]
	} else {
		candidate = nsn[loc[1]:]
	}
	if candidate == "" || !matchesGeneralDesc(candidate, m) {
		return nsn, "", false
	}
	if len(loc) >= 4 && loc[2] >= 0 && loc[3] >= 0 {
		carrierCode = nsn[loc[2]:loc[3]]
	}
	_ = matched
	return candidate, carrierCode, true
}

func applyTransformRule(rule string, groups []string) string {
	out := rule
	for i := len(groups) - 1; i >= 1; i-- {
		out = strings.ReplaceAll(out, "$"+strconv.Itoa(i), groups[i])
	}
	return out
}

func matchesGeneralDesc(nsn string, m *metadata.PhoneMetadata) bool {
	if m.GeneralDesc == nil || m.GeneralDesc.NationalNumberPattern == "" {
		return true
	}
	return metadata.FullMatch(m.GeneralDesc.NationalNumberPattern).MatchString(nsn)
}

// extractItalianLeadingZero implements §4.3 step 6.
func extractItalianLeadingZero(nsn string, m *metadata.PhoneMetadata) (isItalianLeadingZero bool, zeroCount int, stripped string) {
	zeros := digits.CountLeadingZeros(nsn)
	if zeros == 0 {
		return false, 0, nsn
	}
	possible := zeros > 1 || (m != nil && m.LeadingZeroPossible)
	if !possible {
		return false, 0, nsn
	}
	rest, _ := digits.StripLeadingZeros(nsn)
	return true, zeros, rest
}
