package phonenumber

import (
	"strings"

	"github.com/xlab/phonenumber/metadata"
)

// PossibilityReason enumerates the outcomes of
// IsPossibleNumberWithReason, per §4.4.
type PossibilityReason int

// PossibilityReasons are the six judgements IsPossibleNumberWithReason
// can return.
var PossibilityReasons = struct {
	IsPossible          PossibilityReason
	IsPossibleLocalOnly PossibilityReason
	InvalidCountryCode  PossibilityReason
	TooShort            PossibilityReason
	TooLong             PossibilityReason
	InvalidLength       PossibilityReason
}{
	IsPossible:          0,
	IsPossibleLocalOnly: 1,
	InvalidCountryCode:  2,
	TooShort:            3,
	TooLong:             4,
	InvalidLength:       5,
}

func (r PossibilityReason) String() string {
	switch r {
	case PossibilityReasons.IsPossible:
		return "IS_POSSIBLE"
	case PossibilityReasons.IsPossibleLocalOnly:
		return "IS_POSSIBLE_LOCAL_ONLY"
	case PossibilityReasons.InvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case PossibilityReasons.TooShort:
		return "TOO_SHORT"
	case PossibilityReasons.TooLong:
		return "TOO_LONG"
	default:
		return "INVALID_LENGTH"
	}
}

// IsPossibleNumberWithReason implements §4.4's possibility judgement.
func IsPossibleNumberWithReason(n *PhoneNumber) PossibilityReason {
	if n == nil {
		return PossibilityReasons.InvalidCountryCode
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	if m == nil || m.GeneralDesc == nil {
		return PossibilityReasons.InvalidCountryCode
	}
	l := len(n.NationalSignificantNumber())
	possible := m.GeneralDesc.PossibleLength
	localOnly := m.GeneralDesc.PossibleLengthLocalOnly

	for _, pl := range possible {
		if pl == l {
			return PossibilityReasons.IsPossible
		}
	}
	for _, pl := range localOnly {
		if pl == l {
			return PossibilityReasons.IsPossibleLocalOnly
		}
	}
	if len(possible) == 0 {
		return PossibilityReasons.InvalidLength
	}
	min, max := possible[0], possible[0]
	for _, pl := range possible {
		if pl < min {
			min = pl
		}
		if pl > max {
			max = pl
		}
	}
	if l < min {
		return PossibilityReasons.TooShort
	}
	if l > max {
		return PossibilityReasons.TooLong
	}
	return PossibilityReasons.InvalidLength
}

// IsPossibleNumber reports whether n is plausibly dialable, i.e. its
// IsPossibleNumberWithReason is IS_POSSIBLE or IS_POSSIBLE_LOCAL_ONLY.
func IsPossibleNumber(n *PhoneNumber) bool {
	r := IsPossibleNumberWithReason(n)
	return r == PossibilityReasons.IsPossible || r == PossibilityReasons.IsPossibleLocalOnly
}

// IsPossibleNumberString parses s against defaultRegion and reports
// IsPossibleNumber, treating any parse failure as not possible.
func IsPossibleNumberString(s, defaultRegion string) bool {
	n, err := Parse(s, defaultRegion)
	if err != nil {
		return false
	}
	return IsPossibleNumber(n)
}

// IsPossibleNumberForType additionally requires the national number's
// length to be among the named type's possible lengths, falling back
// to the general description when the specific type has none declared.
func IsPossibleNumberForType(n *PhoneNumber, t metadata.NumberType) bool {
	if n == nil {
		return false
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	if m == nil {
		return false
	}
	desc := descForType(m, t)
	if desc.Empty() {
		return IsPossibleNumber(n)
	}
	lengths := desc.PossibleLength
	if len(lengths) == 0 {
		return IsPossibleNumber(n)
	}
	l := len(n.NationalSignificantNumber())
	for _, pl := range lengths {
		if pl == l {
			return true
		}
	}
	return false
}

func descForType(m *metadata.PhoneMetadata, t metadata.NumberType) *metadata.PhoneNumberDesc {
	for _, td := range m.TypedDescs() {
		if td.Type == t {
			return td.Desc
		}
	}
	return nil
}

// IsValidNumber implements §4.4's is_valid_number: the national number
// must match some specific type's pattern, or the general_desc pattern
// when no specific type applies.
func IsValidNumber(n *PhoneNumber) bool {
	if n == nil {
		return false
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	if m == nil {
		return false
	}
	return matchesAnyType(n.NationalSignificantNumber(), m)
}

func matchesAnyType(nsn string, m *metadata.PhoneMetadata) bool {
	for _, td := range m.TypedDescs() {
		if td.Desc.Empty() {
			continue
		}
		if metadata.FullMatch(td.Desc.NationalNumberPattern).MatchString(nsn) {
			return true
		}
	}
	if m.GeneralDesc != nil && m.GeneralDesc.NationalNumberPattern != "" {
		return metadata.FullMatch(m.GeneralDesc.NationalNumberPattern).MatchString(nsn)
	}
	return false
}

// IsValidNumberForRegion restricts IsValidNumber to region, additionally
// requiring a leading_digits match when the region's country code is
// shared with others.
func IsValidNumberForRegion(n *PhoneNumber, region string) bool {
	if n == nil {
		return false
	}
	m := metadata.Default().GetForRegion(strings.ToUpper(region))
	if m == nil || m.CountryCode != int(n.CountryCode) {
		return false
	}
	nsn := n.NationalSignificantNumber()
	if m.LeadingDigits != "" && !metadata.PrefixMatch(m.LeadingDigits).MatchString(nsn) {
		return false
	}
	return matchesAnyType(nsn, m)
}

// GetNumberType implements §4.4's ordered type classification.
func GetNumberType(n *PhoneNumber) metadata.NumberType {
	if n == nil {
		return metadata.NumberTypes.Unknown
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	if m == nil {
		return metadata.NumberTypes.Unknown
	}
	nsn := n.NationalSignificantNumber()
	if m.GeneralDesc != nil && m.GeneralDesc.NationalNumberPattern != "" &&
		!metadata.FullMatch(m.GeneralDesc.NationalNumberPattern).MatchString(nsn) {
		return metadata.NumberTypes.Unknown
	}

	for _, td := range m.TypedDescs() {
		isFixedOrMobile := td.Type == metadata.NumberTypes.FixedLine || td.Type == metadata.NumberTypes.Mobile
		if !isFixedOrMobile && !td.Desc.Empty() && metadata.FullMatch(td.Desc.NationalNumberPattern).MatchString(nsn) {
			return td.Type
		}
	}

	if m.SameMobileAndFixedLinePattern {
		if !m.FixedLine.Empty() && metadata.FullMatch(m.FixedLine.NationalNumberPattern).MatchString(nsn) {
			return metadata.NumberTypes.FixedLineOrMobile
		}
	}

	fixedMatch := !m.FixedLine.Empty() && metadata.FullMatch(m.FixedLine.NationalNumberPattern).MatchString(nsn)
	mobileMatch := !m.Mobile.Empty() && metadata.FullMatch(m.Mobile.NationalNumberPattern).MatchString(nsn)
	if fixedMatch && mobileMatch {
		return metadata.NumberTypes.FixedLineOrMobile
	}
	if fixedMatch {
		return metadata.NumberTypes.FixedLine
	}
	if mobileMatch {
		return metadata.NumberTypes.Mobile
	}
	return metadata.NumberTypes.Unknown
}

// GetRegionCodeForNumber implements §4.4's reverse lookup: among every
// region sharing n.CountryCode, prefer the first whose leading_digits
// match (when set) and for which n validates; fall back to the main
// region for that country code, then "".
func GetRegionCodeForNumber(n *PhoneNumber) string {
	if n == nil {
		return ""
	}
	regions := metadata.Default().RegionsForCountryCode(int(n.CountryCode))
	if len(regions) == 0 {
		return ""
	}
	if len(regions) == 1 {
		return regions[0]
	}
	nsn := n.NationalSignificantNumber()
	for _, region := range regions {
		m := metadata.Default().GetForRegion(region)
		if m == nil {
			continue
		}
		if m.LeadingDigits != "" && !metadata.PrefixMatch(m.LeadingDigits).MatchString(nsn) {
			continue
		}
		if matchesAnyType(nsn, m) {
			return region
		}
	}
	return regions[0]
}

// GetRegionCodeForCountryCode returns the main region registered for
// cc, or "" if cc is unknown.
func GetRegionCodeForCountryCode(cc int) string {
	regions := metadata.Default().RegionsForCountryCode(cc)
	if len(regions) == 0 {
		return ""
	}
	return regions[0]
}

// GetCountryCodeForRegion returns the calling code registered for
// region, or 0 if region is unknown.
func GetCountryCodeForRegion(region string) int {
	return metadata.Default().CountryCodeForRegion(strings.ToUpper(region))
}

// nanpaCountryCode is the single country calling code shared by every
// NANPA member region (§ GLOSSARY).
const nanpaCountryCode = 1

// IsNANPACountry reports whether region is a North American Numbering
// Plan member, i.e. it is registered under country calling code 1.
func IsNANPACountry(region string) bool {
	return metadata.Default().CountryCodeForRegion(strings.ToUpper(region)) == nanpaCountryCode
}

// IsLeadingZeroPossible reports whether region's general description
// is conventionally written with a leading zero, per §4.3 step 6 and
// SPEC_FULL.md §C.
func IsLeadingZeroPossible(region string) bool {
	m := metadata.Default().GetForRegion(strings.ToUpper(region))
	return m != nil && m.LeadingZeroPossible
}

// GetLengthOfGeographicalAreaCode returns the digit length of the
// first capture group produced by n's chosen NATIONAL NumberFormat, or
// 0 when no format matches or n is classified as a mobile, toll-free
// or premium-rate number.
func GetLengthOfGeographicalAreaCode(n *PhoneNumber) int {
	if n == nil {
		return 0
	}
	switch GetNumberType(n) {
	case metadata.NumberTypes.Mobile, metadata.NumberTypes.TollFree, metadata.NumberTypes.PremiumRate:
		return 0
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	_, groups := selectFormat(n.NationalSignificantNumber(), m, true)
	if len(groups) < 2 {
		return 0
	}
	return len(groups[1])
}

// GetLengthOfNationalDestinationCode returns the digit length of the
// first capture group produced by n's chosen NATIONAL NumberFormat, or
// 0 when no format matches. Unlike GetLengthOfGeographicalAreaCode it
// applies to every number type; a destination code spanning more than
// the first group is not combined.
func GetLengthOfNationalDestinationCode(n *PhoneNumber) int {
	if n == nil {
		return 0
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	_, groups := selectFormat(n.NationalSignificantNumber(), m, true)
	if len(groups) < 2 {
		return 0
	}
	return len(groups[1])
}

// GetNddPrefixForRegion returns region's raw national prefix string,
// stripped of any transform-rule formatting when stripped is true.
func GetNddPrefixForRegion(region string, stripped bool) string {
	m := metadata.Default().GetForRegion(strings.ToUpper(region))
	if m == nil {
		return ""
	}
	if !stripped {
		return m.NationalPrefix
	}
	return strings.TrimFunc(m.NationalPrefix, func(r rune) bool { return r < '0' || r > '9' })
}

// GetNationalSignificantNumber is the package-level form of
// PhoneNumber.NationalSignificantNumber, named to match the operation
// list in §6.
func GetNationalSignificantNumber(n *PhoneNumber) string {
	if n == nil {
		return ""
	}
	return n.NationalSignificantNumber()
}

// TruncateTooLongNumber implements §4.4's recovery step: while n is
// TOO_LONG and invalid, drop trailing digits one at a time and
// re-check validity. It mutates n in place and reports whether
// truncation produced a valid number; on failure n is left unchanged.
func TruncateTooLongNumber(n *PhoneNumber) bool {
	if n == nil {
		return false
	}
	if IsValidNumber(n) {
		return true
	}
	original := n.NationalNumber
	for IsPossibleNumberWithReason(n) == PossibilityReasons.TooLong && n.NationalNumber >= 10 {
		n.NationalNumber /= 10
		if IsValidNumber(n) {
			return true
		}
	}
	n.NationalNumber = original
	return false
}

// CanBeInternationallyDialled reports whether n's specific-type
// description is not marked no_international_dialling, per
// SPEC_FULL.md §C.
func CanBeInternationallyDialled(n *PhoneNumber) bool {
	if n == nil {
		return false
	}
	m := metadata.Default().GetForCountryCode(int(n.CountryCode))
	if m == nil || m.NoInternationalDialling.Empty() {
		return true
	}
	return !metadata.FullMatch(m.NoInternationalDialling.NationalNumberPattern).MatchString(n.NationalSignificantNumber())
}

// IsAlphaNumber reports whether raw (the pre-normalization input
// text) contains any keypad letter, per SPEC_FULL.md §C.
func IsAlphaNumber(raw string) bool {
	for _, r := range raw {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}

// GetExampleNumber returns a sample valid PhoneNumber for region's
// fixed-line description, or nil when the region is unknown or
// carries no fixed-line example.
func GetExampleNumber(region string) *PhoneNumber {
	return GetExampleNumberForType(region, metadata.NumberTypes.FixedLine)
}

// GetExampleNumberForType returns a sample valid PhoneNumber of the
// named type for region, or nil when the region or type has no
// recorded example.
func GetExampleNumberForType(region string, t metadata.NumberType) *PhoneNumber {
	m := metadata.Default().GetForRegion(strings.ToUpper(region))
	if m == nil {
		return nil
	}
	desc := descForType(m, t)
	if desc.Empty() || desc.ExampleNumber == "" {
		return nil
	}
	return numberFromExample(m, desc.ExampleNumber)
}

func numberFromExample(m *metadata.PhoneMetadata, example string) *PhoneNumber {
	leadingZero, zeroCount, rest := extractItalianLeadingZero(example, m)
	var national uint64
	for _, r := range rest {
		national = national*10 + uint64(r-'0')
	}
	return NewBuilder().
		SetCountryCode(uint32(m.CountryCode)).
		SetNationalNumber(national).
		SetItalianLeadingZero(leadingZero).
		SetNumberOfLeadingZeros(zeroCount).
		Build()
}
