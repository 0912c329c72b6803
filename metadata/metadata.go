// Package metadata decodes and serves the per-region numbering-plan
// records the rest of the module consumes. It plays the role the
// teacher's sms package plays relative to at: phonenumber parses and
// formats PhoneNumber values, but the actual "what does a number from
// this region look like" knowledge lives here, as a family of plain
// records decoded from an embedded JSON blob rather than one generated
// builder method per field.
package metadata

// PhoneNumberDesc describes the numbering rules for one number type
// (general, fixed line, mobile, ...) within a region.
type PhoneNumberDesc struct {
	NationalNumberPattern   string `json:"nationalNumberPattern,omitempty"`
	ExampleNumber           string `json:"exampleNumber,omitempty"`
	PossibleLength          []int  `json:"possibleLength,omitempty"`
	PossibleLengthLocalOnly []int  `json:"possibleLengthLocalOnly,omitempty"`
}

// Empty reports whether d carries no pattern, meaning callers should
// fall back to the region's general description.
func (d *PhoneNumberDesc) Empty() bool {
	return d == nil || d.NationalNumberPattern == ""
}

// NumberFormat is one entry of a region's ordered formatting table.
type NumberFormat struct {
	Pattern                             string   `json:"pattern"`
	Format                              string   `json:"format"`
	LeadingDigitsPatterns               []string `json:"leadingDigitsPatterns,omitempty"`
	NationalPrefixFormattingRule        string   `json:"nationalPrefixFormattingRule,omitempty"`
	NationalPrefixOptionalWhenFormatting bool     `json:"nationalPrefixOptionalWhenFormatting,omitempty"`
	DomesticCarrierCodeFormattingRule   string   `json:"domesticCarrierCodeFormattingRule,omitempty"`
}

// PhoneMetadata is the immutable, decoded numbering-plan record for one
// CLDR region (or the "001" pseudo-region for a shared country code).
type PhoneMetadata struct {
	ID                            string `json:"id"`
	CountryCode                   int    `json:"countryCode"`
	InternationalPrefix           string `json:"internationalPrefix,omitempty"`
	PreferredInternationalPrefix string `json:"preferredInternationalPrefix,omitempty"`
	NationalPrefix                string `json:"nationalPrefix,omitempty"`
	PreferredExtnPrefix           string `json:"preferredExtnPrefix,omitempty"`
	NationalPrefixForParsing       string `json:"nationalPrefixForParsing,omitempty"`
	NationalPrefixTransformRule   string `json:"nationalPrefixTransformRule,omitempty"`
	SameMobileAndFixedLinePattern bool   `json:"sameMobileAndFixedLinePattern,omitempty"`
	MainCountryForCode             bool   `json:"mainCountryForCode,omitempty"`
	MobileNumberPortableRegion     bool   `json:"mobileNumberPortableRegion,omitempty"`
	LeadingDigits                  string `json:"leadingDigits,omitempty"`
	// LeadingZeroPossible records whether the general description for
	// this region is conventionally written with a leading zero (e.g.
	// Italian fixed-line numbers). spec.md folds this into the parser's
	// leading-zero heuristic; SPEC_FULL.md §C promotes it to an explicit
	// field so IsLeadingZeroPossible can read it directly.
	LeadingZeroPossible bool `json:"leadingZeroPossible,omitempty"`

	NumberFormat     []NumberFormat `json:"numberFormat,omitempty"`
	IntlNumberFormat []NumberFormat `json:"intlNumberFormat,omitempty"`

	GeneralDesc             *PhoneNumberDesc `json:"generalDesc,omitempty"`
	FixedLine               *PhoneNumberDesc `json:"fixedLine,omitempty"`
	Mobile                  *PhoneNumberDesc `json:"mobile,omitempty"`
	TollFree                *PhoneNumberDesc `json:"tollFree,omitempty"`
	PremiumRate             *PhoneNumberDesc `json:"premiumRate,omitempty"`
	SharedCost              *PhoneNumberDesc `json:"sharedCost,omitempty"`
	PersonalNumber          *PhoneNumberDesc `json:"personalNumber,omitempty"`
	Voip                    *PhoneNumberDesc `json:"voip,omitempty"`
	Pager                   *PhoneNumberDesc `json:"pager,omitempty"`
	Uan                     *PhoneNumberDesc `json:"uan,omitempty"`
	Voicemail               *PhoneNumberDesc `json:"voicemail,omitempty"`
	NoInternationalDialling *PhoneNumberDesc `json:"noInternationalDialling,omitempty"`
}

// NumberType enumerates the classification outcomes of
// phonenumber.GetNumberType.
type NumberType int

// NumberTypes are all number-type classification outcomes.
var NumberTypes = struct {
	PremiumRate        NumberType
	TollFree           NumberType
	SharedCost         NumberType
	Voip               NumberType
	PersonalNumber     NumberType
	Pager              NumberType
	Uan                NumberType
	Voicemail          NumberType
	FixedLine          NumberType
	Mobile             NumberType
	FixedLineOrMobile  NumberType
	Unknown            NumberType
}{
	PremiumRate:       0,
	TollFree:          1,
	SharedCost:        2,
	Voip:              3,
	PersonalNumber:    4,
	Pager:             5,
	Uan:               6,
	Voicemail:         7,
	FixedLine:         8,
	Mobile:            9,
	FixedLineOrMobile: 10,
	Unknown:           11,
}

func (t NumberType) String() string {
	switch t {
	case NumberTypes.PremiumRate:
		return "PREMIUM_RATE"
	case NumberTypes.TollFree:
		return "TOLL_FREE"
	case NumberTypes.SharedCost:
		return "SHARED_COST"
	case NumberTypes.Voip:
		return "VOIP"
	case NumberTypes.PersonalNumber:
		return "PERSONAL_NUMBER"
	case NumberTypes.Pager:
		return "PAGER"
	case NumberTypes.Uan:
		return "UAN"
	case NumberTypes.Voicemail:
		return "VOICEMAIL"
	case NumberTypes.FixedLine:
		return "FIXED_LINE"
	case NumberTypes.Mobile:
		return "MOBILE"
	case NumberTypes.FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	default:
		return "UNKNOWN"
	}
}

// TypedDescs returns the region's per-type descriptors paired with
// their NumberType, in the classification order required by §4.4: the
// first matching pattern wins, fixed line and mobile are tested last
// so the FIXED_LINE_OR_MOBILE ambiguity can be detected.
func (m *PhoneMetadata) TypedDescs() []struct {
	Type NumberType
	Desc *PhoneNumberDesc
} {
	return []struct {
		Type NumberType
		Desc *PhoneNumberDesc
	}{
		{NumberTypes.PremiumRate, m.PremiumRate},
		{NumberTypes.TollFree, m.TollFree},
		{NumberTypes.SharedCost, m.SharedCost},
		{NumberTypes.Voip, m.Voip},
		{NumberTypes.PersonalNumber, m.PersonalNumber},
		{NumberTypes.Pager, m.Pager},
		{NumberTypes.Uan, m.Uan},
		{NumberTypes.Voicemail, m.Voicemail},
		{NumberTypes.FixedLine, m.FixedLine},
		{NumberTypes.Mobile, m.Mobile},
	}
}
