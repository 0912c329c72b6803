package phonenumber

// MatchType enumerates the outcomes of IsNumberMatch, per §4.9.
type MatchType int

// MatchTypes are the five judgements IsNumberMatch can return, ordered
// from least to most exact.
var MatchTypes = struct {
	NotANumber    MatchType
	NoMatch       MatchType
	ShortNSNMatch MatchType
	NSNMatch      MatchType
	ExactMatch    MatchType
}{
	NotANumber:    0,
	NoMatch:       1,
	ShortNSNMatch: 2,
	NSNMatch:      3,
	ExactMatch:    4,
}

func (t MatchType) String() string {
	switch t {
	case MatchTypes.NotANumber:
		return "NOT_A_NUMBER"
	case MatchTypes.NoMatch:
		return "NO_MATCH"
	case MatchTypes.ShortNSNMatch:
		return "SHORT_NSN_MATCH"
	case MatchTypes.NSNMatch:
		return "NSN_MATCH"
	default:
		return "EXACT_MATCH"
	}
}

// IsNumberMatch compares two PhoneNumber values, or a PhoneNumber and a
// raw string, or two raw strings, returning how closely they match.
// String arguments are parsed with ParseAndKeepRawInput against an
// unspecified region ("ZZ"); a string that fails to parse as a viable
// number yields NOT_A_NUMBER.
func IsNumberMatch(first, second interface{}) MatchType {
	a, aOK := asPhoneNumber(first)
	b, bOK := asPhoneNumber(second)
	if !aOK || !bOK {
		return MatchTypes.NotANumber
	}
	return compareNumbers(a, b)
}

func asPhoneNumber(v interface{}) (*PhoneNumber, bool) {
	switch x := v.(type) {
	case *PhoneNumber:
		return x, x != nil
	case PhoneNumber:
		return &x, true
	case string:
		n, err := ParseAndKeepRawInput(x, "ZZ")
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}

// minTrailingDigitsForShortMatch is §4.9's "at least 7 trailing digits
// matching" threshold for SHORT_NSN_MATCH.
const minTrailingDigitsForShortMatch = 7

// compareNumbers implements §4.9's comparison ladder: exact agreement
// on every semantic field wins EXACT_MATCH; otherwise agreement on the
// full national significant number and extension, with a country-code
// mismatch tolerated only when one side's code was never resolved with
// confidence (it came from FROM_DEFAULT_COUNTRY rather than the raw
// text itself), wins NSN_MATCH; otherwise one national number being a
// suffix of the other with at least 7 matching trailing digits wins
// SHORT_NSN_MATCH; anything else is NO_MATCH.
func compareNumbers(a, b *PhoneNumber) MatchType {
	if a.Equal(b) {
		return MatchTypes.ExactMatch
	}
	if a.Extension != b.Extension {
		return MatchTypes.NoMatch
	}
	aNSN, bNSN := a.NationalSignificantNumber(), b.NationalSignificantNumber()
	if aNSN == bNSN && countryCodeElidable(a, b) {
		return MatchTypes.NSNMatch
	}
	shorter, longer := aNSN, bNSN
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) < minTrailingDigitsForShortMatch || len(shorter) == len(longer) {
		return MatchTypes.NoMatch
	}
	if longer[len(longer)-len(shorter):] == shorter {
		return MatchTypes.ShortNSNMatch
	}
	return MatchTypes.NoMatch
}

// countryCodeElidable reports whether a and b's country codes agree,
// or disagree only because one side's code came from
// FROM_DEFAULT_COUNTRY — meaning the raw text carried no explicit
// country signal and the mismatch is plausibly just a different
// default region guess.
func countryCodeElidable(a, b *PhoneNumber) bool {
	if a.CountryCode == b.CountryCode {
		return true
	}
	return a.CountryCodeSource == CountryCodeSources.FromDefaultCountry ||
		b.CountryCodeSource == CountryCodeSources.FromDefaultCountry
}
