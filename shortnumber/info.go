package shortnumber

import (
	"unicode/utf8"

	"github.com/xlab/phonenumber"
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/normalize"
)

// IsPossibleShortNumber reports whether n's national significant
// number is a plausible short code in any region sharing its country
// code, per §4.8.
func IsPossibleShortNumber(n *phonenumber.PhoneNumber) bool {
	if n == nil {
		return false
	}
	for _, region := range Default().RegionsForCountryCode(int(n.CountryCode)) {
		if IsPossibleShortNumberForRegion(n, region) {
			return true
		}
	}
	return false
}

// IsPossibleShortNumberForRegion reports whether n's national
// significant number matches region's general short-number pattern.
func IsPossibleShortNumberForRegion(n *phonenumber.PhoneNumber, region string) bool {
	if n == nil {
		return false
	}
	m := Default().GetForRegion(region)
	if m == nil || m.GeneralDesc.Empty() {
		return false
	}
	return metadata.FullMatch(m.GeneralDesc.NationalNumberPattern).MatchString(n.NationalSignificantNumber())
}

// IsValidShortNumber reports whether n validates against any specific
// descriptor (toll free, premium rate, emergency, ...) in any region
// sharing its country code.
func IsValidShortNumber(n *phonenumber.PhoneNumber) bool {
	if n == nil {
		return false
	}
	for _, region := range Default().RegionsForCountryCode(int(n.CountryCode)) {
		if IsValidShortNumberForRegion(n, region) {
			return true
		}
	}
	return false
}

// IsValidShortNumberForRegion restricts IsValidShortNumber to region.
func IsValidShortNumberForRegion(n *phonenumber.PhoneNumber, region string) bool {
	if n == nil {
		return false
	}
	m := Default().GetForRegion(region)
	if m == nil {
		return false
	}
	return matchesAny(n.NationalSignificantNumber(), m)
}

func matchesAny(nsn string, m *Metadata) bool {
	for _, d := range []*Desc{m.TollFree, m.PremiumRate, m.StandardRate, m.Emergency, m.ShortCode, m.CarrierSpecific, m.SmsServices} {
		if !d.Empty() && metadata.FullMatch(d.NationalNumberPattern).MatchString(nsn) {
			return true
		}
	}
	if !m.GeneralDesc.Empty() {
		return metadata.FullMatch(m.GeneralDesc.NationalNumberPattern).MatchString(nsn)
	}
	return false
}

// GetExpectedCost classifies n's expected cost, returning the highest
// cost (in the PREMIUM_RATE > UNKNOWN_COST > STANDARD_RATE > TOLL_FREE
// order) among every region sharing its country code, per §4.8.
func GetExpectedCost(n *phonenumber.PhoneNumber) Cost {
	if n == nil {
		return Costs.UnknownCost
	}
	best := Cost(-1)
	for _, region := range Default().RegionsForCountryCode(int(n.CountryCode)) {
		c := GetExpectedCostForRegion(n, region)
		if best == -1 || c.rank() > best.rank() {
			best = c
		}
	}
	if best == -1 {
		return Costs.UnknownCost
	}
	return best
}

// GetExpectedCostForRegion classifies n's expected cost within region
// only.
func GetExpectedCostForRegion(n *phonenumber.PhoneNumber, region string) Cost {
	if n == nil {
		return Costs.UnknownCost
	}
	m := Default().GetForRegion(region)
	if m == nil {
		return Costs.UnknownCost
	}
	nsn := n.NationalSignificantNumber()
	switch {
	case !m.TollFree.Empty() && metadata.FullMatch(m.TollFree.NationalNumberPattern).MatchString(nsn):
		return Costs.TollFree
	case !m.PremiumRate.Empty() && metadata.FullMatch(m.PremiumRate.NationalNumberPattern).MatchString(nsn):
		return Costs.PremiumRate
	case !m.StandardRate.Empty() && metadata.FullMatch(m.StandardRate.NationalNumberPattern).MatchString(nsn):
		return Costs.StandardRate
	default:
		return Costs.UnknownCost
	}
}

// ConnectsToEmergencyNumber reports whether s, read as dialed in
// region, would connect to an emergency service: the leading "+" is
// rejected outright, digits are normalized, and a full or (outside
// BR/CL/NI) prefix match against the region's emergency descriptor is
// attempted, per §4.8.
func ConnectsToEmergencyNumber(s, region string) bool {
	return matchEmergency(s, region, true)
}

// IsEmergencyNumber is ConnectsToEmergencyNumber without prefix-match
// tolerance.
func IsEmergencyNumber(s, region string) bool {
	return matchEmergency(s, region, false)
}

func matchEmergency(s, region string, allowPrefix bool) bool {
	candidate := normalize.ExtractPossibleNumber(s)
	if candidate == "" {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(candidate); r == '+' || r == '＋' {
		return false
	}
	digitsStr := normalize.NormalizeDigitsOnly(candidate)
	if digitsStr == "" {
		return false
	}
	m := Default().GetForRegion(region)
	if m == nil || m.Emergency.Empty() {
		return false
	}
	if metadata.FullMatch(m.Emergency.NationalNumberPattern).MatchString(digitsStr) {
		return true
	}
	if !allowPrefix || m.EmergencyNumbersExact {
		return false
	}
	return metadata.PrefixMatch(m.Emergency.NationalNumberPattern).MatchString(digitsStr)
}

// IsCarrierSpecific reports whether n matches a carrier-specific
// descriptor in any region sharing its country code.
func IsCarrierSpecific(n *phonenumber.PhoneNumber) bool {
	if n == nil {
		return false
	}
	for _, region := range Default().RegionsForCountryCode(int(n.CountryCode)) {
		if IsCarrierSpecificForRegion(n, region) {
			return true
		}
	}
	return false
}

// IsCarrierSpecificForRegion restricts IsCarrierSpecific to region.
func IsCarrierSpecificForRegion(n *phonenumber.PhoneNumber, region string) bool {
	if n == nil {
		return false
	}
	m := Default().GetForRegion(region)
	if m == nil || m.CarrierSpecific.Empty() {
		return false
	}
	return metadata.FullMatch(m.CarrierSpecific.NationalNumberPattern).MatchString(n.NationalSignificantNumber())
}

// IsSmsServiceForRegion reports whether n matches region's SMS-service
// descriptor.
func IsSmsServiceForRegion(n *phonenumber.PhoneNumber, region string) bool {
	if n == nil {
		return false
	}
	m := Default().GetForRegion(region)
	if m == nil || m.SmsServices.Empty() {
		return false
	}
	return metadata.FullMatch(m.SmsServices.NationalNumberPattern).MatchString(n.NationalSignificantNumber())
}

// GetExampleShortNumber returns region's toll-free example short
// number, or "" when none is recorded.
func GetExampleShortNumber(region string) string {
	return GetExampleShortNumberForCost(region, Costs.TollFree)
}

// GetExampleShortNumberForCost returns region's example number for the
// named cost category, or "" when none is recorded. Any cost other
// than toll free, premium rate and standard rate (UnknownCost
// included) returns the emergency example.
func GetExampleShortNumberForCost(region string, cost Cost) string {
	m := Default().GetForRegion(region)
	if m == nil {
		return ""
	}
	switch cost {
	case Costs.TollFree:
		return exampleOf(m.TollFree)
	case Costs.PremiumRate:
		return exampleOf(m.PremiumRate)
	case Costs.StandardRate:
		return exampleOf(m.StandardRate)
	default:
		return exampleOf(m.Emergency)
	}
}

func exampleOf(d *Desc) string {
	if d == nil {
		return ""
	}
	return d.ExampleNumber
}
