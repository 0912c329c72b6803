// Package shortnumber classifies short codes — emergency numbers,
// carrier-specific codes, SMS short codes — against their own
// per-region metadata collection. It shares the normalize package,
// the phonenumber.PhoneNumber type and the metadata package's regex
// helpers with the main classifier, but none of its metadata tables;
// §4.8 describes it as "independent
// from the main classifier", so it is its own package rather than a
// file alongside classify.go, mirroring how the teacher keeps sms and
// pdu as separate packages from at even though all three cooperate.
package shortnumber

// Desc describes the short-code rules for one category (toll free,
// premium rate, emergency, ...) within a region.
type Desc struct {
	NationalNumberPattern string `json:"nationalNumberPattern,omitempty"`
	ExampleNumber         string `json:"exampleNumber,omitempty"`
}

// Empty reports whether d carries no pattern.
func (d *Desc) Empty() bool {
	return d == nil || d.NationalNumberPattern == ""
}

// Metadata is the decoded short-number record for one CLDR region.
type Metadata struct {
	ID          string `json:"id"`
	CountryCode int    `json:"countryCode"`

	// EmergencyNumbersExact disables prefix-match tolerance for this
	// region's emergency descriptor, per §4.8 ("BR, CL, NI").
	EmergencyNumbersExact bool `json:"emergencyNumbersExact,omitempty"`

	GeneralDesc     *Desc `json:"generalDesc,omitempty"`
	TollFree        *Desc `json:"tollFree,omitempty"`
	PremiumRate     *Desc `json:"premiumRate,omitempty"`
	StandardRate    *Desc `json:"standardRate,omitempty"`
	Emergency       *Desc `json:"emergency,omitempty"`
	ShortCode       *Desc `json:"shortCode,omitempty"`
	CarrierSpecific *Desc `json:"carrierSpecific,omitempty"`
	SmsServices     *Desc `json:"smsServices,omitempty"`
}

// Cost enumerates the outcomes of GetExpectedCost, per §4.8.
type Cost int

// Costs are the four expected-cost classifications, ordered from
// cheapest to most expensive in the sense used by the
// "highest cost wins" multi-region rule: TollFree < StandardRate <
// UnknownCost < PremiumRate.
var Costs = struct {
	TollFree     Cost
	StandardRate Cost
	UnknownCost  Cost
	PremiumRate  Cost
}{
	TollFree:     0,
	StandardRate: 1,
	UnknownCost:  2,
	PremiumRate:  3,
}

func (c Cost) String() string {
	switch c {
	case Costs.TollFree:
		return "TOLL_FREE"
	case Costs.StandardRate:
		return "STANDARD_RATE"
	case Costs.PremiumRate:
		return "PREMIUM_RATE"
	default:
		return "UNKNOWN_COST"
	}
}

// rank orders Cost values for the "return the highest cost" rule in
// GetExpectedCost when several regions share a country code.
func (c Cost) rank() int {
	switch c {
	case Costs.TollFree:
		return 0
	case Costs.StandardRate:
		return 1
	case Costs.UnknownCost:
		return 2
	case Costs.PremiumRate:
		return 3
	default:
		return 2
	}
}
