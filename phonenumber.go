// Package phonenumber parses, validates, classifies, and formats
// international telephone numbers against the per-region numbering
// plans decoded by the metadata package. It plays the orchestration
// role the teacher's at package plays over pdu and sms: the types here
// are plain records, and every method is a synchronous, side-effect
// free function over a PhoneMetadata borrowed from the metadata store.
package phonenumber

import "fmt"

// CountryCodeSource tags how the country code of a parsed number was
// determined; it is only populated by ParseAndKeepRawInput.
type CountryCodeSource int

// CountryCodeSources are the four ways a country code can be derived
// from raw input text.
var CountryCodeSources = struct {
	FromNumberWithPlusSign  CountryCodeSource
	FromNumberWithIDD       CountryCodeSource
	FromNumberWithoutPlusSign CountryCodeSource
	FromDefaultCountry      CountryCodeSource
	Unspecified             CountryCodeSource
}{
	FromNumberWithPlusSign:    1,
	FromNumberWithIDD:         5,
	FromNumberWithoutPlusSign: 10,
	FromDefaultCountry:        20,
	Unspecified:               0,
}

// PhoneNumber is the structured representation of a telephone number.
// Two PhoneNumber values are Equal when their semantic fields
// (CountryCode, NationalNumber, Extension, ItalianLeadingZero,
// NumberOfLeadingZeros) agree; RawInput, CountryCodeSource, and
// PreferredDomesticCarrierCode are carried only by the raw-keeping
// parse variant and are ignored by Equal and by the match engine.
type PhoneNumber struct {
	CountryCode uint32
	// NationalNumber is the national significant number without its
	// conventional leading zeros, which are instead recorded by
	// ItalianLeadingZero/NumberOfLeadingZeros.
	NationalNumber uint64

	Extension string

	ItalianLeadingZero   bool
	NumberOfLeadingZeros int

	RawInput                     string
	CountryCodeSource            CountryCodeSource
	PreferredDomesticCarrierCode string
	hasPreferredDomesticCarrierCode bool
}

// HasPreferredDomesticCarrierCode reports whether
// PreferredDomesticCarrierCode was actually captured during parsing,
// as distinct from being the empty string by default: per §9's Open
// Questions, an explicitly empty carrier code is a meaningful value
// (the user asked for none) and must be distinguishable from "not
// captured at all".
func (n *PhoneNumber) HasPreferredDomesticCarrierCode() bool {
	return n != nil && n.hasPreferredDomesticCarrierCode
}

// SetPreferredDomesticCarrierCode records code as captured, even when
// code is "".
func (n *PhoneNumber) SetPreferredDomesticCarrierCode(code string) {
	n.PreferredDomesticCarrierCode = code
	n.hasPreferredDomesticCarrierCode = true
}

// Equal reports whether n and other agree on every semantic field (§3
// invariant: equality is field-wise over the fields marked †). A nil
// receiver or argument is equal only to another nil.
func (n *PhoneNumber) Equal(other *PhoneNumber) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.CountryCode == other.CountryCode &&
		n.NationalNumber == other.NationalNumber &&
		n.Extension == other.Extension &&
		n.ItalianLeadingZero == other.ItalianLeadingZero &&
		n.effectiveLeadingZeros() == other.effectiveLeadingZeros()
}

// effectiveLeadingZeros implements invariant I2: when
// ItalianLeadingZero is false, the count is always treated as 0
// regardless of what NumberOfLeadingZeros happens to hold.
func (n *PhoneNumber) effectiveLeadingZeros() int {
	if !n.ItalianLeadingZero {
		return 0
	}
	if n.NumberOfLeadingZeros <= 0 {
		return 1
	}
	return n.NumberOfLeadingZeros
}

// NationalSignificantNumber renders the decimal form of
// NationalNumber with its conventional leading zeros restored, per
// §4.5.
func (n *PhoneNumber) NationalSignificantNumber() string {
	digits := fmt.Sprintf("%d", n.NationalNumber)
	zeros := n.effectiveLeadingZeros()
	if zeros == 0 {
		return digits
	}
	b := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		b = append(b, '0')
	}
	return string(b) + digits
}

// Builder assembles a PhoneNumber incrementally during parsing. It
// mirrors the teacher's use of plain field assignment over generated
// builder methods (§9's "Source patterns requiring re-architecture"):
// a thin wrapper, not a fluent generated type.
type Builder struct {
	n PhoneNumber
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) SetCountryCode(cc uint32) *Builder { b.n.CountryCode = cc; return b }
func (b *Builder) SetNationalNumber(nn uint64) *Builder { b.n.NationalNumber = nn; return b }
func (b *Builder) SetExtension(ext string) *Builder { b.n.Extension = ext; return b }
func (b *Builder) SetItalianLeadingZero(v bool) *Builder { b.n.ItalianLeadingZero = v; return b }
func (b *Builder) SetNumberOfLeadingZeros(v int) *Builder { b.n.NumberOfLeadingZeros = v; return b }
func (b *Builder) SetRawInput(s string) *Builder { b.n.RawInput = s; return b }
func (b *Builder) SetCountryCodeSource(s CountryCodeSource) *Builder {
	b.n.CountryCodeSource = s
	return b
}
func (b *Builder) SetPreferredDomesticCarrierCode(code string) *Builder {
	b.n.SetPreferredDomesticCarrierCode(code)
	return b
}

// Build returns the assembled PhoneNumber.
func (b *Builder) Build() *PhoneNumber {
	n := b.n
	return &n
}
