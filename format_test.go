package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatE164AndNational(t *testing.T) {
	t.Parallel()

	type testcase struct {
		raw           string
		defaultRegion string
		e164          string
		national      string
	}

	for name, tc := range map[string]testcase{
		"us": {
			raw:           "+1 650 253 0000",
			defaultRegion: "ZZ",
			e164:          "+16502530000",
			national:      "650 253 0000",
		},
		"italy leading zero": {
			raw:           "02 36618 300",
			defaultRegion: "IT",
			e164:          "+390236618300",
		},
		"argentina mobile": {
			raw:           "+54 9 343 555 1212",
			defaultRegion: "ZZ",
			e164:          "+5493435551212",
			national:      "0343 15 555 1212",
		},
		"gb fixed line": {
			raw:           "+44 20 8765 4321",
			defaultRegion: "ZZ",
			e164:          "+442087654321",
			national:      "(020) 8765 4321",
		},
		"new zealand": {
			raw:           "03 331 6005",
			defaultRegion: "NZ",
			e164:          "+6433316005",
			national:      "03 331 6005",
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tc.raw, tc.defaultRegion)
			require.NoError(t, err)
			assert.Equal(t, tc.e164, Format(n, Formats.E164))
			if tc.national != "" {
				assert.Equal(t, tc.national, Format(n, Formats.National))
			}
		})
	}
}

func TestFormatRFC3966(t *testing.T) {
	t.Parallel()
	n, err := Parse("+1 650 253 0000", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "+1-650-253-0000", Format(n, Formats.RFC3966))
}

func TestFormatInternational(t *testing.T) {
	t.Parallel()
	n, err := Parse("020 8765 4321", "GB")
	require.NoError(t, err)
	assert.Equal(t, "+44 20 8765 4321", Format(n, Formats.International))
}

func TestFormatOutOfCountryCallingNumber(t *testing.T) {
	t.Parallel()
	n, err := Parse("+44 20 8765 4321", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "00 44 20 8765 4321", FormatOutOfCountryCallingNumber(n, "DE"))
}

func TestFormatNumberForMobileDialing(t *testing.T) {
	t.Parallel()
	n, err := Parse("+44 7400 123456", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "+447400123456", FormatNumberForMobileDialing(n, "DE", false))
}

func TestFormatOutOfCountryKeepingAlphaChars(t *testing.T) {
	t.Parallel()
	n, err := ParseAndKeepRawInput("1-800-FLOWERS", "US")
	require.NoError(t, err)
	assert.Equal(t, "00 1 800 FLO WERS", FormatOutOfCountryKeepingAlphaChars(n, "DE"))
}

func TestFormatOutOfCountryKeepingAlphaCharsWithoutRawInput(t *testing.T) {
	t.Parallel()
	n, err := Parse("1-800-FLOWERS", "US")
	require.NoError(t, err)
	assert.Equal(t, FormatOutOfCountryCallingNumber(n, "DE"), FormatOutOfCountryKeepingAlphaChars(n, "DE"))
}

func TestFormatUsesRegionPreferredExtnPrefix(t *testing.T) {
	t.Parallel()
	n := NewBuilder().SetCountryCode(61).SetNationalNumber(212345678).SetExtension("123").Build()
	assert.Equal(t, "02 1234 5678 x123", Format(n, Formats.National))

	gb := NewBuilder().SetCountryCode(44).SetNationalNumber(2087654321).SetExtension("456").Build()
	assert.Equal(t, "(020) 8765 4321 ext. 456", Format(gb, Formats.National))
}

func TestFormatOutOfCountryCallingNumberUsesViewpointExtnPrefix(t *testing.T) {
	t.Parallel()
	n := NewBuilder().SetCountryCode(44).SetNationalNumber(2087654321).SetExtension("456").Build()
	assert.Equal(t, "0011 44 20 8765 4321 x456", FormatOutOfCountryCallingNumber(n, "AU"))
}
