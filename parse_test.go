package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarios(t *testing.T) {
	t.Parallel()

	type testcase struct {
		raw            string
		defaultRegion  string
		countryCode    uint32
		nationalNumber uint64
		italianZero    bool
	}

	for name, tc := range map[string]testcase{
		"S1 us fixed or mobile": {
			raw:            "+1 650 253 0000",
			defaultRegion:  "ZZ",
			countryCode:    1,
			nationalNumber: 6502530000,
		},
		"S2 nz national prefix stripped": {
			raw:            "03 331 6005",
			defaultRegion:  "NZ",
			countryCode:    64,
			nationalNumber: 33316005,
		},
		"S3 italy leading zero": {
			raw:            "02 36618 300",
			defaultRegion:  "IT",
			countryCode:    39,
			nationalNumber: 236618300,
			italianZero:    true,
		},
		"S4 argentina mobile international": {
			raw:            "+54 9 343 555 1212",
			defaultRegion:  "ZZ",
			countryCode:    54,
			nationalNumber: 93435551212,
		},
		"S5 gb international": {
			raw:            "+44 20 8765 4321",
			defaultRegion:  "ZZ",
			countryCode:    44,
			nationalNumber: 2087654321,
		},
		"S5 gb domestic": {
			raw:            "020 8765 4321",
			defaultRegion:  "GB",
			countryCode:    44,
			nationalNumber: 2087654321,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tc.raw, tc.defaultRegion)
			require.NoError(t, err)
			assert.Equal(t, tc.countryCode, n.CountryCode)
			assert.Equal(t, tc.nationalNumber, n.NationalNumber)
			assert.Equal(t, tc.italianZero, n.ItalianLeadingZero)
		})
	}
}

func TestParseFullWidthPlus(t *testing.T) {
	t.Parallel()
	n, err := Parse("＋1 650 253 0000", "ZZ")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n.CountryCode)
	assert.EqualValues(t, 6502530000, n.NationalNumber)
}

func TestParseAndKeepRawInputCarriesSource(t *testing.T) {
	t.Parallel()
	n, err := ParseAndKeepRawInput("+1 650 253 0000", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, CountryCodeSources.FromNumberWithPlusSign, n.CountryCodeSource)
	assert.Equal(t, "+1 650 253 0000", n.RawInput)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	type testcase struct {
		raw           string
		defaultRegion string
		code          ParseErrorCode
	}

	for name, tc := range map[string]testcase{
		"not a number": {
			raw:           "hello",
			defaultRegion: "US",
			code:          ParseErrorCodes.NotANumber,
		},
		"unknown default region and no plus": {
			raw:           "650 253 0000",
			defaultRegion: "ZZ",
			code:          ParseErrorCodes.InvalidCountryCode,
		},
		"unknown country code after plus": {
			raw:           "+999 1234",
			defaultRegion: "ZZ",
			code:          ParseErrorCodes.InvalidCountryCode,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.raw, tc.defaultRegion)
			require.Error(t, err)
			pe, ok := AsParseError(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, pe.Code)
		})
	}
}

func TestTooLongRawInput(t *testing.T) {
	t.Parallel()
	huge := make([]byte, 300)
	for i := range huge {
		huge[i] = '1'
	}
	_, err := Parse(string(huge), "US")
	require.Error(t, err)
	pe, ok := AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, ParseErrorCodes.TooLong, pe.Code)
}
