package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab/phonenumber/metadata"
)

func TestIsPossibleNumberWithReason(t *testing.T) {
	t.Parallel()

	type testcase struct {
		raw           string
		defaultRegion string
		reason        PossibilityReason
	}

	for name, tc := range map[string]testcase{
		"us possible": {
			raw:           "+1 650 253 0000",
			defaultRegion: "ZZ",
			reason:        PossibilityReasons.IsPossible,
		},
		"us too short": {
			raw:           "+1 650",
			defaultRegion: "ZZ",
			reason:        PossibilityReasons.TooShort,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tc.raw, tc.defaultRegion)
			require.NoError(t, err)
			assert.Equal(t, tc.reason, IsPossibleNumberWithReason(n))
		})
	}
}

func TestGetNumberType(t *testing.T) {
	t.Parallel()

	type testcase struct {
		raw           string
		defaultRegion string
		typ           metadata.NumberType
	}

	for name, tc := range map[string]testcase{
		"us fixed or mobile": {
			raw:           "+1 650 253 0000",
			defaultRegion: "ZZ",
			typ:           metadata.NumberTypes.FixedLineOrMobile,
		},
		"italy fixed line": {
			raw:           "02 36618 300",
			defaultRegion: "IT",
			typ:           metadata.NumberTypes.FixedLine,
		},
		"gb mobile": {
			raw:           "+44 7400 123456",
			defaultRegion: "ZZ",
			typ:           metadata.NumberTypes.Mobile,
		},
		"gb toll free": {
			raw:           "+44 800 1234567",
			defaultRegion: "ZZ",
			typ:           metadata.NumberTypes.TollFree,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tc.raw, tc.defaultRegion)
			require.NoError(t, err)
			assert.Equal(t, tc.typ, GetNumberType(n))
		})
	}
}

func TestIsValidNumber(t *testing.T) {
	t.Parallel()
	valid, err := Parse("+1 650 253 0000", "ZZ")
	require.NoError(t, err)
	assert.True(t, IsValidNumber(valid))

	invalid, err := Parse("+1 555 123 4", "ZZ")
	require.NoError(t, err)
	assert.False(t, IsValidNumber(invalid))
}

func TestGetRegionCodeForNumber(t *testing.T) {
	t.Parallel()
	n, err := Parse("+1 650 253 0000", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "US", GetRegionCodeForNumber(n))
}

func TestIsNANPACountry(t *testing.T) {
	t.Parallel()
	assert.True(t, IsNANPACountry("US"))
	assert.True(t, IsNANPACountry("CA"))
	assert.False(t, IsNANPACountry("GB"))
}

func TestIsLeadingZeroPossible(t *testing.T) {
	t.Parallel()
	assert.True(t, IsLeadingZeroPossible("IT"))
	assert.False(t, IsLeadingZeroPossible("US"))
}

func TestGetNddPrefixForRegion(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0", GetNddPrefixForRegion("GB", false))
	assert.Equal(t, "1", GetNddPrefixForRegion("US", false))
}

func TestTruncateTooLongNumber(t *testing.T) {
	t.Parallel()
	n := NewBuilder().SetCountryCode(1).SetNationalNumber(65025300001).Build()
	ok := TruncateTooLongNumber(n)
	require.True(t, ok)
	assert.EqualValues(t, 6502530000, n.NationalNumber)
}

func TestGetExampleNumberForType(t *testing.T) {
	t.Parallel()
	n := GetExampleNumberForType("GB", metadata.NumberTypes.Mobile)
	require.NotNil(t, n)
	assert.EqualValues(t, 44, n.CountryCode)
	assert.True(t, IsValidNumber(n))
}

func TestIsAlphaNumber(t *testing.T) {
	t.Parallel()
	assert.True(t, IsAlphaNumber("1-800-FLOWERS"))
	assert.False(t, IsAlphaNumber("+1 650 253 0000"))
}
