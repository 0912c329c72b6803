package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetForRegion(t *testing.T) {
	t.Parallel()

	m := Default().GetForRegion("us")
	require.NotNil(t, m)
	assert.Equal(t, "US", m.ID)
	assert.Equal(t, 1, m.CountryCode)
}

func TestStoreUnknownRegion(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Default().GetForRegion("ZZ"))
}

func TestStoreGetForCountryCode(t *testing.T) {
	t.Parallel()
	m := Default().GetForCountryCode(1)
	require.NotNil(t, m)
	assert.Equal(t, "US", m.ID)

	regions := Default().RegionsForCountryCode(1)
	assert.ElementsMatch(t, []string{"US", "CA", "BS"}, regions)
}

func TestFullMatchAnchoring(t *testing.T) {
	t.Parallel()
	re := FullMatch(`\d{3}`)
	assert.True(t, re.MatchString("123"))
	assert.False(t, re.MatchString("1234"))
	assert.False(t, re.MatchString("12"))
}

func TestPrefixMatchAnchoring(t *testing.T) {
	t.Parallel()
	re := PrefixMatch(`\d{3}`)
	assert.True(t, re.MatchString("123"))
	assert.True(t, re.MatchString("12345"))
	assert.False(t, re.MatchString("a123"))
}

func TestPhoneNumberDescEmpty(t *testing.T) {
	t.Parallel()
	var d *PhoneNumberDesc
	assert.True(t, d.Empty())
	d = &PhoneNumberDesc{}
	assert.True(t, d.Empty())
	d = &PhoneNumberDesc{NationalNumberPattern: `\d{3}`}
	assert.False(t, d.Empty())
}

func TestTypedDescsOrder(t *testing.T) {
	t.Parallel()
	m := Default().GetForRegion("US")
	require.NotNil(t, m)
	descs := m.TypedDescs()
	assert.Equal(t, NumberTypes.PremiumRate, descs[0].Type)
	assert.Equal(t, NumberTypes.Mobile, descs[len(descs)-1].Type)
}
