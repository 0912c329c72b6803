package shortnumber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab/phonenumber"
	"github.com/xlab/phonenumber/shortnumber"
)

func TestConnectsToEmergencyNumber(t *testing.T) {
	t.Parallel()

	type testcase struct {
		raw    string
		region string
		want   bool
	}

	for name, tc := range map[string]testcase{
		"us exact 911":           {raw: "911", region: "US", want: true},
		"us prefix tolerant":     {raw: "9111", region: "US", want: true},
		"us unrelated":           {raw: "123", region: "US", want: false},
		"br exact only":          {raw: "190", region: "BR", want: true},
		"br prefix rejected":     {raw: "1900", region: "BR", want: false},
		"rejects leading plus":   {raw: "+911", region: "US", want: false},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, shortnumber.ConnectsToEmergencyNumber(tc.raw, tc.region))
		})
	}
}

func TestIsEmergencyNumberNoPrefixTolerance(t *testing.T) {
	t.Parallel()
	assert.True(t, shortnumber.IsEmergencyNumber("911", "US"))
	assert.False(t, shortnumber.IsEmergencyNumber("9111", "US"))
}

func TestGetExpectedCost(t *testing.T) {
	t.Parallel()
	n := phonenumber.NewBuilder().SetCountryCode(1).SetNationalNumber(611).Build()
	require.NotNil(t, n)
	assert.Equal(t, shortnumber.Costs.TollFree, shortnumber.GetExpectedCost(n))
}

func TestIsPossibleShortNumberForRegion(t *testing.T) {
	t.Parallel()
	n := phonenumber.NewBuilder().SetCountryCode(1).SetNationalNumber(911).Build()
	assert.True(t, shortnumber.IsPossibleShortNumberForRegion(n, "US"))
}
