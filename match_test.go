package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumberMatch(t *testing.T) {
	t.Parallel()

	type testcase struct {
		a, b interface{}
		want MatchType
	}

	for name, tc := range map[string]testcase{
		"exact match same number": {
			a:    "+1 650 253 0000",
			b:    "+16502530000",
			want: MatchTypes.ExactMatch,
		},
		"not a number string with no region signal": {
			a:    "+1 650 253 0000",
			b:    "650 253 0000",
			want: MatchTypes.NotANumber, // no "+" and no region to resolve against
		},
		"not a number": {
			a:    "not a phone number",
			b:    "+16502530000",
			want: MatchTypes.NotANumber,
		},
		"no match different numbers": {
			a:    "+1 650 253 0000",
			b:    "+1 650 253 0001",
			want: MatchTypes.NoMatch,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsNumberMatch(tc.a, tc.b))
		})
	}
}

func TestIsNumberMatchWithDefaultCountryDivergence(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// a's country code (64, NZ) is only a guess from defaultRegion: the
	// raw text carried no explicit country signal. b's is explicit (+1).
	// The two resolved country codes disagree, but since a's came from
	// FROM_DEFAULT_COUNTRY the mismatch is tolerated and the identical
	// national significant number still yields NSN_MATCH.
	a, err := ParseAndKeepRawInput("3316005", "NZ")
	assert.NoError(err)
	assert.Equal(CountryCodeSources.FromDefaultCountry, a.CountryCodeSource)

	b, err := ParseAndKeepRawInput("+1 3316005", "ZZ")
	assert.NoError(err)
	assert.Equal(CountryCodeSources.FromNumberWithPlusSign, b.CountryCodeSource)

	assert.NotEqual(a.CountryCode, b.CountryCode)
	assert.Equal(MatchTypes.NSNMatch, IsNumberMatch(a, b))
}
