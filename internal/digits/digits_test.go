package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLeadingZeros(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, CountLeadingZeros("123"))
	assert.Equal(t, 2, CountLeadingZeros("00123"))
	assert.Equal(t, 3, CountLeadingZeros("000"))
}

func TestStripLeadingZeros(t *testing.T) {
	t.Parallel()

	type testcase struct {
		in        string
		wantRest  string
		wantCount int
	}

	for name, tc := range map[string]testcase{
		"no zeros":    {in: "123", wantRest: "123", wantCount: 0},
		"some zeros":  {in: "00123", wantRest: "123", wantCount: 2},
		"all zeros":   {in: "000", wantRest: "0", wantCount: 2},
		"single zero": {in: "0", wantRest: "0", wantCount: 0},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rest, count := StripLeadingZeros(tc.in)
			assert.Equal(t, tc.wantRest, rest)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestIsASCIIDigits(t *testing.T) {
	t.Parallel()
	assert.True(t, IsASCIIDigits("12345"))
	assert.False(t, IsASCIIDigits(""))
	assert.False(t, IsASCIIDigits("12a45"))
}

func TestOnlyASCIIDigits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12345", OnlyASCIIDigits("1-2 3(4)5"))
}
