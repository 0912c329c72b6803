package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	type testcase struct {
		in   string
		want string
	}

	for name, tc := range map[string]testcase{
		"plain digits":      {in: "6502530000", want: "6502530000"},
		"punctuated":        {in: "(650) 253-0000", want: "6502530000"},
		"full width digits": {in: "６５０", want: "650"},
		"vanity number":     {in: "1-800-FLOWERS", want: "18003569377"},
		"full width plus":   {in: "＋1 650 253 0000", want: "16502530000"},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestIsViablePhoneNumber(t *testing.T) {
	t.Parallel()
	assert.True(t, IsViablePhoneNumber("+1 650 253 0000"))
	assert.True(t, IsViablePhoneNumber("650-253-0000"))
	assert.False(t, IsViablePhoneNumber("hello"))
	assert.False(t, IsViablePhoneNumber("12"))
}

func TestSplitExtension(t *testing.T) {
	t.Parallel()

	type testcase struct {
		in       string
		wantBody string
		wantExt  string
	}

	for name, tc := range map[string]testcase{
		"ext dot": {
			in:       "650 253 0000 ext. 123",
			wantBody: "650 253 0000",
			wantExt:  "123",
		},
		"x marker": {
			in:       "650 253 0000 x123",
			wantBody: "650 253 0000",
			wantExt:  "123",
		},
		"no extension": {
			in:       "650 253 0000",
			wantBody: "650 253 0000",
			wantExt:  "",
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			body, ext := SplitExtension(tc.in)
			assert.Equal(t, tc.wantBody, body)
			assert.Equal(t, tc.wantExt, ext)
		})
	}
}

func TestExtractPossibleNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "+1 650 253 0000 please", ExtractPossibleNumber("call me at +1 650 253 0000 please"))
}
