package phonenumber

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsYouTypeFormatterUS(t *testing.T) {
	t.Parallel()
	f := NewAsYouTypeFormatter("US")

	var out string
	for _, d := range "6502530000" {
		out = f.InputDigit(d)
	}
	assert.Equal(t, "650 253 0000", out)
}

func TestAsYouTypeFormatterNeverReordersDigits(t *testing.T) {
	t.Parallel()
	f := NewAsYouTypeFormatter("US")

	digits := "16502530000"
	var out string
	for _, d := range digits {
		out = f.InputDigit(d)
	}
	var onlyDigits strings.Builder
	for _, r := range out {
		if r >= '0' && r <= '9' {
			onlyDigits.WriteRune(r)
		}
	}
	assert.Equal(t, digits, onlyDigits.String())
}

func TestAsYouTypeFormatterRememberedPosition(t *testing.T) {
	t.Parallel()
	f := NewAsYouTypeFormatter("US")

	f.InputDigit('6')
	f.InputDigit('5')
	out := f.InputDigitAndRememberPosition('0')
	pos := f.GetRememberedPosition()
	require := assert.New(t)
	require.GreaterOrEqual(pos, 0)
	require.Less(pos, len(out))
	require.Equal(byte('0'), out[pos])
}

func TestAsYouTypeFormatterClear(t *testing.T) {
	t.Parallel()
	f := NewAsYouTypeFormatter("US")
	f.InputDigit('6')
	f.InputDigit('5')
	f.Clear()
	assert.Equal(t, -1, f.GetRememberedPosition())
	assert.Equal(t, "1", f.InputDigit('1'))
}

func TestAsYouTypeFormatterCountryCodeSwitch(t *testing.T) {
	t.Parallel()
	f := NewAsYouTypeFormatter("US")
	f.InputDigit('+')
	var out string
	for _, d := range "442087654321" {
		out = f.InputDigit(d)
	}
	assert.True(t, strings.HasPrefix(out, "+44 "))
}
