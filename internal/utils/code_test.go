package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestNewVerificationCodeShape(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}

// Every digit position should take every value eventually; in particular
// a leading zero must be possible (it would be lost by an integer-based
// implementation).
func TestNewVerificationCodeCoversAllDigits(t *testing.T) {
	seen := [codeDigits][10]bool{}
	for i := 0; i < 3000; i++ {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, codeDigits)
		for pos, ch := range []byte(code) {
			require.GreaterOrEqual(t, ch, byte('0'))
			require.LessOrEqual(t, ch, byte('9'))
			seen[pos][ch-'0'] = true
		}
	}
	for pos := range seen {
		for d, ok := range seen[pos] {
			assert.True(t, ok, "digit %d never appeared at position %d", d, pos)
		}
	}
}

func TestHashResetCodeIsStable(t *testing.T) {
	a := HashResetCode("123456")
	b := HashResetCode("123456")
	c := HashResetCode("654321")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded SHA-256
}
