package utils

import (
	"crypto/rand"
	"math/big"
)

// codeDigits is the fixed length of verification and reset codes.
const codeDigits = 6

var ten = big.NewInt(10)

// NewVerificationCode returns a 6-digit numeric one-time code.  Each digit
// is drawn independently and uniformly from 0-9, so leading zeros are as
// likely as any other digit and are preserved in the string form.  The
// code is handed to the caller and never stored here.
func NewVerificationCode() (string, error) {
	buf := make([]byte, 0, codeDigits)
	for i := 0; i < codeDigits; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf = append(buf, byte('0'+n.Int64()))
	}
	return string(buf), nil
}
