package redact

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const randomIDLength = 8

var randomIDAlphabet = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// RandomID produces a cryptographically unpredictable identifier of
// the form "<prefix>-XXXXXXXX" with 8 upper-case alphanumerics.
// crypto/rand failing means the platform entropy source is broken;
// that is not recoverable here, so it panics.
func RandomID(prefix string) string {
	max := big.NewInt(int64(len(randomIDAlphabet)))
	buf := make([]byte, randomIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
		}
		buf[i] = randomIDAlphabet[n.Int64()]
	}
	return prefix + "-" + string(buf)
}
