package random

import (
	"crypto/rand"
	"math/big"
)

// AlphaNumLower is the alphabet used for entry ID suffixes
const AlphaNumLower = "abcdefghijklmnopqrstuvwxyz0123456789"

// Random provides random generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Suffix generates a random lowercase alphanumeric string of the
	// given length, suitable for ID suffixes
	Suffix(length int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failures are effectively impossible; degrade to 0
		return 0
	}
	return int(result.Int64())
}

// Suffix generates a random lowercase alphanumeric string of the given length
func (r *CryptoRandom) Suffix(length int) string {
	if length <= 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = AlphaNumLower[r.Intn(len(AlphaNumLower))]
	}
	return string(out)
}
