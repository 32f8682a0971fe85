package util

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/rs/zerolog/log"
)

// GenerateRandomBytes returns n securely generated random bytes.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}

	return b, nil
}

// GenerateRandomHexString returns a hex encoded string of n random bytes and panics if the system's
// secure random number generator fails.
func GenerateRandomHexString(n int) string {
	b, err := GenerateRandomBytes(n)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to generate random bytes")
	}

	return hex.EncodeToString(b)
}
