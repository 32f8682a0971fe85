package seed

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// GenerateMnemonic creates a new BIP-39 mnemonic from entropyBits of fresh entropy.
// entropyBits must be a multiple of 32 within [128, 256].
func GenerateMnemonic(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate mnemonic")
	}

	return mnemonic, nil
}

// ValidateMnemonic checks word count, wordlist membership and checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// NormalizeMnemonic collapses surrounding and repeated whitespace and lowercases the words.
func NormalizeMnemonic(mnemonic string) string {
	return strings.ToLower(strings.Join(strings.Fields(mnemonic), " "))
}

// DeriveSeed derives the 64 byte BIP-39 seed of mnemonic with an empty passphrase.
// The same mnemonic always yields the same seed.
func DeriveSeed(mnemonic string) ([]byte, error) {
	return DeriveSeedWithPassphrase(mnemonic, "")
}

// DeriveSeedWithPassphrase derives the BIP-39 seed salted with passphrase
// (PBKDF2-HMAC-SHA512, 2048 rounds).
func DeriveSeedWithPassphrase(mnemonic string, passphrase string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidMnemonic, err.Error())
	}

	return seed, nil
}
