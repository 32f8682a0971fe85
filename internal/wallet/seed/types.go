package seed

import "github.com/pkg/errors"

// Size is the length of a BIP-39 seed in bytes (512 bits).
const Size = 64

const (
	// EntropyBits12Words yields a 12 word mnemonic.
	EntropyBits12Words = 128
	// EntropyBits24Words yields a 24 word mnemonic.
	EntropyBits24Words = 256
)

var (
	// ErrInvalidMnemonic is returned when a phrase violates the BIP-39 wordlist or checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrNotInitialized is returned when the seed is requested before a mnemonic was loaded.
	ErrNotInitialized = errors.New("seed not initialized")
)

// Manager provides seed management functionality
type Manager interface {
	// Initialize replaces the held seed with the one derived from mnemonic and passphrase
	Initialize(mnemonic string, passphrase string) error

	// GetSeed gets the seed (from memory)
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear clears the seed from memory
	Clear()
}
