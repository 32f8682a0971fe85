package keystore

import "github.com/pkg/errors"

const (
	version    = 3
	cipherName = "aes-128-ctr"
	kdfName    = "scrypt"
)

var (
	// ErrKeystoreExists is returned when creating a keystore over an existing file.
	ErrKeystoreExists = errors.New("keystore already exists")
	// ErrKeystoreNotFound is returned when no keystore file exists at the path.
	ErrKeystoreNotFound = errors.New("keystore not found")
	// ErrInvalidPassword is returned on MAC mismatch.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrUnsupportedKeystore is returned for keystores using another cipher, KDF or version.
	ErrUnsupportedKeystore = errors.New("unsupported keystore")
)

// KeystoreJSON represents the Ethereum keystore v3 JSON structure
//
//nolint:revive // KeystoreJSON is the standard name for Ethereum keystore JSON structure
type KeystoreJSON struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// ScryptParams defines scrypt KDF parameters
type ScryptParams struct {
	DKLen int // Derived key length (32 bytes)
	N     int // CPU/memory cost parameter
	R     int // Block size parameter (8)
	P     int // Parallelization parameter
}

// DefaultScryptParams returns default scrypt parameters for Ethereum keystore v3
func DefaultScryptParams() ScryptParams {
	return ScryptParams{
		DKLen: 32,
		N:     1 << 18,
		R:     8,
		P:     1,
	}
}

// LightScryptParams trades security for speed (about 4MB of memory), for tests and throwaway wallets.
func LightScryptParams() ScryptParams {
	return ScryptParams{
		DKLen: 32,
		N:     1 << 12,
		R:     8,
		P:     6,
	}
}
