package address

import (
	"context"
	"fmt"

	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// ErrDerivationFailed is matched by every error returned from a failed derivation.
// Derivation is deterministic: retrying with the same input cannot succeed.
var ErrDerivationFailed = errors.New("derivation failed")

// DerivationError carries the chain and path a derivation failed for.
type DerivationError struct {
	Chain chain.ID
	Path  string
	Err   error
}

func (e *DerivationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s derivation failed: %v", e.Chain, e.Err)
	}
	return fmt.Sprintf("%s derivation failed at %s: %v", e.Chain, e.Path, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

func (e *DerivationError) Is(target error) bool {
	return target == ErrDerivationFailed //nolint:errorlint
}

// DerivedAccount is an address derived from a seed. It is immutable once created.
type DerivedAccount struct {
	Chain          chain.ID
	Index          uint32
	Address        string
	DerivationPath string

	// Keypair is the ed25519 secret key (seed || public key). Solana only, nil for Ethereum.
	Keypair solana.PrivateKey
}

// Service provides address derivation functionality
type Service interface {
	// DeriveAddress derives the account at index for the given chain. Pure, no I/O.
	DeriveAddress(ctx context.Context, seed []byte, chainID chain.ID, index uint32) (*DerivedAccount, error)

	// DerivePrivateKey derives the raw 32 byte key material at path
	// WARNING: Private key should be cleared after use
	DerivePrivateKey(ctx context.Context, seed []byte, chainID chain.ID, path string) ([]byte, error)

	// GetBIP44Path gets the canonical BIP44 path of the chain for index
	GetBIP44Path(chainID chain.ID, index uint32) (string, error)
}
