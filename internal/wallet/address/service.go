package address

import (
	"context"

	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/pkg/errors"
)

const (
	minSeedLength = 16
	maxSeedLength = 64
)

type service struct{}

// NewService creates a new AddressService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() Service {
	return &service{}
}

// DeriveAddress derives the account at index for the given chain
func (s *service) DeriveAddress(ctx context.Context, seed []byte, chainID chain.ID, index uint32) (*DerivedAccount, error) {
	path, err := s.GetBIP44Path(chainID, index)
	if err != nil {
		return nil, &DerivationError{Chain: chainID, Err: err}
	}

	var account *DerivedAccount
	switch chainID {
	case chain.Solana:
		account, err = s.deriveSolana(ctx, seed, path)
	case chain.Ethereum:
		account, err = s.deriveEthereum(ctx, seed, path)
	default:
		err = errors.Wrapf(chain.ErrUnknownChain, "%q", string(chainID))
	}
	if err != nil {
		return nil, &DerivationError{Chain: chainID, Path: path, Err: err}
	}

	account.Index = index
	return account, nil
}

// DerivePrivateKey derives the raw key material at path
// WARNING: Caller must clear the private key after use
func (s *service) DerivePrivateKey(_ context.Context, seed []byte, chainID chain.ID, path string) ([]byte, error) {
	var (
		key []byte
		err error
	)

	switch chainID {
	case chain.Solana:
		key, err = deriveEd25519Seed(seed, path)
	case chain.Ethereum:
		key, err = deriveSecp256k1Key(seed, path)
	default:
		err = errors.Wrapf(chain.ErrUnknownChain, "%q", string(chainID))
	}
	if err != nil {
		return nil, &DerivationError{Chain: chainID, Path: path, Err: err}
	}

	return key, nil
}

// GetBIP44Path gets the canonical BIP44 path of the chain for index
func (s *service) GetBIP44Path(chainID chain.ID, index uint32) (string, error) {
	return PathFor(chainID, index)
}

func checkSeed(seed []byte) error {
	if len(seed) < minSeedLength || len(seed) > maxSeedLength {
		return errors.Errorf("seed must be %d to %d bytes, got %d", minSeedLength, maxSeedLength, len(seed))
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
