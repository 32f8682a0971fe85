package address

import (
	"context"
	"crypto/ed25519"

	"github.com/anyproto/go-slip10"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// deriveSolana derives an ed25519 keypair along a hardened SLIP-10 path.
// The address is the base58 encoded public key.
func (s *service) deriveSolana(_ context.Context, seed []byte, path string) (*DerivedAccount, error) {
	keySeed, err := deriveEd25519Seed(seed, path)
	if err != nil {
		return nil, err
	}
	defer zero(keySeed)

	keypair := solana.PrivateKey(ed25519.NewKeyFromSeed(keySeed))

	return &DerivedAccount{
		Chain:          chain.Solana,
		Address:        keypair.PublicKey().String(),
		DerivationPath: path,
		Keypair:        keypair,
	}, nil
}

// deriveEd25519Seed returns the 32 byte SLIP-10 key material at path.
// ed25519 only supports hardened derivation.
func deriveEd25519Seed(seed []byte, path string) ([]byte, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}

	indices, err := ParsePath(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse BIP44 path")
	}

	if !allHardened(indices) {
		return nil, errors.Errorf("ed25519 derivation requires a fully hardened path: %q", path)
	}

	node, err := slip10.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive SLIP-10 node")
	}

	_, privateKey := node.Keypair()

	return ed25519.PrivateKey(privateKey).Seed(), nil
}
