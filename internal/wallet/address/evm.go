package address

import (
	"context"
	"crypto/ecdsa"

	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// deriveEthereum derives an EIP-55 checksummed address from seed and BIP44 path
func (s *service) deriveEthereum(_ context.Context, seed []byte, path string) (*DerivedAccount, error) {
	privateKey, err := deriveSecp256k1Key(seed, path)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer zero(privateKey)

	// Convert to ECDSA private key
	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert to ECDSA private key")
	}

	publicKeyECDSA, ok := ecdsaPrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("failed to cast public key to ECDSA")
	}

	// Hex() applies the EIP-55 mixed case checksum
	address := crypto.PubkeyToAddress(*publicKeyECDSA)

	return &DerivedAccount{
		Chain:          chain.Ethereum,
		Address:        address.Hex(),
		DerivationPath: path,
	}, nil
}

// deriveSecp256k1Key walks a BIP32 path and returns the 32 byte private key
func deriveSecp256k1Key(seed []byte, path string) ([]byte, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}

	indices, err := ParsePath(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse BIP44 path")
	}

	// Create master key from seed
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	// Derive key step by step
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	privateKey := make([]byte, len(key.Key))
	copy(privateKey, key.Key)

	return privateKey, nil
}
