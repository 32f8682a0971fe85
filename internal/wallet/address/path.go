package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/pkg/errors"
)

// HardenedOffset marks a hardened BIP32 child index.
const HardenedOffset uint32 = 0x80000000

const bip44Purpose = 44

// PathFor returns the canonical path for the account at index.
//
//	solana:   m/44'/501'/{index}'/0'
//	ethereum: m/44'/60'/0'/0/{index}
func PathFor(chainID chain.ID, index uint32) (string, error) {
	if index >= HardenedOffset {
		return "", errors.Errorf("derivation index %d out of range", index)
	}

	info, err := chainID.Info()
	if err != nil {
		return "", err
	}

	switch chainID {
	case chain.Solana:
		return fmt.Sprintf("m/%d'/%d'/%d'/0'", bip44Purpose, info.CoinType, index), nil
	case chain.Ethereum:
		return fmt.Sprintf("m/%d'/%d'/0'/0/%d", bip44Purpose, info.CoinType, index), nil
	}

	return "", errors.Wrapf(chain.ErrUnknownChain, "%q", string(chainID))
}

// ParsePath parses a BIP44 path string into child indices.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[0] != "m" {
		return nil, errors.Errorf("invalid BIP44 path: %q", path)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		hardened := strings.HasSuffix(segment, "'")
		segment = strings.TrimSuffix(segment, "'")

		index, err := strconv.ParseUint(segment, 10, 31)
		if err != nil {
			return nil, errors.Errorf("invalid path segment %q in %q", segment, path)
		}

		if hardened {
			index += uint64(HardenedOffset)
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}

func allHardened(indices []uint32) bool {
	for _, index := range indices {
		if index < HardenedOffset {
			return false
		}
	}
	return true
}
