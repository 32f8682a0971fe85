package chain

import (
	"strings"

	"github.com/pkg/errors"
)

// ID selects one of the supported chains.
type ID string

const (
	Solana   ID = "solana"
	Ethereum ID = "ethereum"
)

// ErrUnknownChain is returned when a chain selector is not supported.
var ErrUnknownChain = errors.New("unknown chain")

// All lists the supported chains in display order.
func All() []ID {
	return []ID{Solana, Ethereum}
}

// Info describes the static properties of a chain.
type Info struct {
	ID ID
	// SLIP-44 registered coin type
	CoinType uint32
	// Decimals of the native unit (lamports per SOL, wei per ETH)
	Decimals int32
	Symbol   string
}

var infos = map[ID]Info{
	Solana:   {ID: Solana, CoinType: 501, Decimals: 9, Symbol: "SOL"},
	Ethereum: {ID: Ethereum, CoinType: 60, Decimals: 18, Symbol: "ETH"},
}

// Parse turns a case insensitive chain name (or its ticker) into an ID.
func Parse(s string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solana", "sol":
		return Solana, nil
	case "ethereum", "eth":
		return Ethereum, nil
	}

	return "", errors.Wrapf(ErrUnknownChain, "%q", s)
}

// Info returns the static properties of the chain.
func (id ID) Info() (Info, error) {
	info, ok := infos[id]
	if !ok {
		return Info{}, errors.Wrapf(ErrUnknownChain, "%q", string(id))
	}

	return info, nil
}

func (id ID) String() string {
	return string(id)
}
