// Package registry keeps the accounts derived during a session, per chain, in generation order.
package registry

import (
	"sync"

	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/pkg/errors"
)

// ErrIndexMismatch is returned by Append when the account was derived for another index
// than the next free one.
var ErrIndexMismatch = errors.New("account index does not match next free index")

// Registry holds accounts for indices 0..n-1 per chain, contiguously.
type Registry struct {
	mu       sync.RWMutex
	accounts map[chain.ID][]*address.DerivedAccount
}

func New() *Registry {
	return &Registry{
		accounts: make(map[chain.ID][]*address.DerivedAccount),
	}
}

// NextIndex returns the index the next account of chainID will be assigned.
func (r *Registry) NextIndex(chainID chain.ID) uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return uint32(len(r.accounts[chainID])) //nolint:gosec
}

// Append stores the account under the next free index of its chain and returns that index.
// The account must have been derived for exactly that index.
func (r *Registry) Append(account *address.DerivedAccount) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := uint32(len(r.accounts[account.Chain])) //nolint:gosec
	if account.Index != next {
		return 0, errors.Wrapf(ErrIndexMismatch, "%s: got %d, want %d", account.Chain, account.Index, next)
	}

	r.accounts[account.Chain] = append(r.accounts[account.Chain], account)
	return next, nil
}

// ListFor returns the accounts of chainID in generation order.
func (r *Registry) ListFor(chainID chain.ID) []*address.DerivedAccount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*address.DerivedAccount, len(r.accounts[chainID]))
	copy(list, r.accounts[chainID])
	return list
}

// Lookup finds the account with the given address across all chains.
func (r *Registry) Lookup(addr string) (*address.DerivedAccount, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, accounts := range r.accounts {
		for _, account := range accounts {
			if account.Address == addr {
				return account, true
			}
		}
	}

	return nil, false
}

// Reset drops the accounts of every chain.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[chain.ID][]*address.DerivedAccount)
}
