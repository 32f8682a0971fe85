// Package session holds the mutable wallet state of a running process: the loaded
// mnemonic and its seed, the accounts derived from it and their last known balances.
package session

import (
	"context"
	"sync"

	"github.com/cryptowall/go-wallet/internal/metrics"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/balance"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/cryptowall/go-wallet/internal/wallet/registry"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	originGenerated = "generated"
	originImported  = "imported"
)

var (
	// ErrNoMnemonic is returned when accounts are requested before a mnemonic was generated or imported.
	ErrNoMnemonic = errors.New("no mnemonic loaded")
	// ErrUnknownAccount is returned for addresses that were not derived in this session.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrNoFetcher is returned when no balance fetcher is registered for a chain.
	ErrNoFetcher = errors.New("no balance fetcher for chain")
)

// Controller is the single owner of the session state. All methods are safe for concurrent use.
type Controller struct {
	entropyBits int
	seeds       seed.Manager
	addresses   address.Service
	registry    *registry.Registry
	balances    *balance.Table
	fetchers    map[chain.ID]rpc.BalanceFetcher
	metrics     *metrics.Service

	// mu serializes mnemonic changes and account generation, so a generated
	// account always belongs to the mnemonic that was loaded when it was requested.
	mu       sync.Mutex
	mnemonic string
}

type Options struct {
	EntropyBits int
	Seeds       seed.Manager
	Addresses   address.Service
	Balances    *balance.Table
	Fetchers    map[chain.ID]rpc.BalanceFetcher
	// Metrics is optional
	Metrics *metrics.Service
}

func New(opts Options) *Controller {
	entropyBits := opts.EntropyBits
	if entropyBits == 0 {
		entropyBits = seed.EntropyBits12Words
	}

	fetchers := make(map[chain.ID]rpc.BalanceFetcher, len(opts.Fetchers))
	for id, f := range opts.Fetchers {
		fetchers[id] = f
	}

	return &Controller{
		entropyBits: entropyBits,
		seeds:       opts.Seeds,
		addresses:   opts.Addresses,
		registry:    registry.New(),
		balances:    opts.Balances,
		fetchers:    fetchers,
		metrics:     opts.Metrics,
	}
}

// NewMnemonic generates a fresh mnemonic, loads its seed and drops every account derived so far.
func (c *Controller) NewMnemonic(ctx context.Context) (string, error) {
	mnemonic, err := seed.GenerateMnemonic(c.entropyBits)
	if err != nil {
		return "", err
	}

	if err := c.load(ctx, mnemonic, originGenerated); err != nil {
		return "", err
	}

	return mnemonic, nil
}

// Import loads an existing mnemonic. Invalid phrases fail with seed.ErrInvalidMnemonic
// and leave the current session untouched.
func (c *Controller) Import(ctx context.Context, mnemonic string) error {
	return c.load(ctx, seed.NormalizeMnemonic(mnemonic), originImported)
}

func (c *Controller) load(ctx context.Context, mnemonic string, origin string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.seeds.Initialize(mnemonic, ""); err != nil {
		return err
	}

	c.mnemonic = mnemonic
	c.registry.Reset()
	c.metrics.MnemonicLoaded(origin)

	util.LogFromContext(ctx).Info().Str("origin", origin).Msg("Loaded mnemonic, accounts reset")

	return nil
}

// Mnemonic returns the loaded mnemonic, empty if none.
func (c *Controller) Mnemonic() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mnemonic
}

func (c *Controller) HasSeed() bool {
	return c.seeds.IsInitialized()
}

// GenerateAccount derives the account at the next free index of chainID and registers it.
// A failed derivation leaves the registry unchanged.
func (c *Controller) GenerateAccount(ctx context.Context, chainID chain.ID) (*address.DerivedAccount, error) {
	if _, err := chainID.Info(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.seeds.GetSeed()
	if s == nil {
		return nil, ErrNoMnemonic
	}
	defer zero(s)

	index := c.registry.NextIndex(chainID)
	account, err := c.addresses.DeriveAddress(ctx, s, chainID, index)
	if err != nil {
		return nil, err
	}

	if _, err := c.registry.Append(account); err != nil {
		return nil, err
	}
	c.metrics.AccountDerived(chainID.String())

	util.LogFromContext(ctx).Debug().
		Str("chain", chainID.String()).
		Uint32("index", index).
		Str("address", account.Address).
		Msg("Derived account")

	return account, nil
}

// Accounts lists the accounts of chainID in generation order.
func (c *Controller) Accounts(chainID chain.ID) ([]*address.DerivedAccount, error) {
	if _, err := chainID.Info(); err != nil {
		return nil, err
	}

	return c.registry.ListFor(chainID), nil
}

// RefreshBalance fetches the balance of a session account once and records the outcome.
// A failure is recorded for addr only, its last known balance is kept.
func (c *Controller) RefreshBalance(ctx context.Context, addr string) (balance.Record, error) {
	account, ok := c.registry.Lookup(addr)
	if !ok {
		return balance.Record{}, errors.Wrapf(ErrUnknownAccount, "%q", addr)
	}

	return c.refresh(ctx, account)
}

// RefreshBalances refreshes every account of chainID concurrently.
// Each account's outcome is recorded independently, the first error is returned.
func (c *Controller) RefreshBalances(ctx context.Context, chainID chain.ID) error {
	accounts, err := c.Accounts(chainID)
	if err != nil {
		return err
	}

	eg := &errgroup.Group{}
	for i := range accounts {
		account := accounts[i]
		eg.Go(func() error {
			_, err := c.refresh(ctx, account)
			return err
		})
	}

	return eg.Wait()
}

func (c *Controller) refresh(ctx context.Context, account *address.DerivedAccount) (balance.Record, error) {
	fetcher, ok := c.fetchers[account.Chain]
	if !ok {
		return balance.Record{}, errors.Wrapf(ErrNoFetcher, "%s", account.Chain)
	}

	c.balances.MarkPending(account.Address, account.Chain)

	raw, err := fetcher.FetchBalance(ctx, account.Address)
	if err == nil {
		var record balance.Record
		record, err = c.balances.Set(account.Address, account.Chain, raw)
		if err == nil {
			c.metrics.BalanceRefreshed(account.Chain.String(), nil)
			return record, nil
		}
	}

	util.LogFromContext(ctx).Warn().Err(err).
		Str("chain", account.Chain.String()).
		Str("address", account.Address).
		Msg("Failed to refresh balance")

	c.metrics.BalanceRefreshed(account.Chain.String(), err)
	return c.balances.MarkFailed(account.Address, account.Chain, err), err
}

// Balance returns the last known balance record of addr.
func (c *Controller) Balance(addr string) (balance.Record, bool) {
	return c.balances.Get(addr)
}

// Balances returns every balance record ordered by address.
func (c *Controller) Balances() []balance.Record {
	return c.balances.All()
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
