package session_test

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cryptowall/go-wallet/internal/test"
	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/balance"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/cryptowall/go-wallet/internal/wallet/session"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMnemonic       = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testEthereumIndex0 = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
)

type stubFetcher struct {
	mu       sync.Mutex
	balances map[string]*big.Int
	failing  map[string]error
	calls    int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		balances: make(map[string]*big.Int),
		failing:  make(map[string]error),
	}
}

func (f *stubFetcher) FetchBalance(_ context.Context, addr string) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if err, ok := f.failing[addr]; ok {
		return nil, err
	}
	if b, ok := f.balances[addr]; ok {
		return b, nil
	}
	return big.NewInt(0), nil
}

func newController(t *testing.T, fetchers map[chain.ID]rpc.BalanceFetcher) *session.Controller {
	t.Helper()

	return session.New(session.Options{
		Seeds:     seed.NewManager(),
		Addresses: address.NewService(),
		Balances:  balance.NewTable(time2.NewMockClock(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))),
		Fetchers:  fetchers,
	})
}

func TestGenerateAccountWithoutMnemonic(t *testing.T) {
	c := newController(t, nil)

	assert.False(t, c.HasSeed())
	_, err := c.GenerateAccount(t.Context(), chain.Solana)
	require.ErrorIs(t, err, session.ErrNoMnemonic)

	accounts, err := c.Accounts(chain.Solana)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestNewMnemonic(t *testing.T) {
	c := newController(t, nil)

	mnemonic, err := c.NewMnemonic(t.Context())
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 12)
	assert.True(t, seed.ValidateMnemonic(mnemonic))
	assert.Equal(t, mnemonic, c.Mnemonic())
	assert.True(t, c.HasSeed())
}

func TestImportInvalidKeepsSession(t *testing.T) {
	c := newController(t, nil)
	require.NoError(t, c.Import(t.Context(), testMnemonic))
	_, err := c.GenerateAccount(t.Context(), chain.Ethereum)
	require.NoError(t, err)

	err = c.Import(t.Context(), "abandon abandon abandon")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)

	assert.Equal(t, testMnemonic, c.Mnemonic())
	accounts, err := c.Accounts(chain.Ethereum)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestMonotonicIndexingPerChain(t *testing.T) {
	c := newController(t, nil)
	require.NoError(t, c.Import(t.Context(), "  Abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about "))

	for i := 0; i < 3; i++ {
		account, err := c.GenerateAccount(t.Context(), chain.Ethereum)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), account.Index)
	}

	sol, err := c.GenerateAccount(t.Context(), chain.Solana)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), sol.Index)
	assert.Equal(t, "m/44'/501'/0'/0'", sol.DerivationPath)

	eth, err := c.Accounts(chain.Ethereum)
	require.NoError(t, err)
	require.Len(t, eth, 3)
	assert.Equal(t, testEthereumIndex0, eth[0].Address)
	assert.Equal(t, "m/44'/60'/0'/0/2", eth[2].DerivationPath)
}

func TestConcurrentGenerateAccount(t *testing.T) {
	c := newController(t, nil)
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GenerateAccount(context.Background(), chain.Solana)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	accounts, err := c.Accounts(chain.Solana)
	require.NoError(t, err)
	require.Len(t, accounts, 8)
	for i, account := range accounts {
		assert.Equal(t, uint32(i), account.Index)
	}
}

func TestResetOnNewMnemonic(t *testing.T) {
	c := newController(t, nil)
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	_, err := c.GenerateAccount(t.Context(), chain.Ethereum)
	require.NoError(t, err)
	_, err = c.GenerateAccount(t.Context(), chain.Solana)
	require.NoError(t, err)

	_, err = c.NewMnemonic(t.Context())
	require.NoError(t, err)

	for _, id := range chain.All() {
		accounts, err := c.Accounts(id)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	}

	account, err := c.GenerateAccount(t.Context(), chain.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), account.Index)
	assert.NotEqual(t, testEthereumIndex0, account.Address)
}

func TestUnknownChain(t *testing.T) {
	c := newController(t, nil)
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	_, err := c.GenerateAccount(t.Context(), chain.ID("bitcoin"))
	require.ErrorIs(t, err, chain.ErrUnknownChain)

	_, err = c.Accounts(chain.ID("bitcoin"))
	require.ErrorIs(t, err, chain.ErrUnknownChain)
}

func TestRefreshBalanceUnknownAccount(t *testing.T) {
	c := newController(t, nil)

	_, err := c.RefreshBalance(t.Context(), testEthereumIndex0)
	require.ErrorIs(t, err, session.ErrUnknownAccount)
}

func TestRefreshBalanceIndependence(t *testing.T) {
	fetcher := newStubFetcher()
	c := newController(t, map[chain.ID]rpc.BalanceFetcher{chain.Ethereum: fetcher})
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	a, err := c.GenerateAccount(t.Context(), chain.Ethereum)
	require.NoError(t, err)
	b, err := c.GenerateAccount(t.Context(), chain.Ethereum)
	require.NoError(t, err)

	wei, _ := new(big.Int).SetString("2500000000000000000", 10)
	fetcher.balances[a.Address] = wei
	fetcher.balances[b.Address] = big.NewInt(1)

	record, err := c.RefreshBalance(t.Context(), a.Address)
	require.NoError(t, err)
	assert.Equal(t, "2.5", record.Balance.String())
	_, err = c.RefreshBalance(t.Context(), b.Address)
	require.NoError(t, err)

	fetcher.failing[a.Address] = errors.Wrap(rpc.ErrProxyRequestFailed, "boom")

	record, err = c.RefreshBalance(t.Context(), a.Address)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	assert.Error(t, record.Err)
	assert.Equal(t, "2.5", record.Balance.String(), "failure keeps last known balance")

	other, ok := c.Balance(b.Address)
	require.True(t, ok)
	assert.NoError(t, other.Err)
	assert.Equal(t, "0.000000000000000001", other.Balance.String())

	assert.Len(t, c.Balances(), 2)
}

func TestRefreshBalanceFailuresDoNotBlockOtherAddresses(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	cfg := upstream.Upstream()
	client := rpc.NewSolanaClient(cfg)

	c := newController(t, map[chain.ID]rpc.BalanceFetcher{chain.Solana: client})
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	a, err := c.GenerateAccount(t.Context(), chain.Solana)
	require.NoError(t, err)
	b, err := c.GenerateAccount(t.Context(), chain.Solana)
	require.NoError(t, err)

	upstream.SetFailing(a.Address, true)
	upstream.SetBalance(b.Address, big.NewInt(5_000_000_000))

	failures := int(cfg.BreakerMinRequests) + 5
	for i := 0; i < failures; i++ {
		_, err := c.RefreshBalance(t.Context(), a.Address)
		require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	}

	record, err := c.RefreshBalance(t.Context(), b.Address)
	require.NoError(t, err)
	assert.Equal(t, "5", record.Balance.String())
	assert.Equal(t, failures+1, upstream.Calls("getBalance"))
}

func TestRefreshBalancesConcurrently(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	client := rpc.NewSolanaClient(upstream.Upstream())

	c := newController(t, map[chain.ID]rpc.BalanceFetcher{chain.Solana: client})
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	var accounts []*address.DerivedAccount
	for i := 0; i < 4; i++ {
		account, err := c.GenerateAccount(t.Context(), chain.Solana)
		require.NoError(t, err)
		accounts = append(accounts, account)
		upstream.SetBalance(account.Address, big.NewInt(int64(i+1)*1_000_000_000))
	}
	upstream.SetFailing(accounts[3].Address, true)

	err := c.RefreshBalances(t.Context(), chain.Solana)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	assert.Equal(t, 4, upstream.Calls("getBalance"))

	for i, account := range accounts[:3] {
		record, ok := c.Balance(account.Address)
		require.True(t, ok)
		assert.NoError(t, record.Err)
		assert.Equal(t, int64(i+1), record.Balance.IntPart())
	}

	failed, ok := c.Balance(accounts[3].Address)
	require.True(t, ok)
	assert.Error(t, failed.Err)
	assert.False(t, failed.Known())
}

func TestRefreshBalanceWithoutFetcher(t *testing.T) {
	c := newController(t, nil)
	require.NoError(t, c.Import(t.Context(), testMnemonic))

	account, err := c.GenerateAccount(t.Context(), chain.Solana)
	require.NoError(t, err)

	_, err = c.RefreshBalance(t.Context(), account.Address)
	require.ErrorIs(t, err, session.ErrNoFetcher)
}
