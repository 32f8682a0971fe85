package wallet_test

import (
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"testing"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/cryptowall/go-wallet/internal/test"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMnemonic       = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testEthereumIndex0 = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
)

func importMnemonic(t *testing.T, s *api.Server) {
	t.Helper()

	res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/mnemonic", test.GenericPayload{"mnemonic": testMnemonic}, nil)
	require.Equal(t, http.StatusOK, res.Result().StatusCode)
}

func generateAccount(t *testing.T, s *api.Server, chain string) types.DerivedAccount {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts/"+chain, nil, nil)
	require.Equal(t, http.StatusCreated, res.Result().StatusCode)

	var account types.DerivedAccount
	test.ParseResponseAndValidate(t, res, &account)
	return account
}

func TestPostMnemonic(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/mnemonic", nil, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)
		assert.Equal(t, "no-store", res.Header().Get("Cache-Control"))

		var response types.MnemonicResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Len(t, response.Words, 12)
		assert.Equal(t, *response.Mnemonic, strings.Join(response.Words, " "))

		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/mnemonic", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		var current types.MnemonicResponse
		test.ParseResponseAndValidate(t, res, &current)
		assert.Equal(t, *response.Mnemonic, *current.Mnemonic)
	})
}

func TestGetMnemonicMissing(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/mnemonic", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictNoMnemonic)
	})
}

func TestPutMnemonicInvalid(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/mnemonic", test.GenericPayload{"mnemonic": "abandon abandon abandon"}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidMnemonic)

		res = test.PerformRequest(t, s, "PUT", "/api/v1/wallet/mnemonic", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostAccountWithoutMnemonic(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts/solana", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictNoMnemonic)
	})
}

func TestPostAccountUnknownChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		importMnemonic(t, s)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts/bitcoin", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundUnknownChain)

		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/accounts/bitcoin", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundUnknownChain)
	})
}

func TestAccountsMonotonicAndReset(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		importMnemonic(t, s)

		first := generateAccount(t, s, "ethereum")
		assert.Equal(t, testEthereumIndex0, *first.Address)
		assert.Equal(t, "m/44'/60'/0'/0/0", *first.DerivationPath)

		second := generateAccount(t, s, "eth")
		assert.Equal(t, int64(1), *second.Index)

		sol := generateAccount(t, s, "solana")
		assert.Equal(t, int64(0), *sol.Index)
		assert.Equal(t, "m/44'/501'/0'/0'", *sol.DerivationPath)

		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/accounts/ethereum", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		var list types.GetAccountsResponse
		test.ParseResponseAndValidate(t, res, &list)
		require.Len(t, list.Accounts, 2)
		assert.Equal(t, *first.Address, *list.Accounts[0].Address)
		assert.Equal(t, *second.Address, *list.Accounts[1].Address)

		// a new mnemonic invalidates every account
		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/mnemonic", nil, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		for _, chain := range []string{"ethereum", "solana"} {
			res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/accounts/"+chain, nil, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)
			var empty types.GetAccountsResponse
			test.ParseResponseAndValidate(t, res, &empty)
			assert.Empty(t, empty.Accounts)
		}
	})
}

func TestRefreshBalance(t *testing.T) {
	test.WithTestServerAndUpstream(t, func(s *api.Server, upstream *test.FakeUpstream) {
		importMnemonic(t, s)

		eth := generateAccount(t, s, "ethereum")
		sol := generateAccount(t, s, "solana")

		wei, _ := new(big.Int).SetString("1500000000000000000", 10)
		upstream.SetBalance(*eth.Address, wei)
		upstream.SetBalance(*sol.Address, big.NewInt(1_234_500_000))

		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/wallet/balances/%s/refresh", *eth.Address), nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		var record types.BalanceRecord
		test.ParseResponseAndValidate(t, res, &record)
		assert.Equal(t, "1.5", record.Balance)
		assert.Equal(t, "1500000000000000000", record.Raw)
		assert.Equal(t, "ethereum", *record.Chain)
		assert.Equal(t, "2024-03-01T12:00:00.000Z", record.UpdatedAt.String())

		res = test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/wallet/balances/%s/refresh", *sol.Address), nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		test.ParseResponseAndValidate(t, res, &record)
		assert.Equal(t, "1.2345", record.Balance)

		// a failing address keeps its last balance and does not affect the other
		upstream.SetFailing(*sol.Address, true)
		res = test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/wallet/balances/%s/refresh", *sol.Address), nil, nil)
		test.RequireHTTPError(t, res, httperrors.NewProxyRequestFailed(nil))

		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/balances", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		var table types.GetBalancesResponse
		test.ParseResponseAndValidate(t, res, &table)
		require.Len(t, table.Balances, 2)

		byAddress := map[string]*types.BalanceRecord{}
		for _, b := range table.Balances {
			byAddress[*b.Address] = b
		}
		assert.Equal(t, "1.2345", byAddress[*sol.Address].Balance)
		assert.NotEmpty(t, byAddress[*sol.Address].Error)
		assert.Equal(t, "1.5", byAddress[*eth.Address].Balance)
		assert.Empty(t, byAddress[*eth.Address].Error)
	})
}

func TestRefreshBalanceUnknownAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", fmt.Sprintf("/api/v1/wallet/balances/%s/refresh", testEthereumIndex0), nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundAccount)
	})
}

func TestRefreshAccountBalances(t *testing.T) {
	test.WithTestServerAndUpstream(t, func(s *api.Server, upstream *test.FakeUpstream) {
		importMnemonic(t, s)

		a := generateAccount(t, s, "solana")
		b := generateAccount(t, s, "solana")
		upstream.SetBalance(*a.Address, big.NewInt(1_000_000_000))
		upstream.SetFailing(*b.Address, true)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts/solana/balances/refresh", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var table types.GetBalancesResponse
		test.ParseResponseAndValidate(t, res, &table)
		require.Len(t, table.Balances, 2)
		assert.Equal(t, 2, upstream.Calls("getBalance"))

		byAddress := map[string]*types.BalanceRecord{}
		for _, r := range table.Balances {
			byAddress[*r.Address] = r
		}
		assert.Equal(t, "1", byAddress[*a.Address].Balance)
		assert.Empty(t, byAddress[*b.Address].Balance)
		assert.NotEmpty(t, byAddress[*b.Address].Error)
	})
}

func TestGetCounter(t *testing.T) {
	test.WithTestServerAndUpstream(t, func(s *api.Server, upstream *test.FakeUpstream) {
		account := "So11111111111111111111111111111111111111112"
		upstream.SetAccountData(account, []byte{0, 0, 0, 0})

		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/counter/"+account, nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		var response types.CounterResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, int64(0), *response.Count)

		upstream.SetAccountData(account, []byte{1, 2})
		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/counter/"+account, nil, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/counter/not-base58-0OIl", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
