package rpc_test

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/test"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	solAddress = "So11111111111111111111111111111111111111112"
	ethAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
)

func TestSolanaGetBalance(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	upstream.SetBalance(solAddress, big.NewInt(1_500_000_000))

	client := rpc.NewSolanaClient(upstream.Upstream())

	envelope, err := client.GetBalance(t.Context(), solAddress)
	require.NoError(t, err)
	assert.Equal(t, "2.0", envelope.JSONRPC)
	assert.Equal(t, 1, envelope.ID)
	assert.Equal(t, uint64(1_500_000_000), envelope.Result.Value)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)
	var decoded struct {
		JSONRPC string `json:"jsonrpc"`
		ID      int    `json:"id"`
		Result  struct {
			Context struct {
				Slot uint64 `json:"slot"`
			} `json:"context"`
			Value uint64 `json:"value"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, uint64(4242), decoded.Result.Context.Slot)
	assert.Equal(t, uint64(1_500_000_000), decoded.Result.Value)

	lamports, err := client.FetchBalance(t.Context(), solAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000_000), lamports.Int64())
}

func TestSolanaInvalidAddress(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	client := rpc.NewSolanaClient(upstream.Upstream())

	_, err := client.GetBalance(t.Context(), ethAddress)
	require.ErrorIs(t, err, rpc.ErrInvalidAddress)
	assert.Equal(t, 0, upstream.Calls("getBalance"))
}

func TestSolanaUpstreamError(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	upstream.SetFailing(solAddress, true)
	client := rpc.NewSolanaClient(upstream.Upstream())

	_, err := client.GetBalance(t.Context(), solAddress)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)

	// no retries
	assert.Equal(t, 1, upstream.Calls("getBalance"))
}

func TestSolanaGetAccountData(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	upstream.SetAccountData(solAddress, []byte{7, 0, 0, 0})
	client := rpc.NewSolanaClient(upstream.Upstream())

	data, err := client.GetAccountData(t.Context(), solana.MustPublicKeyFromBase58(solAddress))
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 0, 0, 0}, data)

	_, err = client.GetAccountData(t.Context(), solana.SystemProgramID)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
}

func TestEthereumGetBalance(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	wei, ok := new(big.Int).SetString("1000000000000000000", 10)
	require.True(t, ok)
	upstream.SetBalance(ethAddress, wei)

	client, err := rpc.NewEthereumClient(upstream.Upstream())
	require.NoError(t, err)
	defer client.Close()

	envelope, err := client.GetBalance(t.Context(), ethAddress)
	require.NoError(t, err)
	assert.Equal(t, "0xde0b6b3a7640000", envelope.Result)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":"0xde0b6b3a7640000"}`, string(raw))
}

func TestEthereumInvalidAddress(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	client, err := rpc.NewEthereumClient(upstream.Upstream())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.GetBalance(t.Context(), solAddress)
	require.ErrorIs(t, err, rpc.ErrInvalidAddress)
	assert.Equal(t, 0, upstream.Calls("eth_getBalance"))
}

func TestEthereumUpstreamError(t *testing.T) {
	upstream := test.NewFakeUpstream(t)
	upstream.SetFailing(ethAddress, true)
	client, err := rpc.NewEthereumClient(upstream.Upstream())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.GetBalance(t.Context(), ethAddress)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	assert.Equal(t, 1, upstream.Calls("eth_getBalance"))
}

func TestUpstreamNotConfigured(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv().Wallet.Solana
	cfg.URL = ""

	sol := rpc.NewSolanaClient(cfg)
	_, err := sol.GetBalance(t.Context(), solAddress)
	require.ErrorIs(t, err, rpc.ErrUpstreamNotConfigured)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)

	eth, err := rpc.NewEthereumClient(cfg)
	require.NoError(t, err)
	_, err = eth.GetBalance(t.Context(), ethAddress)
	require.ErrorIs(t, err, rpc.ErrUpstreamNotConfigured)
	require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
}

func breakerUpstream(t *testing.T) (*test.FakeUpstream, config.Upstream) {
	t.Helper()

	upstream := test.NewFakeUpstream(t)
	cfg := upstream.Upstream()
	cfg.BreakerMinRequests = 2
	cfg.BreakerFailureRatio = 0.5

	return upstream, cfg
}

func TestCircuitBreakerOpensOnProviderFailure(t *testing.T) {
	upstream, cfg := breakerUpstream(t)
	upstream.SetUnavailable(true)

	client, err := rpc.NewEthereumClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	for i := 0; i < 5; i++ {
		_, err = client.GetBalance(t.Context(), ethAddress)
		require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	}

	// once open, calls fail fast without reaching the provider
	assert.Equal(t, 2, upstream.Calls("eth_getBalance"))
}

func TestCircuitBreakerIgnoresAddressErrors(t *testing.T) {
	upstream, cfg := breakerUpstream(t)
	healthy := "0x0000000000000000000000000000000000000001"
	upstream.SetFailing(ethAddress, true)
	upstream.SetBalance(healthy, big.NewInt(7))

	client, err := rpc.NewEthereumClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	for i := 0; i < 5; i++ {
		_, err = client.GetBalance(t.Context(), ethAddress)
		require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	}
	assert.Equal(t, 5, upstream.Calls("eth_getBalance"))

	balance, err := client.FetchBalance(t.Context(), healthy)
	require.NoError(t, err)
	assert.Equal(t, int64(7), balance.Int64())
	assert.Equal(t, 6, upstream.Calls("eth_getBalance"))
}

func TestCircuitBreakerIgnoresMissingAccounts(t *testing.T) {
	upstream, cfg := breakerUpstream(t)
	upstream.SetFailing(solAddress, true)
	upstream.SetBalance(solAddress, big.NewInt(1))
	client := rpc.NewSolanaClient(cfg)

	for i := 0; i < 5; i++ {
		_, err := client.GetAccountData(t.Context(), solana.SystemProgramID)
		require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)

		_, err = client.GetBalance(t.Context(), solAddress)
		require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	}
	assert.Equal(t, 5, upstream.Calls("getAccountInfo"))
	assert.Equal(t, 5, upstream.Calls("getBalance"))

	upstream.SetFailing(solAddress, false)
	envelope, err := client.GetBalance(t.Context(), solAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), envelope.Result.Value)
}

func TestCircuitBreakerIgnoresCancelledCallers(t *testing.T) {
	upstream, cfg := breakerUpstream(t)
	upstream.SetBalance(ethAddress, big.NewInt(3))

	client, err := rpc.NewEthereumClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	for i := 0; i < 5; i++ {
		_, err = client.GetBalance(ctx, ethAddress)
		require.ErrorIs(t, err, rpc.ErrProxyRequestFailed)
	}

	balance, err := client.FetchBalance(t.Context(), ethAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance.Int64())
}
