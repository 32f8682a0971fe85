package api

import (
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/metrics"
	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/balance"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/cryptowall/go-wallet/internal/wallet/session"
	"github.com/dropbox/godropbox/time2"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewClock returns the real clock. Tests swap it for a time2.MockClock.
func NewClock() time2.Clock {
	return time2.DefaultClock
}

func NewSolanaClient(cfg config.Server) *rpc.SolanaClient {
	return rpc.NewSolanaClient(cfg.Wallet.Solana)
}

func NewEthereumClient(cfg config.Server) (*rpc.EthereumClient, error) {
	return rpc.NewEthereumClient(cfg.Wallet.Ethereum)
}

// NewSession wires the session controller to the chain clients. It starts without a mnemonic.
func NewSession(
	cfg config.Server,
	clock time2.Clock,
	metrics *metrics.Service,
	solana *rpc.SolanaClient,
	ethereum *rpc.EthereumClient,
) *session.Controller {
	return session.New(session.Options{
		EntropyBits: cfg.Wallet.MnemonicEntropyBits,
		Seeds:       seed.NewManager(),
		Addresses:   address.NewService(),
		Balances:    balance.NewTable(clock),
		Fetchers: map[chain.ID]rpc.BalanceFetcher{
			chain.Solana:   solana,
			chain.Ethereum: ethereum,
		},
		Metrics: metrics,
	})
}
