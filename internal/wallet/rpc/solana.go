package rpc

import (
	"context"
	"math/big"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

// SolanaBalanceEnvelope mirrors the JSON-RPC response of getBalance.
type SolanaBalanceEnvelope struct {
	JSONRPC string                      `json:"jsonrpc"`
	ID      int                         `json:"id"`
	Result  *solanarpc.GetBalanceResult `json:"result"`
}

// SolanaClient talks to a Solana JSON-RPC provider
type SolanaClient struct {
	upstream
	client *solanarpc.Client
}

// NewSolanaClient creates a client for cfg.URL. With an empty URL every call fails with ErrUpstreamNotConfigured.
func NewSolanaClient(cfg config.Upstream) *SolanaClient {
	c := &SolanaClient{upstream: newUpstream(chain.Solana, cfg)}
	if cfg.URL != "" {
		c.client = solanarpc.New(cfg.URL)
	}

	return c
}

// GetBalance issues a single getBalance call for address.
func (c *SolanaClient) GetBalance(ctx context.Context, address string) (*SolanaBalanceEnvelope, error) {
	pubKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q: %v", address, err)
	}

	if c.client == nil {
		return nil, c.notConfigured()
	}

	util.LogFromContext(ctx).Debug().Str("address", address).Msg("Forwarding getBalance")

	res, err := c.call(ctx, func(ctx context.Context) (interface{}, error) {
		// no explicit commitment, the provider default applies
		return c.client.GetBalance(ctx, pubKey, "")
	})
	if err != nil {
		return nil, err
	}

	result, ok := res.(*solanarpc.GetBalanceResult)
	if !ok || result == nil {
		return nil, &UpstreamError{Chain: chain.Solana, Err: errors.New("empty getBalance result")}
	}

	return &SolanaBalanceEnvelope{
		JSONRPC: jsonRPCVersion,
		ID:      envelopeID,
		Result:  result,
	}, nil
}

// FetchBalance returns the balance of address in lamports.
func (c *SolanaClient) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	envelope, err := c.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(envelope.Result.Value), nil
}

// GetAccountData returns the raw data of an account. A missing account yields solanarpc.ErrNotFound.
func (c *SolanaClient) GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	if c.client == nil {
		return nil, c.notConfigured()
	}

	res, err := c.call(ctx, func(ctx context.Context) (interface{}, error) {
		return c.client.GetAccountInfo(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	info, ok := res.(*solanarpc.GetAccountInfoResult)
	if !ok || info == nil || info.Value == nil {
		return nil, &UpstreamError{Chain: chain.Solana, Err: solanarpc.ErrNotFound}
	}

	return info.Value.Data.GetBinary(), nil
}
