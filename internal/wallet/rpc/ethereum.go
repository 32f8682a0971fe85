package rpc

import (
	"context"
	"math/big"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// EthereumBalanceEnvelope mirrors the JSON-RPC response of eth_getBalance.
type EthereumBalanceEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	// Result is the balance in wei as 0x-prefixed hex quantity
	Result string `json:"result"`
}

// EthereumClient talks to an Ethereum JSON-RPC provider
type EthereumClient struct {
	upstream
	client *ethclient.Client
}

// NewEthereumClient creates a client for cfg.URL. With an empty URL every call fails with ErrUpstreamNotConfigured.
// Dialing an HTTP endpoint does not open a connection, so a misconfigured URL surfaces on first use.
func NewEthereumClient(cfg config.Upstream) (*EthereumClient, error) {
	c := &EthereumClient{upstream: newUpstream(chain.Ethereum, cfg)}
	if cfg.URL == "" {
		return c, nil
	}

	client, err := ethclient.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial ethereum RPC")
	}
	c.client = client

	return c, nil
}

// Close closes the underlying connection
func (c *EthereumClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// GetBalance issues a single eth_getBalance call for address at the latest block.
func (c *EthereumClient) GetBalance(ctx context.Context, address string) (*EthereumBalanceEnvelope, error) {
	balance, err := c.FetchBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	return &EthereumBalanceEnvelope{
		JSONRPC: jsonRPCVersion,
		ID:      envelopeID,
		Result:  hexutil.EncodeBig(balance),
	}, nil
}

// FetchBalance returns the balance of address in wei.
func (c *EthereumClient) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q", address)
	}

	if c.client == nil {
		return nil, c.notConfigured()
	}

	util.LogFromContext(ctx).Debug().Str("address", address).Msg("Forwarding eth_getBalance")

	res, err := c.call(ctx, func(ctx context.Context) (interface{}, error) {
		// nil block number means "latest"
		return c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	})
	if err != nil {
		return nil, err
	}

	balance, ok := res.(*big.Int)
	if !ok || balance == nil {
		return nil, &UpstreamError{Chain: chain.Ethereum, Err: errors.New("empty eth_getBalance result")}
	}

	return balance, nil
}
