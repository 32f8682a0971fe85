// Package rpc forwards balance and account lookups to the configured upstream JSON-RPC providers.
package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/ethereum/go-ethereum"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	jsonRPCVersion = "2.0"
	envelopeID     = 1
)

var (
	// ErrProxyRequestFailed is matched by every upstream failure.
	ErrProxyRequestFailed = errors.New("proxy request failed")
	// ErrUpstreamNotConfigured is returned when no RPC URL was configured for a chain.
	ErrUpstreamNotConfigured = errors.New("upstream RPC URL not configured")
	// ErrInvalidAddress is returned for addresses that are malformed for the chain. Nothing is sent upstream.
	ErrInvalidAddress = errors.New("invalid address")
)

// UpstreamError wraps a failed upstream call of a chain.
type UpstreamError struct {
	Chain chain.ID
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream: %v", e.Chain, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrProxyRequestFailed //nolint:errorlint
}

// BalanceFetcher fetches the balance of an address in base units.
type BalanceFetcher interface {
	FetchBalance(ctx context.Context, address string) (*big.Int, error)
}

// upstream bundles what both chain clients share: timeout and circuit breaker.
type upstream struct {
	chain   chain.ID
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

func newUpstream(chainID chain.ID, cfg config.Upstream) upstream {
	minRequests := cfg.BreakerMinRequests
	failureRatio := cfg.BreakerFailureRatio

	return upstream{
		chain:   chainID,
		timeout: cfg.RequestTimeout,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    string(chainID),
			Timeout: cfg.BreakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.Requests < minRequests {
					return false
				}
				return float64(counts.TotalFailures)/float64(counts.Requests) >= failureRatio
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				util.LogFromContext(context.Background()).Warn().
					Str("upstream", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("Upstream circuit breaker changed state")
			},
		}),
	}
}

// call runs fn through the circuit breaker with the configured timeout.
// It never retries: a failed call is reported to the caller as is.
// Only provider failures count towards opening the breaker, errors answered for a single
// address (JSON-RPC errors, missing accounts) or a cancelled caller never block other addresses.
func (u upstream) call(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	parent := ctx
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	var callErr error
	res, err := u.breaker.Execute(func() (interface{}, error) {
		res, err := fn(ctx)
		if err != nil && !isProviderFailure(parent, err) {
			callErr = err
			return nil, nil
		}
		return res, err
	})
	if err == nil {
		err = callErr
	}
	if err != nil {
		return nil, &UpstreamError{Chain: u.chain, Err: err}
	}

	return res, nil
}

// isProviderFailure reports whether err says something about the provider itself
// (unreachable, non-2xx, undecodable, timed out) rather than about the requested address.
func isProviderFailure(parent context.Context, err error) bool {
	if parent.Err() != nil {
		return false
	}

	var solanaErr *jsonrpc.RPCError
	if errors.As(err, &solanaErr) {
		return false
	}

	var ethereumErr gethrpc.Error
	if errors.As(err, &ethereumErr) {
		return false
	}

	return !errors.Is(err, solanarpc.ErrNotFound) && !errors.Is(err, ethereum.NotFound)
}

func (u upstream) notConfigured() error {
	return &UpstreamError{Chain: u.chain, Err: ErrUpstreamNotConfigured}
}
