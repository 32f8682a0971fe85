//go:build wireinject

package api

import (
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/metrics"
	"github.com/dropbox/godropbox/time2"
	"github.com/google/wire"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewSolanaClient,
	NewEthereumClient,
	NewSession,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewClock)
	return new(Server), nil
}

// InitNewServerWithClock returns a new Server instance using the given clock.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithClock(
	_ config.Server,
	_ time2.Clock,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
