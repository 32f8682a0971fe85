package test

import (
	"context"
	"testing"
	"time"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/api/router"
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/dropbox/godropbox/time2"
)

// FixedTestTime is the time the mock clock of every test server starts at.
var FixedTestTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// WithTestServer returns a fully configured server (using the default server config).
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	defaultConfig := config.DefaultServiceConfigFromEnv()
	WithTestServerConfigurable(t, defaultConfig, closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	execClosureNewTestServer(t, config, closure)
}

// WithTestServerAndUpstream returns a fully configured server whose Solana and Ethereum
// upstreams both point to a fresh FakeUpstream.
func WithTestServerAndUpstream(t *testing.T, closure func(s *api.Server, upstream *FakeUpstream)) {
	t.Helper()

	upstream := NewFakeUpstream(t)

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Wallet.Solana = upstream.Upstream()
	cfg.Wallet.Ethereum = upstream.Upstream()

	execClosureNewTestServer(t, cfg, func(s *api.Server) {
		closure(s, upstream)
	})
}

// Executes closure on a new test server with a mock clock
func execClosureNewTestServer(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	// https://stackoverflow.com/questions/43424787/how-to-use-next-available-port-in-http-listenandserve
	// You may use port number "0" in order to use a random available port
	config.Echo.ListenAddress = ":0"

	s, err := api.InitNewServerWithClock(config, time2.NewMockClock(FixedTestTime))
	if err != nil {
		t.Fatalf("failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("failed to init router: %v", err)
	}

	closure(s)

	// echo is managed and should close automatically after running the test
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("failed to shutdown server: %v", errs)
	}
}
