package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestUpstreamURLNotPrinted(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Wallet.Solana.URL = "https://rpc.example.com/?api-key=secret"

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}

func TestUpstreamDefaults(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	for _, upstream := range []config.Upstream{cfg.Wallet.Solana, cfg.Wallet.Ethereum} {
		assert.Equal(t, 10*time.Second, upstream.RequestTimeout)
		assert.Equal(t, uint32(20), upstream.BreakerMinRequests)
		assert.InDelta(t, 0.6, upstream.BreakerFailureRatio, 0.0001)
		assert.Equal(t, 30*time.Second, upstream.BreakerOpenTimeout)
	}
	assert.Equal(t, 128, cfg.Wallet.MnemonicEntropyBits)
}

func TestDotEnvLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(file, []byte("SOLANA_RPC_URL=http://localhost:8899\nETHEREUM_RPC_URL=http://localhost:8545\n"), 0600))

	envs := map[string]string{}
	err := config.DotEnvLoad(file, func(k string, v string) error {
		envs[k] = v
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8899", envs["SOLANA_RPC_URL"])
	assert.Equal(t, "http://localhost:8545", envs["ETHEREUM_RPC_URL"])
}

func TestDotEnvLoadMissingFile(t *testing.T) {
	err := config.DotEnvLoad(filepath.Join(t.TempDir(), "nope.env"), func(string, string) error { return nil })
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))

	// missing files are silently skipped
	config.DotEnvTryLoad(filepath.Join(t.TempDir(), "nope.env"), func(string, string) error { return nil })
}
