package chain_test

import (
	"testing"

	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want chain.ID
	}{
		{"solana", chain.Solana},
		{"SOL", chain.Solana},
		{" Ethereum ", chain.Ethereum},
		{"eth", chain.Ethereum},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := chain.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := chain.Parse("bitcoin")
	require.ErrorIs(t, err, chain.ErrUnknownChain)
}

func TestInfo(t *testing.T) {
	sol, err := chain.Solana.Info()
	require.NoError(t, err)
	assert.Equal(t, uint32(501), sol.CoinType)
	assert.Equal(t, int32(9), sol.Decimals)

	eth, err := chain.Ethereum.Info()
	require.NoError(t, err)
	assert.Equal(t, uint32(60), eth.CoinType)
	assert.Equal(t, int32(18), eth.Decimals)

	_, err = chain.ID("doge").Info()
	require.ErrorIs(t, err, chain.ErrUnknownChain)
}
