package derive_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/cryptowall/go-wallet/cmd/derive"
	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := derive.New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDeriveEthereumJSON(t *testing.T) {
	out, err := execute(t, "--chain", "eth", "--count", "2", "--mnemonic", testMnemonic, "--json")
	require.NoError(t, err)

	var accounts []derive.Account
	require.NoError(t, json.Unmarshal([]byte(out), &accounts))
	require.Len(t, accounts, 2)

	assert.Equal(t, "ethereum", accounts[0].Chain)
	assert.Equal(t, uint32(0), accounts[0].Index)
	assert.Equal(t, "m/44'/60'/0'/0/0", accounts[0].DerivationPath)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", accounts[0].Address)
	assert.Equal(t, "m/44'/60'/0'/0/1", accounts[1].DerivationPath)
	assert.NotEqual(t, accounts[0].Address, accounts[1].Address)
}

func TestDeriveSolanaStartOffset(t *testing.T) {
	out, err := execute(t, "--chain", "solana", "--start", "3", "--mnemonic", testMnemonic, "--json")
	require.NoError(t, err)

	var accounts []derive.Account
	require.NoError(t, json.Unmarshal([]byte(out), &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, uint32(3), accounts[0].Index)
	assert.Equal(t, "m/44'/501'/3'/0'", accounts[0].DerivationPath)
}

func TestDeriveTable(t *testing.T) {
	out, err := execute(t, "--chain", "ethereum", "--mnemonic", testMnemonic)
	require.NoError(t, err)
	assert.Contains(t, out, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
}

func TestDeriveErrors(t *testing.T) {
	_, err := execute(t, "--chain", "ethereum")
	require.ErrorIs(t, err, derive.ErrNoMnemonicSource)

	_, err = execute(t, "--chain", "bitcoin", "--mnemonic", testMnemonic)
	require.Error(t, err)

	_, err = execute(t, "--chain", "solana", "--mnemonic", "not a valid mnemonic")
	require.Error(t, err)
}

func TestAccountsRange(t *testing.T) {
	s, err := seed.DeriveSeed(testMnemonic)
	require.NoError(t, err)

	_, err = derive.Accounts(t.Context(), s, chain.Ethereum, math.MaxUint32, 2)
	require.ErrorIs(t, err, derive.ErrInvalidRange)

	_, err = derive.Accounts(t.Context(), s, chain.Ethereum, address.HardenedOffset-1, 2)
	require.ErrorIs(t, err, derive.ErrInvalidRange)

	_, err = derive.Accounts(t.Context(), s, chain.Solana, 0, math.MaxUint32)
	require.ErrorIs(t, err, derive.ErrInvalidRange)

	_, err = derive.Accounts(t.Context(), s, chain.Solana, 0, derive.MaxCount+1)
	require.ErrorIs(t, err, derive.ErrInvalidRange)

	accounts, err := derive.Accounts(t.Context(), s, chain.Ethereum, address.HardenedOffset-1, 1)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, address.HardenedOffset-1, accounts[0].Index)

	_, err = execute(t, "--chain", "eth", "--start", strconv.FormatUint(math.MaxUint32, 10), "--count", "2", "--mnemonic", testMnemonic)
	require.ErrorIs(t, err, derive.ErrInvalidRange)
}
