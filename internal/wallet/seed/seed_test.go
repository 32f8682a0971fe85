package seed_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:dupword
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerateMnemonic(t *testing.T) {
	tests := []struct {
		bits  int
		words int
	}{
		{seed.EntropyBits12Words, 12},
		{seed.EntropyBits24Words, 24},
	}

	for _, tt := range tests {
		mnemonic, err := seed.GenerateMnemonic(tt.bits)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(mnemonic), tt.words)
		assert.True(t, seed.ValidateMnemonic(mnemonic))
	}

	_, err := seed.GenerateMnemonic(100)
	require.Error(t, err)
}

func TestGenerateMnemonicUnique(t *testing.T) {
	m1, err := seed.GenerateMnemonic(seed.EntropyBits12Words)
	require.NoError(t, err)
	m2, err := seed.GenerateMnemonic(seed.EntropyBits12Words)
	require.NoError(t, err)

	assert.NotEqual(t, m1, m2)
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{"valid 12 words", testMnemonic, true},
		{"empty", "", false},
		{"random words", "not a valid mnemonic phrase at all", false},
		//nolint:dupword
		{"wrong checksum", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", false},
		{"single word", "abandon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, seed.ValidateMnemonic(tt.mnemonic))
		})
	}
}

func TestNormalizeMnemonic(t *testing.T) {
	//nolint:dupword
	in := "  Abandon abandon\tabandon abandon abandon abandon abandon abandon abandon abandon abandon  ABOUT \n"
	assert.Equal(t, testMnemonic, seed.NormalizeMnemonic(in))
}

func TestDeriveSeedVector(t *testing.T) {
	// BIP-39 reference vector (empty passphrase)
	s, err := seed.DeriveSeed(testMnemonic)
	require.NoError(t, err)
	require.Len(t, s, seed.Size)
	assert.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		hex.EncodeToString(s))
}

func TestDeriveSeedDeterministic(t *testing.T) {
	a, err := seed.DeriveSeed(testMnemonic)
	require.NoError(t, err)
	b, err := seed.DeriveSeed(testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	salted, err := seed.DeriveSeedWithPassphrase(testMnemonic, "TREZOR")
	require.NoError(t, err)
	assert.NotEqual(t, a, salted)
}

func TestDeriveSeedInvalid(t *testing.T) {
	_, err := seed.DeriveSeed("not a valid mnemonic phrase at all")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)
}

func TestManager(t *testing.T) {
	m := seed.NewManager()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())

	require.NoError(t, m.Initialize(testMnemonic, ""))
	assert.True(t, m.IsInitialized())

	s := m.GetSeed()
	require.Len(t, s, seed.Size)

	// returned seed is a copy
	s[0] ^= 0xff
	assert.NotEqual(t, s, m.GetSeed())

	// a failed re-initialization keeps the previous seed
	err := m.Initialize("bogus words", "")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)
	assert.True(t, m.IsInitialized())
	assert.Len(t, m.GetSeed(), seed.Size)

	m.Clear()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())
}
