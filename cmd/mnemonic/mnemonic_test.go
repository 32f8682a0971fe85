package mnemonic_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cryptowall/go-wallet/cmd/mnemonic"
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropyBitsForWords(t *testing.T) {
	bits, err := mnemonic.EntropyBitsForWords(12)
	require.NoError(t, err)
	assert.Equal(t, 128, bits)

	bits, err = mnemonic.EntropyBitsForWords(24)
	require.NoError(t, err)
	assert.Equal(t, 256, bits)

	_, err = mnemonic.EntropyBitsForWords(13)
	require.ErrorIs(t, err, mnemonic.ErrInvalidWordCount)
}

func TestNewWithKeystoreAndShow(t *testing.T) {
	t.Setenv(command.KeystorePasswordEnv, "test-password")
	path := filepath.Join(t.TempDir(), "keystore.json")

	var out bytes.Buffer
	cmd := mnemonic.New()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"new", "--words", "24", "--keystore", path, "--light-kdf"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	var shown bytes.Buffer
	cmd = mnemonic.New()
	cmd.SetOut(&shown)
	cmd.SetArgs([]string{"show", "--keystore", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, shown.String(), "Mnemonic")
}
