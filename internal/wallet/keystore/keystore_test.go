package keystore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cryptowall/go-wallet/internal/wallet/keystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newStore(t *testing.T) *keystore.FileStore {
	t.Helper()
	return keystore.NewFileStore(filepath.Join(t.TempDir(), "wallet", "keystore.json"), keystore.LightScryptParams())
}

func TestCreateAndUnlock(t *testing.T) {
	store := newStore(t)

	exists, err := store.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	ks, err := store.Create(t.Context(), testMnemonic, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, 3, ks.Version)
	assert.Equal(t, "aes-128-ctr", ks.Crypto.Cipher)
	assert.Equal(t, "scrypt", ks.Crypto.KDF)
	assert.NotContains(t, ks.Crypto.Ciphertext, "abandon")

	info, err := os.Stat(store.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	mnemonic, err := store.Unlock(t.Context(), "correct horse")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestWrongPassword(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(t.Context(), testMnemonic, "correct horse")
	require.NoError(t, err)

	_, err = store.Unlock(t.Context(), "battery staple")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestCreateNeverOverwrites(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(t.Context(), testMnemonic, "a")
	require.NoError(t, err)

	_, err = store.Create(t.Context(), testMnemonic, "b")
	require.ErrorIs(t, err, keystore.ErrKeystoreExists)

	mnemonic, err := store.Unlock(t.Context(), "a")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestUnlockMissing(t *testing.T) {
	_, err := newStore(t).Unlock(t.Context(), "a")
	require.ErrorIs(t, err, keystore.ErrKeystoreNotFound)
}

func TestTamperedCiphertext(t *testing.T) {
	store := newStore(t)
	ks, err := store.Create(t.Context(), testMnemonic, "a")
	require.NoError(t, err)

	prefix := "00"
	if ks.Crypto.Ciphertext[:2] == prefix {
		prefix = "ff"
	}
	ks.Crypto.Ciphertext = prefix + ks.Crypto.Ciphertext[2:]
	_, err = store.DecryptMnemonic(t.Context(), ks, "a")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestUnsupportedKeystore(t *testing.T) {
	store := newStore(t)
	ks, err := store.Create(t.Context(), testMnemonic, "a")
	require.NoError(t, err)

	raw, err := json.Marshal(ks)
	require.NoError(t, err)
	var other keystore.KeystoreJSON
	require.NoError(t, json.Unmarshal(raw, &other))
	other.Crypto.KDF = "pbkdf2"

	_, err = store.DecryptMnemonic(t.Context(), &other, "a")
	require.ErrorIs(t, err, keystore.ErrUnsupportedKeystore)
}
