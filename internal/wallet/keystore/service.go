// Package keystore encrypts a mnemonic into an Ethereum keystore v3 style JSON file.
// It backs the CLI only: the HTTP server never persists a mnemonic.
package keystore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/pkg/errors"
)

// FileStore keeps a single encrypted mnemonic at Path
type FileStore struct {
	Path   string
	Params ScryptParams
}

func NewFileStore(path string, params ScryptParams) *FileStore {
	return &FileStore{
		Path:   path,
		Params: params,
	}
}

// Create encrypts mnemonic with password and writes it to the store's path.
// An existing keystore is never overwritten.
func (s *FileStore) Create(ctx context.Context, mnemonic string, password string) (*KeystoreJSON, error) {
	log := util.LogFromContext(ctx)

	exists, err := s.Exists()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}
	if exists {
		return nil, errors.Wrapf(ErrKeystoreExists, "%s", s.Path)
	}

	ks, err := encryptMnemonic(mnemonic, password, s.Params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encrypt mnemonic")
		return nil, err
	}

	data, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal keystore JSON")
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create keystore directory")
	}

	// O_EXCL so a concurrently created file is not clobbered
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.Wrapf(ErrKeystoreExists, "%s", s.Path)
		}
		return nil, errors.Wrap(err, "failed to create keystore file")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return nil, errors.Wrap(err, "failed to write keystore file")
	}

	log.Info().Str("path", s.Path).Str("id", ks.ID).Msg("Created keystore")

	return ks, nil
}

// Load reads the keystore file without decrypting it.
func (s *FileStore) Load() (*KeystoreJSON, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrKeystoreNotFound, "%s", s.Path)
		}
		return nil, errors.Wrap(err, "failed to read keystore file")
	}

	var ks KeystoreJSON
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal keystore JSON")
	}

	return &ks, nil
}

// DecryptMnemonic decrypts the mnemonic from keystore
func (s *FileStore) DecryptMnemonic(ctx context.Context, ks *KeystoreJSON, password string) (string, error) {
	mnemonic, err := decryptMnemonic(ks, password)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("id", ks.ID).Msg("Failed to decrypt mnemonic")
		return "", err
	}

	return mnemonic, nil
}

// Unlock loads the keystore file and decrypts its mnemonic.
func (s *FileStore) Unlock(ctx context.Context, password string) (string, error) {
	ks, err := s.Load()
	if err != nil {
		return "", err
	}

	return s.DecryptMnemonic(ctx, ks, password)
}

// Exists checks if the keystore file exists
func (s *FileStore) Exists() (bool, error) {
	_, err := os.Stat(s.Path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
