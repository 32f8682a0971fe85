package mnemonic

import (
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/cryptowall/go-wallet/internal/wallet/keystore"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrInvalidWordCount is returned for word counts BIP-39 does not define.
var ErrInvalidWordCount = errors.New("word count must be one of 12, 15, 18, 21 or 24")

func newNew() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generates a new BIP-39 mnemonic",
		Long: `Generates a new BIP-39 mnemonic and prints it.

With --keystore the mnemonic is additionally encrypted into a keystore v3 file
(scrypt, aes-128-ctr). The password is read from WALLET_KEYSTORE_PASSWORD
or prompted for on the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, err := cmd.Flags().GetInt(wordsFlag)
			if err != nil {
				return err
			}
			path, err := cmd.Flags().GetString(keystoreFlag)
			if err != nil {
				return err
			}
			light, err := cmd.Flags().GetBool(lightKDFFlag)
			if err != nil {
				return err
			}

			return runNew(cmd, words, path, light)
		},
	}

	cmd.Flags().Int(wordsFlag, 12, "Number of words (12, 15, 18, 21 or 24)")
	cmd.Flags().String(keystoreFlag, "", "Encrypt the mnemonic into this keystore file")
	cmd.Flags().Bool(lightKDFFlag, false, "Use light scrypt parameters (faster, weaker)")

	return cmd
}

// EntropyBitsForWords returns the entropy size yielding a mnemonic of words words.
func EntropyBitsForWords(words int) (int, error) {
	switch words {
	case 12, 15, 18, 21, 24:
		return words * 32 / 3, nil
	}
	return 0, errors.Wrapf(ErrInvalidWordCount, "got %d", words)
}

func runNew(cmd *cobra.Command, words int, path string, light bool) error {
	bits, err := EntropyBitsForWords(words)
	if err != nil {
		return err
	}

	mnemonic, err := seed.GenerateMnemonic(bits)
	if err != nil {
		return err
	}

	if path != "" {
		password, err := command.ReadPassword("Keystore password: ", true)
		if err != nil {
			return err
		}

		store := keystore.NewFileStore(path, scryptParams(light))
		if _, err := store.Create(cmd.Context(), mnemonic, password); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	command.RenderSecret(out, "Mnemonic", mnemonic)
	if path != "" {
		command.RenderRows(out, "Keystore", []command.Row{{Label: "file", Value: path}})
	}
	command.RenderWarning(out, "Anyone with these words controls every derived account. Store them offline.")

	return nil
}
