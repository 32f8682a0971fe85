package mnemonic

import (
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/cryptowall/go-wallet/internal/wallet/keystore"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Decrypts and prints the mnemonic of a keystore file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString(keystoreFlag)
			if err != nil {
				return err
			}
			if path == "" {
				return errors.New("--keystore is required")
			}

			password, err := command.ReadPassword("Keystore password: ", false)
			if err != nil {
				return err
			}

			// scrypt params are read from the file, the store's own are only used for writing
			mnemonic, err := keystore.NewFileStore(path, keystore.DefaultScryptParams()).Unlock(cmd.Context(), password)
			if err != nil {
				return err
			}

			command.RenderSecret(cmd.OutOrStdout(), "Mnemonic", mnemonic)
			return nil
		},
	}

	cmd.Flags().String(keystoreFlag, "", "Keystore file to decrypt")

	return cmd
}
