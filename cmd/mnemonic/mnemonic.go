package mnemonic

import (
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/cryptowall/go-wallet/internal/wallet/keystore"
	"github.com/spf13/cobra"
)

const (
	wordsFlag    = "words"
	keystoreFlag = "keystore"
	lightKDFFlag = "light-kdf"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("mnemonic",
		newNew(),
		newShow(),
	)
}

func scryptParams(light bool) keystore.ScryptParams {
	if light {
		return keystore.LightScryptParams()
	}
	return keystore.DefaultScryptParams()
}
