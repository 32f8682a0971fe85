package env

import (
	"encoding/json"
	"fmt"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

Sensitive values (management secret, RPC URLs) are omitted.`,
		Run: func(cmd *cobra.Command, _ []string) {
			runEnv(cmd)
		},
	}
}

func runEnv(cmd *cobra.Command) {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal the env")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(c))
}
