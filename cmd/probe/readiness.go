package probe

import (
	"fmt"
	"os"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `This command runs the readiness probe of a running server (/-/ready).`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msgf("Failed to parse args")
			}
			baseURL, err := cmd.Flags().GetString(urlFlag)
			if err != nil {
				log.Fatal().Err(err).Msgf("Failed to parse args")
			}

			runReadiness(cmd, baseURL, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")
	cmd.Flags().String(urlFlag, "", "Base URL of the server (defaults to SERVER_ECHO_BASE_URL)")

	return cmd
}

func runReadiness(cmd *cobra.Command, baseURL string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()
	if baseURL == "" {
		baseURL = cfg.Echo.BaseURL
	}

	body, err := get(cmd.Context(), baseURL+"/-/ready", cfg.Management.ReadinessTimeout)
	if verbose {
		fmt.Fprintln(cmd.OutOrStdout(), body)
	}
	if err != nil {
		log.Error().Err(err).Msg("Readiness probe failed")
		os.Exit(1)
	}

	if verbose {
		log.Info().Msg("Readiness probe succeeded")
	}
}
