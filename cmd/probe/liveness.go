package probe

import (
	"fmt"
	"net/url"
	"os"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `This command runs the liveness probes of a running server
(/-/healthy, authenticated with SERVER_MANAGEMENT_SECRET).`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msgf("Failed to parse args")
			}
			baseURL, err := cmd.Flags().GetString(urlFlag)
			if err != nil {
				log.Fatal().Err(err).Msgf("Failed to parse args")
			}

			runLiveness(cmd, baseURL, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")
	cmd.Flags().String(urlFlag, "", "Base URL of the server (defaults to SERVER_ECHO_BASE_URL)")

	return cmd
}

func runLiveness(cmd *cobra.Command, baseURL string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()
	if baseURL == "" {
		baseURL = cfg.Echo.BaseURL
	}

	target := fmt.Sprintf("%s/-/healthy?mgmt-secret=%s", baseURL, url.QueryEscape(cfg.Management.Secret))

	body, err := get(cmd.Context(), target, cfg.Management.LivenessTimeout)
	if verbose {
		fmt.Fprint(cmd.OutOrStdout(), body)
	}
	if err != nil {
		log.Error().Err(err).Msg("Liveness probe failed")
		os.Exit(1)
	}

	if verbose {
		log.Info().Msg("Liveness probe succeeded")
	}
}
