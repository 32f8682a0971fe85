package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/api/router"
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 30 * time.Second
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the wallet HTTP API.

The server starts without a mnemonic: generate or import one through
/api/v1/wallet/mnemonic. Upstream RPC providers are configured through
SOLANA_RPC_URL and ETHEREUM_RPC_URL.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg)

	if cfg.Wallet.Solana.URL == "" {
		log.Warn().Msg("SOLANA_RPC_URL is not set, Solana balance requests will fail")
	}
	if cfg.Wallet.Ethereum.URL == "" {
		log.Warn().Msg("ETHEREUM_RPC_URL is not set, Ethereum balance requests will fail")
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := router.Init(s); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize router")
	}

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}
}
