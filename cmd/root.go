package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cryptowall/go-wallet/cmd/counter"
	"github.com/cryptowall/go-wallet/cmd/derive"
	"github.com/cryptowall/go-wallet/cmd/env"
	"github.com/cryptowall/go-wallet/cmd/mnemonic"
	"github.com/cryptowall/go-wallet/cmd/probe"
	"github.com/cryptowall/go-wallet/cmd/server"
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A multi-chain HD wallet service: derives Solana and Ethereum accounts
from a BIP-39 mnemonic and proxies balance lookups to JSON-RPC providers.
Requires configuration through ENV, optionally seeded from a config file.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or .env) whose keys are ENV variable names, e.g. SOLANA_RPC_URL")

	// attach the subcommands
	rootCmd.AddCommand(
		counter.New(),
		derive.New(),
		env.New(),
		mnemonic.New(),
		probe.New(),
		server.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

// initConfig exports the keys of the optional config file as ENV variables.
// Variables already set in the environment win over the file.
func initConfig() {
	if cfgFile == "" {
		return
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		log.Fatal().Err(err).Str("configFile", cfgFile).Msg("Failed to read config file")
	}

	for _, key := range v.AllKeys() {
		name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			log.Fatal().Err(err).Str("key", name).Msg("Failed to export config key")
		}
	}

	log.Debug().Str("configFile", v.ConfigFileUsed()).Msg("Loaded config file")
}
