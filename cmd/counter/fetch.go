package counter

import (
	"strconv"

	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/counter"
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const urlFlag = "url"

func newFetch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <account>",
		Short: "Reads a counter account from the Solana upstream",
		Long: `Reads a counter account through getAccountInfo and prints its count.

The upstream defaults to SOLANA_RPC_URL, --url overrides it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := solana.PublicKeyFromBase58(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid counter account")
			}

			url, err := cmd.Flags().GetString(urlFlag)
			if err != nil {
				return err
			}

			upstream := config.DefaultServiceConfigFromEnv().Wallet.Solana
			if url != "" {
				upstream.URL = url
			}

			c, err := counter.Fetch(cmd.Context(), rpc.NewSolanaClient(upstream), account)
			if err != nil {
				return err
			}

			command.RenderRows(cmd.OutOrStdout(), "Counter", []command.Row{
				{Label: "account", Value: account.String()},
				{Label: "count", Value: strconv.FormatUint(uint64(c.Count), 10)},
			})

			return nil
		},
	}

	cmd.Flags().String(urlFlag, "", "Solana JSON-RPC URL")

	return cmd
}
