package counter

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cryptowall/go-wallet/internal/counter"
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDecode() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decodes raw counter account data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(args[0]), "0x"))
			if err != nil {
				return errors.Wrap(err, "account data must be hex encoded")
			}

			c, err := counter.Decode(data)
			if err != nil {
				return err
			}

			command.RenderRows(cmd.OutOrStdout(), "Counter", []command.Row{
				{Label: "count", Value: strconv.FormatUint(uint64(c.Count), 10)},
			})

			return nil
		},
	}
}
