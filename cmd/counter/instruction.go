package counter

import (
	"encoding/hex"
	"strconv"

	"github.com/cryptowall/go-wallet/internal/counter"
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const currentFlag = "current"

func newInstruction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instruction inc|dec <n>",
		Short: "Encodes a counter instruction",
		Long: `Encodes an increment or decrement instruction and prints its data as hex and base58.

With --current the instruction is also applied to the given count.`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := counter.ParseKind(args[0])
			if err != nil {
				return err
			}

			value, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return errors.Wrap(err, "value must be an unsigned 32 bit integer")
			}

			ix := counter.Instruction{Kind: kind, Value: uint32(value)}
			data, err := counter.EncodeInstruction(ix)
			if err != nil {
				return err
			}

			rows := []command.Row{
				{Label: "kind", Value: kind.String()},
				{Label: "hex", Value: hex.EncodeToString(data)},
				{Label: "base58", Value: base58.Encode(data)},
			}

			if cmd.Flags().Changed(currentFlag) {
				current, err := cmd.Flags().GetUint32(currentFlag)
				if err != nil {
					return err
				}

				next, err := counter.Apply(counter.Counter{Count: current}, ix)
				if err != nil {
					return err
				}
				rows = append(rows, command.Row{Label: "result", Value: strconv.FormatUint(uint64(next.Count), 10)})
			}

			command.RenderRows(cmd.OutOrStdout(), "Instruction", rows)

			return nil
		},
	}

	cmd.Flags().Uint32(currentFlag, 0, "Current count to apply the instruction to")

	return cmd
}
