package counter

import (
	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("counter",
		newDecode(),
		newFetch(),
		newInstruction(),
	)
}
