package derive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cryptowall/go-wallet/internal/util/command"
	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/cryptowall/go-wallet/internal/wallet/keystore"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	chainFlag    = "chain"
	countFlag    = "count"
	startFlag    = "start"
	mnemonicFlag = "mnemonic"
	keystoreFlag = "keystore"
	jsonFlag     = "json"
)

// MaxCount caps the number of addresses derived by a single invocation.
const MaxCount = 10_000

var (
	// ErrNoMnemonicSource is returned if neither --mnemonic nor --keystore was given.
	ErrNoMnemonicSource = errors.New("one of --mnemonic or --keystore is required")
	// ErrInvalidRange is returned if the requested indices leave the non-hardened index space or exceed MaxCount.
	ErrInvalidRange = errors.New("invalid derivation range")
)

type options struct {
	chain    string
	count    uint32
	start    uint32
	mnemonic string
	keystore string
	json     bool
}

// Account is the JSON representation printed with --json
type Account struct {
	Chain          string `json:"chain"`
	Index          uint32 `json:"index"`
	DerivationPath string `json:"derivationPath"`
	Address        string `json:"address"`
}

func New() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derives addresses from a mnemonic",
		Long: `Derives count consecutive addresses of a chain from a mnemonic.

Solana accounts use m/44'/501'/{index}'/0', Ethereum accounts m/44'/60'/0'/0/{index}.
The mnemonic is given directly or unlocked from a keystore file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.chain, chainFlag, string(chain.Solana), "Chain to derive for (solana, ethereum)")
	cmd.Flags().Uint32Var(&opts.count, countFlag, 1, "Number of addresses to derive")
	cmd.Flags().Uint32Var(&opts.start, startFlag, 0, "First derivation index")
	cmd.Flags().StringVar(&opts.mnemonic, mnemonicFlag, "", "BIP-39 mnemonic")
	cmd.Flags().StringVar(&opts.keystore, keystoreFlag, "", "Keystore file holding the mnemonic")
	cmd.Flags().BoolVar(&opts.json, jsonFlag, false, "Print JSON instead of a table")
	cmd.MarkFlagsMutuallyExclusive(mnemonicFlag, keystoreFlag)

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	chainID, err := chain.Parse(opts.chain)
	if err != nil {
		return err
	}

	mnemonic, err := resolveMnemonic(cmd, opts)
	if err != nil {
		return err
	}

	s, err := seed.DeriveSeed(mnemonic)
	if err != nil {
		return err
	}

	accounts, err := Accounts(cmd.Context(), s, chainID, opts.start, opts.count)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(accounts)
	}

	rows := make([]command.Row, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, command.Row{Label: a.DerivationPath, Value: a.Address})
	}
	command.RenderRows(out, fmt.Sprintf("%s accounts", chainID), rows)

	return nil
}

// Accounts derives count accounts of chainID starting at index start.
func Accounts(ctx context.Context, s []byte, chainID chain.ID, start uint32, count uint32) ([]Account, error) {
	if count > MaxCount {
		return nil, errors.Wrapf(ErrInvalidRange, "count %d exceeds %d", count, MaxCount)
	}
	if uint64(start)+uint64(count) > uint64(address.HardenedOffset) {
		return nil, errors.Wrapf(ErrInvalidRange, "indices %d..%d exceed %d", start, uint64(start)+uint64(count)-1, address.HardenedOffset-1)
	}

	svc := address.NewService()
	accounts := make([]Account, 0, count)

	for i := start; i < start+count; i++ {
		acc, err := svc.DeriveAddress(ctx, s, chainID, i)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, Account{
			Chain:          string(acc.Chain),
			Index:          acc.Index,
			DerivationPath: acc.DerivationPath,
			Address:        acc.Address,
		})
	}

	return accounts, nil
}

func resolveMnemonic(cmd *cobra.Command, opts options) (string, error) {
	if opts.mnemonic != "" {
		return seed.NormalizeMnemonic(opts.mnemonic), nil
	}
	if opts.keystore == "" {
		return "", ErrNoMnemonicSource
	}

	password, err := command.ReadPassword("Keystore password: ", false)
	if err != nil {
		return "", err
	}

	return keystore.NewFileStore(opts.keystore, keystore.DefaultScryptParams()).Unlock(cmd.Context(), password)
}
