package wallet

import (
	"strings"
	"time"

	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/wallet/address"
	"github.com/cryptowall/go-wallet/internal/wallet/balance"
	"github.com/cryptowall/go-wallet/internal/wallet/chain"
	"github.com/cryptowall/go-wallet/internal/wallet/rpc"
	"github.com/cryptowall/go-wallet/internal/wallet/seed"
	"github.com/cryptowall/go-wallet/internal/wallet/session"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseChainParam parses the :chain path parameter (solana, ethereum or their tickers)
func parseChainParam(c echo.Context) (chain.ID, error) {
	id, err := chain.Parse(c.Param("chain"))
	if err != nil {
		return "", httperrors.ErrNotFoundUnknownChain
	}

	return id, nil
}

// toHTTPError maps wallet errors onto their public HTTP errors. Unknown errors pass through as 500.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, seed.ErrInvalidMnemonic):
		return httperrors.ErrBadRequestInvalidMnemonic
	case errors.Is(err, session.ErrNoMnemonic):
		return httperrors.ErrConflictNoMnemonic
	case errors.Is(err, chain.ErrUnknownChain):
		return httperrors.ErrNotFoundUnknownChain
	case errors.Is(err, session.ErrUnknownAccount):
		return httperrors.ErrNotFoundAccount
	case errors.Is(err, address.ErrDerivationFailed):
		return httperrors.NewDerivationFailed(err)
	case errors.Is(err, rpc.ErrInvalidAddress):
		return httperrors.NewBadRequestInvalidAddress(err)
	case errors.Is(err, rpc.ErrProxyRequestFailed):
		return httperrors.NewProxyRequestFailed(err)
	}

	return err
}

func mnemonicToResponse(mnemonic string) *types.MnemonicResponse {
	return &types.MnemonicResponse{
		Mnemonic: swag.String(mnemonic),
		Words:    strings.Fields(mnemonic),
	}
}

func accountToDerivedAccount(a *address.DerivedAccount) *types.DerivedAccount {
	return &types.DerivedAccount{
		Address:        swag.String(a.Address),
		Chain:          swag.String(a.Chain.String()),
		DerivationPath: swag.String(a.DerivationPath),
		Index:          swag.Int64(int64(a.Index)),
	}
}

func accountsToResponse(accounts []*address.DerivedAccount) *types.GetAccountsResponse {
	res := &types.GetAccountsResponse{
		Accounts: make([]*types.DerivedAccount, 0, len(accounts)),
	}
	for _, a := range accounts {
		res.Accounts = append(res.Accounts, accountToDerivedAccount(a))
	}

	return res
}

func recordToBalanceRecord(r balance.Record) *types.BalanceRecord {
	res := &types.BalanceRecord{
		Address: swag.String(r.Address),
		Chain:   swag.String(r.Chain.String()),
		Pending: r.Pending,
	}

	if r.Known() {
		res.Raw = r.Raw.String()
		res.Balance = r.Balance.String()
		res.UpdatedAt = strfmt.DateTime(r.UpdatedAt.UTC().Truncate(time.Millisecond))
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}

	return res
}

func recordsToResponse(records []balance.Record) *types.GetBalancesResponse {
	res := &types.GetBalancesResponse{
		Balances: make([]*types.BalanceRecord, 0, len(records)),
	}
	for _, r := range records {
		res.Balances = append(res.Balances, recordToBalanceRecord(r))
	}

	return res
}
