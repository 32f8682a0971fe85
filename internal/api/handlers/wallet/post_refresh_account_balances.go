package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func PostRefreshAccountBalancesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/accounts/:chain/balances/refresh", postRefreshAccountBalancesHandler(s))
}

// postRefreshAccountBalancesHandler refreshes every account of the chain concurrently.
// Individual failures are reported inside the returned records, the request itself succeeds.
func postRefreshAccountBalancesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		chainID, err := parseChainParam(c)
		if err != nil {
			return err
		}

		if err := s.Session.RefreshBalances(ctx, chainID); err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Str("chain", chainID.String()).Msg("Some balances failed to refresh")
		}

		accounts, err := s.Session.Accounts(chainID)
		if err != nil {
			return toHTTPError(err)
		}

		res := recordsToResponse(nil)
		for _, a := range accounts {
			if record, ok := s.Session.Balance(a.Address); ok {
				res.Balances = append(res.Balances, recordToBalanceRecord(record))
			}
		}

		return util.ValidateAndReturn(c, http.StatusOK, res)
	}
}
