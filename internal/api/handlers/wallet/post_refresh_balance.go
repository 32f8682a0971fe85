package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func PostRefreshBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/balances/:address/refresh", postRefreshBalanceHandler(s))
}

// postRefreshBalanceHandler fetches the balance of one session account. An upstream failure
// is recorded for this address only and answered with 502.
func postRefreshBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		addr := c.Param("address")

		record, err := s.Session.RefreshBalance(ctx, addr)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Str("address", addr).Msg("Failed to refresh balance")
			return toHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, recordToBalanceRecord(record))
	}
}
