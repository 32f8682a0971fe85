package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func GetBalancesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/balances", getBalancesHandler(s))
}

// getBalancesHandler returns the balance table as is. Nothing is fetched.
func getBalancesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, recordsToResponse(s.Session.Balances()))
	}
}
