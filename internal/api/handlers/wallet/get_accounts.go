package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func GetAccountsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/accounts/:chain", getAccountsHandler(s))
}

func getAccountsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainID, err := parseChainParam(c)
		if err != nil {
			return err
		}

		accounts, err := s.Session.Accounts(chainID)
		if err != nil {
			return toHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, accountsToResponse(accounts))
	}
}
