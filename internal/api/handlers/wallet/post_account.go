package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func PostAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/accounts/:chain", postAccountHandler(s))
}

// postAccountHandler derives the account at the next free index of the chain.
func postAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		chainID, err := parseChainParam(c)
		if err != nil {
			return err
		}

		account, err := s.Session.GenerateAccount(ctx, chainID)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Str("chain", chainID.String()).Msg("Failed to generate account")
			return toHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusCreated, accountToDerivedAccount(account))
	}
}
