package proxy

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
)

func PostSolBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.API.POST("/sol", postSolBalanceHandler(s))
}

// postSolBalanceHandler forwards a single getBalance call and returns the JSON-RPC envelope as is.
func postSolBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostBalanceProxyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		envelope, err := s.Solana.GetBalance(ctx, swag.StringValue(body.Address))
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to proxy getBalance")
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, envelope)
	}
}
