package proxy

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
)

func PostEthBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.API.POST("/eth", postEthBalanceHandler(s))
}

// postEthBalanceHandler forwards a single eth_getBalance call at the latest block.
func postEthBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostBalanceProxyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		envelope, err := s.Ethereum.GetBalance(ctx, swag.StringValue(body.Address))
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to proxy eth_getBalance")
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, envelope)
	}
}
