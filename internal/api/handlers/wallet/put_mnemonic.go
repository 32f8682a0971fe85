package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
)

func PutMnemonicRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.PUT("/mnemonic", putMnemonicHandler(s))
}

// putMnemonicHandler imports an existing mnemonic. Invalid phrases are rejected and keep the current session.
func putMnemonicHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PutImportMnemonicPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if err := s.Session.Import(ctx, swag.StringValue(body.Mnemonic)); err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to import mnemonic")
			return toHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, mnemonicToResponse(s.Session.Mnemonic()))
	}
}
