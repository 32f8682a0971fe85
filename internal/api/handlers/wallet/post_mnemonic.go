package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func PostMnemonicRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/mnemonic", postMnemonicHandler(s))
}

// postMnemonicHandler generates a new mnemonic for the session. All previously derived accounts are dropped.
func postMnemonicHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		mnemonic, err := s.Session.NewMnemonic(ctx)
		if err != nil {
			util.LogFromContext(ctx).Error().Err(err).Msg("Failed to generate mnemonic")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, mnemonicToResponse(mnemonic))
	}
}
