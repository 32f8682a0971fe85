package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func GetMnemonicRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/mnemonic", getMnemonicHandler(s))
}

func getMnemonicHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		mnemonic := s.Session.Mnemonic()
		if mnemonic == "" {
			return httperrors.ErrConflictNoMnemonic
		}

		return util.ValidateAndReturn(c, http.StatusOK, mnemonicToResponse(mnemonic))
	}
}
