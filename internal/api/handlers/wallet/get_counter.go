package wallet

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/cryptowall/go-wallet/internal/counter"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/gagliardetto/solana-go"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func GetCounterRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/counter/:account", getCounterHandler(s))
}

// getCounterHandler reads the state of a counter program account.
func getCounterHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		account, err := solana.PublicKeyFromBase58(c.Param("account"))
		if err != nil {
			return httperrors.NewBadRequestInvalidAddress(err)
		}

		state, err := counter.Fetch(ctx, s.Solana, account)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Str("account", account.String()).Msg("Failed to fetch counter")
			if errors.Is(err, counter.ErrInvalidAccountData) {
				return httperrors.NewHTTPErrorWithDetail(http.StatusUnprocessableEntity, types.PublicHTTPErrorTypeGeneric,
					"The account does not hold counter state.", err.Error())
			}
			return toHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.CounterResponse{
			Account: swag.String(account.String()),
			Count:   swag.Int64(int64(state.Count)),
		})
	}
}
