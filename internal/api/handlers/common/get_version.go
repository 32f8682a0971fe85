package common

import (
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
)

func GetVersionRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/version", getVersionHandler(s))
}

func getVersionHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, &types.VersionResponse{
			Module:    swag.String(config.ModuleName),
			Commit:    config.Commit,
			BuildDate: config.BuildDate,
		})
	}
}
