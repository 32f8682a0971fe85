package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CacheControlConfig struct {
	Skipper middleware.Skipper
	Value   string
}

// DefaultCacheControlConfig forbids caching: balances and mnemonics must never be served from a cache.
var DefaultCacheControlConfig = CacheControlConfig{
	Skipper: middleware.DefaultSkipper,
	Value:   "no-store",
}

func CacheControl() echo.MiddlewareFunc {
	return CacheControlWithConfig(DefaultCacheControlConfig)
}

func CacheControlWithConfig(config CacheControlConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultCacheControlConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			c.Response().Header().Set(echo.HeaderCacheControl, config.Value)
			return next(c)
		}
	}
}
