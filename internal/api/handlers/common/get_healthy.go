package common

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cryptowall/go-wallet/internal/api"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns an human readable string about the current service status.
// In addition to readiness probes, it checks that the configured writeable paths are writeable.
// Requires the management secret as query parameter "mgmt-secret".
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		if c.QueryParam("mgmt-secret") != s.Config.Management.Secret {
			return echo.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		var str strings.Builder
		fmt.Fprintln(&str, "Ready.")

		errs := probeWriteablePaths(ctx, s.Config.Management.ProbeWriteablePathsAbs, s.Config.Management.ProbeWriteableTouchfile)
		for _, p := range s.Config.Management.ProbeWriteablePathsAbs {
			fmt.Fprintf(&str, "Writeable path %s.\n", p)
		}

		if len(errs) > 0 {
			var errStr strings.Builder
			for _, err := range errs {
				fmt.Fprintln(&errStr, err.Error())
			}

			// We use 521 to indicate an error state
			// same as Cloudflare: https://support.cloudflare.com/hc/en-us/articles/115003011431#521error
			return c.String(521, errStr.String())
		}

		fmt.Fprintf(&str, "Session mnemonic loaded: %v.\n", s.Session.HasSeed())
		fmt.Fprintln(&str, "Probes succeeded.")

		return c.String(http.StatusOK, str.String())
	}
}

func probeWriteablePaths(ctx context.Context, absolutePaths []string, touchfile string) []error {
	var errs []error

	for _, dir := range absolutePaths {
		select {
		case <-ctx.Done():
			return append(errs, ctx.Err())
		default:
		}

		file := filepath.Join(dir, touchfile)
		if err := os.WriteFile(file, []byte(util.GenerateRandomHexString(8)), 0o600); err != nil {
			errs = append(errs, fmt.Errorf("writeable path %s: %w", dir, err))
			continue
		}
		if err := os.Remove(file); err != nil {
			errs = append(errs, fmt.Errorf("cleanup writeable path %s: %w", dir, err))
		}
	}

	return errs
}
