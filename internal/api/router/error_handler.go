package router

import (
	"errors"
	"net/http"

	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/cryptowall/go-wallet/internal/types"
	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every error returned by a handler as a JSON error document.
// Internal server errors hide their details unless hideInternalServerErrorDetails is false.
func HTTPErrorHandler(hideInternalServerErrorDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromContext(c.Request().Context())
		code := http.StatusInternalServerError
		var payload interface{}

		var httpError *httperrors.HTTPError
		var httpValidationError *httperrors.HTTPValidationError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = int(*httpError.Status)
			payload = httpError
		case errors.As(err, &httpValidationError):
			code = int(*httpValidationError.Status)
			payload = httpValidationError
		case errors.As(err, &echoHTTPError):
			code = echoHTTPError.Code
			payload = httperrors.NewFromEcho(echoHTTPError)
		default:
			title := http.StatusText(code)
			if !hideInternalServerErrorDetails {
				title = err.Error()
			}
			payload = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, title)
		}

		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, payload)
		}
		if err != nil {
			log.Warn().Err(err).Msg("Failed to send error response")
		}
	}
}
