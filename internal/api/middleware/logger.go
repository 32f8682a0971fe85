package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cryptowall/go-wallet/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerConfig configures the request logger
type LoggerConfig struct {
	Skipper middleware.Skipper
	// Level the completed request is logged with. Responses >= 500 are always logged as errors.
	Level             zerolog.Level
	LogRequestBody    bool
	LogRequestHeader  bool
	LogRequestQuery   bool
	LogResponseBody   bool
	LogResponseHeader bool
	// Mask request/response bodies of these paths (e.g. routes returning a mnemonic).
	RedactBodyPaths map[string]bool
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

type bodyDumpWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Logger attaches a request scoped zerolog logger (carrying the request id) to the request context
// and logs every completed request.
func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			le := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("bytes_in", req.Header.Get(echo.HeaderContentLength))
			if config.LogRequestHeader {
				le = le.Interface("req_header", req.Header)
			}
			if config.LogRequestQuery {
				le = le.Interface("req_query", req.URL.Query())
			}

			redact := config.RedactBodyPaths[c.Path()]

			if config.LogRequestBody && !redact && req.Body != nil {
				reqBody, err := io.ReadAll(req.Body)
				if err == nil {
					req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
					le = le.Bytes("req_body", reqBody)
				}
			}

			l := le.Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(util.LogToContext(ctx, l)))

			var resBody *bytes.Buffer
			if config.LogResponseBody && !redact {
				resBody = new(bytes.Buffer)
				mw := io.MultiWriter(res.Writer, resBody)
				res.Writer = &bodyDumpWriter{Writer: mw, ResponseWriter: res.Writer}
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			stop := time.Now()

			lvl := config.Level
			if res.Status >= http.StatusInternalServerError {
				lvl = zerolog.ErrorLevel
			}

			e := l.WithLevel(lvl).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", stop.Sub(start)).
				Str("path", c.Path())
			if config.LogResponseHeader {
				e = e.Interface("res_header", res.Header())
			}
			if resBody != nil {
				e = e.Bytes("res_body", resBody.Bytes())
			}
			e.Msg("http_request_handled")

			// the error was already handled by c.Error
			return nil
		}
	}
}
