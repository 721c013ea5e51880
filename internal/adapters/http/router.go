package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving h.
func NewRouter(h *Handler, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Pre(CORSMiddleware())
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))

	h.Register(e)
	return e
}

// ErrorHandler renders framework errors as plain text. Unknown paths and
// unsupported methods both answer 404 "Not Found".
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		if code == http.StatusMethodNotAllowed {
			code = http.StatusNotFound
		}
		if code >= http.StatusInternalServerError {
			logger.Error("unhandled error", "request_id", c.Get("request_id"), "error", err)
		}

		if err := writeText(c, code, http.StatusText(code)); err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}
