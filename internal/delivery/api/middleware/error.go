package middleware

import (
	"log/slog"
	"net/http"

	"localguide/internal/delivery/api/response"
	deliverycontext "localguide/internal/delivery/context"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	// Internal details never reach the client.
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	attrs := []slog.Attr{
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}
	if stack := errors.Stack(err); stack != "" {
		attrs = append(attrs, slog.String("stack", stack))
	}
	logger.LogAttrs(c.Request().Context(), slog.LevelError, "Unhandled error", attrs...)

	_ = response.InternalServerError(c)
}
