// Package context carries per-request values between the echo layer and the usecases:
// the request ID and a logger already tagged with it.
package context

import (
	"context"
	"log/slog"
	"net/http"

	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header that carries the request ID in both directions.
const HeaderXRequestID = "X-Request-Id"

const echoKeyRequestID = "request_id"

type scopeKey struct{}

// scope is what a request stores in its context.Context.
type scope struct {
	requestID string
	logger    *slog.Logger
}

// SetRequestID records the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestID returns the request ID recorded on the echo context, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

// WithScope returns ctx carrying the request ID and the request-scoped logger.
func WithScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: logger})
}

// RequestIDFromContext returns the request ID stored by WithScope, or "".
func RequestIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s.requestID
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}

// ResponseStatus is the status the client receives for a handler result.
// A returned error has not been written yet, so it is resolved the same way the
// central error handler resolves it: client errors keep their code, everything else is 500.
func ResponseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		if c.Response().Status == 0 {
			return http.StatusOK
		}

		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
