package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	ctx = WithScope(ctx, "req-1", scoped)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, RequestID(c))

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", RequestID(c))
}

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no error", nil, http.StatusOK},
		{"app client error", domainerrors.ErrInvalidPath, http.StatusBadRequest},
		{"wrapped app client error", errors.Wrap(domainerrors.ErrAdminRequired, "gate"), http.StatusForbidden},
		{"app server error", domainerrors.ErrTransactionFailed, http.StatusInternalServerError},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound},
		{"echo unavailable", echo.ErrServiceUnavailable, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			assert.Equal(t, tt.want, ResponseStatus(c, tt.err))
		})
	}
}

func TestResponseStatus_Committed(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Response().WriteHeader(http.StatusAccepted)

	assert.Equal(t, http.StatusAccepted, ResponseStatus(c, errors.New("late failure")))
}
