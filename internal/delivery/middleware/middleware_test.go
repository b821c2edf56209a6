package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"localguide/config"
	deliverycontext "localguide/internal/delivery/context"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		line := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func serve(t *testing.T, logger *slog.Logger, debug bool, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/spots", handler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/spots", nil))

	return rec
}

func TestLoggerMiddleware_ServerErrorLoggedWithFinalStatus(t *testing.T) {
	logger, buf := newCapturingLogger()

	rec := serve(t, logger, false, func(c echo.Context) error {
		return errors.New("connection refused")
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.EqualValues(t, http.StatusInternalServerError, lines[0]["status"])
	assert.Equal(t, "/api/spots", lines[0]["route"])
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), lines[0]["request_id"])
}

func TestLoggerMiddleware_ClientErrorLoggedAsWarning(t *testing.T) {
	logger, buf := newCapturingLogger()

	serve(t, logger, false, func(c echo.Context) error {
		return domainerrors.ErrInvalidCoordinates
	})

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.EqualValues(t, http.StatusBadRequest, lines[0]["status"])
}

func TestLoggerMiddleware_SuccessOnlyInDebug(t *testing.T) {
	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	}

	logger, buf := newCapturingLogger()
	serve(t, logger, false, ok)
	assert.Empty(t, logLines(t, buf))

	logger, buf = newCapturingLogger()
	serve(t, logger, true, ok)
	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.EqualValues(t, http.StatusOK, lines[0]["status"])
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{"none", "", false},
		{"well formed", "edge-7f3a.42_b", true},
		{"newline injection", "abc\ninjected", false},
		{"too long", strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newCapturingLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				seen = deliverycontext.RequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			assert.Equal(t, got, deliverycontext.RequestID(c))
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}
