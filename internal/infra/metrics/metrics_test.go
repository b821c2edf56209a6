package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"localguide/config"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	m := New(&config.Config{})

	assert.True(t, m.Enabled())
	assert.Equal(t, "/metrics", m.Path())
}

func TestNew_FromConfig(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: false, Namespace: "guide", Path: "/internal/metrics"}})

	assert.False(t, m.Enabled())
	assert.Equal(t, "/internal/metrics", m.Path())
}

func TestMiddleware_RecordsMatchedRoute(t *testing.T) {
	m := New(nil)
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/landmarks/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Landmark not found"})
	})
	e.GET(m.Path(), echo.WrapHandler(m.Handler()))

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/landmarks/abc", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "/api/landmarks/:id", "404")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RequestsInFlight), 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `localguide_http_requests_total{method="GET",route="/api/landmarks/:id",status="404"} 2`)
}

func TestMiddleware_HTTPErrorStatus(t *testing.T) {
	m := New(nil)
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "/boom", "418")), 0)
}

func TestMiddleware_ErrorStatus(t *testing.T) {
	m := New(nil)
	e := echo.New()
	e.Use(m.Middleware())
	rejectInMiddleware := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return errors.Wrap(domainerrors.ErrInvalidInput, "session lookup")
		}
	}
	e.GET("/api/reviews", func(echo.Context) error { return nil }, rejectInMiddleware)
	e.GET("/api/spots", func(echo.Context) error {
		return errors.New("connection refused")
	})

	for _, target := range []string{"/api/reviews", "/api/spots"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "/api/reviews", "400")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "/api/reviews", "500")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "/api/spots", "500")), 0)
}

func TestRecordDBPoolStats(t *testing.T) {
	m := New(nil)
	m.RecordDBPoolStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3})

	assert.InDelta(t, 4, testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("open")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("idle")), 0)
}
