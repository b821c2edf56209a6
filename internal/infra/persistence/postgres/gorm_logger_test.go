package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"localguide/config"
	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureGormLogger(debug bool) (gormlogger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormLogger(slog.New(slog.NewJSONHandler(buf, nil)), cfg), buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	line := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &line))

	return line
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_FailedQueryCarriesRequestID(t *testing.T) {
	l, buf := captureGormLogger(false)
	base := slog.New(slog.NewJSONHandler(buf, nil))
	ctx := deliverycontext.WithScope(context.Background(), "req-9", base.With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now(), query(`DELETE FROM "reviews"`), errors.New("deadlock detected"))

	line := lastLine(t, buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "SQL query failed", line["msg"])
	assert.Equal(t, "req-9", line["request_id"])
	assert.Equal(t, "deadlock detected", line["error"])
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	l, buf := captureGormLogger(false)

	l.Trace(context.Background(), time.Now(), query(`SELECT * FROM "spots"`), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLogger_SlowQuery(t *testing.T) {
	l, buf := captureGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), query(`SELECT * FROM "images"`), nil)

	line := lastLine(t, buf)
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "Slow SQL query", line["msg"])
}

func TestGormLogger_QueriesOnlyInDebug(t *testing.T) {
	l, buf := captureGormLogger(false)
	l.Trace(context.Background(), time.Now(), query(`SELECT 1`), nil)
	assert.Empty(t, buf.String())

	l, buf = captureGormLogger(true)
	l.Trace(context.Background(), time.Now(), query(`SELECT 1`), nil)
	line := lastLine(t, buf)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "SELECT 1", line["sql"])
}

func TestGormLogger_Silent(t *testing.T) {
	l, buf := captureGormLogger(true)
	l = l.LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), query(`SELECT 1`), errors.New("boom"))
	l.Error(context.Background(), "failed %s", "x")

	assert.Empty(t, buf.String())
}
