package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"localguide/config"
	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm output through slog. Inside a request it uses the
// request-scoped logger, so queries share the request_id of the call that issued them.
type gormLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newGormLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.logger(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries at error, slow ones at warn and, in info mode, every query.
// Missing rows are an expected outcome of lookups and are not failures.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level = slog.LevelInfo
		msg   = "SQL query"
		extra []slog.Attr
	)
	switch {
	case failed && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "SQL query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "Slow SQL query"
		extra = append(extra, slog.Duration("threshold", l.slow))
	case l.level >= gormlogger.Info:
	default:
		return
	}

	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormLogger) logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
