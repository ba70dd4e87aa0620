package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"devicestore/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger writes gorm statements to slog. Write conflicts that
// RunTransaction retries are logged at debug rather than as failures.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if base == nil {
		base = slog.New(slog.DiscardHandler)
	}

	return &queryLogger{
		logger:        base.With(slog.String("store", config.StoreDriverPostgres)),
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, minLevel logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < minLevel {
		return
	}

	l.logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	// A missing row is how a transaction learns the document does not exist yet.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level and message for a finished statement.
// ok is false when the configured level filters it out.
func (l *queryLogger) classify(elapsed time.Duration, err error) (level slog.Level, msg string, ok bool) {
	switch {
	case err != nil && isRetryable(err):
		return slog.LevelDebug, "Device document write conflict", l.level >= logger.Warn
	case err != nil:
		return slog.LevelError, "Device document query failed", l.level >= logger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return slog.LevelWarn, "Slow device document query", l.level >= logger.Warn
	default:
		return slog.LevelInfo, "Device document query", l.level >= logger.Info
	}
}
