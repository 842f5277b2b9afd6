package relational

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultGormSlowThreshold = 200 * time.Millisecond

	// statements longer than this are cut outside debug mode
	maxLoggedSQL = 512
)

// queryLogger writes GORM output through the request-scoped slog logger so
// statements carry the request id of the call that issued them.
type queryLogger struct {
	fallback      *slog.Logger
	backend       string
	level         logger.LogLevel
	slowThreshold time.Duration
	fullSQL       bool
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	ql := &queryLogger{
		fallback:      baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg == nil {
		return ql
	}

	if cfg.Env.Debug {
		ql.level = logger.Info
		ql.fullSQL = true
	}
	if cfg.Storage.SlowQueryThreshold > 0 {
		ql.slowThreshold = cfg.Storage.SlowQueryThreshold
	}
	ql.backend = cfg.Storage.Backend

	return ql
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	if log := l.loggerFor(ctx); log != nil {
		log.LogAttrs(ctx, level, "Database",
			slog.String("backend", l.backend),
			slog.String("message", fmt.Sprintf(msg, args...)),
		)
	}
}

// Trace logs failed statements, slow statements and, in debug mode, all of
// them. Missing rows and unique violations are expected outcomes: the first
// is skipped and the second only warned about.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	log := l.loggerFor(ctx)
	if log == nil {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return
	case err != nil && isUniqueConstraintViolation(err) && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "Database constraint rejected write",
			append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
	case err != nil && l.level >= logger.Error:
		log.LogAttrs(ctx, slog.LevelError, "Database statement failed",
			append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
	case err == nil && l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "Database slow statement",
			append(l.statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))...)
	case err == nil && l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "Database statement", l.statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func (l *queryLogger) statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	op := sql
	if i := strings.IndexByte(op, ' '); i > 0 {
		op = op[:i]
	}
	if !l.fullSQL && len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	return []slog.Attr{
		slog.String("backend", l.backend),
		slog.String("op", strings.ToUpper(op)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
