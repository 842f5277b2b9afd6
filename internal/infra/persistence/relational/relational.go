// Package relational implements the repositories on GORM. PostgreSQL is the
// production dialect; SQLite serves local single-node deployments and tests.
package relational

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"deliwer/config"
	"deliwer/internal/domain/lifecycle"
	"deliwer/internal/errors"
	"deliwer/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and registers ping, migration and close
// hooks on the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if params.Config.Storage.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the backend named in cfg.Storage.Backend.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	case config.BackendSQLite:
		db, err = OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("backend %q is not relational", cfg.Storage.Backend)
	}

	// Map driver errors to gorm.ErrDuplicatedKey and friends.
	db.Config.TranslateError = true

	return db.Session(&gorm.Session{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// OpenSQLite opens a SQLite database. SQLite allows a single writer, so the
// pool is capped at one connection.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates every table and the indexes GORM tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	// Both dialects support partial indexes.
	if err := db.WithContext(ctx).Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_community_challenges_active_region " +
			"ON community_challenges (region) WHERE is_active",
	).Error; err != nil {
		return errors.Wrap(err, "create active challenge index")
	}

	// Usernames keep their casing but are unique regardless of it.
	if err := db.WithContext(ctx).Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username))",
	).Error; err != nil {
		return errors.Wrap(err, "create username index")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
