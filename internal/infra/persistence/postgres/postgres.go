package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"

	"bookshelf/config"
	"bookshelf/internal/errors"
	"bookshelf/internal/infra/persistence/model"
)

const (
	dbPingTimeout               = 5 * time.Second
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Database owns the GORM handle and its pool monitor.
type Database struct {
	DB *gorm.DB

	sqlDB         *sql.DB
	cancelMonitor context.CancelFunc
}

// New opens PostgreSQL (primary plus replicas), pings it and starts the pool monitor.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Database, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	database, err := Wrap(db, cfg, logger)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := database.sqlDB.PingContext(pingCtx); err != nil {
		_ = database.sqlDB.Close()

		return nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	database.cancelMonitor = cancelMonitor
	go monitorDBPool(monitorCtx, logger, database.sqlDB, dbPoolMonitorInterval)

	if cfg.Storage.AutoMigrate {
		if err := Migrate(ctx, database.DB); err != nil {
			_ = database.Close()

			return nil, err
		}
	}

	return database, nil
}

// Wrap applies the session settings every repository relies on to an opened handle.
func Wrap(db *gorm.DB, cfg *config.Config, logger *slog.Logger) (*Database, error) {
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	return &Database{DB: db, sqlDB: sqlDB}, nil
}

// Close stops the pool monitor and closes the pool.
func (d *Database) Close() error {
	if d.cancelMonitor != nil {
		d.cancelMonitor()
	}

	return d.sqlDB.Close()
}

func allModels() []any {
	return model.All()
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
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
