package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ledger/config"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// pool owns the sql.DB under gorm for the life of the app.
type pool struct {
	sqlDB       *sql.DB
	autoMigrate bool
	logger      *slog.Logger
	stopMonitor context.CancelFunc
}

// New opens the PostgreSQL pool. Start pings the server, applies pending
// migrations when storage.autoMigrate is set and watches pool waits.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db = db.Session(&gorm.Session{
		// multi-step writes go through TransactionManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}

	p := &pool{
		sqlDB:       sqlDB,
		autoMigrate: params.Config.Storage.AutoMigrate,
		logger:      params.Logger,
	}
	params.Append(fx.Hook{OnStart: p.start, OnStop: p.stop})

	return db, nil
}

func (p *pool) start(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := p.sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "ping postgres")
	}

	if p.autoMigrate {
		if err := RunMigrations(ctx, p.sqlDB); err != nil {
			return err
		}
		p.logger.Info("Postgres migrations applied")
	}

	monitorCtx, stop := context.WithCancel(context.Background())
	p.stopMonitor = stop
	go p.monitor(monitorCtx, poolMonitorInterval)

	return nil
}

func (p *pool) stop(context.Context) error {
	if p.stopMonitor != nil {
		p.stopMonitor()
	}

	return errors.WithStack(p.sqlDB.Close())
}

// monitor logs when requests had to wait for a connection. Sustained waits
// mean the claim and redeem transactions are holding connections too long.
func (p *pool) monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := p.sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := p.sqlDB.Stats()
			logPoolWaits(ctx, p.logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWaits(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
