// Package server wires the journal server together: storage, migrations,
// services, and the gRPC and HTTP endpoints, with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gratilog/internal/logging"
	"github.com/dmitrijs2005/gratilog/internal/server/config"
	"github.com/dmitrijs2005/gratilog/internal/server/httpapi"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gratilog/internal/server/services"

	gs "github.com/dmitrijs2005/gratilog/internal/server/grpc"
)

// runner is a long-lived endpoint that serves until its context is done.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	runners map[string]runner
}

// openDB is a seam for tests.
var openDB = repomanager.OpenPostgres

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return newApp(c, logger, db, m), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, m repomanager.RepositoryManager) *App {
	us := services.NewUserService(db, m, c)
	es := services.NewEntryService(db, m)
	ss := services.NewStatsService(db, m)
	xs := services.NewExportService(db, m, c)

	if !c.ExportEnabled() {
		logger.Warn(context.Background(), "S3 bucket not set, journal export disabled")
	}

	runners := map[string]runner{
		"grpc": gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, es, ss, xs, c.SecretKey),
	}
	if c.EndpointAddrHTTP != "" {
		router := httpapi.NewRouter(es, ss, db, logger)
		runners["http"] = httpapi.NewServer(c.EndpointAddrHTTP, router, logger)
	}

	return &App{config: c, logger: logger, db: db, runners: runners}
}

// Run starts every endpoint and blocks until ctx is cancelled or one of them
// fails, which stops the others.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for name, r := range app.runners {
		name, r := name, r
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, "endpoint failed", "endpoint", name, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", name, err)
				}
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}
