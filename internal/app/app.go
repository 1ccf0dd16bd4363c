package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rfidpos/internal/config"
	"rfidpos/internal/importer"
	"rfidpos/internal/pg"
	"rfidpos/internal/pos"
	"rfidpos/internal/repo"
	"rfidpos/internal/service"
	"rfidpos/internal/ui"
	"rfidpos/internal/updater"
	"rfidpos/pkg/clients"
	"rfidpos/pkg/logger"
)

// Version is recorded in the database the first time a terminal starts.
const Version = "2.1"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	repo    *repo.Repositories
	srv     *service.Services
	console *ui.Console
	engine  *pos.Engine
	upd     *updater.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, txManager)
	a.console = ui.NewConsole(os.Stdin, os.Stdout, cfg.ConsoleWidth)
	a.engine = pos.New(a.srv.AccountService, a.srv.LedgerService, a.repo.VersionRepo, a.console)
	a.upd = updater.New(cfg, a.repo.VersionRepo, clients.NewHTTPClient(), a.console)

	if err := a.seedVersion(ctx); err != nil {
		zap.L().Error("version seed failed: ", zap.Error(err))
		return fmt.Errorf("can't seed version: %w", err)
	}

	if cfg.LegacyImport {
		if err := importer.New(a.srv.AccountService, a.srv.LedgerService, a.console, ".").Run(ctx); err != nil {
			zap.L().Error("legacy import failed: ", zap.Error(err))
			a.console.Error("Legacy import failed. Check the log.")
		}
	}

	a.startUpdater(ctx)
	a.startEngine(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// seedVersion writes the build version on a fresh database so /version and
// the updater have a baseline.
func (a *Application) seedVersion(ctx context.Context) error {
	v, err := a.repo.VersionRepo.Get(ctx)
	if err != nil {
		return err
	}
	if v != nil {
		return nil
	}
	return a.repo.VersionRepo.Set(ctx, Version)
}

func (a *Application) startEngine(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.errCh <- a.engine.Run(ctx)
	}()
}

func (a *Application) startUpdater(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.upd.Start(ctx)
	}()
}

// Wait blocks until the operator exits or the context is cancelled. A nil
// message on errCh is a normal exit and still triggers the shutdown.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			if err != nil && !errors.Is(err, context.Canceled) {
				zap.L().Error(err.Error())
				appErr = err
			}
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
