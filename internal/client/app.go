// Package client implements the client application runtime.
//
// It wires the local store, remote adapter, sync services and background
// workers into a single process lifecycle owned by the composition root.
package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/flightbag/flightbag/internal/adapter"
	"github.com/flightbag/flightbag/internal/config"
	"github.com/flightbag/flightbag/internal/identity"
	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/internal/netmon"
	"github.com/flightbag/flightbag/internal/service"
	"github.com/flightbag/flightbag/internal/store"
	"github.com/flightbag/flightbag/internal/workers"
)

// App is the composed client application.
type App struct {
	services *service.ClientServices
	monitor  *netmon.Monitor
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp builds the full dependency graph from cfg. Nothing here is a
// module-level singleton: the store, remote client and services live for the
// App's lifetime and are owned by it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local storage: %w", err)
	}
	entityStore := store.NewEntityRepository(db, log)

	remote := adapter.NewRESTRemoteClient(adapter.HTTPClientConfig{
		BaseURL:     cfg.Remote.BaseURL,
		APIKey:      cfg.Remote.APIKey,
		AccessToken: cfg.Remote.AccessToken,
		Timeout:     cfg.Remote.RequestTimeout,
	})

	provider := identity.NewTokenProvider(cfg.Remote.AccessToken)
	monitor := netmon.New(cfg.Remote.BaseURL, cfg.Sync.ProbeInterval, log)
	services := service.NewClientServices(entityStore, remote, provider, monitor, log)

	return &App{
		services: services,
		monitor:  monitor,
		workers:  workers.New(monitor, workers.Func(services.SyncJob.Start)),
		logger:   log,
	}, nil
}

// Services exposes the client service layer to the UI shell.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the background workers and blocks until the process receives an
// interrupt or termination signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.workers.Run(ctx)
	defer a.services.SyncJob.Stop()
	defer a.monitor.Stop()

	a.logger.Info().Msg("flightbag client started")
	<-ctx.Done()
	a.logger.Info().Msg("flightbag client shutting down")

	return nil
}
