// Package app is the composition root: it turns a resolved configuration into
// a NameStore and the services the driving adapters use.
package app

import (
	"context"
	"fmt"

	"github.com/custodia-labs/namereg/internal/adapters/driven/storage/bunstore"
	"github.com/custodia-labs/namereg/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/namereg/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/namereg/internal/config"
	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
	"github.com/custodia-labs/namereg/internal/core/ports/driving"
	"github.com/custodia-labs/namereg/internal/core/services"
	"github.com/custodia-labs/namereg/internal/logger"
)

// App holds the wired services and the storage they share.
type App struct {
	Config  config.Config
	Greeter driving.GreetingService
	Names   driving.NameService

	closer func() error
}

// Open selects the storage backend named by cfg.Storage.Driver and wires the
// services on top of it.
func Open(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, closer, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage: %s", cfg.Storage.Driver)

	return New(cfg, store, closer), nil
}

// New wires services around an already opened store. closer may be nil.
func New(cfg config.Config, store driven.NameStore, closer func() error) *App {
	return &App{
		Config:  cfg,
		Greeter: services.NewGreetingService(),
		Names:   services.NewNameService(store),
		closer:  closer,
	}
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func openStore(ctx context.Context, cfg config.StorageConfig) (driven.NameStore, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewNameStore(), nil, nil
	case config.DriverSQLite:
		s, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s.NameStore(), s.Close, nil
	case config.DriverPostgres, config.DriverMySQL:
		s, err := bunstore.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
		}
		return s.NameStore(), s.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown storage driver %q", domain.ErrInvalidInput, cfg.Driver)
	}
}
