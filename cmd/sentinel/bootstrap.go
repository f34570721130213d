package main

import (
	"fmt"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/fixtures"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/navigator"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/services"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := openConfigStore(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()

	kv, closeFn, err := openKeyValueStore(opts, settings.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage: %w", err)
	}

	catalog := fixtures.New()
	clk := clock.Real{}
	history := navigator.NewHistory(func(route string) {
		logger.Debug("navigate %s", route)
	})

	logger.Debug("intake %s, stages %s, payment %s",
		settings.IntakeDelay, domain.TotalDuration(settings.Stages), settings.PaymentDelay)

	sessionService := services.NewSessionService(kv)
	if s := sessionService.Restore(); s != nil {
		logger.Debug("restored session for %s", s.Email)
	}

	return &cli.Services{
		Pipeline:      services.NewPipelineController(catalog, clk, settings),
		Notifications: services.NewNotificationService(catalog, kv, history),
		Session:       sessionService,
		Catalog:       services.NewCatalogService(catalog),
		Billing:       services.NewBillingService(catalog, kv, clk, settings),
		Settings:      settingsService,
		Reports:       services.NewReportsService(catalog),
		Workspace:     services.NewWorkspaceService(catalog),
	}, closeFn, nil
}

func openConfigStore(opts cli.Options) (driven.ConfigStore, error) {
	if opts.Ephemeral {
		logger.Debug("config: memory")
		return memory.NewConfigStore(), nil
	}
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("config: %s", store.Path())
	return store, nil
}

func openKeyValueStore(opts cli.Options, backend domain.StorageBackend) (driven.KeyValueStore, func() error, error) {
	if opts.Ephemeral || backend == domain.StorageMemory {
		logger.Debug("storage: memory")
		return memory.NewKeyValueStore(), func() error { return nil }, nil
	}

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("storage: %s", store.Path())
	return store.KeyValueStore(), store.Close, nil
}
