package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/firstrun"
	"github.com/aretw0/firstrun/internal/config"
	"github.com/aretw0/firstrun/pkg/adapters/file"
	"github.com/aretw0/firstrun/pkg/adapters/memory"
	"github.com/aretw0/firstrun/pkg/adapters/redis"
	"github.com/aretw0/firstrun/pkg/builder"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/persistence/middleware"
	"github.com/aretw0/firstrun/pkg/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createStore opens the install metadata store selected by configuration.
// The returned closer must be called when the store is no longer needed.
func createStore(cfg config.StoreConfig) (ports.InstallMetadataStore, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewStore(), nopCloser{}, nil
	case config.BackendFile:
		return file.New(cfg.Path), nopCloser{}, nil
	case config.BackendRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithInstallID(cfg.Redis.InstallID),
			redis.WithLastShown(true),
		)
		return store, store, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

// createBuilder loads the page catalog, falling back to the bundled one.
// A directory path is read as one markdown document per page.
func createBuilder(cfg config.CatalogConfig) (ports.PageBuilder, error) {
	if cfg.Path == "" {
		return builder.Default(), nil
	}
	load := builder.LoadCatalog
	if info, err := os.Stat(cfg.Path); err == nil && info.IsDir() {
		load = builder.LoadDirectory
	}
	c, err := load(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("error loading page catalog: %w", err)
	}
	return c, nil
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*firstrun.Engine, io.Closer, error) {
	store, closer, err := createStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	pages, err := createBuilder(cfg.Catalog)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	engine, err := firstrun.New(
		memory.NewDetector(cfg.Detector.Supported, cfg.Detector.IsDefault),
		middleware.Chain(store, middleware.NewLoggingMiddleware(logger)),
		firstrun.WithPageBuilder(pages),
		firstrun.WithLogger(logger),
		firstrun.WithLifecycleHooks(hooks),
	)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, closer, nil
}

// engineFor loads configuration and creates an engine. The returned func releases the store.
func engineFor(opts Options) (*firstrun.Engine, func(), error) {
	cfg, logger, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	engine, closer, err := createEngine(cfg, logger, createDebugHooks(logger, opts.Debug))
	if err != nil {
		return nil, nil, err
	}
	return engine, func() { _ = closer.Close() }, nil
}
