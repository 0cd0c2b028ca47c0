package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/firstrun/pkg/adapters/http"
	"github.com/aretw0/firstrun/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ServeOptions configures the 'serve' command.
type ServeOptions struct {
	Options
	Port string // Overrides server.port when set
}

const shutdownTimeout = 5 * time.Second

// RunServe starts the HTTP plan API and blocks until ctx is cancelled or the listener fails.
func RunServe(ctx context.Context, opts ServeOptions) error {
	cfg, logger, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("error registering metrics: %w", err)
	}

	hooks := observability.Combine(metrics.Hooks(), createDebugHooks(logger, opts.Debug))
	engine, closer, err := createEngine(cfg, logger, hooks)
	if err != nil {
		return err
	}
	defer closer.Close()

	port := cfg.Server.Port
	if opts.Port != "" {
		port = opts.Port
	}

	srv := &http.Server{
		Addr: ":" + port,
		Handler: httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(reg),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	printSystemMessage(opts.out(), "Serving onboarding plans on %s (store: %s)", srv.Addr, cfg.Store.Backend)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down server")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		printSystemMessage(opts.out(), "Server stopped gracefully")
		return nil
	}
}
