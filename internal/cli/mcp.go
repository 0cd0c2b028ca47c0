package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/firstrun/pkg/adapters/mcp"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// MCPOptions configures the 'mcp' command.
type MCPOptions struct {
	Options
	Transport string
	Port      int // SSE only
}

// RunMCP exposes the engine as MCP tools. With stdio, stdout carries JSON-RPC only,
// so everything else goes to the stderr logger.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	cfg, logger, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	engine, closer, err := createEngine(cfg, logger, createDebugHooks(logger, opts.Debug))
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := mcp.NewServer(engine, mcp.WithLogger(logger))

	switch opts.Transport {
	case TransportStdio, "":
		logger.Info("starting MCP server (stdio)", "store", cfg.Store.Backend)
		return srv.ServeStdio()
	case TransportSSE:
		logger.Info("starting MCP server (SSE)", "port", opts.Port, "store", cfg.Store.Backend)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown transport %q (want %s or %s)", opts.Transport, TransportStdio, TransportSSE)
}
