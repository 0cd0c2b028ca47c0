package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/aretw0/firstrun/internal/config"
	"github.com/aretw0/firstrun/internal/logging"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/observability"
	"golang.org/x/term"
)

// Options carries the global flags shared by every command.
type Options struct {
	ConfigPath string
	Debug      bool
	Out        io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// SignalContext is a context cancelled on SIGINT or SIGTERM that remembers the signal.
type SignalContext struct {
	context.Context
	Cancel context.CancelFunc
	sig    atomic.Value
}

// NewSignalContext behaves like signal.NotifyContext but exposes the received signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.sig.Store(sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sig, _ := sc.sig.Load().(os.Signal)
	return sig
}

// loadConfig reads configuration and builds the matching logger.
// --debug forces debug level regardless of log.level.
func loadConfig(opts Options) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, createLogger(cfg, opts.Debug), nil
}

// createLogger configures the application logger. It writes to Stderr (to separate from Stdout output).
func createLogger(cfg config.Config, debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level)
}

func createDebugHooks(logger *slog.Logger, debug bool) domain.LifecycleHooks {
	if !debug {
		return domain.LifecycleHooks{}
	}
	return observability.LoggingHooks(logger)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
