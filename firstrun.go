package firstrun

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/aretw0/firstrun/internal/runtime"
	"github.com/aretw0/firstrun/pkg/builder"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/ports"
)

// Version is the library and CLI version.
const Version = "0.3.0"

// Engine is the high-level entry point for the firstrun library.
// It wraps the internal selector and provides a simplified API for consumers.
type Engine struct {
	selector *runtime.Selector
	detector ports.DefaultHandlerDetector
	store    ports.InstallMetadataStore
	builder  ports.PageBuilder
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

var _ ports.PlanService = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithPageBuilder injects a custom PageBuilder, bypassing the bundled catalog.
func WithPageBuilder(b ports.PageBuilder) Option {
	return func(e *Engine) {
		e.builder = b
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
// The detector and store are required; the page builder defaults to the bundled catalog.
func New(detector ports.DefaultHandlerDetector, store ports.InstallMetadataStore, opts ...Option) (*Engine, error) {
	if isNil(detector) {
		return nil, fmt.Errorf("default handler detector is required")
	}
	if isNil(store) {
		return nil, fmt.Errorf("install metadata store is required")
	}

	eng := &Engine{
		detector: detector,
		store:    store,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.builder == nil {
		eng.builder = builder.Default()
	}
	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.selector = runtime.NewSelector(
		eng.detector,
		eng.store,
		eng.builder,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger.With("component", "selector")),
	)
	return eng, nil
}

// isNil also catches typed nils, such as a (*memory.Store)(nil) held in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// BuildPageBlueprints reads the current facts and returns a freshly built onboarding plan.
func (e *Engine) BuildPageBlueprints(ctx context.Context) (*domain.OnboardingPlan, error) {
	return e.selector.BuildPageBlueprints(ctx)
}

// PageCount returns the number of pages in the most recently built plan.
// Before the first successful build it returns zero.
func (e *Engine) PageCount() int {
	return e.selector.PageCount()
}

// Plan returns the most recently built plan, or nil if none has been built.
func (e *Engine) Plan() *domain.OnboardingPlan {
	return e.selector.Plan()
}

// RecordPromotionDialogShown forwards to the install metadata store.
// Hosts call it after actually displaying the promotion dialog.
func (e *Engine) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	return e.store.RecordPromotionDialogShown(ctx)
}

// PromotionDialogCount returns the stored dialog counter.
func (e *Engine) PromotionDialogCount(ctx context.Context) (int, error) {
	return e.store.PromotionDialogCount(ctx)
}
