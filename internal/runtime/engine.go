package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/firstrun/internal/logging"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/ports"
)

// Selector decides which onboarding pages to present and materializes them.
// It owns no state besides its collaborators and the most recently built plan.
type Selector struct {
	detector ports.DefaultHandlerDetector
	store    ports.InstallMetadataStore
	builder  ports.PageBuilder
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	mu     sync.RWMutex
	last   *domain.OnboardingPlan
	seq    uint64 // builds started
	stored uint64 // seq of the build that produced last
}

// SelectorOption configures the Selector.
type SelectorOption func(*Selector)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) SelectorOption {
	return func(s *Selector) {
		s.hooks = hooks
	}
}

// WithLogger sets a structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSelector creates a new selector with its collaborators.
func NewSelector(detector ports.DefaultHandlerDetector, store ports.InstallMetadataStore, builder ports.PageBuilder, opts ...SelectorOption) *Selector {
	s := &Selector{
		detector: detector,
		store:    store,
		builder:  builder,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildPageBlueprints reads the current facts, applies the decision table and asks the
// PageBuilder for each chosen page in order. The plan is recomputed on every call.
// On failure the previously built plan is left untouched.
// When builds overlap, PageCount and Plan keep the result of the build that started last,
// regardless of which one finishes last.
func (s *Selector) BuildPageBlueprints(ctx context.Context) (*domain.OnboardingPlan, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	facts, err := s.readFacts(ctx)
	if err != nil {
		s.logger.Error("failed to read onboarding facts", "error", err)
		return nil, err
	}
	s.logger.Debug("onboarding facts read",
		"supported", facts.DeviceSupportsDefaultHandlerConfiguration,
		"is_default", facts.IsCurrentDefaultHandler,
		"prior_dialogs", facts.PriorPromotionDialogCount,
	)
	if s.hooks.OnFactsRead != nil {
		s.hooks.OnFactsRead(ctx, &domain.FactsEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFactsRead},
			Facts:     facts,
		})
	}

	kinds := SelectPageKinds(facts)
	pages := make([]domain.PageBlueprint, 0, len(kinds))
	for _, kind := range kinds {
		page, err := s.builder.Build(kind)
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", domain.ErrPageBuild, kind, err)
			s.logger.Error("page builder failed", "kind", kind.String(), "error", err)
			return nil, err
		}
		pages = append(pages, page)
	}

	plan := domain.NewOnboardingPlan(facts, pages)

	s.mu.Lock()
	if seq > s.stored {
		s.last = plan
		s.stored = seq
	}
	s.mu.Unlock()

	s.logger.Debug("onboarding plan built", "pages", plan.Len(), "kinds", kinds)
	if s.hooks.OnPlanBuilt != nil {
		s.hooks.OnPlanBuilt(ctx, &domain.PlanEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventPlanBuilt},
			Kinds:     plan.Kinds(),
			PageCount: plan.Len(),
			Promotion: plan.Includes(domain.PageDefaultBrowserPromotion),
		})
	}

	return plan, nil
}

// PageCount returns the length of the most recently built plan.
// It returns zero if no plan has been built successfully yet.
func (s *Selector) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last.Len()
}

// Plan returns the most recently built plan, or nil.
func (s *Selector) Plan() *domain.OnboardingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
