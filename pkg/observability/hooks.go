package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/firstrun/pkg/domain"
)

// LoggingHooks returns hooks that log every event at info level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFactsRead: func(ctx context.Context, e *domain.FactsEvent) {
			logger.InfoContext(ctx, string(e.Type),
				"supported", e.Facts.DeviceSupportsDefaultHandlerConfiguration,
				"is_default", e.Facts.IsCurrentDefaultHandler,
				"prior_dialogs", e.Facts.PriorPromotionDialogCount,
			)
		},
		OnPlanBuilt: func(ctx context.Context, e *domain.PlanEvent) {
			kinds := make([]string, len(e.Kinds))
			for i, k := range e.Kinds {
				kinds[i] = k.String()
			}
			logger.InfoContext(ctx, string(e.Type),
				"pages", e.PageCount,
				"kinds", kinds,
				"promotion", e.Promotion,
			)
		},
	}
}

// Combine chains hook sets; each callback runs in argument order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var facts []func(context.Context, *domain.FactsEvent)
	var plans []func(context.Context, *domain.PlanEvent)
	for _, h := range sets {
		if h.OnFactsRead != nil {
			facts = append(facts, h.OnFactsRead)
		}
		if h.OnPlanBuilt != nil {
			plans = append(plans, h.OnPlanBuilt)
		}
	}

	var out domain.LifecycleHooks
	if len(facts) > 0 {
		out.OnFactsRead = func(ctx context.Context, e *domain.FactsEvent) {
			for _, fn := range facts {
				fn(ctx, e)
			}
		}
	}
	if len(plans) > 0 {
		out.OnPlanBuilt = func(ctx context.Context, e *domain.PlanEvent) {
			for _, fn := range plans {
				fn(ctx, e)
			}
		}
	}
	return out
}
