package ports

import (
	"context"

	"github.com/aretw0/firstrun/pkg/domain"
)

// Planner is the consumer-facing side of the engine. Adapters (HTTP, CLI) depend on it
// rather than on a concrete engine.
type Planner interface {
	// BuildPageBlueprints reads the current facts and builds a fresh plan.
	BuildPageBlueprints(ctx context.Context) (*domain.OnboardingPlan, error)

	// PageCount returns the length of the most recently built plan, or zero if none was built.
	PageCount() int
}

// PlanService is what remote adapters (HTTP, MCP) need: the planner plus the
// promotion counter update hosts report back.
type PlanService interface {
	Planner

	// RecordPromotionDialogShown increments the promotion dialog counter and returns the new value.
	RecordPromotionDialogShown(ctx context.Context) (int, error)
}
