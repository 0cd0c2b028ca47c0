package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventFactsRead EventType = "facts_read"
	EventPlanBuilt EventType = "plan_built"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// FactsEvent is emitted once all facts for a selection have been read.
type FactsEvent struct {
	EventBase
	Facts OnboardingFacts `json:"facts"`
}

// PlanEvent is emitted after a plan has been built and stored.
type PlanEvent struct {
	EventBase
	Kinds     []PageKind `json:"kinds"`
	PageCount int        `json:"page_count"`
	Promotion bool       `json:"promotion"`
}

// LifecycleHooks defines callbacks for selector observability.
type LifecycleHooks struct {
	OnFactsRead func(context.Context, *FactsEvent)
	OnPlanBuilt func(context.Context, *PlanEvent)
}
