/*
Package domain contains the core domain models for the firstrun onboarding engine.

It defines the facts the engine decides on, the closed set of page kinds, and the
blueprints and plans produced for the host. This package is kept pure and free of
external dependencies like I/O or persistence.

# Key Entities

  - OnboardingFacts: Snapshot of the three runtime facts read at selection time.
  - PageKind: Closed enumeration of onboarding pages (Welcome, DefaultBrowserPromotion).
  - PageBlueprint: Pre-rendering description of a page, produced by a PageBuilder.
  - OnboardingPlan: Ordered, immutable sequence of blueprints to present.
*/
package domain
