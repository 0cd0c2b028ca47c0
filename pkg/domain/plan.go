package domain

import "encoding/json"

// OnboardingPlan is the ordered sequence of pages to present.
// It is immutable once built; accessors return copies.
type OnboardingPlan struct {
	pages []PageBlueprint
	facts OnboardingFacts
}

// NewOnboardingPlan creates a plan from the given pages and the facts it was derived from.
func NewOnboardingPlan(facts OnboardingFacts, pages []PageBlueprint) *OnboardingPlan {
	copied := make([]PageBlueprint, len(pages))
	copy(copied, pages)
	return &OnboardingPlan{pages: copied, facts: facts}
}

// Len returns the number of pages in the plan.
func (p *OnboardingPlan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pages)
}

// Pages returns a copy of the blueprints in presentation order.
func (p *OnboardingPlan) Pages() []PageBlueprint {
	if p == nil {
		return nil
	}
	out := make([]PageBlueprint, len(p.pages))
	copy(out, p.pages)
	return out
}

// Kinds returns the page kinds in presentation order.
func (p *OnboardingPlan) Kinds() []PageKind {
	if p == nil {
		return nil
	}
	kinds := make([]PageKind, len(p.pages))
	for i, page := range p.pages {
		kinds[i] = page.Kind
	}
	return kinds
}

// Facts returns the snapshot the plan was derived from.
func (p *OnboardingPlan) Facts() OnboardingFacts {
	if p == nil {
		return OnboardingFacts{}
	}
	return p.facts
}

// Includes reports whether the plan contains a page of the given kind.
func (p *OnboardingPlan) Includes(kind PageKind) bool {
	for _, k := range p.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

type planJSON struct {
	PageCount int             `json:"page_count"`
	Pages     []PageBlueprint `json:"pages"`
	Facts     OnboardingFacts `json:"facts"`
}

// MarshalJSON exposes the plan to API consumers.
func (p *OnboardingPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(planJSON{
		PageCount: p.Len(),
		Pages:     p.Pages(),
		Facts:     p.Facts(),
	})
}
