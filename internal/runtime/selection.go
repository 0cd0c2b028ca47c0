package runtime

import "github.com/aretw0/firstrun/pkg/domain"

// SelectPageKinds applies the onboarding decision table to a snapshot of facts.
// The result is never empty and Welcome is always first.
//
//	supported | default | prior dialogs | pages
//	false     |    -    |      -        | Welcome
//	true      |  true   |      -        | Welcome
//	true      |  false  |      0        | Welcome, DefaultBrowserPromotion
//	true      |  false  |     >=1       | Welcome
func SelectPageKinds(facts domain.OnboardingFacts) []domain.PageKind {
	kinds := []domain.PageKind{domain.PageWelcome}
	if facts.PromotionEligible() {
		kinds = append(kinds, domain.PageDefaultBrowserPromotion)
	}
	return kinds
}
