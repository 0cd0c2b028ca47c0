package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/firstrun/internal/runtime"
	"github.com/aretw0/firstrun/pkg/domain"
)

// Node IDs of the decision flowchart.
const (
	NodeStart     = "start"
	NodeSupported = "supported"
	NodeIsDefault = "is_default"
	NodeNeverSeen = "never_shown"
	NodeWelcome   = "plan_welcome"
	NodePromotion = "plan_promotion"
)

// PlanOverlay highlights the path a given set of facts takes through the decision.
type PlanOverlay struct {
	Facts domain.OnboardingFacts
}

// DecisionPath returns the flowchart nodes visited for facts, ending at the outcome node.
func DecisionPath(facts domain.OnboardingFacts) []string {
	path := []string{NodeStart, NodeSupported}
	if !facts.DeviceSupportsDefaultHandlerConfiguration {
		return append(path, NodeWelcome)
	}
	path = append(path, NodeIsDefault)
	if facts.IsCurrentDefaultHandler {
		return append(path, NodeWelcome)
	}
	path = append(path, NodeNeverSeen)
	if facts.PriorPromotionDialogCount != 0 {
		return append(path, NodeWelcome)
	}
	return append(path, NodePromotion)
}

// GenerateMermaid produces a Mermaid flowchart of the onboarding decision.
// It applies semantic styling:
// - Start: ((Circle))
// - Question: {Rhombus}
// - Outcome plan: [[Subroutine]]
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(overlay *PlanOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	sb.WriteString(fmt.Sprintf("    %s((\"start\"))\n", NodeStart))
	sb.WriteString(fmt.Sprintf("    %s{\"supports default browser?\"}\n", NodeSupported))
	sb.WriteString(fmt.Sprintf("    %s{\"already default?\"}\n", NodeIsDefault))
	sb.WriteString(fmt.Sprintf("    %s{\"promotion never shown?\"}\n", NodeNeverSeen))
	sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", NodeWelcome, planLabel(false)))
	sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", NodePromotion, planLabel(true)))

	edges := []struct{ from, label, to string }{
		{NodeStart, "", NodeSupported},
		{NodeSupported, "no", NodeWelcome},
		{NodeSupported, "yes", NodeIsDefault},
		{NodeIsDefault, "yes", NodeWelcome},
		{NodeIsDefault, "no", NodeNeverSeen},
		{NodeNeverSeen, "no", NodeWelcome},
		{NodeNeverSeen, "yes", NodePromotion},
	}
	for _, e := range edges {
		arrow := "-->"
		if e.label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", e.label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", e.from, arrow, e.to))
	}

	// Apply Overlay Styles
	if overlay != nil {
		path := DecisionPath(overlay.Facts)

		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, id := range path[:len(path)-1] {
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", path[len(path)-1]))
	}

	return sb.String()
}

func planLabel(promotion bool) string {
	facts := domain.OnboardingFacts{}
	if promotion {
		facts.DeviceSupportsDefaultHandlerConfiguration = true
	}
	kinds := runtime.SelectPageKinds(facts)
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " + ")
}
