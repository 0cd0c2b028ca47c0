package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/firstrun/pkg/domain"
)

// PrintPlan writes a compact summary of the plan, one line per page.
func PrintPlan(w io.Writer, plan *domain.OnboardingPlan) {
	for i, page := range plan.Pages() {
		fmt.Fprintf(w, "%d. %-26s %s\n", i+1, page.Kind, page.Title)
	}
	fmt.Fprintf(w, "pages: %d\n", plan.Len())
}

// PreviewPlan renders every page body through render, separated by rules,
// followed by the page actions.
func PreviewPlan(w io.Writer, plan *domain.OnboardingPlan, render Renderer) error {
	pages := plan.Pages()
	for i, page := range pages {
		fmt.Fprintf(w, "── page %d/%d: %s ──\n", i+1, len(pages), page.Kind)

		body := page.Body
		if body == "" {
			body = "# " + page.Title
		}
		out, err := render(body)
		if err != nil {
			return fmt.Errorf("failed to render page %s: %w", page.Kind, err)
		}
		fmt.Fprint(w, out)

		var actions []string
		if page.PrimaryAction != "" {
			actions = append(actions, "[ "+page.PrimaryAction+" ]")
		}
		if page.SecondaryAction != "" {
			actions = append(actions, "( "+page.SecondaryAction+" )")
		}
		if len(actions) > 0 {
			fmt.Fprintln(w, "  "+strings.Join(actions, "  "))
		}
		fmt.Fprintln(w)
	}
	return nil
}
