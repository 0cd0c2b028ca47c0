package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/firstrun"
	"github.com/aretw0/firstrun/internal/presentation/graph"
	"github.com/aretw0/firstrun/internal/presentation/tui"
	"github.com/aretw0/firstrun/pkg/domain"
)

// PlanOptions configures the 'plan' command.
type PlanOptions struct {
	Options
	JSON bool
}

func buildPlan(ctx context.Context, opts Options) (*domain.OnboardingPlan, error) {
	engine, done, err := engineFor(opts)
	if err != nil {
		return nil, err
	}
	defer done()

	plan, err := engine.BuildPageBlueprints(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building plan: %w", err)
	}
	return plan, nil
}

// RunPlan builds the onboarding plan and prints it.
func RunPlan(ctx context.Context, opts PlanOptions) error {
	plan, err := buildPlan(ctx, opts.Options)
	if err != nil {
		return err
	}

	out := opts.out()
	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	tui.PrintPlan(out, plan)
	return nil
}

// RunPreview builds the plan and renders every page as it would read on screen.
// Markdown is styled with glamour when writing to a terminal and passed through otherwise.
func RunPreview(ctx context.Context, opts Options) error {
	plan, err := buildPlan(ctx, opts)
	if err != nil {
		return err
	}

	out := opts.out()
	render := tui.PlainRenderer
	if isTerminal(out) {
		tui.PrintBanner(out, firstrun.Version)
		render = tui.NewRenderer()
	}
	return tui.PreviewPlan(out, plan, render)
}

// RunGraph prints the decision flowchart. With overlay, the path taken by the
// current facts is highlighted.
func RunGraph(ctx context.Context, opts Options, overlay bool) error {
	if !overlay {
		fmt.Fprint(opts.out(), graph.GenerateMermaid(nil))
		return nil
	}

	plan, err := buildPlan(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Fprint(opts.out(), graph.GenerateMermaid(&graph.PlanOverlay{Facts: plan.Facts()}))
	return nil
}
