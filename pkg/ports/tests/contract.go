package tests

import (
	"testing"

	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/ports"
)

// PageBuilderContractTest is a reusable test suite that verifies if an adapter complies with ports.PageBuilder.
// Building must be total over the PageKind enumeration and reject values outside it.
func PageBuilderContractTest(t *testing.T, builder ports.PageBuilder) {
	t.Helper()

	t.Run("Build_AllKinds", func(t *testing.T) {
		for _, kind := range domain.PageKinds() {
			page, err := builder.Build(kind)
			if err != nil {
				t.Fatalf("unexpected error building %s: %v", kind, err)
			}
			if page.Kind != kind {
				t.Errorf("kind mismatch: got %s, want %s", page.Kind, kind)
			}
			if page.Title == "" {
				t.Errorf("blueprint for %s has no title", kind)
			}
		}
	})

	t.Run("Build_UnknownKind", func(t *testing.T) {
		_, err := builder.Build(domain.PageKind(0))
		if err == nil {
			t.Error("expected error for unknown page kind, got nil")
		}
	})
}
