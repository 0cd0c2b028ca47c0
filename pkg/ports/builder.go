package ports

import "github.com/aretw0/firstrun/pkg/domain"

// PageBuilder materializes a blueprint for a page kind.
// Build must succeed for every member of the domain.PageKind enumeration.
type PageBuilder interface {
	Build(kind domain.PageKind) (domain.PageBlueprint, error)
}

// PageBuilderFunc adapts a function to the PageBuilder interface.
type PageBuilderFunc func(kind domain.PageKind) (domain.PageBlueprint, error)

// Build calls f(kind).
func (f PageBuilderFunc) Build(kind domain.PageKind) (domain.PageBlueprint, error) {
	return f(kind)
}
