package builder

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/firstrun/internal/dto"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/loam"
)

// LoadDirectory reads one markdown document per page kind from dir, named after the kind
// (welcome.md, default_browser_promotion.md). Frontmatter carries the title and actions;
// the document body becomes the page body.
func LoadDirectory(dir string) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid page directory: %w", err)
	}

	// Pages are only read, never written back.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open page directory: %w", err)
	}
	typedRepo := loam.NewTypedRepository[dto.PageEntry](repo)

	ctx := context.Background()
	c := &Catalog{entries: make(map[domain.PageKind]dto.PageEntry, len(domain.PageKinds()))}
	for _, kind := range domain.PageKinds() {
		doc, err := typedRepo.Get(ctx, kind.String())
		if err != nil {
			return nil, fmt.Errorf("catalog missing page %q: %w", kind, err)
		}

		entry := doc.Data
		if body := strings.TrimSpace(doc.Content); body != "" {
			entry.Body = body
		}
		if entry.Title == "" {
			return nil, fmt.Errorf("page %q missing title", kind)
		}
		c.entries[kind] = entry
	}
	return c, nil
}
