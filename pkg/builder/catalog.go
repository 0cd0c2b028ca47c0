package builder

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/firstrun/internal/dto"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed pages.yaml
var defaultCatalog []byte

// Catalog implements ports.PageBuilder from a table of page definitions.
// Every page kind is guaranteed to have an entry once the catalog is loaded.
type Catalog struct {
	entries map[domain.PageKind]dto.PageEntry
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog, "yaml")
	if err != nil {
		panic(fmt.Sprintf("builder: bundled catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. The extension selects the format: .yaml, .yml or .json.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page catalog: %w", err)
	}
	return Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// Parse decodes a catalog in the given format ("yaml", "yml" or "json").
// It rejects unknown page kinds and catalogs that miss any kind.
func Parse(data []byte, format string) (*Catalog, error) {
	var file dto.CatalogFile
	switch format {
	case "json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want yaml, yml or json)", format)
	}

	c := &Catalog{entries: make(map[domain.PageKind]dto.PageEntry, len(file.Pages))}
	for name, raw := range file.Pages {
		kind, err := domain.ParsePageKind(name)
		if err != nil {
			return nil, err
		}
		var entry dto.PageEntry
		if err := mapstructure.Decode(raw, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode page %q: %w", name, err)
		}
		if entry.Title == "" {
			return nil, fmt.Errorf("page %q missing title", name)
		}
		c.entries[kind] = entry
	}

	for _, kind := range domain.PageKinds() {
		if _, ok := c.entries[kind]; !ok {
			return nil, fmt.Errorf("catalog missing page %q", kind)
		}
	}
	return c, nil
}

// Build returns the blueprint for kind.
func (c *Catalog) Build(kind domain.PageKind) (domain.PageBlueprint, error) {
	switch kind {
	case domain.PageWelcome, domain.PageDefaultBrowserPromotion:
		entry := c.entries[kind]
		return domain.PageBlueprint{
			Kind:            kind,
			Title:           entry.Title,
			Body:            strings.TrimSpace(entry.Body),
			PrimaryAction:   entry.PrimaryAction,
			SecondaryAction: entry.SecondaryAction,
		}, nil
	}
	return domain.PageBlueprint{}, fmt.Errorf("%w: %s", domain.ErrUnknownPageKind, kind)
}
