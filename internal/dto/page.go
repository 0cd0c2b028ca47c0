package dto

// PageEntry is one page definition in a catalog file.
// It uses "mapstructure" tags to match the YAML/JSON keys.
type PageEntry struct {
	Title           string `json:"title" mapstructure:"title"`
	Body            string `json:"body" mapstructure:"body"`
	PrimaryAction   string `json:"primary_action" mapstructure:"primary_action"`
	SecondaryAction string `json:"secondary_action" mapstructure:"secondary_action"`
}

// CatalogFile represents the structure of a page catalog (pages.yaml).
// Pages are keyed by page kind name; values are decoded into PageEntry.
type CatalogFile struct {
	Pages map[string]any `json:"pages" yaml:"pages"`
}
