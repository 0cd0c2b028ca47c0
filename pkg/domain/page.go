package domain

import "fmt"

// PageKind identifies an onboarding page. The set is closed: adding a kind requires
// updating the selection table and every PageBuilder.
type PageKind int

const (
	// PageWelcome is the introductory page. It is always the first page of a plan.
	PageWelcome PageKind = iota + 1
	// PageDefaultBrowserPromotion nudges the user to make the app the default browser.
	PageDefaultBrowserPromotion
)

var pageKindNames = map[PageKind]string{
	PageWelcome:                 "welcome",
	PageDefaultBrowserPromotion: "default_browser_promotion",
}

// PageKinds returns every member of the enumeration in declaration order.
func PageKinds() []PageKind {
	return []PageKind{PageWelcome, PageDefaultBrowserPromotion}
}

// Valid reports whether k is a member of the enumeration.
func (k PageKind) Valid() bool {
	_, ok := pageKindNames[k]
	return ok
}

func (k PageKind) String() string {
	if name, ok := pageKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PageKind(%d)", int(k))
}

// ParsePageKind resolves a page kind from its string name.
func ParsePageKind(name string) (PageKind, error) {
	for k, n := range pageKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPageKind, name)
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name.
func (k PageKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPageKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PageKind) UnmarshalText(text []byte) error {
	parsed, err := ParsePageKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// PageBlueprint is an abstract description of a page's content, independent of layout.
// The selector never inspects it.
type PageBlueprint struct {
	Kind            PageKind `json:"kind" yaml:"kind"`
	Title           string   `json:"title" yaml:"title"`
	Body            string   `json:"body,omitempty" yaml:"body,omitempty"` // Markdown
	PrimaryAction   string   `json:"primary_action,omitempty" yaml:"primary_action,omitempty"`
	SecondaryAction string   `json:"secondary_action,omitempty" yaml:"secondary_action,omitempty"`
}
