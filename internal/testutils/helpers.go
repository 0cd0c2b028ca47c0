package testutils

import (
	"context"
	"sync"

	"github.com/aretw0/firstrun/pkg/domain"
)

// StubDetector is a DefaultHandlerDetector with canned answers.
// It records how often each query was made so tests can assert on read order.
type StubDetector struct {
	Supported    bool
	IsDefault    bool
	SupportedErr error
	IsDefaultErr error

	mu             sync.Mutex
	SupportedCalls int
	IsDefaultCalls int
}

func (d *StubDetector) SupportsDefaultHandlerConfiguration() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SupportedCalls++
	return d.Supported, d.SupportedErr
}

func (d *StubDetector) IsCurrentDefaultHandler() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.IsDefaultCalls++
	return d.IsDefault, d.IsDefaultErr
}

// StubStore is an InstallMetadataStore returning a fixed count (or error).
type StubStore struct {
	Count int
	Err   error

	mu sync.Mutex
}

func (s *StubStore) PromotionDialogCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Count, s.Err
}

func (s *StubStore) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Count++
	return s.Count, nil
}

// TitleBuilder is a PageBuilder that titles each page with its kind name.
// If FailOn is set, building that kind returns Err.
type TitleBuilder struct {
	FailOn domain.PageKind
	Err    error
}

func (b TitleBuilder) Build(kind domain.PageKind) (domain.PageBlueprint, error) {
	if b.FailOn != 0 && kind == b.FailOn {
		return domain.PageBlueprint{}, b.Err
	}
	return domain.PageBlueprint{Kind: kind, Title: kind.String()}, nil
}
