package memory

import (
	"context"
	"sync"
)

// Store implements ports.InstallMetadataStore in memory.
// Safe for concurrent use. Counts are lost when the process exits.
type Store struct {
	mu    sync.RWMutex
	count int
}

// NewStore creates a new in-memory store, optionally seeded with a prior dialog count.
func NewStore(initial ...int) *Store {
	s := &Store{}
	if len(initial) > 0 && initial[0] > 0 {
		s.count = initial[0]
	}
	return s
}

// PromotionDialogCount returns the recorded number of promotion dialogs.
func (s *Store) PromotionDialogCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count, nil
}

// RecordPromotionDialogShown increments the counter.
func (s *Store) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.count, nil
}
