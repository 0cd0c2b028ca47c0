package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/firstrun/pkg/ports"
)

// MockStore is an in-memory implementation of InstallMetadataStore for testing purposes.
type MockStore struct {
	mu    sync.Mutex
	count int
}

func (m *MockStore) PromotionDialogCount(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count, nil
}

func (m *MockStore) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	return m.count, nil
}

func TestInstallMetadataStore_Contract(t *testing.T) {
	// This test verifies the contract suite itself against the simplest possible store.
	ports.RunInstallMetadataStoreContract(t, &MockStore{})
}
