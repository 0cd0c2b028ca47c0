package ports

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunInstallMetadataStoreContract runs a suite of tests to verify that an InstallMetadataStore
// implementation adheres to the defined interface contract.
// The store must be fresh (never incremented) when passed in.
func RunInstallMetadataStoreContract(t *testing.T, store InstallMetadataStore) {
	ctx := context.Background()

	t.Run("Starts At Zero", func(t *testing.T) {
		count, err := store.PromotionDialogCount(ctx)
		require.NoError(t, err, "PromotionDialogCount should not return error")
		assert.Equal(t, 0, count)
	})

	t.Run("Record Increments", func(t *testing.T) {
		n, err := store.RecordPromotionDialogShown(ctx)
		require.NoError(t, err, "RecordPromotionDialogShown should not return error")
		assert.Equal(t, 1, n)

		n, err = store.RecordPromotionDialogShown(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		count, err := store.PromotionDialogCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "count should reflect recorded dialogs")
	})

	t.Run("Read Is Side-Effect Free", func(t *testing.T) {
		before, err := store.PromotionDialogCount(ctx)
		require.NoError(t, err)
		after, err := store.PromotionDialogCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Concurrent Records Are Not Lost", func(t *testing.T) {
		before, err := store.PromotionDialogCount(ctx)
		require.NoError(t, err)

		const workers = 8
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.RecordPromotionDialogShown(ctx)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		after, err := store.PromotionDialogCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+workers, after)
	})
}
