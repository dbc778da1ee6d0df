// Copyright Teresa Parreira, 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

func openTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	store, err := Open(types.HistoryConfig{
		DBPath:     filepath.Join(t.TempDir(), "ledger", "history.db"),
		MaxEntries: maxEntries,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	runs := []Run{
		{RunAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), Profile: "abc", Publications: 10, Fingerprint: "f1", Outcome: OutcomeUpdated},
		{RunAt: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC), Profile: "abc", Publications: 10, Fingerprint: "f1", Outcome: OutcomeUnchanged},
		{RunAt: time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC), Profile: "abc", Publications: 0, Fingerprint: "", Outcome: OutcomeError, Detail: "fetching publications: HTTP 429"},
	}
	for _, r := range runs {
		require.NoError(t, store.Record(ctx, r))
	}

	got, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, OutcomeError, got[0].Outcome)
	assert.Equal(t, "fetching publications: HTTP 429", got[0].Detail)
	assert.Equal(t, OutcomeUnchanged, got[1].Outcome)
	assert.Equal(t, OutcomeUpdated, got[2].Outcome)
	assert.Equal(t, "abc", got[0].Profile)
	assert.Equal(t, 10, got[1].Publications)
}

func TestRecord_PrunesOldestBeyondBound(t *testing.T) {
	store := openTestStore(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, Run{
			RunAt:       time.Now(),
			Profile:     "abc",
			Fingerprint: fmt.Sprintf("f%d", i),
			Outcome:     OutcomeUnchanged,
		}))
	}

	got, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// The oldest two entries are gone.
	assert.Equal(t, "f4", got[0].Fingerprint)
	assert.Equal(t, "f2", got[2].Fingerprint)
}

func TestList_LimitAndEmpty(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	got, err := store.List(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	for i := 0; i < 4; i++ {
		require.NoError(t, store.Record(ctx, Run{RunAt: time.Now(), Profile: "p", Outcome: OutcomeUpdated}))
	}

	got, err = store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
