package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "speech-search/internal/app/errors"
	"speech-search/internal/app/repository"
)

func TestStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	record, err := store.Insert(ctx, "hello world", "english")
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	got, err := store.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Text)
	assert.Equal(t, "english", got.Language)
	assert.Equal(t, record.CreatedAt, got.CreatedAt)
}

func TestStore_GetUnknownID(t *testing.T) {
	store := NewStore()
	_, err := store.Insert(context.Background(), "something", "hindi")
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "nonexistent-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Transcription not found", apperrors.MessageOf(err))
}

func TestStore_InsertRejectsEmptyText(t *testing.T) {
	store := NewStore()

	_, err := store.Insert(context.Background(), "", "english")
	assert.True(t, apperrors.IsInput(err))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_InsertRegeneratesCollidingID(t *testing.T) {
	store := NewStore()
	ids := []string{"dup", "dup", "fresh"}
	store.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := store.Insert(context.Background(), "one", "english")
	require.NoError(t, err)
	second, err := store.Insert(context.Background(), "two", "english")
	require.NoError(t, err)

	assert.Equal(t, "dup", first.ID)
	assert.Equal(t, "fresh", second.ID)

	got, err := store.Get(context.Background(), "dup")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Text)
}

func TestStore_ListAllIsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Insert(ctx, "first", "english")
	require.NoError(t, err)

	snapshot, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	snapshot[0].Text = "mutated"
	_, err = store.Insert(ctx, "second", "english")
	require.NoError(t, err)

	assert.Len(t, snapshot, 1)
	fresh, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 2)
	assert.Equal(t, "first", fresh[0].Text)
}

func TestStore_ReturnedRecordIsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	record, err := store.Insert(ctx, "original", "english")
	require.NoError(t, err)
	record.Text = "changed"

	got, err := store.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Text)
}

func TestStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	const workers = 50
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			record, err := store.Insert(ctx, fmt.Sprintf("transcript %d", i), "english")
			if !assert.NoError(t, err) {
				return
			}
			ids[i] = record.ID

			// readers race the writers
			_, _ = store.ListAll(ctx)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("transcript %d", i), got.Text)
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}
