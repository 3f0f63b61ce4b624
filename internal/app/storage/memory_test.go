package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageSaveAndGet(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	id, err := ms.SaveURL(ctx, "https://example.com/a", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "IDs start at 1 so short codes are never empty")

	id2, err := ms.SaveURL(ctx, "https://example.com/b", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	url, err := ms.GetURL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", url)

	_, err = ms.GetURL(ctx, 42)
	assert.ErrorIs(t, err, ErrURLNotFound)
}

func TestMemoryStorageDuplicateOriginal(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	id, err := ms.SaveURL(ctx, "https://example.com", "")
	require.NoError(t, err)

	again, err := ms.SaveURL(ctx, "https://example.com", "")
	assert.ErrorIs(t, err, ErrURLExists)
	assert.Equal(t, id, again)
}

func TestMemoryStorageUserURLs(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	_, err := ms.SaveURL(ctx, "https://example.com/a", "alice")
	require.NoError(t, err)
	_, err = ms.SaveURL(ctx, "https://example.com/b", "alice")
	require.NoError(t, err)
	_, err = ms.SaveURL(ctx, "https://example.com/c", "bob")
	require.NoError(t, err)

	urls, err := ms.UserURLs(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Equal(t, "https://example.com/a", urls[1])

	urls, err = ms.UserURLs(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestMemoryStorageRestore(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	ms.Restore(7, "https://example.com/old")

	url, err := ms.GetURL(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/old", url)

	// the counter continues past the restored IDs
	id, err := ms.SaveURL(ctx, "https://example.com/new", "")
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)

	// restoring an existing original keeps duplicate detection working
	_, err = ms.SaveURL(ctx, "https://example.com/old", "")
	assert.ErrorIs(t, err, ErrURLExists)
}
