package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faraid-agent/domain"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v1"))
	val, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", val)

	require.NoError(t, cache.Set("k", "v2"))
	val, _ = cache.Get("k")
	assert.Equal(t, "v2", val)
}

func TestDocumentRepositoryMemory(t *testing.T) {
	repo := NewDocumentRepositoryMemory()

	assert.Empty(t, repo.ByUser(1))

	require.NoError(t, repo.Save(domain.Document{UserID: 1, Filename: "a.txt"}))
	require.NoError(t, repo.Save(domain.Document{UserID: 1, Filename: "b.txt"}))
	require.NoError(t, repo.Save(domain.Document{UserID: 2, Filename: "c.txt"}))

	docs := repo.ByUser(1)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].Filename)
	assert.Equal(t, "b.txt", docs[1].Filename)
	assert.Len(t, repo.ByUser(2), 1)

	// Mutating the returned slice must not affect the stored documents.
	docs[0].Filename = "mutated"
	assert.Equal(t, "a.txt", repo.ByUser(1)[0].Filename)
}
