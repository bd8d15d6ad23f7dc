package iocache_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/inatrank/internal/iocache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inat_requests.db")
	cache, err := iocache.Open(path)
	require.NoError(t, err)
	defer cache.Close()

	key := "GET https://api.example.org/v1/observations?page=1"

	_, hit, err := cache.Get(key)
	require.NoError(t, err)
	assert.False(t, hit, "empty cache misses")

	require.NoError(t, cache.Put(key, []byte(`{"total_results":0}`)))

	body, hit, err := cache.Get(key)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `{"total_results":0}`, string(body))
}

func TestCachePutOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := iocache.Open(path)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Put("k", []byte("old")))
	require.NoError(t, cache.Put("k", []byte("new")))

	body, hit, err := cache.Get("k")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "new", string(body))

	n, err := cache.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCachePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	cache, err := iocache.Open(path)
	require.NoError(t, err)
	require.NoError(t, cache.Put("k", []byte("v")))
	require.NoError(t, cache.Close())

	cache, err = iocache.Open(path)
	require.NoError(t, err)
	defer cache.Close()

	body, hit, err := cache.Get("k")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v", string(body))
}

func TestCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := iocache.Open(path)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Put("a", []byte("1")))
	require.NoError(t, cache.Put("b", []byte("2")))
	require.NoError(t, cache.Clear())

	n, err := cache.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}
