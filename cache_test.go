package fixturego

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	key := ScanCacheKey{Path: "/corpus/a/main.go", ModTime: time.Now()}
	scan := &SourceScan{Path: "testdata/corpus/a/main.go"}

	_, ok := cache.GetScan(key)
	assert.False(t, ok)

	cache.SetScan(key, scan)

	got, ok := cache.GetScan(key)
	require.True(t, ok)
	assert.Same(t, scan, got)

	// A different modification time is a different key
	stale := ScanCacheKey{Path: key.Path, ModTime: key.ModTime.Add(time.Second)}
	_, ok = cache.GetScan(stale)
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 10)

	key := ScanCacheKey{Path: "/corpus/a/main.go", ModTime: time.Now()}
	cache.SetScan(key, &SourceScan{})

	_, ok := cache.GetScan(key)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.GetScan(key)
	assert.False(t, ok, "entry should expire after the TTL")
}

func TestCacheEviction(t *testing.T) {
	cache := NewCache(time.Minute, 3)

	base := time.Now()
	for i := 0; i < 5; i++ {
		key := ScanCacheKey{Path: fmt.Sprintf("/corpus/%d/main.go", i), ModTime: base}
		cache.SetScan(key, &SourceScan{})
	}

	stats := cache.Stats()
	assert.Equal(t, int64(3), stats["entries"])
}

func TestCacheDisabled(t *testing.T) {
	cache := NewCache(0, 10)

	key := ScanCacheKey{Path: "/corpus/a/main.go", ModTime: time.Now()}
	cache.SetScan(key, &SourceScan{})

	_, ok := cache.GetScan(key)
	assert.False(t, ok)

	var nilCache *Cache
	_, ok = nilCache.GetScan(key)
	assert.False(t, ok)
	assert.Equal(t, int64(0), nilCache.Stats()["entries"])
}
