package fixturego

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolExhaustion(t *testing.T) {
	pool := NewPool(2)

	first, err := pool.Get(1, "first", 100)
	require.NoError(t, err)
	second, err := pool.Get(2, "second", 200)
	require.NoError(t, err)

	_, err = pool.Get(3, "third", 300)
	require.ErrorIs(t, err, ErrExhausted)

	// Releasing one record makes room for exactly one more
	pool.Put(first)
	third, err := pool.Get(3, "third", 300)
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID())

	_, err = pool.Get(4, "fourth", 400)
	require.ErrorIs(t, err, ErrExhausted)

	pool.Put(second)
	pool.Put(third)
}

func TestPoolReuse(t *testing.T) {
	pool := NewPool(1)

	first, err := pool.Get(1, "first", 100)
	require.NoError(t, err)
	pool.Put(first)

	second, err := pool.Get(2, "second", 200)
	require.NoError(t, err)

	// The released record's storage comes back fully reinitialized
	assert.Same(t, first, second)
	assert.Equal(t, 2, second.ID())
	assert.Equal(t, "second", second.Name())
	assert.Equal(t, 200.0, second.Salary())

	stats := pool.Stats()
	assert.Equal(t, int64(1), stats["allocated"])
	assert.Equal(t, int64(1), stats["reuses"])
}

func TestPoolTruncatesNames(t *testing.T) {
	pool := NewPool(1)

	long := make([]byte, MaxNameLen+10)
	for i := range long {
		long[i] = 'x'
	}

	rec, err := pool.Get(1, string(long), 100)
	require.NoError(t, err)
	assert.Len(t, rec.Name(), MaxNameLen)
}

func TestPoolUnbounded(t *testing.T) {
	pool := NewPool(0)

	for i := 0; i < 100; i++ {
		_, err := pool.Get(i, "rec", float64(i))
		require.NoError(t, err)
	}

	stats := pool.Stats()
	assert.Equal(t, int64(100), stats["allocated"])
}

func TestPoolDoubleRelease(t *testing.T) {
	pool := NewPool(2)

	first, err := pool.Get(1, "first", 100)
	require.NoError(t, err)

	// A second release of the same record must not park it twice
	pool.Put(first)
	pool.Put(first)

	stats := pool.Stats()
	assert.Equal(t, int64(1), stats["free"])

	a, err := pool.Get(2, "second", 200)
	require.NoError(t, err)
	b, err := pool.Get(3, "third", 300)
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	pool.Put(a)
	pool.Put(b)
}

func TestPoolPutNil(t *testing.T) {
	pool := NewPool(1)
	pool.Put(nil)

	stats := pool.Stats()
	assert.Equal(t, int64(0), stats["free"])
}

func TestPoolConcurrentAccess(t *testing.T) {
	pool := NewPool(0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				rec, err := pool.Get(id, "worker", 1.0)
				if err != nil && !errors.Is(err, ErrExhausted) {
					t.Errorf("Get() error = %v", err)
					return
				}
				pool.Put(rec)
			}
		}(i)
	}
	wg.Wait()
}
