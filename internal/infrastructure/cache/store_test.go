package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-records/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newStore(t *testing.T, ttl time.Duration, size int, clock *fakeClock) *cache.Store[*string] {
	t.Helper()
	store, err := cache.NewStore[*string](ttl, size, cache.WithClock(clock.Now))
	require.NoError(t, err)
	return store
}

func ptr(s string) *string { return &s }

func TestNewStore_RejectsInvalidSettings(t *testing.T) {
	_, err := cache.NewStore[int](0, 10)
	assert.ErrorIs(t, err, cache.ErrInvalidTTL)

	_, err = cache.NewStore[int](time.Minute, 0)
	assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
}

func TestStore_SetThenGet(t *testing.T) {
	store := newStore(t, time.Minute, 10, newFakeClock())

	store.Set("payment:1", ptr("one"))

	value, ok := store.Get("payment:1")
	require.True(t, ok)
	assert.Equal(t, "one", *value)
}

func TestStore_CachesAbsentMarker(t *testing.T) {
	store := newStore(t, time.Minute, 10, newFakeClock())

	store.Set("payment:missing", nil)

	value, ok := store.Get("payment:missing")
	assert.True(t, ok, "nil is a cached value, not a miss")
	assert.Nil(t, value)
}

func TestStore_MissOnUnknownKey(t *testing.T) {
	store := newStore(t, time.Minute, 10, newFakeClock())

	_, ok := store.Get("payment:unknown")

	assert.False(t, ok)
	assert.Equal(t, uint64(1), store.Stats().Misses)
}

func TestStore_Expiration(t *testing.T) {
	clock := newFakeClock()
	store := newStore(t, time.Minute, 10, clock)
	store.Set("k", ptr("v"))

	clock.Advance(59 * time.Second)
	_, ok := store.Get("k")
	assert.True(t, ok, "entry is fresh before the TTL elapses")

	clock.Advance(time.Second)
	_, ok = store.Get("k")
	assert.False(t, ok, "entry expires once the TTL has elapsed")
	assert.Equal(t, 0, store.Len(), "expired entry is removed on read")
	assert.Equal(t, uint64(1), store.Stats().Expirations)
}

func TestStore_ResetRestampsEntry(t *testing.T) {
	clock := newFakeClock()
	store := newStore(t, time.Minute, 10, clock)
	store.Set("k", ptr("old"))

	clock.Advance(45 * time.Second)
	store.Set("k", ptr("new"))
	clock.Advance(45 * time.Second)

	value, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", *value)
}

func TestStore_EvictsOldestInserted(t *testing.T) {
	store := newStore(t, time.Minute, 3, newFakeClock())

	for i := range 5 {
		store.Set(fmt.Sprintf("k%d", i), ptr("v"))
		assert.LessOrEqual(t, store.Len(), 3)
	}

	assert.Equal(t, []string{"k2", "k3", "k4"}, store.Keys())
	assert.Equal(t, uint64(2), store.Stats().Evictions)

	_, ok := store.Get("k0")
	assert.False(t, ok)
	_, ok = store.Get("k1")
	assert.False(t, ok)
}

func TestStore_ReadsDoNotAffectEvictionOrder(t *testing.T) {
	store := newStore(t, time.Minute, 2, newFakeClock())
	store.Set("a", ptr("a"))
	store.Set("b", ptr("b"))

	_, ok := store.Get("a")
	require.True(t, ok)

	store.Set("c", ptr("c"))

	_, ok = store.Get("a")
	assert.False(t, ok, "a was inserted first and is evicted despite the read")
	_, ok = store.Get("b")
	assert.True(t, ok)
}

func TestStore_OverwriteAtCapacityDoesNotEvict(t *testing.T) {
	store := newStore(t, time.Minute, 2, newFakeClock())
	store.Set("a", ptr("a"))
	store.Set("b", ptr("b"))

	store.Set("a", ptr("a2"))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, uint64(0), store.Stats().Evictions)
}

func TestStore_DeleteAndClear(t *testing.T) {
	store := newStore(t, time.Minute, 10, newFakeClock())
	store.Set("a", ptr("a"))
	store.Set("b", ptr("b"))

	store.Delete("a")
	_, ok := store.Get("a")
	assert.False(t, ok)

	store.Delete("never-set")

	store.Clear()
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, cache.Stats{}, store.Stats())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := newStore(t, time.Minute, 8, newFakeClock())

	var wg sync.WaitGroup
	for g := range 16 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 200 {
				key := fmt.Sprintf("k%d", (g*200+i)%32)
				store.Set(key, ptr(key))
				store.Get(key)
				if i%10 == 0 {
					store.Delete(key)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, store.Len(), 8)
}
