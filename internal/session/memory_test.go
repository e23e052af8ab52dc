package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMemoryStore() (*MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.Now
	return store, clock
}

func TestMemoryStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestMemoryStore()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	snap := Snapshot{Search: "iphone", Category: "electronics"}
	require.NoError(t, store.Put(ctx, "s1", snap, time.Hour))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "iphone", got.Search)
	assert.Equal(t, 1, store.Count())

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, "s1"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore()

	require.NoError(t, store.Put(ctx, "short", Snapshot{}, time.Minute))
	require.NoError(t, store.Put(ctx, "long", Snapshot{}, time.Hour))

	clock.Advance(time.Minute)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound, "expired sessions must be invisible before the sweep")
	assert.Equal(t, 2, store.Count())

	removed := store.Sweep(clock.Now())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Count())

	_, err = store.Get(ctx, "long")
	assert.NoError(t, err)
}

func TestMemoryStorePutRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore()

	require.NoError(t, store.Put(ctx, "s", Snapshot{}, time.Minute))
	clock.Advance(50 * time.Second)
	require.NoError(t, store.Put(ctx, "s", Snapshot{Search: "x"}, time.Minute))
	clock.Advance(50 * time.Second)

	got, err := store.Get(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Search)
}

func TestMemoryStoreMetadata(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, "memory", store.Name())
	assert.NoError(t, store.Ping(context.Background()))
}
