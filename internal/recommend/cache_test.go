package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCache(slot Slot, mode CacheMode) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCache(slot, 300*time.Second, mode)
	c.nowFn = clock.Now
	return c, clock
}

func productIDs(products []v1.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestMemorySlot_DiscardsOlderSnapshot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, ok, err := slot.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, slot.Store(ctx, Snapshot{Products: makeProducts("new", 0, 1), ComputedAt: t0.Add(time.Minute)}))
	require.NoError(t, slot.Store(ctx, Snapshot{Products: makeProducts("old", 0, 1), ComputedAt: t0}))

	snap, ok, err := slot.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "new-00", snap.Products[0].ID)
	require.Equal(t, t0.Add(time.Minute), snap.ComputedAt)
}

func TestMemorySlot_CopiesOnLoadAndStore(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	products := makeProducts("p", 0, 2)

	require.NoError(t, slot.Store(ctx, Snapshot{Products: products, ComputedAt: time.Now()}))
	products[0].ID = "changed-after-store"

	snap, ok, err := slot.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"p-00", "p-01"}, productIDs(snap.Products))

	snap.Products[1].ID = "changed-after-load"
	again, _, err := slot.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"p-00", "p-01"}, productIDs(again.Products))
}

func TestCache_SetReturnsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(NewMemorySlot(), CacheModeSized)
	selected := makeProducts("p", 0, 3)

	snap := c.Set(ctx, selected, 3)
	selected[0].ID = "reused-by-caller"
	snap.Products[1].ID = "served-and-edited"

	got, ok := c.Get(ctx, 3)
	require.True(t, ok)
	require.Equal(t, []string{"p-00", "p-01", "p-02"}, productIDs(got.Products))
}

func TestCache_GetRespectsTTL(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(NewMemorySlot(), CacheModeSized)

	_, ok := c.Get(ctx, 5)
	require.False(t, ok, "empty slot is a miss")

	stored := c.Set(ctx, makeProducts("p", 0, 5), 5)
	require.Equal(t, clock.now, stored.ComputedAt)

	clock.Advance(299 * time.Second)
	snap, ok := c.Get(ctx, 5)
	require.True(t, ok)
	require.Equal(t, productIDs(stored.Products), productIDs(snap.Products))

	clock.Advance(time.Second)
	_, ok = c.Get(ctx, 5)
	require.False(t, ok, "now - computed_at == TTL is stale")
}

func TestCache_SizedMode(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(NewMemorySlot(), CacheModeSized)
	c.Set(ctx, makeProducts("p", 0, 20), 20)

	snap, ok := c.Get(ctx, 5)
	require.True(t, ok)
	require.Equal(t, []string{"p-00", "p-01", "p-02", "p-03", "p-04"}, productIDs(snap.Products))

	snap, ok = c.Get(ctx, 20)
	require.True(t, ok)
	require.Len(t, snap.Products, 20)

	_, ok = c.Get(ctx, 21)
	require.False(t, ok, "snapshot computed for fewer items must not serve a larger n")
}

func TestCache_SizedModeServesExhaustedSnapshot(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(NewMemorySlot(), CacheModeSized)

	// Only 3 products existed when 20 were requested.
	c.Set(ctx, makeProducts("p", 0, 3), 20)

	snap, ok := c.Get(ctx, 50)
	require.True(t, ok)
	require.Len(t, snap.Products, 3)

	snap, ok = c.Get(ctx, 2)
	require.True(t, ok)
	require.Len(t, snap.Products, 2)
}

func TestCache_EmptyResultIsAHitForAnyN(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(NewMemorySlot(), CacheModeSized)

	stored := c.Set(ctx, nil, 20)
	require.NotNil(t, stored.Products)

	snap, ok := c.Get(ctx, 100)
	require.True(t, ok)
	require.Empty(t, snap.Products)
}

func TestCache_SharedModeIgnoresN(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(NewMemorySlot(), CacheModeShared)
	c.Set(ctx, makeProducts("p", 0, 5), 5)

	snap, ok := c.Get(ctx, 20)
	require.True(t, ok)
	require.Len(t, snap.Products, 5)

	snap, ok = c.Get(ctx, 2)
	require.True(t, ok)
	require.Len(t, snap.Products, 5, "shared mode returns the cached sequence as-is")
}

type failingSlot struct{}

func (failingSlot) Load(context.Context) (Snapshot, bool, error) {
	return Snapshot{}, false, errors.New("connection refused")
}

func (failingSlot) Store(context.Context, Snapshot) error {
	return errors.New("connection refused")
}

func TestCache_SlotErrorsDegradeToMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(failingSlot{}, CacheModeSized)

	snap := c.Set(ctx, makeProducts("p", 0, 2), 2)
	require.Len(t, snap.Products, 2, "computed result is still handed back")

	_, ok := c.Get(ctx, 2)
	require.False(t, ok)
}

func TestParseCacheMode(t *testing.T) {
	mode, err := ParseCacheMode("")
	require.NoError(t, err)
	require.Equal(t, CacheModeSized, mode)

	mode, err = ParseCacheMode("shared")
	require.NoError(t, err)
	require.Equal(t, CacheModeShared, mode)

	_, err = ParseCacheMode("per-n")
	require.ErrorContains(t, err, `unsupported cache mode "per-n"`)
}
