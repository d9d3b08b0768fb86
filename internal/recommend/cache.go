package recommend

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/reelshop-lab/reelshop/internal/metrics"
)

// Slot holds at most one Snapshot. Implementations must make Store atomic
// and discard a snapshot older than the one already held.
type Slot interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Store(ctx context.Context, snap Snapshot) error
}

// MemorySlot is the in-process Slot.
type MemorySlot struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewMemorySlot returns an empty in-process slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load returns a copy of the held snapshot.
func (m *MemorySlot) Load(_ context.Context) (Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return Snapshot{}, false, nil
	}
	return m.snap.clone(), true, nil
}

// Store keeps a copy of snap unless the held snapshot is newer.
func (m *MemorySlot) Store(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap != nil && snap.ComputedAt.Before(m.snap.ComputedAt) {
		return nil
	}
	held := snap.clone()
	m.snap = &held
	return nil
}

// Cache is the single-slot, TTL-bounded recommendation memo.
type Cache struct {
	slot  Slot
	ttl   time.Duration
	mode  CacheMode
	nowFn func() time.Time
}

// NewCache wraps a slot. A non-positive ttl uses DefaultCacheTTL.
func NewCache(slot Slot, ttl time.Duration, mode CacheMode) *Cache {
	if slot == nil {
		panic("recommend: cache slot must not be nil")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if mode == "" {
		mode = CacheModeSized
	}
	return &Cache{
		slot: slot,
		ttl:  ttl,
		mode: mode,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// TTL returns the configured freshness bound.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns a fresh snapshot usable for a request of n products.
//
// A snapshot is fresh while now - computed_at < TTL. In shared mode any fresh
// snapshot is served as-is. In sized mode it is served only if it was computed
// for at least n products (and is truncated to n) or if it already holds every
// product that was available. A slot read error is logged and treated as a miss.
// The returned snapshot owns its product slice.
func (c *Cache) Get(ctx context.Context, n int) (Snapshot, bool) {
	snap, ok, err := c.slot.Load(ctx)
	if err != nil {
		slog.Warn("[Recommend] Cache slot read failed, recomputing", "error", err)
		metrics.RecordStoreFailure("cache_slot")
		return Snapshot{}, false
	}
	if !ok || c.nowFn().Sub(snap.ComputedAt) >= c.ttl {
		return Snapshot{}, false
	}

	if c.mode == CacheModeShared {
		return snap.clone(), true
	}

	if snap.RequestedN < n && !snap.exhausted() {
		return Snapshot{}, false
	}
	snap = snap.clone()
	if len(snap.Products) > n {
		snap.Products = snap.Products[:n:n]
	}
	return snap, true
}

// Set stamps products with computed_at = now and writes them to the slot,
// replacing whatever was there. A write failure is logged and the snapshot is
// still returned so the caller can serve it.
func (c *Cache) Set(ctx context.Context, products []v1.Product, n int) Snapshot {
	if products == nil {
		products = []v1.Product{}
	}
	snap := Snapshot{
		Products:   slices.Clone(products),
		ComputedAt: c.nowFn(),
		RequestedN: n,
	}
	if err := c.slot.Store(ctx, snap); err != nil {
		slog.Warn("[Recommend] Cache slot write failed", "error", err)
		metrics.RecordStoreFailure("cache_slot")
	}
	return snap.clone()
}
