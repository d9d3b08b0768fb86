package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/reelshop-lab/reelshop/internal/core/aggregation"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
	"github.com/reelshop-lab/reelshop/internal/metrics"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Service serves product recommendations from the cache slot, recomputing
// from the stores on a miss.
type Service struct {
	events     storage.InteractionStore
	catalog    storage.CatalogStore
	aggregator *aggregation.BucketAggregator
	selector   *Selector
	cache      *Cache

	flights      singleflight.Group
	defaultCount int
	maxCount     int
	nowFn        func() time.Time
}

// Options tunes the HTTP-facing count bounds.
type Options struct {
	DefaultCount int
	MaxCount     int
}

// NewService wires the recommendation path.
func NewService(
	events storage.InteractionStore,
	catalog storage.CatalogStore,
	aggregator *aggregation.BucketAggregator,
	selector *Selector,
	cache *Cache,
	opts Options,
) *Service {
	if events == nil {
		panic("recommend: interaction store must not be nil")
	}
	if catalog == nil {
		panic("recommend: catalog store must not be nil")
	}
	if aggregator == nil {
		panic("recommend: aggregator must not be nil")
	}
	if selector == nil {
		panic("recommend: selector must not be nil")
	}
	if cache == nil {
		panic("recommend: cache must not be nil")
	}
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = DefaultCount
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = DefaultMaxCount
	}

	return &Service{
		events:       events,
		catalog:      catalog,
		aggregator:   aggregator,
		selector:     selector,
		cache:        cache,
		defaultCount: opts.DefaultCount,
		maxCount:     opts.MaxCount,
		nowFn:        time.Now,
	}
}

// GetRecommendations returns at most n products. n <= 0 yields an empty list.
func (s *Service) GetRecommendations(ctx context.Context, n int) ([]v1.Product, error) {
	res, err := s.Recommend(ctx, n)
	if err != nil {
		return nil, err
	}
	return res.Products, nil
}

// Recommend is GetRecommendations plus cache provenance.
func (s *Service) Recommend(ctx context.Context, n int) (*Result, error) {
	if n <= 0 {
		return &Result{Products: []v1.Product{}}, nil
	}

	if snap, ok := s.cache.Get(ctx, n); ok {
		metrics.RecordCacheLookup(true)
		return &Result{Products: snap.Products, ComputedAt: snap.ComputedAt, Cached: true}, nil
	}
	metrics.RecordCacheLookup(false)

	v, err, shared := s.flights.Do(s.flightKey(n), func() (interface{}, error) {
		// Another flight may have filled the slot between our miss and now.
		if snap, ok := s.cache.Get(ctx, n); ok {
			return &Result{Products: snap.Products, ComputedAt: snap.ComputedAt, Cached: true}, nil
		}
		snap, err := s.recompute(context.WithoutCancel(ctx), n)
		if err != nil {
			return nil, err
		}
		return &Result{Products: snap.Products, ComputedAt: snap.ComputedAt}, nil
	})
	if err != nil {
		return nil, err
	}

	res := *v.(*Result)
	if shared {
		// every caller of the flight got the same Result
		res.Products = slices.Clone(res.Products)
		slog.Debug("[Recommend] Joined in-flight recompute", "n", n)
	}
	return &res, nil
}

// flightKey groups concurrent misses that can share one recompute.
func (s *Service) flightKey(n int) string {
	if s.cache.mode == CacheModeShared {
		return defaultFlightName
	}
	return defaultFlightName + ":" + strconv.Itoa(n)
}

// recompute loads the three collections, aggregates, selects and caches.
// Store failures propagate and leave the slot untouched.
func (s *Service) recompute(ctx context.Context, n int) (Snapshot, error) {
	start := s.nowFn()

	var (
		events   []v1.WatchEvent
		videos   []v1.Video
		products []v1.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if events, err = s.events.ReadInteractionEvents(gctx); err != nil {
			metrics.RecordStoreFailure("watch_events")
			return fmt.Errorf("read interaction events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if videos, err = s.catalog.ReadVideoCatalog(gctx); err != nil {
			metrics.RecordStoreFailure("videos")
			return fmt.Errorf("read video catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if products, err = s.catalog.ReadProductCatalog(gctx); err != nil {
			metrics.RecordStoreFailure("products")
			return fmt.Errorf("read product catalog: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.RecordRecompute(s.nowFn().Sub(start), 0, err)
		slog.Error("[Recommend] Recompute failed", "error", err)
		return Snapshot{}, err
	}

	if len(events) == 0 || len(videos) == 0 || len(products) == 0 {
		snap := s.cache.Set(ctx, nil, n)
		metrics.RecordRecompute(s.nowFn().Sub(start), 0, nil)
		slog.Info("[Recommend] Empty collection, caching empty result",
			"events", len(events),
			"videos", len(videos),
			"products", len(products))
		return snap, nil
	}

	weights := s.aggregator.Aggregate(events, videos, products)
	selected := s.selector.Select(products, weights, n)
	snap := s.cache.Set(ctx, selected, n)

	elapsed := s.nowFn().Sub(start)
	metrics.RecordRecompute(elapsed, len(selected), nil)
	slog.Info("[Recommend] Recomputed recommendations",
		"n", n,
		"returned", len(selected),
		"events", len(events),
		"preferred_buckets", len(weights.Preferred()),
		"duration_ms", elapsed.Milliseconds())
	return snap, nil
}

// Count resolves the n query parameter: empty uses the default, anything that
// is not an integer in [1, max] is ErrInvalidCount.
func (s *Service) Count(raw string) (int, error) {
	if raw == "" {
		return s.defaultCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: n must be an integer", ErrInvalidCount)
	}
	if n < 1 || n > s.maxCount {
		return 0, fmt.Errorf("%w: n must be between 1 and %d", ErrInvalidCount, s.maxCount)
	}
	return n, nil
}
