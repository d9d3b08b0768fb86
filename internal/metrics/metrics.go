package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-wide Prometheus collectors, served on GET /metrics.
// Covers the recommendation cache and recompute path, catalog uploads and
// interaction ingestion.

const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

var (
	// Recommendation cache
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelshop_recommend_cache_hits_total",
			Help: "Recommendation requests served from the cache slot",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelshop_recommend_cache_misses_total",
			Help: "Recommendation requests that required a recompute",
		},
	)

	// Recompute path
	Recomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelshop_recommend_recomputes_total",
			Help: "Recommendation recomputes by outcome",
		},
		[]string{"result"}, // "ok", "empty", "error"
	)

	RecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelshop_recommend_recompute_duration_seconds",
			Help:    "Duration of a full recommendation recompute in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendedItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelshop_recommend_items_total",
			Help: "Products produced by recomputes",
		},
	)

	StoreFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelshop_store_failures_total",
			Help: "Failed store and cache slot operations by collection",
		},
		[]string{"collection"}, // "watch_events", "videos", "products"
	)

	// Write paths
	InteractionsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelshop_interactions_ingested_total",
			Help: "Watch events appended to the interaction store",
		},
	)

	CatalogUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelshop_catalog_uploads_total",
			Help: "Catalog records created by kind and status",
		},
		[]string{"kind", "status"},
	)
)

// RecordCacheLookup records one cache lookup outcome.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
		return
	}
	CacheMisses.Inc()
}

// RecordRecompute records a recompute: its latency, how many products it
// produced, and whether it failed.
func RecordRecompute(duration time.Duration, items int, err error) {
	RecomputeDuration.Observe(duration.Seconds())
	switch {
	case err != nil:
		Recomputes.WithLabelValues(ResultError).Inc()
	case items == 0:
		Recomputes.WithLabelValues(ResultEmpty).Inc()
	default:
		Recomputes.WithLabelValues(ResultOK).Inc()
		RecommendedItems.Add(float64(items))
	}
}

// RecordStoreFailure counts a failed read of one collection or cache slot access.
func RecordStoreFailure(collection string) {
	StoreFailures.WithLabelValues(collection).Inc()
}

// RecordInteraction counts an appended watch event.
func RecordInteraction() {
	InteractionsIngested.Inc()
}

// RecordUpload counts a created catalog record.
func RecordUpload(kind, status string) {
	CatalogUploads.WithLabelValues(kind, status).Inc()
}
