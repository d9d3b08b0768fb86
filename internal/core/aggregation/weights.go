package aggregation

import (
	"fmt"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/shopspring/decimal"
)

// Weights is the per-bucket preference vector derived from watch events.
// Index is bucket_id. It is rebuilt on every recompute and never persisted.
type Weights struct {
	values []decimal.Decimal
}

// NewWeights builds a vector from raw per-bucket values. Index i is bucket i.
func NewWeights(values ...int64) Weights {
	w := Weights{values: make([]decimal.Decimal, len(values))}
	for i, v := range values {
		w.values[i] = decimal.NewFromInt(v)
	}
	return w
}

// Len returns the vector length (max bucket id + 1).
func (w Weights) Len() int {
	return len(w.values)
}

// At returns the weight of a bucket. Buckets outside the vector weigh zero.
func (w Weights) At(bucket int) decimal.Decimal {
	if bucket < 0 || bucket >= len(w.values) {
		return decimal.Zero
	}
	return w.values[bucket]
}

// Total returns the summed weight across all buckets.
func (w Weights) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range w.values {
		total = total.Add(v)
	}
	return total
}

// IsZero reports whether there is no preference evidence at all.
func (w Weights) IsZero() bool {
	return w.Total().IsZero()
}

// Preferred returns the buckets with strictly positive weight, ascending.
func (w Weights) Preferred() []int {
	var buckets []int
	for b, v := range w.values {
		if v.IsPositive() {
			buckets = append(buckets, b)
		}
	}
	return buckets
}

// BucketAggregator reduces watch events into a Weights vector using one
// registered operator.
type BucketAggregator struct {
	operator     string
	contribution Contribution
}

// NewBucketAggregator returns an aggregator for the named operator.
func NewBucketAggregator(operator string) (*BucketAggregator, error) {
	contribution, ok := Operators[operator]
	if !ok {
		return nil, fmt.Errorf("unsupported weighting operator %q", operator)
	}
	return &BucketAggregator{operator: operator, contribution: contribution}, nil
}

// Operator returns the operator name this aggregator was built with.
func (a *BucketAggregator) Operator() string {
	return a.operator
}

// Aggregate folds watch events into per-bucket weights using the configured operator.
//
// Events whose video is unknown or has no bucket are dropped silently; so are
// events with a negative watch time. The vector is sized to the larger of the
// highest bucket referenced by a resolved event and the highest product
// bucket, so every product bucket indexes in range. With no resolvable events
// the result is an all-zero vector, which is a valid outcome.
func (a *BucketAggregator) Aggregate(events []v1.WatchEvent, videos []v1.Video, products []v1.Product) Weights {
	bucketByVideo := make(map[string]int, len(videos))
	for _, video := range videos {
		if video.Mapped() {
			bucketByVideo[video.ID] = video.BucketID
		}
	}

	maxBucket := -1
	for _, product := range products {
		maxBucket = max(maxBucket, product.BucketID)
	}

	type resolved struct {
		bucket int
		watch  decimal.Decimal
	}
	hits := make([]resolved, 0, len(events))
	for _, evt := range events {
		bucket, ok := bucketByVideo[evt.VideoID]
		if !ok || evt.WatchTimeMS < 0 {
			continue
		}
		maxBucket = max(maxBucket, bucket)
		hits = append(hits, resolved{bucket: bucket, watch: decimal.NewFromInt(evt.WatchTimeMS)})
	}

	w := Weights{values: make([]decimal.Decimal, maxBucket+1)}
	for i := range w.values {
		w.values[i] = decimal.Zero
	}
	for _, hit := range hits {
		w.values[hit.bucket] = w.values[hit.bucket].Add(a.contribution.Of(hit.watch))
	}

	return w
}

// Aggregate reduces events with the default sum-of-watch-time operator.
func Aggregate(events []v1.WatchEvent, videos []v1.Video, products []v1.Product) Weights {
	return defaultAggregator.Aggregate(events, videos, products)
}

var defaultAggregator = &BucketAggregator{operator: OpSum, contribution: Operators[OpSum]}
