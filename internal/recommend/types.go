package recommend

import (
	"errors"
	"fmt"
	"slices"
	"time"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
)

const (
	DefaultCacheTTL   = 300 * time.Second
	DefaultCount      = 20
	DefaultMaxCount   = 100
	defaultFlightName = "recommend"
)

// ErrInvalidCount marks a requested count the HTTP layer must reject.
var ErrInvalidCount = errors.New("invalid recommendation count")

// CacheMode selects how a cached snapshot is matched against the caller's n.
type CacheMode string

const (
	// CacheModeSized serves a hit only when the snapshot can satisfy n.
	CacheModeSized CacheMode = "sized"
	// CacheModeShared serves whatever was cached, regardless of n.
	CacheModeShared CacheMode = "shared"
)

// ParseCacheMode validates a configured cache mode.
func ParseCacheMode(s string) (CacheMode, error) {
	switch CacheMode(s) {
	case CacheModeSized, CacheModeShared:
		return CacheMode(s), nil
	case "":
		return CacheModeSized, nil
	default:
		return "", fmt.Errorf("unsupported cache mode %q", s)
	}
}

// Snapshot is the single cached recommendation result.
type Snapshot struct {
	Products   []v1.Product `json:"products"`
	ComputedAt time.Time    `json:"computed_at"`
	RequestedN int          `json:"requested_n"`
}

// exhausted reports whether the snapshot already holds every product that was
// available when it was computed, so a larger n would not produce more.
func (s Snapshot) exhausted() bool {
	return len(s.Products) < s.RequestedN
}

// clone gives the snapshot its own product slice, so a caller writing to
// the products never reaches the slot.
func (s Snapshot) clone() Snapshot {
	s.Products = slices.Clone(s.Products)
	return s
}

// Result is what GetRecommendations hands back to the HTTP layer.
type Result struct {
	Products   []v1.Product
	ComputedAt time.Time
	Cached     bool
}

// RecommendationResponse is the JSON body of GET /v1/shop/products.
type RecommendationResponse struct {
	Products   []v1.Product `json:"products"`
	Count      int          `json:"count"`
	Cached     bool         `json:"cached"`
	ComputedAt time.Time    `json:"computed_at"`
}
