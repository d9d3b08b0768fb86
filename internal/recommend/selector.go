package recommend

import (
	"math"
	"math/rand/v2"
	"sort"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/reelshop-lab/reelshop/internal/core/aggregation"
	"github.com/reelshop-lab/reelshop/internal/core/sampling"
)

// DefaultPreferredRatio is the share of n drawn from preferred buckets.
const DefaultPreferredRatio = 0.8

// Selector picks a bounded, diversified product list from the catalog given
// per-bucket preference weights.
type Selector struct {
	ratio   float64
	newRand func() *rand.Rand
}

// NewSelector returns a selector drawing ratio*n items from preferred buckets.
// A ratio outside (0, 1] falls back to DefaultPreferredRatio.
func NewSelector(ratio float64) *Selector {
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultPreferredRatio
	}
	return &Selector{ratio: ratio, newRand: sampling.NewRand}
}

// Select returns at most n distinct products.
//
// With no preference evidence, or when no product sits in a preferred bucket,
// it returns a uniform sample of the catalog. Otherwise floor(ratio*n) items
// (capped by the pool) are drawn from the preferred pool proportionally to
// their bucket weight, the rest of the budget is filled uniformly from every
// product not already drawn, and the combined list is shuffled.
func (s *Selector) Select(products []v1.Product, weights aggregation.Weights, n int) []v1.Product {
	if n <= 0 || len(products) == 0 {
		return []v1.Product{}
	}

	rng := s.newRand()

	if weights.IsZero() {
		return sampling.Uniform(rng, products, n)
	}

	pool := make([]v1.Product, 0, len(products))
	poolWeights := make([]float64, 0, len(products))
	var poolTotal float64
	for _, p := range products {
		w := weights.At(p.BucketID)
		if !w.IsPositive() {
			continue
		}
		pool = append(pool, p)
		f := w.InexactFloat64()
		poolWeights = append(poolWeights, f)
		poolTotal += f
	}
	if len(pool) == 0 {
		return sampling.Uniform(rng, products, n)
	}
	for i := range poolWeights {
		poolWeights[i] /= poolTotal
	}

	nPref := min(int(math.Floor(s.ratio*float64(n))), len(pool))
	preferred := weightedSample(rng, pool, poolWeights, nPref)

	drawn := make(map[string]struct{}, len(preferred))
	for _, p := range preferred {
		drawn[p.ID] = struct{}{}
	}
	candidates := make([]v1.Product, 0, len(products))
	for _, p := range products {
		if _, ok := drawn[p.ID]; ok {
			continue
		}
		candidates = append(candidates, p)
	}
	explore := sampling.Uniform(rng, candidates, n-len(preferred))

	out := make([]v1.Product, 0, len(preferred)+len(explore))
	out = append(out, preferred...)
	out = append(out, explore...)
	sampling.Shuffle(rng, out)
	return out
}

// weightedSample draws k items without replacement with probability
// proportional to weights (Efraimidis-Spirakis). Each item gets the key
// log(u)/w and the k largest keys win. k is capped to the population first.
func weightedSample(rng *rand.Rand, items []v1.Product, weights []float64, k int) []v1.Product {
	k = min(k, len(items))
	if k <= 0 {
		return []v1.Product{}
	}
	if len(items) == 1 {
		return []v1.Product{items[0]}
	}

	type keyed struct {
		idx int
		key float64
	}
	keys := make([]keyed, len(items))
	for i, w := range weights {
		// 1-Float64 is in (0, 1], so log never sees zero.
		keys[i] = keyed{idx: i, key: math.Log(1-rng.Float64()) / w}
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].key > keys[b].key })

	out := make([]v1.Product, k)
	for i := 0; i < k; i++ {
		out[i] = items[keys[i].idx]
	}
	return out
}
