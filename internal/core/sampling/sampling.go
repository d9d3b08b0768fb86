package sampling

import "math/rand/v2"

// NewRand returns a generator with its own PCG stream, seeded from the
// runtime's concurrency-safe global source. Use one per request.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Uniform draws min(k, len(items)) items without replacement, each subset
// equally likely. items is not modified. The result is never nil.
func Uniform[T any](rng *rand.Rand, items []T, k int) []T {
	k = min(k, len(items))
	if k <= 0 {
		return []T{}
	}
	cp := make([]T, len(items))
	copy(cp, items)
	// partial Fisher-Yates
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:k]
}

// Shuffle permutes items in place uniformly.
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
