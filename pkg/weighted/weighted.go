package weighted

import (
	"math/rand"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Pick returns one element of items chosen at random, where the probability of
// each element is proportional to its weight as reported by the weight
// callback. Negative weights are treated as zero. When every weight is zero
// the pick degrades to a uniform choice so callers never lose access to their
// data because of a missing weight figure.
//
// A nil rng falls back to a package-level source guarded by a mutex, so Pick
// is safe for concurrent use in that mode. Each call performs a fresh draw.
func Pick[T any](rng *rand.Rand, items []T, weight func(T) float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoItems
	}

	var total float64
	for _, item := range items {
		if w := weight(item); w > 0 {
			total += w
		}
	}

	if total <= 0 {
		return items[intn(rng, len(items))], nil
	}

	r := float64n(rng, total)
	for _, item := range items {
		w := weight(item)
		if w <= 0 {
			continue
		}
		if r < w {
			return item, nil
		}
		r -= w
	}

	// Floating point drift can leave r marginally above the last bucket.
	return items[len(items)-1], nil
}

func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	mu.Lock()
	defer mu.Unlock()
	return rnd.Intn(n)
}

func float64n(rng *rand.Rand, max float64) float64 {
	if rng != nil {
		return rng.Float64() * max
	}
	mu.Lock()
	defer mu.Unlock()
	return rnd.Float64() * max
}
