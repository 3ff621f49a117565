// Package weighted implements weighted random selection over arbitrary slices.
//
// The single entry point is Pick, a generic function that draws one element
// from a slice with probability proportional to a caller-supplied weight.
// It is deliberately tiny: no cumulative tables, no precomputation, no state
// beyond an optional fallback random source. For the slice sizes this package
// is used with (tens to a few hundred elements) a linear scan per draw is
// faster than maintaining an alias table would be worth.
//
// # Usage
//
//	type server struct {
//		addr   string
//		weight float64
//	}
//
//	picked, err := weighted.Pick(nil, servers, func(s server) float64 {
//		return s.weight
//	})
//	if err != nil {
//		// only possible error is weighted.ErrNoItems
//	}
//
// Passing a *rand.Rand gives deterministic draws for tests; passing nil uses
// a package-level seeded source protected by a mutex.
//
// # Edge Cases
//
//   - Empty input returns ErrNoItems.
//   - Weights <= 0 are excluded from the draw.
//   - If every weight is <= 0 the draw is uniform across all items.
package weighted
