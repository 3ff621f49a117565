package fakeua

import (
	"fmt"
	"math/rand"

	"github.com/dmitrymomot/fakeua/pkg/source"
	"github.com/dmitrymomot/fakeua/pkg/weighted"
)

// Select performs a weighted random pick of one agent string from records.
//
// When browser is non-empty the pick is restricted to records whose browser
// name matches it case-insensitively, with common aliases resolved ("IE" and
// "Internet Explorer" match edge records, "google" matches chrome, and so
// on). An empty browser draws across the full set.
//
// Every call is an independent draw: nothing about a previous selection is
// cached. A nil rng uses a shared seeded source; pass a private *rand.Rand
// for reproducible draws.
func Select(rng *rand.Rand, records []source.Record, browser string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	candidates := records
	if browser != "" {
		want := source.CanonicalBrowser(browser)
		candidates = make([]source.Record, 0, len(records))
		for _, r := range records {
			if source.CanonicalBrowser(r.Browser) == want {
				candidates = append(candidates, r)
			}
		}
		if len(candidates) == 0 {
			return "", fmt.Errorf("%w: %q", ErrBrowserNotFound, browser)
		}
	}

	picked, err := weighted.Pick(rng, candidates, func(r source.Record) float64 {
		return r.Weight
	})
	if err != nil {
		return "", ErrNoRecords
	}

	return picked.UserAgent, nil
}
