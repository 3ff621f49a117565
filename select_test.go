package fakeua_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakeua"
	"github.com/dmitrymomot/fakeua/pkg/source"
)

func sampleRecords() []source.Record {
	return []source.Record{
		{Browser: "chrome", UserAgent: "UA-A", Weight: 5},
		{Browser: "chrome", UserAgent: "UA-B", Weight: 3},
		{Browser: "firefox", UserAgent: "UA-C", Weight: 2},
	}
}

func TestSelect(t *testing.T) {
	t.Run("result is always a member of the set", func(t *testing.T) {
		records := sampleRecords()
		rng := rand.New(rand.NewSource(1))

		for n := 0; n < 200; n++ {
			ua, err := fakeua.Select(rng, records, "")
			require.NoError(t, err)
			assert.Contains(t, []string{"UA-A", "UA-B", "UA-C"}, ua)
		}
	})

	t.Run("filter returns only matching browser", func(t *testing.T) {
		records := sampleRecords()
		rng := rand.New(rand.NewSource(2))

		for n := 0; n < 200; n++ {
			ua, err := fakeua.Select(rng, records, "chrome")
			require.NoError(t, err)
			assert.Contains(t, []string{"UA-A", "UA-B"}, ua)
		}
	})

	t.Run("single match is deterministic", func(t *testing.T) {
		records := sampleRecords()
		rng := rand.New(rand.NewSource(3))

		for n := 0; n < 50; n++ {
			ua, err := fakeua.Select(rng, records, "firefox")
			require.NoError(t, err)
			assert.Equal(t, "UA-C", ua)
		}
	})

	t.Run("filter is case-insensitive", func(t *testing.T) {
		ua, err := fakeua.Select(rand.New(rand.NewSource(4)), sampleRecords(), "FireFox")
		require.NoError(t, err)
		assert.Equal(t, "UA-C", ua)
	})

	t.Run("filter resolves aliases", func(t *testing.T) {
		records := []source.Record{
			{Browser: "edge", UserAgent: "UA-E", Weight: 1},
		}

		for _, alias := range []string{"ie", "IE", "Internet Explorer", "edge"} {
			ua, err := fakeua.Select(nil, records, alias)
			require.NoError(t, err, "alias %q", alias)
			assert.Equal(t, "UA-E", ua)
		}
	})

	t.Run("empty record set fails", func(t *testing.T) {
		_, err := fakeua.Select(nil, nil, "")
		assert.ErrorIs(t, err, fakeua.ErrNoRecords)

		_, err = fakeua.Select(nil, []source.Record{}, "chrome")
		assert.ErrorIs(t, err, fakeua.ErrNoRecords)
	})

	t.Run("unmatched filter fails", func(t *testing.T) {
		_, err := fakeua.Select(nil, sampleRecords(), "netscape")
		assert.ErrorIs(t, err, fakeua.ErrBrowserNotFound)
	})
}

func TestSelect_Distribution(t *testing.T) {
	// Weights 5/3/2 over 10k unfiltered draws: UA-A should land near 50%.
	records := sampleRecords()
	rng := rand.New(rand.NewSource(42))

	const draws = 10000
	counts := map[string]int{}
	for n := 0; n < draws; n++ {
		ua, err := fakeua.Select(rng, records, "")
		require.NoError(t, err)
		counts[ua]++
	}

	assert.InDelta(t, 0.5, float64(counts["UA-A"])/draws, 0.03)
	assert.InDelta(t, 0.3, float64(counts["UA-B"])/draws, 0.03)
	assert.InDelta(t, 0.2, float64(counts["UA-C"])/draws, 0.03)
}
