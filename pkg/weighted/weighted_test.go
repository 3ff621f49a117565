package weighted_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakeua/pkg/weighted"
)

type item struct {
	name   string
	weight float64
}

func itemWeight(i item) float64 { return i.weight }

func TestPick_Basic(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := weighted.Pick(nil, []item{}, itemWeight)
		assert.ErrorIs(t, err, weighted.ErrNoItems)
	})

	t.Run("single item", func(t *testing.T) {
		got, err := weighted.Pick(nil, []item{{"only", 1}}, itemWeight)
		require.NoError(t, err)
		assert.Equal(t, "only", got.name)
	})

	t.Run("result is a member of the input", func(t *testing.T) {
		items := []item{{"a", 5}, {"b", 3}, {"c", 2}}
		rng := rand.New(rand.NewSource(1))

		for n := 0; n < 100; n++ {
			got, err := weighted.Pick(rng, items, itemWeight)
			require.NoError(t, err)
			assert.Contains(t, []string{"a", "b", "c"}, got.name)
		}
	})

	t.Run("zero-weight item is never drawn", func(t *testing.T) {
		items := []item{{"live", 1}, {"dead", 0}}
		rng := rand.New(rand.NewSource(2))

		for n := 0; n < 100; n++ {
			got, err := weighted.Pick(rng, items, itemWeight)
			require.NoError(t, err)
			assert.Equal(t, "live", got.name)
		}
	})

	t.Run("all-zero weights fall back to uniform", func(t *testing.T) {
		items := []item{{"a", 0}, {"b", 0}}
		rng := rand.New(rand.NewSource(3))

		seen := map[string]bool{}
		for n := 0; n < 200; n++ {
			got, err := weighted.Pick(rng, items, itemWeight)
			require.NoError(t, err)
			seen[got.name] = true
		}
		assert.True(t, seen["a"])
		assert.True(t, seen["b"])
	})

	t.Run("nil rng uses package source", func(t *testing.T) {
		got, err := weighted.Pick(nil, []item{{"a", 1}, {"b", 1}}, itemWeight)
		require.NoError(t, err)
		assert.Contains(t, []string{"a", "b"}, got.name)
	})
}

func TestPick_Distribution(t *testing.T) {
	// Weights 5/3/2 over 10k draws should land near 50%/30%/20%.
	items := []item{{"a", 5}, {"b", 3}, {"c", 2}}
	rng := rand.New(rand.NewSource(42))

	const draws = 10000
	counts := map[string]int{}
	for n := 0; n < draws; n++ {
		got, err := weighted.Pick(rng, items, itemWeight)
		require.NoError(t, err)
		counts[got.name]++
	}

	assert.InDelta(t, 0.5, float64(counts["a"])/draws, 0.03)
	assert.InDelta(t, 0.3, float64(counts["b"])/draws, 0.03)
	assert.InDelta(t, 0.2, float64(counts["c"])/draws, 0.03)
}
