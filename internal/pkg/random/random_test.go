package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := random.New(42)
	b := random.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, uint64(42), a.Seed())
}

func TestSeedFromPhrase(t *testing.T) {
	assert.Equal(t, random.SeedFromPhrase("deep halls"), random.SeedFromPhrase("deep halls"))
	assert.NotEqual(t, random.SeedFromPhrase("deep halls"), random.SeedFromPhrase("shallow halls"))
	assert.Equal(t, random.SeedFromPhrase("x"), random.NewFromPhrase("x").Seed())
}

func TestRollBounds(t *testing.T) {
	src := random.New(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v, err := src.Roll(5)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5)

	_, err := src.Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))

	rolls, err := src.RollN(4, 6)
	require.NoError(t, err)
	assert.Len(t, rolls, 4)

	_, err = src.RollN(0, 6)
	assert.Error(t, err)
}

func TestIntRange(t *testing.T) {
	src := random.New(3)
	for i := 0; i < 200; i++ {
		v := src.IntRange(-2, 2)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 2)
	}
	assert.Equal(t, 5, src.IntRange(5, 5))
	assert.Equal(t, 5, src.IntRange(5, 1))
	assert.Equal(t, 0, src.IntN(0))
}

func TestWeightedIndex(t *testing.T) {
	src := random.New(11)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[src.WeightedIndex([]float64{0.7, 0, 0.3})]++
	}
	assert.Zero(t, counts[1])
	assert.Greater(t, counts[0], counts[2])
	assert.Equal(t, 0, src.WeightedIndex([]float64{0, 0}))
}
