// Package random provides the seeded random source shared by generation,
// AI and combat. A Source satisfies the rpg-toolkit dice.Roller interface so
// the combat code can take any roller while a level stays reproducible from
// its seed.
package random

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// pcgStream is the second PCG word; any odd constant works.
const pcgStream = 0x9e3779b97f4a7c15

// Source is a deterministic random source. It is not safe for concurrent
// use; each level owns its own Source.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

var _ dice.Roller = (*Source)(nil)

// New creates a Source from a numeric seed
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, pcgStream)),
	}
}

// NewFromPhrase creates a Source whose seed is the xxhash of phrase
func NewFromPhrase(phrase string) *Source {
	return New(SeedFromPhrase(phrase))
}

// SeedFromPhrase hashes a human-friendly phrase into a seed
func SeedFromPhrase(phrase string) uint64 {
	return xxhash.Sum64String(phrase)
}

// Seed returns the seed the source was created with
func (s *Source) Seed() uint64 {
	return s.seed
}

// Float64 returns a value in [0.0, 1.0)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a value in [0, n). n <= 0 yields 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

// IntRange returns a value in [lo, hi] inclusive. When hi < lo it returns lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Chance reports true with probability p
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Roll rolls a single die with the given number of sides
func (s *Source) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice with the given number of sides
func (s *Source) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// WeightedIndex picks an index with probability proportional to weights.
// Non-positive weights are never picked; if every weight is non-positive the
// first index is returned.
func (s *Source) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	target := s.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target < 0 {
			return i
		}
	}
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
