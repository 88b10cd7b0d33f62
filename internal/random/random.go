// Package random provides the process-wide source of randomness for the simulation.
package random

import (
	"math/rand"
	"time"
)

// Source wraps a single generator shared by every window, form and module.
// It is not safe for concurrent use; the simulation is single-threaded.
type Source struct {
	rng *rand.Rand
}

// New creates a source from a seed. A seed of 0 means a time-derived seed.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing generator. Tests use this to share a seeded rand.Rand.
func FromRand(rng *rand.Rand) *Source {
	return &Source{rng: rng}
}

// NextInt returns a number in [min, max). Returns min when the range is empty.
func (s *Source) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// Chance returns true with probability 1/oneIn. Non-positive odds never hit.
func (s *Source) Chance(oneIn int) bool {
	if oneIn <= 0 {
		return false
	}
	return s.rng.Intn(oneIn) == 0
}

// Shuffle returns a new slice holding the items in a uniformly random order.
// The input slice is left untouched.
func Shuffle[T any](s *Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// PickN returns n distinct elements drawn from items.
// When n exceeds len(items) the result is truncated to len(items); n <= 0 yields an empty slice.
func PickN[T any](s *Source, items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	shuffled := Shuffle(s, items)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// PickOne returns a single random element, or false when items is empty.
func PickOne[T any](s *Source, items []T) (T, bool) {
	picked := PickN(s, items, 1)
	if len(picked) == 0 {
		var zero T
		return zero, false
	}
	return picked[0], true
}
