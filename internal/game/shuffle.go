package game

import (
	"math/rand"
	"time"
)

// DefaultWeakSwaps is the swap count WeakShuffle is normally run with.
const DefaultWeakSwaps = 10

// ShuffleStrategy reorders a sequence. Implementations never mutate the
// input and return a new slice holding the same elements.
type ShuffleStrategy[T any] interface {
	Shuffle(cards []T) []T
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomShuffle produces a uniform random permutation.
type RandomShuffle[T any] struct {
	r *rand.Rand
}

func NewRandomShuffle[T any]() *RandomShuffle[T] {
	return &RandomShuffle[T]{r: newRand()}
}

func (s *RandomShuffle[T]) Shuffle(cards []T) []T {
	result := make([]T, len(cards))
	copy(result, cards)
	s.r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// RiffleShuffle simulates a physical riffle: cut at the midpoint, then
// interleave the fronts of the halves on a coin flip per card. Not a
// uniform permutation.
type RiffleShuffle[T any] struct {
	r *rand.Rand
}

func NewRiffleShuffle[T any]() *RiffleShuffle[T] {
	return &RiffleShuffle[T]{r: newRand()}
}

func (s *RiffleShuffle[T]) Shuffle(cards []T) []T {
	left := cards[:len(cards)/2]
	right := cards[len(cards)/2:]
	mixed := make([]T, 0, len(cards))
	for len(left) > 0 || len(right) > 0 {
		if len(left) > 0 && (len(right) == 0 || s.r.Float64() < 0.5) {
			mixed = append(mixed, left[0])
			left = left[1:]
		} else {
			mixed = append(mixed, right[0])
			right = right[1:]
		}
	}
	return mixed
}

// FisherYatesShuffle is the classic swap-down shuffle: provably uniform
// over permutations, O(n).
type FisherYatesShuffle[T any] struct {
	r *rand.Rand
}

func NewFisherYatesShuffle[T any]() *FisherYatesShuffle[T] {
	return &FisherYatesShuffle[T]{r: newRand()}
}

func (s *FisherYatesShuffle[T]) Shuffle(cards []T) []T {
	result := make([]T, len(cards))
	copy(result, cards)
	for i := len(result) - 1; i > 0; i-- {
		j := s.r.Intn(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// WeakShuffle performs a fixed number of random pairwise swaps. Fast and
// intentionally poor at mixing; with Swaps of zero it is the identity.
type WeakShuffle[T any] struct {
	Swaps int

	r *rand.Rand
}

func NewWeakShuffle[T any](swaps int) *WeakShuffle[T] {
	return &WeakShuffle[T]{Swaps: swaps, r: newRand()}
}

func (s *WeakShuffle[T]) Shuffle(cards []T) []T {
	result := make([]T, len(cards))
	copy(result, cards)
	if len(result) < 2 {
		return result
	}
	for n := 0; n < s.Swaps; n++ {
		i := s.r.Intn(len(result))
		j := s.r.Intn(len(result))
		result[i], result[j] = result[j], result[i]
	}
	return result
}
