package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleKeepsMultiset(t *testing.T) {
	strategies := map[string]ShuffleStrategy[int]{
		"random":       NewRandomShuffle[int](),
		"riffle":       NewRiffleShuffle[int](),
		"fisher-yates": NewFisherYatesShuffle[int](),
		"weak":         NewWeakShuffle[int](25),
	}

	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			original := make([]int, len(input))
			copy(original, input)

			shuffled := strategy.Shuffle(input)

			assert.Equal(t, original, input, "input must not be mutated")
			assert.Len(t, shuffled, len(input))
			assert.ElementsMatch(t, input, shuffled)
		})
	}
}

func TestShuffleCards(t *testing.T) {
	deck, err := NewDeck(StandardCardFactory{}, nil, DefaultSuits(), DefaultRanks())
	require.NoError(t, err)
	cards := deck.Cards()

	strategies := map[string]ShuffleStrategy[Card]{
		"random":       NewRandomShuffle[Card](),
		"riffle":       NewRiffleShuffle[Card](),
		"fisher-yates": NewFisherYatesShuffle[Card](),
		"weak":         NewWeakShuffle[Card](25),
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			shuffled := strategy.Shuffle(cards)
			assert.ElementsMatch(t, cards, shuffled)
		})
	}
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	strategies := []ShuffleStrategy[int]{
		NewRandomShuffle[int](),
		NewRiffleShuffle[int](),
		NewFisherYatesShuffle[int](),
		NewWeakShuffle[int](DefaultWeakSwaps),
	}

	for _, strategy := range strategies {
		assert.Empty(t, strategy.Shuffle(nil))
		assert.Equal(t, []int{42}, strategy.Shuffle([]int{42}))
	}
}

func TestWeakShuffleZeroSwapsIsIdentity(t *testing.T) {
	input := []int{5, 4, 3, 2, 1}

	got := NewWeakShuffle[int](0).Shuffle(input)

	assert.Equal(t, input, got)
}

func TestFisherYatesIsApproximatelyUniform(t *testing.T) {
	const trials = 24000
	strategy := NewFisherYatesShuffle[int]()

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(strategy.Shuffle([]int{1, 2, 3, 4}))]++
	}

	require.Len(t, counts, 24, "all 24 permutations of 4 elements should occur")

	// Expected count per permutation is 1000 with a standard deviation of
	// about 31, so a 300-wide band is far outside random noise.
	for perm, n := range counts {
		assert.InDelta(t, trials/24, n, 300, "permutation %s occurred %d times", perm, n)
	}
}
