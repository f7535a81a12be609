package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardCardFactory(t *testing.T) {
	factory := StandardCardFactory{}

	card, err := factory.CreateCard(Spades, Queen, 11)
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: Spades, Rank: Queen, Value: 11}, card)
	assert.Equal(t, "Queen of Spades", card.String())
}

func TestStandardCardFactoryRejectsBadAttributes(t *testing.T) {
	testCases := []struct {
		name  string
		suit  Suit
		rank  Rank
		value int
	}{
		{name: "empty suit", suit: "", rank: Ace, value: 13},
		{name: "empty rank", suit: Hearts, rank: "", value: 1},
		{name: "zero value", suit: Hearts, rank: Ace, value: 0},
		{name: "negative value", suit: Hearts, rank: Ace, value: -3},
	}

	factory := StandardCardFactory{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := factory.CreateCard(tc.suit, tc.rank, tc.value)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

// upsideDownFactory builds cards with the suit and rank swapped, standing
// in for a future card variant.
type upsideDownFactory struct{}

func (upsideDownFactory) CreateCard(suit Suit, rank Rank, value int) (Card, error) {
	return Card{Suit: Suit(rank), Rank: Rank(suit), Value: value}, nil
}

func TestFactoryRegistry(t *testing.T) {
	registry := NewFactoryRegistry()

	factory, err := registry.Factory(CardTypeStandard)
	require.NoError(t, err)
	assert.IsType(t, StandardCardFactory{}, factory)

	_, err = registry.Factory("joker")
	assert.ErrorIs(t, err, ErrUnknownCardType)

	registry.Register("upside-down", upsideDownFactory{})
	card, err := registry.CreateCard("upside-down", Clubs, Ten, 9)
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: Suit(Ten), Rank: Rank(Clubs), Value: 9}, card)
}

func TestRegistryCreateCardUnknownType(t *testing.T) {
	_, err := NewFactoryRegistry().CreateCard("special", Hearts, Two, 1)
	assert.ErrorIs(t, err, ErrUnknownCardType)
}
