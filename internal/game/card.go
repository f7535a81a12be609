package game

import (
	"errors"
	"fmt"
)

type Suit string
type Rank string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "Jack"
	Queen Rank = "Queen"
	King  Rank = "King"
	Ace   Rank = "Ace"
)

var (
	// ErrInvalidArgument is returned for bad card attributes, empty
	// suit/rank lists and non-positive config values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownCardType is returned when a factory is requested for an
	// unregistered card type.
	ErrUnknownCardType = errors.New("unknown card type")

	// ErrEmptyDeck is returned when drawing from an exhausted deck.
	ErrEmptyDeck = errors.New("deck is empty")
)

// DefaultSuits returns the standard four suits in deck-build order.
func DefaultSuits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// DefaultRanks returns the standard thirteen ranks ordered by strength,
// weakest first. Rank position determines card value.
func DefaultRanks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Card is an immutable playing card. Value is the 1-based position of the
// rank in the ordering the deck was built with.
type Card struct {
	Suit  Suit `json:"suit"`
	Rank  Rank `json:"rank"`
	Value int  `json:"value"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
