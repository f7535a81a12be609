package game

import "fmt"

// Deck owns an ordered sequence of cards built through a CardFactory and
// reordered by an injected ShuffleStrategy.
type Deck struct {
	cards    []Card
	strategy ShuffleStrategy[Card]
}

// NewDeck builds one card per (suit, rank) pair, suit-major and
// rank-minor, with card value set to the 1-based rank position. A nil
// strategy falls back to RandomShuffle.
func NewDeck(factory CardFactory, strategy ShuffleStrategy[Card], suits []Suit, ranks []Rank) (*Deck, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: nil card factory", ErrInvalidArgument)
	}
	if len(suits) == 0 {
		return nil, fmt.Errorf("%w: no suits", ErrInvalidArgument)
	}
	if len(ranks) == 0 {
		return nil, fmt.Errorf("%w: no ranks", ErrInvalidArgument)
	}
	if strategy == nil {
		strategy = NewRandomShuffle[Card]()
	}

	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for i, rank := range ranks {
			card, err := factory.CreateCard(suit, rank, i+1)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}

	return &Deck{cards: cards, strategy: strategy}, nil
}

// Shuffle reorders the remaining cards with the deck's strategy and
// returns a copy of the new ordering. Draws after a shuffle deal from
// that ordering; there is no hidden re-shuffle between draws.
func (d *Deck) Shuffle() []Card {
	d.cards = d.strategy.Shuffle(d.cards)

	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the current ordering.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
