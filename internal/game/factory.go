package game

import "fmt"

// CardType keys a card factory in a registry. New card kinds (jokers,
// specials) register a factory under a new key without touching Deck.
type CardType string

const (
	CardTypeStandard CardType = "standard"
)

// CardFactory constructs cards from raw attributes.
type CardFactory interface {
	CreateCard(suit Suit, rank Rank, value int) (Card, error)
}

// StandardCardFactory builds plain suit/rank/value cards. The suit and
// rank vocabulary is owned by the caller, so only shape is validated.
type StandardCardFactory struct{}

func (StandardCardFactory) CreateCard(suit Suit, rank Rank, value int) (Card, error) {
	if suit == "" {
		return Card{}, fmt.Errorf("%w: empty suit", ErrInvalidArgument)
	}
	if rank == "" {
		return Card{}, fmt.Errorf("%w: empty rank", ErrInvalidArgument)
	}
	if value <= 0 {
		return Card{}, fmt.Errorf("%w: card value must be positive, got %d", ErrInvalidArgument, value)
	}
	return Card{Suit: suit, Rank: rank, Value: value}, nil
}

// FactoryRegistry maps card types to their factories. It is created
// explicitly and passed to callers rather than held as package state.
type FactoryRegistry struct {
	factories map[CardType]CardFactory
}

// NewFactoryRegistry returns a registry with the standard factory
// pre-registered.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{
		factories: map[CardType]CardFactory{
			CardTypeStandard: StandardCardFactory{},
		},
	}
}

// Register adds or replaces the factory for a card type.
func (r *FactoryRegistry) Register(cardType CardType, factory CardFactory) {
	r.factories[cardType] = factory
}

// Factory returns the factory registered for the card type.
func (r *FactoryRegistry) Factory(cardType CardType) (CardFactory, error) {
	factory, ok := r.factories[cardType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCardType, cardType)
	}
	return factory, nil
}

// CreateCard builds a card through the factory registered for the card type.
func (r *FactoryRegistry) CreateCard(cardType CardType, suit Suit, rank Rank, value int) (Card, error) {
	factory, err := r.Factory(cardType)
	if err != nil {
		return Card{}, err
	}
	return factory.CreateCard(suit, rank, value)
}
