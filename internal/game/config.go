package game

import "fmt"

// Defaults match the classic game: start at 50 points, gain 20 on a
// correct call, lose 15 on a wrong one, eight turns to a round.
const (
	DefaultStartingScore = 50
	DefaultCorrectGain   = 20
	DefaultWrongLoss     = 15
	DefaultCardsPerRound = 8
)

// Config holds the tunables for a higher-or-lower session.
type Config struct {
	StartingScore int `json:"startingScore"`
	CorrectGain   int `json:"correctGain"`
	WrongLoss     int `json:"wrongLoss"`
	CardsPerRound int `json:"cardsPerRound"`
}

// DefaultConfig returns the classic rule set.
func DefaultConfig() Config {
	return Config{
		StartingScore: DefaultStartingScore,
		CorrectGain:   DefaultCorrectGain,
		WrongLoss:     DefaultWrongLoss,
		CardsPerRound: DefaultCardsPerRound,
	}
}

// ConfigBuilder assembles a Config step by step and validates it on
// Build. Unset fields keep their defaults.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: DefaultConfig()}
}

func (b *ConfigBuilder) StartingScore(score int) *ConfigBuilder {
	b.config.StartingScore = score
	return b
}

func (b *ConfigBuilder) CorrectGain(points int) *ConfigBuilder {
	b.config.CorrectGain = points
	return b
}

func (b *ConfigBuilder) WrongLoss(points int) *ConfigBuilder {
	b.config.WrongLoss = points
	return b
}

func (b *ConfigBuilder) CardsPerRound(n int) *ConfigBuilder {
	b.config.CardsPerRound = n
	return b
}

func (b *ConfigBuilder) Build() (Config, error) {
	if b.config.StartingScore <= 0 {
		return Config{}, fmt.Errorf("%w: starting score must be positive, got %d", ErrInvalidArgument, b.config.StartingScore)
	}
	if b.config.CorrectGain <= 0 {
		return Config{}, fmt.Errorf("%w: correct gain must be positive, got %d", ErrInvalidArgument, b.config.CorrectGain)
	}
	if b.config.WrongLoss <= 0 {
		return Config{}, fmt.Errorf("%w: wrong loss must be positive, got %d", ErrInvalidArgument, b.config.WrongLoss)
	}
	if b.config.CardsPerRound <= 0 {
		return Config{}, fmt.Errorf("%w: cards per round must be positive, got %d", ErrInvalidArgument, b.config.CardsPerRound)
	}
	return b.config, nil
}
