package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionActive   SessionStatus = "active"   // Player is still guessing
	SessionLost     SessionStatus = "lost"     // Score dropped to zero
	SessionFinished SessionStatus = "finished" // Deck ran out of cards
)

type Guess string

const (
	GuessHigher Guess = "h"
	GuessLower  Guess = "l"
)

// Session is one run of higher-or-lower against a single deck. The deck
// is shuffled once when the session starts; every draw after that deals
// from the same ordering.
type Session struct {
	ID        string        `json:"id"`
	Current   Card          `json:"currentCard"`
	Score     int           `json:"score"`
	Turns     int           `json:"turns"`
	Status    SessionStatus `json:"status"`
	Config    Config        `json:"config"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	deck *Deck
}

// TurnResult reports the outcome of a single guess.
type TurnResult struct {
	Previous Card          `json:"previousCard"`
	Drawn    Card          `json:"drawnCard"`
	Guess    Guess         `json:"guess"`
	Correct  bool          `json:"correct"`
	Score    int           `json:"score"`
	Status   SessionStatus `json:"status"`
}

// NewSession shuffles the deck and draws the opening card.
func NewSession(deck *Deck, config Config) (*Session, error) {
	if deck == nil {
		return nil, fmt.Errorf("%w: nil deck", ErrInvalidArgument)
	}

	deck.Shuffle()
	current, err := deck.Draw()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Current:   current,
		Score:     config.StartingScore,
		Status:    SessionActive,
		Config:    config,
		CreatedAt: now,
		UpdatedAt: now,
		deck:      deck,
	}, nil
}

// Remaining returns the number of undrawn cards.
func (s *Session) Remaining() int {
	return s.deck.Remaining()
}

// Guess draws the next card and scores the call. A correct call is a
// strictly higher or strictly lower value; ties score as a miss. The
// session ends lost when the score reaches zero, and finished when the
// deck is exhausted or the round's guess allowance is used up.
func (s *Session) Guess(guess Guess) (*TurnResult, error) {
	if s.Status != SessionActive {
		return nil, fmt.Errorf("%w: session is %s", ErrInvalidArgument, s.Status)
	}
	if guess != GuessHigher && guess != GuessLower {
		return nil, fmt.Errorf("%w: guess must be %q or %q, got %q", ErrInvalidArgument, GuessHigher, GuessLower, guess)
	}

	drawn, err := s.deck.Draw()
	if err != nil {
		if errors.Is(err, ErrEmptyDeck) {
			s.Status = SessionFinished
			s.UpdatedAt = time.Now()
		}
		return nil, err
	}

	correct := (guess == GuessHigher && drawn.Value > s.Current.Value) ||
		(guess == GuessLower && drawn.Value < s.Current.Value)
	if correct {
		s.Score += s.Config.CorrectGain
	} else {
		s.Score -= s.Config.WrongLoss
	}

	previous := s.Current
	s.Current = drawn
	s.Turns++
	s.UpdatedAt = time.Now()

	if s.Score <= 0 {
		s.Status = SessionLost
	} else if s.deck.Remaining() == 0 || s.Turns >= s.Config.CardsPerRound {
		s.Status = SessionFinished
	}

	return &TurnResult{
		Previous: previous,
		Drawn:    drawn,
		Guess:    guess,
		Correct:  correct,
		Score:    s.Score,
		Status:   s.Status,
	}, nil
}
