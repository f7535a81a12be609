package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"higherlower/internal/game"
)

type frontShuffle struct{}

func (frontShuffle) Shuffle(cards []game.Card) []game.Card {
	out := make([]game.Card, len(cards))
	copy(out, cards)
	return out
}

func newSession(t *testing.T) *game.Session {
	t.Helper()
	deck, err := game.NewDeck(game.StandardCardFactory{}, frontShuffle{}, game.DefaultSuits(), game.DefaultRanks())
	require.NoError(t, err)
	session, err := game.NewSession(deck, game.DefaultConfig())
	require.NoError(t, err)
	return session
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	session := newSession(t)

	require.NoError(t, s.SaveSession(session))

	got, err := s.GetSession(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	_, err = s.GetSession("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreGetActiveSession(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetActiveSession()
	assert.ErrorIs(t, err, ErrSessionNotFound)

	ended := newSession(t)
	ended.Status = game.SessionFinished
	require.NoError(t, s.SaveSession(ended))

	_, err = s.GetActiveSession()
	assert.ErrorIs(t, err, ErrSessionNotFound, "ended sessions are not active")

	active := newSession(t)
	require.NoError(t, s.SaveSession(active))

	got, err := s.GetActiveSession()
	require.NoError(t, err)
	assert.Same(t, active, got)
}

func TestMemoryStoreDeleteSession(t *testing.T) {
	s := NewMemoryStore()
	session := newSession(t)
	require.NoError(t, s.SaveSession(session))

	require.NoError(t, s.DeleteSession(session.ID))

	_, err := s.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.DeleteSession(session.ID), ErrSessionNotFound)
}

func TestMemoryStoreListSessionsOldestFirst(t *testing.T) {
	s := NewMemoryStore()

	first := newSession(t)
	second := newSession(t)
	second.CreatedAt = first.CreatedAt.Add(1)
	require.NoError(t, s.SaveSession(second))
	require.NoError(t, s.SaveSession(first))

	sessions, err := s.ListSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Same(t, first, sessions[0])
	assert.Same(t, second, sessions[1])
}
