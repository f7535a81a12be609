package store

import "higherlower/internal/game"

// Store defines the interface for session storage
type Store interface {
	// SaveSession saves a session to the store
	SaveSession(s *game.Session) error

	// GetSession retrieves a session by ID
	GetSession(id string) (*game.Session, error)

	// GetActiveSession retrieves a session that is still being played
	GetActiveSession() (*game.Session, error)

	// DeleteSession removes a session from the store
	DeleteSession(id string) error

	// ListSessions returns all sessions in the store
	ListSessions() ([]*game.Session, error)
}
