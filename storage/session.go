package storage

import (
	"sync"

	"studybuddy/models"
)

// SessionStore maps opaque tokens to user IDs. Sessions never expire and
// are only lost on process restart; logging in again issues a fresh token
// without touching any existing one.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session // keyed by token
	ids      IDGenerator
}

// NewSessionStore creates an empty session store.
func NewSessionStore(ids IDGenerator) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]models.Session),
		ids:      ids,
	}
}

// Create issues a new token for the given user. The caller is expected
// to have checked that the user exists.
func (s *SessionStore) Create(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.ids.NewToken()
	if err != nil {
		return "", err
	}
	for {
		if _, exists := s.sessions[token]; !exists {
			break
		}
		if token, err = s.ids.NewToken(); err != nil {
			return "", err
		}
	}

	s.sessions[token] = models.Session{Token: token, UserID: userID}
	return token, nil
}

// Resolve looks up the user ID behind a token. Pure lookup, no side
// effects.
func (s *SessionStore) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return session.UserID, nil
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
