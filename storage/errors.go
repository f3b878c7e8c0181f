package storage

import "errors"

var (
	// ErrUserNotFound is returned when a user ID is not in the store
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned for an absent or unknown session token
	ErrSessionNotFound = errors.New("session not found")

	// validation errors surfaced at signup
	ErrEmptyName     = errors.New("name required")
	ErrEmptySubjects = errors.New("at least one subject required")
)
