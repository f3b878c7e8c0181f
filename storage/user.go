package storage

import (
	"sync"
	"time"

	"studybuddy/models"
)

// UserStore holds every user profile in process memory. Fiber serves
// requests in parallel, so all map and slice access goes through the
// RWMutex; the message fan-out appends to both inboxes under a single
// write lock so no reader can observe a half-written pair.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string // creation order, so listings are stable
	ids   IDGenerator
}

// NewUserStore creates an empty store using the given ID generator.
func NewUserStore(ids IDGenerator) *UserStore {
	return &UserStore{
		users: make(map[string]*models.User),
		ids:   ids,
	}
}

// CreateUser allocates a profile with an empty schedule and inbox.
// Name and subjects are expected to be normalized by the caller; empty
// values fail validation here regardless.
func (s *UserStore) CreateUser(name string, subjects []string) (models.User, error) {
	if name == "" {
		return models.User{}, ErrEmptyName
	}
	if len(subjects) == 0 {
		return models.User{}, ErrEmptySubjects
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.NewID()
	for {
		if _, exists := s.users[id]; !exists {
			break
		}
		id = s.ids.NewID()
	}

	user := &models.User{
		ID:       id,
		Name:     name,
		Subjects: append([]string(nil), subjects...),
		Schedule: []models.Reminder{},
		Messages: []models.Message{},
	}
	s.users[id] = user
	s.order = append(s.order, id)

	return user.Clone(), nil
}

// GetUser returns a copy of the user with the given ID.
func (s *UserStore) GetUser(userID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user.Clone(), nil
}

// Exists reports whether a user ID is in the store.
func (s *UserStore) Exists(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok
}

// ListUsers returns copies of all users in creation order.
func (s *UserStore) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id].Clone())
	}
	return out
}

// AllSubjects returns every subject any user has listed, deduplicated,
// in first-seen order.
func (s *UserStore) AllSubjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	out := []string{}
	for _, id := range s.order {
		for _, subject := range s.users[id].Subjects {
			if _, ok := seen[subject]; ok {
				continue
			}
			seen[subject] = struct{}{}
			out = append(out, subject)
		}
	}
	return out
}

// AppendMessage creates a message and appends the same value to both
// the sender's and the recipient's inbox. Text may be empty.
func (s *UserStore) AppendMessage(fromID, toID, text string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.users[fromID]
	if !ok {
		return models.Message{}, ErrUserNotFound
	}
	to, ok := s.users[toID]
	if !ok {
		return models.Message{}, ErrUserNotFound
	}

	msg := models.Message{
		ID:        s.ids.NewID(),
		From:      fromID,
		To:        toID,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}

	// Two independent copies, not a shared reference.
	from.Messages = append(from.Messages, msg)
	if toID != fromID {
		to.Messages = append(to.Messages, msg)
	}

	return msg, nil
}

// Inbox returns the user's full inbox in insertion order.
func (s *UserStore) Inbox(userID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return append([]models.Message{}, user.Messages...), nil
}

// AppendReminder adds a reminder to the user's schedule. The datetime
// string is stored verbatim.
func (s *UserStore) AppendReminder(userID, title, datetime string) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return models.Reminder{}, ErrUserNotFound
	}

	reminder := models.Reminder{
		ID:       s.ids.NewID(),
		Title:    title,
		Datetime: datetime,
		Created:  time.Now().UnixMilli(),
	}
	user.Schedule = append(user.Schedule, reminder)

	return reminder, nil
}

// Schedule returns the user's reminders in creation order.
func (s *UserStore) Schedule(userID string) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return append([]models.Reminder{}, user.Schedule...), nil
}
