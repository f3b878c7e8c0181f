// Package matchmaking pairs students by shared study subjects.
package matchmaking

import (
	"sort"

	"studybuddy/models"
	"studybuddy/storage"
)

// Engine computes buddy matches and ranked recommendations from a
// snapshot of the user store. Both queries are pure: no side effects,
// same store state in, same results out.
type Engine struct {
	store *storage.UserStore
}

// NewEngine creates an engine over the given store.
func NewEngine(store *storage.UserStore) *Engine {
	return &Engine{store: store}
}

// Matches returns every other user sharing at least one subject with the
// requester. Subject comparison is a case-sensitive exact string match.
// Results come back in the store's creation order.
func (e *Engine) Matches(userID string) ([]models.User, error) {
	requester, err := e.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	matches := []models.User{}
	for _, candidate := range e.store.ListUsers() {
		if candidate.ID == userID {
			continue
		}
		if sharesAnySubject(candidate.Subjects, requester.Subjects) {
			matches = append(matches, candidate)
		}
	}
	return matches, nil
}

// Recommendations ranks other users by how many of their listed subjects
// the requester also has. The filter is a literal containment test over
// the candidate's list: a subject the candidate lists twice counts twice.
// Zero-overlap candidates are dropped; the sort is stable so equal counts
// keep their creation-order position.
func (e *Engine) Recommendations(userID string) ([]models.Recommendation, error) {
	requester, err := e.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	recs := []models.Recommendation{}
	for _, candidate := range e.store.ListUsers() {
		if candidate.ID == userID {
			continue
		}
		common := commonSubjects(candidate.Subjects, requester.Subjects)
		if len(common) == 0 {
			continue
		}
		recs = append(recs, models.Recommendation{
			ID:             candidate.ID,
			Name:           candidate.Name,
			CommonSubjects: common,
			CommonCount:    len(common),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CommonCount > recs[j].CommonCount
	})
	return recs, nil
}

// sharesAnySubject reports whether any of the candidate's subjects
// appears in the requester's list.
func sharesAnySubject(candidate, requester []string) bool {
	for _, subject := range candidate {
		if contains(requester, subject) {
			return true
		}
	}
	return false
}

// commonSubjects keeps the candidate's subjects that the requester also
// lists, preserving the candidate's order and duplicates.
func commonSubjects(candidate, requester []string) []string {
	common := []string{}
	for _, subject := range candidate {
		if contains(requester, subject) {
			common = append(common, subject)
		}
	}
	return common
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
