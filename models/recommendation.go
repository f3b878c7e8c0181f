package models

// Recommendation is a ranked buddy suggestion: another user plus the
// subjects they share with the requester.
type Recommendation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CommonSubjects []string `json:"commonSubjects"`
	CommonCount    int      `json:"commonCount"`
}
