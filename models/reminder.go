package models

// Reminder is a scheduled study event. Datetime is whatever string the
// client supplied; it is stored verbatim and never parsed as a date.
type Reminder struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Datetime string `json:"datetime"`
	Created  int64  `json:"created"` // milliseconds since epoch
}
