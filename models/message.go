package models

// Message is a chat message. The same value is appended to both the
// sender's and the recipient's inbox at send time; the two entries are
// independent copies, not a shared reference.
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
}
