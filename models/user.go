package models

// User is a student profile. Schedule and Messages grow append-only;
// nothing is ever removed or rewritten in place.
type User struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Subjects []string   `json:"subjects"`
	Schedule []Reminder `json:"schedule"`
	Messages []Message  `json:"messages"`
}

// Clone returns a deep copy safe to hand out after the store lock is
// released.
func (u *User) Clone() User {
	out := User{
		ID:       u.ID,
		Name:     u.Name,
		Subjects: append([]string(nil), u.Subjects...),
	}
	if u.Schedule != nil {
		out.Schedule = append([]Reminder(nil), u.Schedule...)
	} else {
		out.Schedule = []Reminder{}
	}
	if u.Messages != nil {
		out.Messages = append([]Message(nil), u.Messages...)
	} else {
		out.Messages = []Message{}
	}
	return out
}

// Session maps an opaque token to the user it authenticates. Tokens have
// no expiry; a user may hold any number of concurrent sessions.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
