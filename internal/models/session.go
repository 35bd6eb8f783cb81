package models

import "time"

// Session is the authenticated identity of the running client. Its role is
// fixed for the session's lifetime; switching roles requires logout and a new login.
type Session struct {
	ID            string    `json:"id"`
	User          Profile   `json:"user"`
	EstablishedAt time.Time `json:"establishedAt"`
}

// Role returns the role the session was established with.
func (s *Session) Role() Role {
	return s.User.Role
}

// Clone returns a copy of s that shares no mutable state with it.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.User = s.User.Clone()
	return &c
}
