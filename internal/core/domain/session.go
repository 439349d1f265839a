package domain

import "time"

// Session maps an opaque token to a user for the lifetime of a login.
// Rows live in the sessions table; there is no in-process session state.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
