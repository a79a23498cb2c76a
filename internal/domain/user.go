package domain

// User is a directory record exchanged with the backend.
// The backend owns the canonical schema; the client only caches copies.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Session is the client's view of the authenticated user.
// Created on successful authenticate/register, cleared on logout or when
// the current user is deleted. The in-memory copy is the source of truth
// within a process; the local store is a side-channel cache.
type Session struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}

// Active reports whether the session carries an authenticated identity.
func (s Session) Active() bool {
	return s.Authenticated && s.UserID != ""
}
