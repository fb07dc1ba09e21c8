// Package models defines client-side records shared by the session store,
// the identity provider and the session manager.
package models

import "time"

// Identity is the authenticated principal. UserID is what the journal service
// records as an entry's author.
type Identity struct {
	UserID   string
	Username string
}

// IsZero reports whether no one is signed in.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// StoredSession is the locally persisted login that allows silent restore on
// the next start. Only the refresh token is kept; access tokens live in memory.
type StoredSession struct {
	Username     string
	UserID       string
	RefreshToken string
	UpdatedAt    time.Time
}

// Identity returns the principal the stored session belongs to.
func (s StoredSession) Identity() Identity {
	return Identity{UserID: s.UserID, Username: s.Username}
}
