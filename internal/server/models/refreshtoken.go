package models

import "time"

// RefreshToken is an opaque token exchanged for a new access/refresh pair.
// Each token is single-use: a successful refresh deletes it.
type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token can no longer be exchanged at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}
