// Package models defines the rows the journal service keeps in PostgreSQL.
package models

import "time"

// User is an account. Salt and Verifier come from the client key derivation;
// the password itself never reaches the server.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
