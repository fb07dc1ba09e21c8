package models

import "time"

type Appreciation struct {
	EntryID   uint64
	UserID    string
	CreatedAt time.Time
}
