package models

import (
	"time"

	"github.com/dmitrijs2005/gratilog/internal/journal"
)

// Entry is a persisted journal entry. Appreciations is a denormalised count
// kept in step with the appreciations table.
type Entry struct {
	ID            uint64
	UserID        string
	Title         string
	Content       string
	Category      string
	MoodRating    int
	IsPublic      bool
	Appreciations uint64
	CreatedAt     time.Time
}

// NewEntry builds an unsaved row owned by userID.
func NewEntry(userID string, in journal.EntryInput) *Entry {
	return &Entry{
		UserID:     userID,
		Title:      in.Title,
		Content:    in.Content,
		Category:   string(in.Category),
		MoodRating: in.MoodRating,
		IsPublic:   in.IsPublic,
	}
}

// ToDomain exposes the row with its owner as author.
func (e *Entry) ToDomain() journal.Entry {
	return journal.Entry{
		ID:            e.ID,
		Author:        e.UserID,
		Title:         e.Title,
		Content:       e.Content,
		Category:      journal.Category(e.Category),
		MoodRating:    e.MoodRating,
		IsPublic:      e.IsPublic,
		CreatedAt:     e.CreatedAt.UnixNano(),
		Appreciations: e.Appreciations,
	}
}

// EntriesToDomain keeps the order of rows.
func EntriesToDomain(rows []*Entry) []journal.Entry {
	out := make([]journal.Entry, 0, len(rows))
	for _, e := range rows {
		out = append(out, e.ToDomain())
	}
	return out
}
