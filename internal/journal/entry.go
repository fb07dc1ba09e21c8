package journal

import (
	"errors"
	"strings"
)

const (
	MinMood = 1
	MaxMood = 5

	// DefaultMood is the mood preselected for a new entry.
	DefaultMood = 4
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrInvalidMood     = errors.New("mood rating must be between 1 and 5")
	ErrInvalidCategory = errors.New("unknown category")
)

// Entry is a journal entry as held by the journal service. The client keeps
// read-only copies that are replaced wholesale on every fetch.
type Entry struct {
	ID      uint64
	Author  string
	Title   string
	Content string

	Category   Category
	MoodRating int
	IsPublic   bool

	// CreatedAt is nanoseconds since the Unix epoch.
	CreatedAt int64

	// Appreciations is maintained by the service and never decreases.
	Appreciations uint64
}

// EntryInput carries the user-editable fields of a new entry.
type EntryInput struct {
	Title      string
	Content    string
	Category   Category
	MoodRating int
	IsPublic   bool
}

// NewEntryInput returns an input prefilled with the form defaults.
func NewEntryInput() EntryInput {
	return EntryInput{
		Category:   CategoryOther,
		MoodRating: DefaultMood,
	}
}

// Validate checks the input against the entry invariants. The first violated
// rule is returned.
func (in EntryInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(in.Content) == "" {
		return ErrEmptyContent
	}
	if in.MoodRating < MinMood || in.MoodRating > MaxMood {
		return ErrInvalidMood
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// Appreciation records that Appreciator endorsed EntryID. The service keeps
// at most one per (entry, appreciator) pair.
type Appreciation struct {
	EntryID     uint64
	Appreciator string
	Timestamp   int64
}
