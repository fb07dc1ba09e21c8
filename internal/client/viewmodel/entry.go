// Package viewmodel derives what the terminal shows from raw journal data:
// entry cards, their permitted actions, and the statistics dashboard.
// Nothing here performs I/O except Actions, which calls the journal service.
package viewmodel

import (
	"github.com/dmitrijs2005/gratilog/internal/client/taxonomy"
	"github.com/dmitrijs2005/gratilog/internal/client/timefmt"
	"github.com/dmitrijs2005/gratilog/internal/journal"
)

// TruncateAt is the preview length of entry content, in characters.
const TruncateAt = 200

const ellipsis = "..."

// ListContext tells which list an entry is shown in.
type ListContext int

const (
	ListMine ListContext = iota
	ListPublic
)

// Viewer is the person looking at the list. Principal is empty when
// anonymous.
type Viewer struct {
	Authenticated bool
	Principal     string
}

// ShouldTruncate reports whether content is longer than the preview.
func ShouldTruncate(content string) bool {
	return len([]rune(content)) > TruncateAt
}

// DisplayContent returns content as it should be displayed. Collapsed long
// content is cut at exactly TruncateAt characters, mid-word if need be, and
// marked with "...".
func DisplayContent(content string, expanded bool) string {
	if expanded {
		return content
	}
	r := []rune(content)
	if len(r) <= TruncateAt {
		return content
	}
	return string(r[:TruncateAt]) + ellipsis
}

// ShortAuthor abbreviates a principal to its first eight characters.
func ShortAuthor(principal string) string {
	r := []rune(principal)
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r) + ellipsis
}

// CanAppreciate: public list, signed in, and not one's own entry.
func CanAppreciate(e journal.Entry, v Viewer, lc ListContext) bool {
	return lc == ListPublic && v.Authenticated && v.Principal != "" && e.Author != v.Principal
}

// CanDelete: own list, signed in, and the viewer wrote it.
func CanDelete(e journal.Entry, v Viewer, lc ListContext) bool {
	return lc == ListMine && v.Authenticated && v.Principal != "" && e.Author == v.Principal
}

// EntryView is an entry card, ready to render.
type EntryView struct {
	ID            uint64
	Title         string
	Content       string
	Truncated     bool
	Expanded      bool
	Category      taxonomy.Info
	Mood          taxonomy.Info
	Age           string
	Created       string
	Author        string
	IsPublic      bool
	Appreciations uint64
	CanAppreciate bool
	CanDelete     bool
}

// BuildEntryView derives the card for e. Truncated is true only when some
// content is actually hidden.
func BuildEntryView(e journal.Entry, v Viewer, lc ListContext, expanded bool, f timefmt.Formatter) EntryView {
	long := ShouldTruncate(e.Content)
	return EntryView{
		ID:            e.ID,
		Title:         e.Title,
		Content:       DisplayContent(e.Content, expanded),
		Truncated:     long && !expanded,
		Expanded:      long && expanded,
		Category:      taxonomy.CategoryInfo(string(e.Category)),
		Mood:          taxonomy.MoodInfo(e.MoodRating),
		Age:           f.RelativeLabel(e.CreatedAt),
		Created:       f.AbsoluteLabel(e.CreatedAt),
		Author:        ShortAuthor(e.Author),
		IsPublic:      e.IsPublic,
		Appreciations: e.Appreciations,
		CanAppreciate: CanAppreciate(e, v, lc),
		CanDelete:     CanDelete(e, v, lc),
	}
}
