package wire

import "github.com/dmitrijs2005/gratilog/internal/journal"

func EntryFromDomain(e journal.Entry) *Entry {
	return &Entry{
		ID:            e.ID,
		Author:        e.Author,
		Title:         e.Title,
		Content:       e.Content,
		Category:      string(e.Category),
		MoodRating:    int64(e.MoodRating),
		IsPublic:      e.IsPublic,
		CreatedAt:     e.CreatedAt,
		Appreciations: e.Appreciations,
	}
}

func (m *Entry) ToDomain() journal.Entry {
	return journal.Entry{
		ID:            m.ID,
		Author:        m.Author,
		Title:         m.Title,
		Content:       m.Content,
		Category:      journal.Category(m.Category),
		MoodRating:    int(m.MoodRating),
		IsPublic:      m.IsPublic,
		CreatedAt:     m.CreatedAt,
		Appreciations: m.Appreciations,
	}
}

func EntryListFromDomain(entries []journal.Entry) *EntryList {
	out := &EntryList{Entries: make([]*Entry, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, EntryFromDomain(e))
	}
	return out
}

// ToDomain preserves the order the service produced.
func (m *EntryList) ToDomain() []journal.Entry {
	out := make([]journal.Entry, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.ToDomain())
	}
	return out
}

func CreateEntryRequestFromInput(in journal.EntryInput) *CreateEntryRequest {
	return &CreateEntryRequest{
		Title:      in.Title,
		Content:    in.Content,
		Category:   string(in.Category),
		MoodRating: int64(in.MoodRating),
		IsPublic:   in.IsPublic,
	}
}

func (m *CreateEntryRequest) ToInput() journal.EntryInput {
	return journal.EntryInput{
		Title:      m.Title,
		Content:    m.Content,
		Category:   journal.Category(m.Category),
		MoodRating: int(m.MoodRating),
		IsPublic:   m.IsPublic,
	}
}

func UserStatsFromDomain(s journal.UserStats) *UserStats {
	out := &UserStats{
		TotalEntries:  s.TotalEntries,
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		AverageMood:   s.AverageMood,
	}
	for _, c := range s.EntriesByCategory {
		out.EntriesByCategory = append(out.EntriesByCategory, &CategoryCount{Category: c.Category, Count: c.Count})
	}
	return out
}

func (m *UserStats) ToDomain() journal.UserStats {
	out := journal.UserStats{
		TotalEntries:  m.TotalEntries,
		CurrentStreak: m.CurrentStreak,
		LongestStreak: m.LongestStreak,
		AverageMood:   m.AverageMood,
	}
	for _, c := range m.EntriesByCategory {
		out.EntriesByCategory = append(out.EntriesByCategory, journal.CategoryCount{Category: c.Category, Count: c.Count})
	}
	return out
}

func SystemStatsFromDomain(s journal.SystemStats) *SystemStats {
	return &SystemStats{
		TotalUsers:         s.TotalUsers,
		TotalEntries:       s.TotalEntries,
		TotalPublicEntries: s.TotalPublicEntries,
		TotalAppreciations: s.TotalAppreciations,
	}
}

func (m *SystemStats) ToDomain() journal.SystemStats {
	return journal.SystemStats{
		TotalUsers:         m.TotalUsers,
		TotalEntries:       m.TotalEntries,
		TotalPublicEntries: m.TotalPublicEntries,
		TotalAppreciations: m.TotalAppreciations,
	}
}
