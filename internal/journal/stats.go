package journal

// CategoryCount is one row of the per-category breakdown. Category is kept as
// the raw key sent by the service so that keys unknown to this build survive
// the round trip.
type CategoryCount struct {
	Category string
	Count    uint64
}

// UserStats summarises a single author's journal.
type UserStats struct {
	TotalEntries  uint64
	CurrentStreak uint64
	LongestStreak uint64

	// EntriesByCategory covers every category, zero-filled.
	EntriesByCategory []CategoryCount

	// AverageMood is in [1,5], or 0 when there are no entries.
	AverageMood float64
}

// SystemStats are service-wide counters.
type SystemStats struct {
	TotalUsers         uint64
	TotalEntries       uint64
	TotalPublicEntries uint64
	TotalAppreciations uint64
}

// ZeroFilledCounts returns a breakdown with every category present in
// canonical order, taking counts from m.
func ZeroFilledCounts(m map[Category]uint64) []CategoryCount {
	out := make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, CategoryCount{Category: string(c), Count: m[c]})
	}
	return out
}
