package viewmodel

import (
	"strconv"

	"github.com/dmitrijs2005/gratilog/internal/client/taxonomy"
	"github.com/dmitrijs2005/gratilog/internal/journal"
)

// ChartPalette colours chart slices by position.
var ChartPalette = []string{"#8B5CF6", "#EC4899", "#10B981", "#F59E0B", "#3B82F6", "#EF4444", "#6366F1", "#6B7280"}

// ChartColor cycles through ChartPalette.
func ChartColor(i int) string {
	if i < 0 {
		i = -i
	}
	return ChartPalette[i%len(ChartPalette)]
}

// SeriesPoint is one slice of the per-category chart.
type SeriesPoint struct {
	Name     string
	Emoji    string
	Value    uint64
	StyleTag string
}

// BuildCategorySeries maps raw counts onto chart points. Unknown keys are
// shown as Other but keep their count, zero counts are dropped, and the
// input order is kept.
func BuildCategorySeries(counts []journal.CategoryCount) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(counts))
	for _, c := range counts {
		if c.Count == 0 {
			continue
		}
		info := taxonomy.CategoryInfo(c.Category)
		out = append(out, SeriesPoint{Name: info.Label, Emoji: info.Emoji, Value: c.Count, StyleTag: info.StyleTag})
	}
	return out
}

// MoodTrend buckets an average mood; each lower bound is inclusive.
func MoodTrend(avg float64) string {
	switch {
	case avg >= 4:
		return "Excellent"
	case avg >= 3:
		return "Good"
	case avg >= 2:
		return "Fair"
	default:
		return "Needs Attention"
	}
}

// Consistency buckets the current streak in days.
func Consistency(streak uint64) string {
	switch {
	case streak >= 7:
		return "Great!"
	case streak >= 3:
		return "Good"
	default:
		return "Getting Started"
	}
}

// StatsView is the statistics dashboard.
type StatsView struct {
	TotalEntries  uint64
	CurrentStreak uint64
	LongestStreak uint64
	AverageMood   string
	MoodTrend     string
	Consistency   string
	Categories    []SeriesPoint

	// Empty is set when there is nothing to chart yet.
	Empty bool
}

// BuildStatsView derives the dashboard from the caller's statistics.
func BuildStatsView(s journal.UserStats) StatsView {
	return StatsView{
		TotalEntries:  s.TotalEntries,
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		AverageMood:   strconv.FormatFloat(s.AverageMood, 'f', 1, 64),
		MoodTrend:     MoodTrend(s.AverageMood),
		Consistency:   Consistency(s.CurrentStreak),
		Categories:    BuildCategorySeries(s.EntriesByCategory),
		Empty:         s.TotalEntries == 0,
	}
}
