package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gratilog/internal/journal"
)

func TestMoodTrend_Boundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{0, "Needs Attention"},
		{1.99, "Needs Attention"},
		{2.0, "Fair"},
		{2.99, "Fair"},
		{3.0, "Good"},
		{3.99, "Good"},
		{4.0, "Excellent"},
		{5.0, "Excellent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MoodTrend(tt.avg), tt.avg)
	}
}

func TestConsistency_Boundaries(t *testing.T) {
	tests := []struct {
		streak uint64
		want   string
	}{
		{0, "Getting Started"},
		{2, "Getting Started"},
		{3, "Good"},
		{6, "Good"},
		{7, "Great!"},
		{30, "Great!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Consistency(tt.streak), tt.streak)
	}
}

func TestBuildCategorySeries(t *testing.T) {
	got := BuildCategorySeries([]journal.CategoryCount{
		{Category: "Work", Count: 3},
		{Category: "Family", Count: 0},
		{Category: "Pets", Count: 2},
		{Category: "Nature", Count: 1},
	})

	want := []SeriesPoint{
		{Name: "Work", Emoji: "💼", Value: 3, StyleTag: "bg-blue-100 text-blue-800"},
		{Name: "Other", Emoji: "💫", Value: 2, StyleTag: "bg-gray-100 text-gray-800"},
		{Name: "Nature", Emoji: "🌿", Value: 1, StyleTag: "bg-emerald-100 text-emerald-800"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCategorySeries_AllZero(t *testing.T) {
	got := BuildCategorySeries(journal.ZeroFilledCounts(nil))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestBuildStatsView(t *testing.T) {
	v := BuildStatsView(journal.UserStats{
		TotalEntries:      4,
		CurrentStreak:     3,
		LongestStreak:     9,
		AverageMood:       3.75,
		EntriesByCategory: []journal.CategoryCount{{Category: "Health", Count: 4}},
	})

	assert.Equal(t, uint64(4), v.TotalEntries)
	assert.Equal(t, "3.8", v.AverageMood)
	assert.Equal(t, "Good", v.MoodTrend)
	assert.Equal(t, "Good", v.Consistency)
	assert.Len(t, v.Categories, 1)
	assert.False(t, v.Empty)

	empty := BuildStatsView(journal.UserStats{})
	assert.True(t, empty.Empty)
	assert.Equal(t, "0.0", empty.AverageMood)
	assert.Equal(t, "Needs Attention", empty.MoodTrend)
}

func TestChartColor_Cycles(t *testing.T) {
	assert.Equal(t, "#8B5CF6", ChartColor(0))
	assert.Equal(t, "#6B7280", ChartColor(7))
	assert.Equal(t, "#8B5CF6", ChartColor(8))
	assert.Len(t, ChartPalette, 8)
}
