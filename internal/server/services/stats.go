package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/repomanager"
)

type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m, now: time.Now}
}

func (s *StatsService) UserStats(ctx context.Context, userID string) (journal.UserStats, error) {
	rows, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID)
	if err != nil {
		return journal.UserStats{}, fmt.Errorf("error loading entries: %w", err)
	}
	return ComputeUserStats(rows, s.now()), nil
}

func (s *StatsService) SystemStats(ctx context.Context) (journal.SystemStats, error) {
	users, err := s.repomanager.Users(s.db).Count(ctx)
	if err != nil {
		return journal.SystemStats{}, fmt.Errorf("error counting users: %w", err)
	}
	totals, err := s.repomanager.Entries(s.db).Totals(ctx)
	if err != nil {
		return journal.SystemStats{}, fmt.Errorf("error counting entries: %w", err)
	}
	return journal.SystemStats{
		TotalUsers:         users,
		TotalEntries:       totals.Entries,
		TotalPublicEntries: totals.Public,
		TotalAppreciations: totals.Appreciations,
	}, nil
}

// ComputeUserStats summarises rows as of now. Streaks count distinct UTC
// days: the current one runs back from today, or from yesterday when today
// has no entry yet.
func ComputeUserStats(rows []*models.Entry, now time.Time) journal.UserStats {
	counts := make(map[journal.Category]uint64)
	days := make(map[time.Time]struct{})
	var moodSum int

	for _, e := range rows {
		counts[journal.Category(e.Category)]++
		moodSum += e.MoodRating
		days[utcDay(e.CreatedAt)] = struct{}{}
	}

	stats := journal.UserStats{
		TotalEntries:      uint64(len(rows)),
		EntriesByCategory: journal.ZeroFilledCounts(counts),
	}
	if len(rows) > 0 {
		stats.AverageMood = float64(moodSum) / float64(len(rows))
	}
	stats.CurrentStreak = currentStreak(days, utcDay(now))
	stats.LongestStreak = longestStreak(days)
	return stats
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func currentStreak(days map[time.Time]struct{}, today time.Time) uint64 {
	day := today
	if _, ok := days[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	var n uint64
	for {
		if _, ok := days[day]; !ok {
			return n
		}
		n++
		day = day.AddDate(0, 0, -1)
	}
}

func longestStreak(days map[time.Time]struct{}) uint64 {
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var longest, run uint64
	for i, d := range sorted {
		if i > 0 && sorted[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
