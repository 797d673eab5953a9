// Package leaderboard assembles the competitive view: study-group stats and
// the ranked board shown on the dashboard.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adityakr/prepdrill/internal/exam"
)

// Entry is one row of the board.
type Entry struct {
	Rank        int
	Name        string
	Score       int
	Streak      int
	Region      string
	Level       string
	CurrentUser bool
}

// GroupStats summarises the candidate's study group for one day.
type GroupStats struct {
	TotalMembers   int
	AttemptedToday int
}

// Competitors returns the fixed national field the candidate is ranked
// against. Scores are percentile-style, not raw marks.
func Competitors() []Entry {
	return []Entry{
		{Name: "Anjali S.", Score: 98, Streak: 45, Region: "Delhi NCR", Level: "National"},
		{Name: "Rahul K.", Score: 96, Streak: 32, Region: "Delhi NCR", Level: "National"},
		{Name: "Priya M.", Score: 92, Streak: 28, Region: "Karnataka", Level: "State"},
		{Name: "Vikram D.", Score: 88, Streak: 12, Region: "Mumbai", Level: "Board"},
		{Name: "Sneha L.", Score: 84, Streak: 15, Region: "Karnataka", Level: "State"},
	}
}

// SelfEntry derives the candidate's own row from their profile.
func SelfEntry(p *exam.Profile) Entry {
	return Entry{
		Name:        "You",
		Score:       p.TargetScore - 5,
		Streak:      p.StreakCount,
		Region:      p.Region,
		Level:       p.TargetLevel,
		CurrentUser: true,
	}
}

// Rank filters by region and level (empty string matches everything), sorts
// by score descending and assigns ranks from 1. The input is not modified.
func Rank(entries []Entry, region, level string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if region != "" && e.Region != region {
			continue
		}
		if level != "" && e.Level != level {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Board builds leaderboard and group views over the record store.
type Board struct {
	records exam.RecordStore
	now     func() time.Time
}

// NewBoard creates a Board over records.
func NewBoard(records exam.RecordStore) *Board {
	return &Board{records: records, now: time.Now}
}

// Leaderboard returns the ranked board for the given profile and filters.
// A nil profile ranks the fixed field alone.
func (b *Board) Leaderboard(profile *exam.Profile, region, level string) []Entry {
	entries := Competitors()
	if profile != nil {
		entries = append(entries, SelfEntry(profile))
	}
	return Rank(entries, region, level)
}

// GroupStats reports group size and how many members attempted a paper
// today. A profile without a group yields zeros. Locally only the
// candidate's own papers are visible, so attempted-today is 0 or 1.
func (b *Board) GroupStats(ctx context.Context, profile *exam.Profile) (GroupStats, error) {
	if profile == nil || profile.GroupID == "" {
		return GroupStats{}, nil
	}

	papers, err := b.records.Papers(ctx)
	if err != nil {
		return GroupStats{}, fmt.Errorf("load papers: %w", err)
	}

	today := b.now().Format("2006-01-02")
	attempted := 0
	for _, p := range papers {
		if p.OwnerID != profile.ID || p.Status == exam.StatusAvailable || p.Status == exam.StatusLocked {
			continue
		}
		if p.CreatedAt.Format("2006-01-02") == today {
			attempted = 1
			break
		}
	}
	return GroupStats{TotalMembers: 1, AttemptedToday: attempted}, nil
}
