package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/adityakr/prepdrill/internal/exam"
)

func TestRankSortsAndRenumbers(t *testing.T) {
	entries := []Entry{
		{Name: "low", Score: 10},
		{Name: "high", Score: 90},
		{Name: "mid", Score: 50},
	}

	got := Rank(entries, "", "")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []string{"high", "mid", "low"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i+1, got[i].Name, name)
		}
		if got[i].Rank != i+1 {
			t.Errorf("rank field = %d, want %d", got[i].Rank, i+1)
		}
	}
}

func TestRankFilters(t *testing.T) {
	entries := Competitors()

	byRegion := Rank(entries, "Karnataka", "")
	if len(byRegion) != 2 {
		t.Fatalf("region filter len = %d, want 2", len(byRegion))
	}
	for _, e := range byRegion {
		if e.Region != "Karnataka" {
			t.Errorf("entry %q leaked through region filter", e.Name)
		}
	}
	// Ranks restart from 1 after filtering.
	if byRegion[0].Rank != 1 {
		t.Errorf("top filtered rank = %d, want 1", byRegion[0].Rank)
	}

	byBoth := Rank(entries, "Delhi NCR", "National")
	if len(byBoth) != 2 {
		t.Fatalf("combined filter len = %d, want 2", len(byBoth))
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	entries := []Entry{{Name: "a", Score: 1}, {Name: "b", Score: 2}}
	Rank(entries, "", "")
	if entries[0].Name != "a" || entries[0].Rank != 0 {
		t.Error("input slice was modified")
	}
}

func TestLeaderboardIncludesSelf(t *testing.T) {
	b := NewBoard(exam.NewMemStore())
	profile := &exam.Profile{
		ID:          "u1",
		TargetScore: 100,
		StreakCount: 7,
		Region:      "Delhi NCR",
		TargetLevel: "National",
	}

	got := b.Leaderboard(profile, "", "")
	var self *Entry
	for i := range got {
		if got[i].CurrentUser {
			self = &got[i]
		}
	}
	if self == nil {
		t.Fatal("no current-user row")
	}
	if self.Score != 95 {
		t.Errorf("self score = %d, want target-5 = 95", self.Score)
	}
	// 95 ranks between Rahul (96) and Priya (92).
	if self.Rank != 3 {
		t.Errorf("self rank = %d, want 3", self.Rank)
	}
}

func TestGroupStatsNoGroup(t *testing.T) {
	b := NewBoard(exam.NewMemStore())

	got, err := b.GroupStats(context.Background(), &exam.Profile{ID: "u1"})
	if err != nil {
		t.Fatalf("group stats: %v", err)
	}
	if got.TotalMembers != 0 || got.AttemptedToday != 0 {
		t.Errorf("stats = %+v, want zeros without a group", got)
	}
}

func TestGroupStatsAttemptedToday(t *testing.T) {
	store := exam.NewMemStore()
	b := NewBoard(store)
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	ctx := context.Background()
	profile := &exam.Profile{ID: "u1", GroupID: "EXAM-PRO"}

	// An untouched paper from today does not count as attempted.
	if err := store.SavePaper(ctx, exam.Paper{
		ID: "p1", OwnerID: "u1", Status: exam.StatusAvailable, CreatedAt: now,
	}); err != nil {
		t.Fatal(err)
	}
	got, err := b.GroupStats(ctx, profile)
	if err != nil {
		t.Fatalf("group stats: %v", err)
	}
	if got.AttemptedToday != 0 {
		t.Errorf("attempted = %d before any submission", got.AttemptedToday)
	}

	// A submitted paper from today counts.
	if err := store.SavePaper(ctx, exam.Paper{
		ID: "p2", OwnerID: "u1", Status: exam.StatusSubmitted,
		CreatedAt: now.Add(-2 * time.Hour), SubmittedAt: now,
	}); err != nil {
		t.Fatal(err)
	}
	got, err = b.GroupStats(ctx, profile)
	if err != nil {
		t.Fatalf("group stats: %v", err)
	}
	if got.TotalMembers != 1 || got.AttemptedToday != 1 {
		t.Errorf("stats = %+v, want 1/1", got)
	}

	// Yesterday's submission does not count.
	b.now = func() time.Time { return now.Add(24 * time.Hour) }
	got, err = b.GroupStats(ctx, profile)
	if err != nil {
		t.Fatalf("group stats: %v", err)
	}
	if got.AttemptedToday != 0 {
		t.Errorf("attempted = %d the next day, want 0", got.AttemptedToday)
	}
}
