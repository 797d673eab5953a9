package store

import (
	"context"
	"testing"
	"time"

	"github.com/adityakr/prepdrill/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPaperRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	p := exam.Paper{
		ID:              "paper-1",
		OwnerID:         "user-1",
		Status:          exam.StatusAvailable,
		DifficultyLevel: 3,
		CreatedAt:       now,
	}
	if err := repo.SavePaper(ctx, p); err != nil {
		t.Fatalf("save paper: %v", err)
	}

	papers, err := repo.Papers(ctx)
	if err != nil {
		t.Fatalf("papers: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("papers count = %d, want 1", len(papers))
	}
	got := papers[0]
	if got.ID != "paper-1" || got.Status != exam.StatusAvailable || got.DifficultyLevel != 3 {
		t.Errorf("paper round trip = %+v", got)
	}
}

func TestSavePaperUpsertsByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	p := exam.Paper{ID: "paper-1", OwnerID: "user-1", Status: exam.StatusAvailable, CreatedAt: now}
	if err := repo.SavePaper(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.Status = exam.StatusSubmitted
	p.Score = 21
	p.Accuracy = 70
	p.SubmittedAt = now.Add(30 * time.Minute)
	if err := repo.SavePaper(ctx, p); err != nil {
		t.Fatalf("save again: %v", err)
	}

	papers, err := repo.Papers(ctx)
	if err != nil {
		t.Fatalf("papers: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("papers count = %d, want 1", len(papers))
	}
	if papers[0].Status != exam.StatusSubmitted || papers[0].Score != 21 {
		t.Errorf("got %+v after upsert", papers[0])
	}
}

func TestQuestionsOrderedByPosition(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	qs := []exam.Question{
		{ID: "q-a", Section: "History", Text: "first", Options: []string{"1", "2"}, CorrectAnswer: "1"},
		{ID: "q-b", Section: "Polity", Text: "second", Options: []string{"3", "4"}, CorrectAnswer: "4"},
		{ID: "q-c", Section: "Economy", Text: "third", Options: []string{"5", "6"}, CorrectAnswer: "5"},
	}
	if err := repo.SaveQuestions(ctx, "paper-1", qs); err != nil {
		t.Fatalf("save questions: %v", err)
	}

	got, err := repo.Questions(ctx, "paper-1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("questions count = %d, want 3", len(got))
	}
	for i, q := range got {
		if q.ID != qs[i].ID {
			t.Errorf("question[%d].ID = %q, want %q", i, q.ID, qs[i].ID)
		}
	}
	if got[1].CorrectAnswer != "4" {
		t.Errorf("correct answer = %q, want %q", got[1].CorrectAnswer, "4")
	}
}

func TestAnswerUpsertAndQueryByPaper(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	a := exam.Answer{
		ID:              "ans-1",
		PaperID:         "paper-1",
		QuestionID:      "q-a",
		UserAnswer:      "B",
		Correct:         false,
		TimeSpentSecs:   42,
		MistakeCategory: exam.CategoryKnowledgeGap,
	}
	if err := repo.SaveAnswer(ctx, a); err != nil {
		t.Fatalf("save answer: %v", err)
	}

	// Second write with the same ID overwrites, not duplicates.
	a.MistakeCategory = exam.CategoryTrap
	if err := repo.SaveAnswer(ctx, a); err != nil {
		t.Fatalf("save answer again: %v", err)
	}

	// An answer for another paper must not leak into the query.
	other := exam.Answer{ID: "ans-2", PaperID: "paper-2", QuestionID: "q-z", MistakeCategory: exam.CategoryKnowledgeGap}
	if err := repo.SaveAnswer(ctx, other); err != nil {
		t.Fatalf("save other: %v", err)
	}

	got, err := repo.Answers(ctx, "paper-1")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("answers count = %d, want 1", len(got))
	}
	if got[0].MistakeCategory != exam.CategoryTrap {
		t.Errorf("category = %q, want %q", got[0].MistakeCategory, exam.CategoryTrap)
	}
	if got[0].TimeSpentSecs != 42 {
		t.Errorf("time spent = %d, want 42", got[0].TimeSpentSecs)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	// No profile before onboarding.
	p, err := repo.Profile(ctx)
	if err != nil {
		t.Fatalf("profile (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile before onboarding")
	}

	examDate := time.Now().UTC().AddDate(0, 6, 0).Truncate(time.Second)
	in := exam.Profile{
		ID:          "user-1",
		ExamName:    "UPSC Prelims",
		TargetScore: 110,
		StreakCount: 4,
		Zone:        exam.ZoneSafe,
		ExamDate:    examDate,
		GroupID:     "grp-aspirants",
		Region:      "North",
		TargetLevel: "advanced",
	}
	if err := repo.SaveProfile(ctx, in); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	// Upsert: streak bump keeps a single row.
	in.StreakCount = 5
	if err := repo.SaveProfile(ctx, in); err != nil {
		t.Fatalf("save profile again: %v", err)
	}

	p, err = repo.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil profile")
	}
	if p.StreakCount != 5 {
		t.Errorf("streak = %d, want 5", p.StreakCount)
	}
	if p.Zone != exam.ZoneSafe {
		t.Errorf("zone = %q, want %q", p.Zone, exam.ZoneSafe)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "gemini-2.0-flash", Purpose: "paper-gen", InputTokens: 100, OutputTokens: 900, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "mistake-classification", InputTokens: 50, OutputTokens: 30, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "mistake-classification", InputTokens: 60, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage groups = %d, want 2", len(usage))
	}

	byPurpose := make(map[string]LLMUsageSummary)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	cls := byPurpose["mistake-classification"]
	if cls.Requests != 2 || cls.Failures != 1 {
		t.Errorf("classification usage = %+v", cls)
	}
	if cls.InputTokens != 110 {
		t.Errorf("classification input tokens = %d, want 110", cls.InputTokens)
	}
	gen := byPurpose["paper-gen"]
	if gen.Requests != 1 || gen.Failures != 0 || gen.OutputTokens != 900 {
		t.Errorf("paper-gen usage = %+v", gen)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"papers", "questions", "answers", "profiles", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
