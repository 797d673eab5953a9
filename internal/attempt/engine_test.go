package attempt

import (
	"context"
	"testing"
	"time"

	"github.com/adityakr/prepdrill/internal/exam"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testPaper() exam.Paper {
	return exam.Paper{
		ID:        "p1",
		OwnerID:   "u1",
		Status:    exam.StatusAvailable,
		CreatedAt: time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC),
	}
}

func testQuestions(n int) []exam.Question {
	qs := make([]exam.Question, n)
	for i := range qs {
		qs[i] = exam.Question{
			ID:            string(rune('a' + i)),
			Section:       "General",
			Text:          "question",
			Options:       []string{"opt1", "opt2", "opt3", "opt4"},
			CorrectAnswer: "opt1",
		}
	}
	return qs
}

func newTestEngine(t *testing.T, n int) (*Engine, *exam.MemStore, *fakeClock) {
	t.Helper()
	store := exam.NewMemStore()
	clock := newFakeClock()
	e := NewEngine(store, testPaper(), testQuestions(n), DefaultBudgetSecs)
	e.SetClock(clock.Now)
	return e, store, clock
}

func TestTimeAttributionAcrossVisits(t *testing.T) {
	e, _, clock := newTestEngine(t, 3)

	// 8s on Q1, 12s on Q2, back to Q1 for 5s, then submit from Q1.
	clock.Advance(8 * time.Second)
	e.Next()
	clock.Advance(12 * time.Second)
	e.Prev()
	clock.Advance(5 * time.Second)

	res, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := map[string]int{"a": 13, "b": 12, "c": 0}
	for _, a := range res.Answers {
		if a.TimeSpentSecs != want[a.QuestionID] {
			t.Errorf("question %s: got %ds, want %ds", a.QuestionID, a.TimeSpentSecs, want[a.QuestionID])
		}
	}
}

func TestTimeConservation(t *testing.T) {
	// Over any navigation sequence, the summed per-question time equals the
	// total elapsed wall time.
	e, _, clock := newTestEngine(t, 5)

	moves := []struct {
		advance int // seconds
		dir     int // -1 prev, +1 next, 0 stay
	}{
		{3, 1}, {7, 1}, {2, -1}, {11, 1}, {1, 1}, {4, -1}, {9, 1}, {6, 0},
	}
	total := 0
	for _, m := range moves {
		clock.Advance(time.Duration(m.advance) * time.Second)
		total += m.advance
		switch m.dir {
		case 1:
			e.Next()
		case -1:
			e.Prev()
		}
	}

	res, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	sum := 0
	for _, a := range res.Answers {
		sum += a.TimeSpentSecs
	}
	if sum != total {
		t.Errorf("time conservation: got %ds accumulated, want %ds elapsed", sum, total)
	}
}

func TestNavigationClamped(t *testing.T) {
	e, _, _ := newTestEngine(t, 2)

	e.Prev() // already at first question
	if _, idx, _ := e.Current(); idx != 0 {
		t.Errorf("prev at start: got index %d, want 0", idx)
	}

	e.Next()
	e.Next() // already at last question
	if _, idx, _ := e.Current(); idx != 1 {
		t.Errorf("next at end: got index %d, want 1", idx)
	}
}

func TestSubmitScoring(t *testing.T) {
	e, store, clock := newTestEngine(t, 3)

	// Q1 correct (8s), Q2 wrong (12s), Q3 untouched; time runs out.
	e.Select("opt1")
	clock.Advance(8 * time.Second)
	e.Next()
	e.Select("opt2")
	clock.Advance(12 * time.Second)

	res, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if res.Paper.Score != 1 {
		t.Errorf("score: got %d, want 1", res.Paper.Score)
	}
	if res.Paper.Accuracy != 33 {
		t.Errorf("accuracy: got %d, want 33", res.Paper.Accuracy)
	}
	if res.Paper.Status != exam.StatusSubmitted {
		t.Errorf("status: got %q, want %q", res.Paper.Status, exam.StatusSubmitted)
	}
	if got := res.Paper.UnlockedAt.Sub(res.Paper.SubmittedAt); got != AnalysisDelay {
		t.Errorf("unlock delay: got %s, want %s", got, AnalysisDelay)
	}

	var q3 exam.Answer
	for _, a := range res.Answers {
		if a.QuestionID == "c" {
			q3 = a
		}
	}
	if q3.UserAnswer != "" {
		t.Errorf("unanswered question: got user answer %q, want empty", q3.UserAnswer)
	}
	if q3.Correct {
		t.Error("unanswered question marked correct")
	}
	if q3.MistakeCategory != exam.CategoryKnowledgeGap {
		t.Errorf("placeholder category: got %q, want %q", q3.MistakeCategory, exam.CategoryKnowledgeGap)
	}
	if q3.TimeSpentSecs != 0 {
		t.Errorf("unvisited question time: got %d, want 0", q3.TimeSpentSecs)
	}

	if n := store.AnswerCount("p1"); n != 3 {
		t.Errorf("persisted answers: got %d, want 3", n)
	}
}

func TestSubmitIdempotent(t *testing.T) {
	e, store, _ := newTestEngine(t, 3)

	first, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if second != first {
		t.Error("second submit built a new result")
	}
	if n := store.AnswerCount("p1"); n != 3 {
		t.Errorf("persisted answers after double submit: got %d, want 3", n)
	}
	if e.Phase() != PhaseTerminated {
		t.Errorf("phase: got %v, want PhaseTerminated", e.Phase())
	}
}

func TestSubmitEmptyPaper(t *testing.T) {
	e, _, _ := newTestEngine(t, 0)

	res, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Paper.Score != 0 || res.Paper.Accuracy != 0 {
		t.Errorf("empty paper: got score=%d accuracy=%d, want 0/0", res.Paper.Score, res.Paper.Accuracy)
	}
}

func TestCountdownExpirySubmitsOnce(t *testing.T) {
	store := exam.NewMemStore()
	clock := newFakeClock()
	e := NewEngine(store, testPaper(), testQuestions(2), 3)
	e.SetClock(clock.Now)

	e.Select("opt1")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		clock.Advance(time.Second)
		if res, err := e.Tick(ctx); err != nil || res != nil {
			t.Fatalf("tick %d: res=%v err=%v", i, res, err)
		}
	}

	clock.Advance(time.Second)
	res, err := e.Tick(ctx)
	if err != nil {
		t.Fatalf("expiry tick: %v", err)
	}
	if res == nil {
		t.Fatal("expiry tick did not submit")
	}
	// The in-progress question's open interval is flushed before scoring.
	for _, a := range res.Answers {
		if a.QuestionID == "a" && a.TimeSpentSecs != 3 {
			t.Errorf("flushed time: got %ds, want 3s", a.TimeSpentSecs)
		}
	}

	// A late timer callback after termination is a no-op.
	clock.Advance(time.Second)
	late, err := e.Tick(ctx)
	if err != nil || late != nil {
		t.Errorf("late tick: res=%v err=%v, want nil/nil", late, err)
	}
	if n := store.AnswerCount("p1"); n != 2 {
		t.Errorf("persisted answers: got %d, want 2", n)
	}
}

func TestSubmitRaceSingleWinner(t *testing.T) {
	e, store, _ := newTestEngine(t, 2)

	ctx := context.Background()
	done := make(chan error, 2)
	go func() { _, err := e.Submit(ctx); done <- err }()
	go func() { _, err := e.Submit(ctx); done <- err }()
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent submit: %v", err)
		}
	}

	if n := store.AnswerCount("p1"); n != 2 {
		t.Errorf("persisted answers after race: got %d, want 2", n)
	}
}

func TestSubmitSurfacesPersistenceFault(t *testing.T) {
	store := exam.NewMemStore()
	store.FailWrites = true
	e := NewEngine(store, testPaper(), testQuestions(1), DefaultBudgetSecs)

	if _, err := e.Submit(context.Background()); err == nil {
		t.Fatal("submit with failing store: want error, got nil")
	}
	if e.Phase() == PhaseTerminated {
		t.Error("engine terminated despite persistence fault")
	}

	// Retry after the store recovers writes the same records, no duplicates.
	store.FailWrites = false
	if _, err := e.Submit(context.Background()); err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if n := store.AnswerCount("p1"); n != 1 {
		t.Errorf("persisted answers after retry: got %d, want 1", n)
	}
}

func TestSelectOverwritesWithoutTouchingClock(t *testing.T) {
	e, _, clock := newTestEngine(t, 1)

	e.Select("opt3")
	e.Select("opt1")
	clock.Advance(4 * time.Second)

	res, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Answers[0].UserAnswer != "opt1" {
		t.Errorf("got %q, want opt1", res.Answers[0].UserAnswer)
	}
	if !res.Answers[0].Correct {
		t.Error("final selection not scored as correct")
	}
	if res.Answers[0].TimeSpentSecs != 4 {
		t.Errorf("time: got %d, want 4", res.Answers[0].TimeSpentSecs)
	}
}

func TestAccuracyRounding(t *testing.T) {
	tests := []struct {
		score, n, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 8, 13}, // 12.5 rounds up
		{29, 30, 97},
	}
	for _, tt := range tests {
		if got := accuracy(tt.score, tt.n); got != tt.want {
			t.Errorf("accuracy(%d, %d): got %d, want %d", tt.score, tt.n, got, tt.want)
		}
	}
}
