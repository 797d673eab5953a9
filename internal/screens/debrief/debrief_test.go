package debrief

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adityakr/prepdrill/internal/analysis"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func seededStore(t *testing.T) *exam.MemStore {
	t.Helper()
	ctx := t.Context()
	store := exam.NewMemStore()

	questions := []exam.Question{
		{ID: "q1", Section: "Polity", Text: "First?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"},
		{ID: "q2", Section: "Polity", Text: "Second?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"},
	}
	if err := store.SaveQuestions(ctx, "paper-1", questions); err != nil {
		t.Fatalf("save questions: %v", err)
	}
	if err := store.SavePaper(ctx, exam.Paper{
		ID: "paper-1", Status: exam.StatusSubmitted, Score: 1, Accuracy: 50,
		SubmittedAt: time.Now(), UnlockedAt: time.Now().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("save paper: %v", err)
	}
	answers := []exam.Answer{
		{ID: "a1", PaperID: "paper-1", QuestionID: "q1", UserAnswer: "a", Correct: true},
		{ID: "a2", PaperID: "paper-1", QuestionID: "q2", UserAnswer: "c", MistakeCategory: exam.DefaultCategory},
	}
	for _, a := range answers {
		if err := store.SaveAnswer(ctx, a); err != nil {
			t.Fatalf("save answer: %v", err)
		}
	}
	return store
}

func mergedScreen(t *testing.T) (*DebriefScreen, *exam.MemStore) {
	t.Helper()
	store := seededStore(t)
	pipeline := analysis.New(store, nil, nil)

	s := New(pipeline, nil, "paper-1")
	msg := s.Init()()
	merged, ok := msg.(mergedMsg)
	if !ok {
		t.Fatalf("expected mergedMsg, got %T", msg)
	}
	if merged.err != nil {
		t.Fatalf("merge: %v", merged.err)
	}

	scr, _ := s.Update(merged)
	return scr.(*DebriefScreen), store
}

func TestDebrief_Title(t *testing.T) {
	s := New(nil, nil, "paper-1")
	if s.Title() != "Post-Mortem" {
		t.Errorf("Title = %q, want %q", s.Title(), "Post-Mortem")
	}
}

func TestDebrief_MergeExposesScoreBeforeFeedback(t *testing.T) {
	s, _ := mergedScreen(t)

	if s.view == nil {
		t.Fatal("expected merged view")
	}
	if s.view.Paper.Accuracy != 50 {
		t.Errorf("accuracy = %d, want 50", s.view.Paper.Accuracy)
	}
	if !s.feedbackPending {
		t.Error("expected feedback still pending after merge")
	}
	if s.View(80, 24) == "" {
		t.Error("expected renderable view before feedback arrives")
	}
}

func TestDebrief_PlaceholderFeedbackWithoutMentor(t *testing.T) {
	s, _ := mergedScreen(t)

	msg := s.debriefCmd()()
	scr, _ := s.Update(msg)
	ss := scr.(*DebriefScreen)

	if ss.feedbackPending {
		t.Error("expected feedback resolved")
	}
	if ss.view.Feedback == nil || ss.view.Feedback.Feedback == "" {
		t.Error("expected placeholder feedback when no mentor is wired")
	}
}

func TestDebrief_OverridePersistsCategory(t *testing.T) {
	s, store := mergedScreen(t)

	// Open the picker on the only mistake and choose the second category.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*DebriefScreen)
	if !ss.selecting {
		t.Fatal("expected category picker after Enter")
	}
	scr, _ = ss.Update(keyPress('j'))
	ss = scr.(*DebriefScreen)

	cats := exam.Categories()
	cmd := ss.override("a2", cats[ss.catIdx])
	msg := cmd()
	if over, ok := msg.(overriddenMsg); !ok || over.err != nil {
		t.Fatalf("override failed: %v", msg)
	}

	answers, err := store.Answers(t.Context(), "paper-1")
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	for _, a := range answers {
		if a.ID == "a2" && a.MistakeCategory != cats[1] {
			t.Errorf("category = %q, want %q", a.MistakeCategory, cats[1])
		}
	}
}

func TestDebrief_CursorWalksMistakesOnly(t *testing.T) {
	s, _ := mergedScreen(t)

	if got := len(s.mistakes()); got != 1 {
		t.Fatalf("mistakes = %d, want 1", got)
	}

	// Down cannot move past the last mistake.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	ss := scr.(*DebriefScreen)
	if ss.cursor != 0 {
		t.Errorf("cursor = %d, want 0", ss.cursor)
	}
}
