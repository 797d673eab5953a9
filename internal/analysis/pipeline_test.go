package analysis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/adityakr/prepdrill/internal/classify"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
	"github.com/adityakr/prepdrill/internal/mentor"
)

const paperID = "paper-1"

// seedStore builds a store with one submitted paper: q1 correct, q2 and q3
// incorrect, both still on the submission-time placeholder.
func seedStore(t *testing.T) *exam.MemStore {
	t.Helper()
	ctx := context.Background()
	store := exam.NewMemStore()

	err := store.SavePaper(ctx, exam.Paper{
		ID:          paperID,
		OwnerID:     "user-1",
		Status:      exam.StatusSubmitted,
		Score:       1,
		Accuracy:    33,
		CreatedAt:   time.Now(),
		SubmittedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed paper: %v", err)
	}

	err = store.SaveQuestions(ctx, paperID, []exam.Question{
		{ID: "q1", Section: "History", Text: "one", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		{ID: "q2", Section: "Polity", Text: "two", Options: []string{"A", "B"}, CorrectAnswer: "B"},
		{ID: "q3", Section: "Economy", Text: "three", Options: []string{"A", "B"}, CorrectAnswer: "A"},
	})
	if err != nil {
		t.Fatalf("seed questions: %v", err)
	}

	answers := []exam.Answer{
		{ID: "a1", PaperID: paperID, QuestionID: "q1", UserAnswer: "A", Correct: true},
		{ID: "a2", PaperID: paperID, QuestionID: "q2", UserAnswer: "A", Correct: false, TimeSpentSecs: 70, MistakeCategory: exam.DefaultCategory},
		{ID: "a3", PaperID: paperID, QuestionID: "q3", UserAnswer: "", Correct: false, TimeSpentSecs: 2, MistakeCategory: exam.DefaultCategory},
	}
	for _, a := range answers {
		if err := store.SaveAnswer(ctx, a); err != nil {
			t.Fatalf("seed answer %s: %v", a.ID, err)
		}
	}
	return store
}

func suggestionResponse(body string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(body)}
}

func feedbackResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"persona": "The Strategist",
		"feedback": "Polity traps cost you.",
		"motivation": "Keep going.",
		"plan": [{"topic": "Polity", "summary": "Revise emergency articles.", "priority": "High"}]
	}`)}
}

func newPipeline(store exam.RecordStore, classifyMock, mentorMock *llm.MockProvider) *Pipeline {
	var c *classify.Classifier
	if classifyMock != nil {
		c = classify.NewClassifier(classifyMock, classify.DefaultConfig())
	}
	var m *mentor.Mentor
	if mentorMock != nil {
		m = mentor.New(mentorMock, mentor.DefaultConfig())
	}
	p := New(store, c, m)
	p.warnf = func(string, ...any) {}
	return p
}

func answerByID(t *testing.T, v *View, id string) exam.Answer {
	t.Helper()
	for _, a := range v.Answers {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("answer %s not in view", id)
	return exam.Answer{}
}

func TestMergeAdoptsSuggestionsOverPlaceholder(t *testing.T) {
	store := seedStore(t)
	cls := llm.NewMockProvider(suggestionResponse(`{"suggestions":[
		{"answer_id":"a2","category":"Trap","reasoning":"classic distractor"},
		{"answer_id":"a3","category":"Blind Guess","reasoning":"left blank"}
	]}`))
	p := newPipeline(store, cls, nil)

	v, err := p.Merge(context.Background(), paperID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	if got := answerByID(t, v, "a2").MistakeCategory; got != exam.CategoryTrap {
		t.Errorf("a2 category = %q, want Trap", got)
	}
	if got := answerByID(t, v, "a3").MistakeCategory; got != exam.CategoryBlindGuess {
		t.Errorf("a3 category = %q, want Blind Guess", got)
	}
	// Adopted categories are persisted, not just in the view.
	stored, _ := store.Answers(context.Background(), paperID)
	for _, a := range stored {
		if a.ID == "a2" && a.MistakeCategory != exam.CategoryTrap {
			t.Errorf("stored a2 category = %q, want Trap", a.MistakeCategory)
		}
	}
}

func TestMergeNeverRevertsOverride(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	// The candidate already re-categorized a2.
	answers, _ := store.Answers(ctx, paperID)
	for _, a := range answers {
		if a.ID == "a2" {
			a.MistakeCategory = exam.CategoryOverthinking
			if err := store.SaveAnswer(ctx, a); err != nil {
				t.Fatalf("seed override: %v", err)
			}
		}
	}

	cls := llm.NewMockProvider(suggestionResponse(`{"suggestions":[
		{"answer_id":"a2","category":"Trap","reasoning":"advisory only"}
	]}`))
	p := newPipeline(store, cls, nil)

	v, err := p.Merge(ctx, paperID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	if got := answerByID(t, v, "a2").MistakeCategory; got != exam.CategoryOverthinking {
		t.Errorf("a2 category = %q, override must survive the merge", got)
	}
	// The suggestion stays visible as advisory text.
	if s, ok := v.Suggestions["a2"]; !ok || s.Category != exam.CategoryTrap {
		t.Errorf("suggestion for a2 = %+v, want advisory Trap", s)
	}
}

func TestMergeIdempotentAcrossRuns(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	cls := llm.NewMockProvider(
		suggestionResponse(`{"suggestions":[{"answer_id":"a2","category":"Trap","reasoning":"r"}]}`),
		suggestionResponse(`{"suggestions":[{"answer_id":"a2","category":"Time Pressure","reasoning":"r2"}]}`),
	)
	p := newPipeline(store, cls, nil)

	if _, err := p.Merge(ctx, paperID); err != nil {
		t.Fatalf("first merge: %v", err)
	}

	// User overrides after the first run.
	if err := p.Override(ctx, paperID, "a2", exam.CategoryOverthinking); err != nil {
		t.Fatalf("override: %v", err)
	}

	// Second run suggests something else; the override must hold.
	v, err := p.Merge(ctx, paperID)
	if err != nil {
		t.Fatalf("second merge: %v", err)
	}
	if got := answerByID(t, v, "a2").MistakeCategory; got != exam.CategoryOverthinking {
		t.Errorf("a2 category = %q after re-run, want Overthinking", got)
	}
}

func TestMergeClassifierFailureDegrades(t *testing.T) {
	store := seedStore(t)
	cls := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	p := newPipeline(store, cls, nil)

	v, err := p.Merge(context.Background(), paperID)
	if err != nil {
		t.Fatalf("merge must not fail on classifier error: %v", err)
	}
	if len(v.Suggestions) != 0 {
		t.Errorf("suggestions = %d, want 0", len(v.Suggestions))
	}
	if got := answerByID(t, v, "a2").MistakeCategory; got != exam.DefaultCategory {
		t.Errorf("a2 category = %q, placeholder must stand", got)
	}
}

func TestRunClassifierFailureStillInvokesMentor(t *testing.T) {
	store := seedStore(t)
	cls := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	men := llm.NewMockProvider(feedbackResponse())
	p := newPipeline(store, cls, men)

	v, err := p.Run(context.Background(), paperID, nil, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Degraded classification leaves the placeholders standing...
	if got := answerByID(t, v, "a2").MistakeCategory; got != exam.DefaultCategory {
		t.Errorf("a2 category = %q, placeholder must stand", got)
	}
	if got := answerByID(t, v, "a3").MistakeCategory; got != exam.DefaultCategory {
		t.Errorf("a3 category = %q, placeholder must stand", got)
	}
	// ...and the mentor still runs over that unmerged answer set.
	if men.CallCount() != 1 {
		t.Errorf("mentor called %d times, want 1", men.CallCount())
	}
	if v.Feedback == nil || v.Feedback.Persona != "The Strategist" {
		t.Errorf("feedback = %+v, want mentor result despite classifier failure", v.Feedback)
	}
}

func TestMergePartialSuggestions(t *testing.T) {
	store := seedStore(t)
	cls := llm.NewMockProvider(suggestionResponse(`{"suggestions":[
		{"answer_id":"a3","category":"Blind Guess","reasoning":"only one entry"}
	]}`))
	p := newPipeline(store, cls, nil)

	v, err := p.Merge(context.Background(), paperID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got := answerByID(t, v, "a2").MistakeCategory; got != exam.DefaultCategory {
		t.Errorf("a2 category = %q, want untouched placeholder", got)
	}
	if got := answerByID(t, v, "a3").MistakeCategory; got != exam.CategoryBlindGuess {
		t.Errorf("a3 category = %q, want Blind Guess", got)
	}
}

func TestMergeAllCorrectSkipsClassifier(t *testing.T) {
	ctx := context.Background()
	store := exam.NewMemStore()
	if err := store.SavePaper(ctx, exam.Paper{ID: paperID, Status: exam.StatusSubmitted, Score: 1, Accuracy: 100}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveQuestions(ctx, paperID, []exam.Question{{ID: "q1", CorrectAnswer: "A"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveAnswer(ctx, exam.Answer{ID: "a1", PaperID: paperID, QuestionID: "q1", UserAnswer: "A", Correct: true}); err != nil {
		t.Fatal(err)
	}

	cls := llm.NewMockProvider()
	p := newPipeline(store, cls, nil)

	if _, err := p.Merge(ctx, paperID); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if cls.CallCount() != 0 {
		t.Errorf("classifier called %d times for an all-correct paper", cls.CallCount())
	}
}

func TestMergePersistenceFaultSurfaces(t *testing.T) {
	store := seedStore(t)
	cls := llm.NewMockProvider(suggestionResponse(`{"suggestions":[
		{"answer_id":"a2","category":"Trap","reasoning":"r"}
	]}`))
	p := newPipeline(store, cls, nil)

	store.FailWrites = true
	if _, err := p.Merge(context.Background(), paperID); err == nil {
		t.Fatal("expected persistence fault to surface")
	}
}

func TestDebriefAdvancesPaperToAnalyzed(t *testing.T) {
	store := seedStore(t)
	men := llm.NewMockProvider(feedbackResponse())
	p := newPipeline(store, nil, men)

	v, err := p.Merge(context.Background(), paperID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	fb := p.Debrief(context.Background(), v, nil)

	if fb.Persona != "The Strategist" {
		t.Errorf("persona = %q", fb.Persona)
	}
	stored, _ := store.Paper(paperID)
	if stored.Status != exam.StatusAnalyzed {
		t.Errorf("paper status = %q, want analyzed", stored.Status)
	}
}

func TestDebriefFailureYieldsPlaceholder(t *testing.T) {
	store := seedStore(t)
	men := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	p := newPipeline(store, nil, men)

	v, err := p.Merge(context.Background(), paperID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	fb := p.Debrief(context.Background(), v, nil)

	if fb == nil || fb.Feedback == "" {
		t.Fatal("expected placeholder feedback")
	}
	// The failed debrief must not advance the paper; the next run retries.
	stored, _ := store.Paper(paperID)
	if stored.Status != exam.StatusSubmitted {
		t.Errorf("paper status = %q, want submitted", stored.Status)
	}
}

func TestRunExposesMergeBeforeFeedback(t *testing.T) {
	store := seedStore(t)
	cls := llm.NewMockProvider(suggestionResponse(`{"suggestions":[
		{"answer_id":"a2","category":"Trap","reasoning":"r"}
	]}`))
	men := llm.NewMockProvider(feedbackResponse())
	p := newPipeline(store, cls, men)

	var mergedFirst bool
	v, err := p.Run(context.Background(), paperID, nil, func(v *View) {
		mergedFirst = true
		if v.Feedback != nil {
			t.Error("feedback already set at merge exposure")
		}
		if answerByID(t, v, "a2").MistakeCategory != exam.CategoryTrap {
			t.Error("merged category not visible at merge exposure")
		}
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !mergedFirst {
		t.Fatal("onMerged never fired")
	}
	if v.Feedback == nil || v.Feedback.Persona != "The Strategist" {
		t.Errorf("feedback = %+v", v.Feedback)
	}
}

func TestOverrideValidatesCategory(t *testing.T) {
	store := seedStore(t)
	p := newPipeline(store, nil, nil)
	ctx := context.Background()

	if err := p.Override(ctx, paperID, "a2", "Carelessness"); err == nil {
		t.Error("expected error for unknown category")
	}
	if err := p.Override(ctx, paperID, "a1", exam.CategoryTrap); err == nil {
		t.Error("expected error when overriding a correct answer")
	}
	if err := p.Override(ctx, paperID, "missing", exam.CategoryTrap); err == nil {
		t.Error("expected error for unknown answer")
	}
	if err := p.Override(ctx, paperID, "a2", exam.CategoryTimePressure); err != nil {
		t.Errorf("valid override failed: %v", err)
	}
}

func TestMergeMissingPaper(t *testing.T) {
	store := exam.NewMemStore()
	p := newPipeline(store, nil, nil)
	if _, err := p.Merge(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing paper")
	}
}
