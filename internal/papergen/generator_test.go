package papergen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

func paperJSON(n int) json.RawMessage {
	var b strings.Builder
	b.WriteString(`{"questions":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{
			"section": "Polity",
			"text": "Question %d",
			"options": ["A%d", "B%d", "C%d", "D%d"],
			"correct_answer": "B%d",
			"is_verified_source": true,
			"trap_explanation": "adjacent article numbers"
		}`, i, i, i, i, i, i)
	}
	b.WriteString(`]}`)
	return json.RawMessage(b.String())
}

func TestGeneratePersistsPaperAndQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: paperJSON(30)})
	store := exam.NewMemStore()
	g := New(mock, store, DefaultConfig())
	now := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	profile := &exam.Profile{ID: "user-1", ExamName: "UPSC Prelims"}
	paper, err := g.Generate(context.Background(), profile, 3, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if paper.Status != exam.StatusAvailable {
		t.Errorf("status = %q, want available", paper.Status)
	}
	if paper.OwnerID != "user-1" {
		t.Errorf("owner = %q", paper.OwnerID)
	}
	if !paper.CreatedAt.Equal(now) {
		t.Errorf("created at = %v, want %v", paper.CreatedAt, now)
	}
	if paper.RecoveryMode {
		t.Error("recovery mode set on a standard paper")
	}

	qs, err := store.Questions(context.Background(), paper.ID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(qs) != 30 {
		t.Fatalf("question count = %d, want 30", len(qs))
	}
	if qs[0].ID == "" || qs[0].ID == qs[1].ID {
		t.Error("questions missing distinct IDs")
	}
	if qs[3].CorrectAnswer != "B3" {
		t.Errorf("correct answer = %q, want B3", qs[3].CorrectAnswer)
	}

	stored, ok := store.Paper(paper.ID)
	if !ok {
		t.Fatal("paper not persisted")
	}
	if stored.Status != exam.StatusAvailable {
		t.Errorf("stored status = %q", stored.Status)
	}
}

func TestGenerateRecoveryModePrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: paperJSON(30)})
	g := New(mock, exam.NewMemStore(), DefaultConfig())

	paper, err := g.Generate(context.Background(), &exam.Profile{ID: "u", ExamName: "SSLC"}, 1, true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !paper.RecoveryMode {
		t.Error("recovery mode flag not set")
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Recovery Mode") {
		t.Errorf("prompt missing recovery difficulty:\n%s", prompt)
	}
	if !strings.Contains(prompt, "SSLC") {
		t.Error("prompt missing exam name")
	}
}

func TestGenerateRejectsTooFewOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[
		{"section":"s","text":"t","options":["A","B"],"correct_answer":"A","is_verified_source":true,"trap_explanation":""}
	]}`)})
	store := exam.NewMemStore()
	g := New(mock, store, DefaultConfig())

	_, err := g.Generate(context.Background(), nil, 3, false)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
	papers, _ := store.Papers(context.Background())
	if len(papers) != 0 {
		t.Error("rejected paper must not be persisted")
	}
}

func TestGenerateRejectsCorrectAnswerOutsideOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[
		{"section":"s","text":"t","options":["A","B","C","D"],"correct_answer":"E","is_verified_source":true,"trap_explanation":""}
	]}`)})
	g := New(mock, exam.NewMemStore(), DefaultConfig())

	_, err := g.Generate(context.Background(), nil, 3, false)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestGenerateProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, exam.NewMemStore(), DefaultConfig())

	if _, err := g.Generate(context.Background(), nil, 3, false); err == nil {
		t.Fatal("expected provider error to surface")
	}
}
