package mentor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

func testInput() Input {
	return Input{
		Profile: &exam.Profile{
			ID:          "user-1",
			ExamName:    "UPSC Prelims",
			TargetScore: 110,
			StreakCount: 6,
		},
		Paper: exam.Paper{ID: "paper-1", Score: 18, Accuracy: 60, DifficultyLevel: 3},
		Questions: []exam.Question{
			{ID: "q1"}, {ID: "q2"}, {ID: "q3"},
		},
		Answers: []exam.Answer{
			{ID: "a1", QuestionID: "q1", UserAnswer: "A", Correct: true},
			{ID: "a2", QuestionID: "q2", UserAnswer: "C", Correct: false, TimeSpentSecs: 95, MistakeCategory: exam.CategoryTrap},
			{ID: "a3", QuestionID: "q3", UserAnswer: "", Correct: false, TimeSpentSecs: 2, MistakeCategory: exam.CategoryBlindGuess},
		},
	}
}

func TestGenerateParsesFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"persona": "The Strategist",
		"feedback": "You lost marks to traps in Polity.",
		"motivation": "Six days strong. Keep the streak alive.",
		"plan": [
			{"topic": "Emergency provisions", "summary": "Redo articles 352-360 with a comparison table.", "priority": "High"},
			{"topic": "Elimination technique", "summary": "Practice striking two options before choosing.", "priority": "Medium"}
		]
	}`)})
	m := New(mock, DefaultConfig())

	fb, err := m.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if fb.Persona != "The Strategist" {
		t.Errorf("persona = %q", fb.Persona)
	}
	if len(fb.Plan) != 2 {
		t.Fatalf("plan size = %d, want 2", len(fb.Plan))
	}
	if fb.Plan[0].Priority != exam.PriorityHigh {
		t.Errorf("plan[0].priority = %q, want High", fb.Plan[0].Priority)
	}
	if fb.Plan[1].Priority != exam.PriorityMedium {
		t.Errorf("plan[1].priority = %q, want Medium", fb.Plan[1].Priority)
	}
}

func TestGeneratePromptIncludesMistakesOnly(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"persona": "Mentor", "feedback": "f", "motivation": "m", "plan": []
	}`)})
	m := New(mock, DefaultConfig())

	if _, err := m.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "question q1") {
		t.Error("prompt lists the correct answer as a mistake")
	}
	if !strings.Contains(prompt, "question q2") || !strings.Contains(prompt, "question q3") {
		t.Error("prompt missing incorrect answers")
	}
	if !strings.Contains(prompt, string(exam.CategoryTrap)) {
		t.Error("prompt missing mistake category")
	}
	if !strings.Contains(prompt, "18/3") {
		// Score over question count.
		t.Errorf("prompt missing score line:\n%s", prompt)
	}
}

func TestGenerateNilProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"persona": "Mentor", "feedback": "f", "motivation": "m", "plan": []
	}`)})
	m := New(mock, DefaultConfig())

	in := testInput()
	in.Profile = nil
	if _, err := m.Generate(context.Background(), in); err != nil {
		t.Fatalf("generate without profile: %v", err)
	}
	if strings.Contains(mock.Calls[0].Messages[0].Content, "Target score") {
		t.Error("prompt includes profile lines without a profile")
	}
}

func TestGenerateErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	m := New(mock, DefaultConfig())

	if _, err := m.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestPlaceholderNeverEmpty(t *testing.T) {
	fb := Placeholder()
	if fb.Persona == "" || fb.Feedback == "" || fb.Motivation == "" {
		t.Errorf("placeholder has empty fields: %+v", fb)
	}
}
