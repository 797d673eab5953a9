package classify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

var testQuestions = []exam.Question{
	{ID: "q1", Section: "History", Text: "Who founded the Maurya empire?", Options: []string{"Ashoka", "Chandragupta", "Bindusara", "Chanakya"}, CorrectAnswer: "Chandragupta"},
	{ID: "q2", Section: "Polity", Text: "Which article covers emergency provisions?", Options: []string{"352", "356", "360", "368"}, CorrectAnswer: "352"},
	{ID: "q3", Section: "Economy", Text: "What does CRR stand for?", Options: []string{"Cash Reserve Ratio", "Credit Reserve Rate", "Core Repo Rate", "Cash Repo Ratio"}, CorrectAnswer: "Cash Reserve Ratio"},
}

func mockSuggestions(t *testing.T, body string) llm.MockResponse {
	t.Helper()
	return llm.MockResponse{Content: json.RawMessage(body)}
}

func TestSuggestOnlySendsIncorrect(t *testing.T) {
	mock := llm.NewMockProvider(mockSuggestions(t, `{"suggestions":[]}`))
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a1", QuestionID: "q1", UserAnswer: "Chandragupta", Correct: true},
		{ID: "a2", QuestionID: "q2", UserAnswer: "356", Correct: false, TimeSpentSecs: 15},
	}

	_, err := c.Suggest(context.Background(), testQuestions, answers)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "a1") {
		t.Error("prompt includes correct answer a1")
	}
	if !strings.Contains(prompt, "a2") {
		t.Error("prompt missing incorrect answer a2")
	}
}

func TestSuggestNoIncorrectSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a1", QuestionID: "q1", UserAnswer: "Chandragupta", Correct: true},
	}

	got, err := c.Suggest(context.Background(), testQuestions, answers)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("suggestions = %d, want 0", len(got))
	}
	if mock.CallCount() != 0 {
		t.Errorf("call count = %d, want 0", mock.CallCount())
	}
}

func TestSuggestParsesCategories(t *testing.T) {
	mock := llm.NewMockProvider(mockSuggestions(t, `{"suggestions":[
		{"answer_id":"a2","category":"Trap","reasoning":"356 is the classic distractor for emergency articles."},
		{"answer_id":"a3","category":"Time Pressure","reasoning":"Answered in 3 seconds."}
	]}`))
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a2", QuestionID: "q2", UserAnswer: "356", Correct: false, TimeSpentSecs: 40},
		{ID: "a3", QuestionID: "q3", UserAnswer: "Core Repo Rate", Correct: false, TimeSpentSecs: 3},
	}

	got, err := c.Suggest(context.Background(), testQuestions, answers)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(got))
	}
	if got["a2"].Category != exam.CategoryTrap {
		t.Errorf("a2 category = %q, want %q", got["a2"].Category, exam.CategoryTrap)
	}
	if got["a3"].Category != exam.CategoryTimePressure {
		t.Errorf("a3 category = %q, want %q", got["a3"].Category, exam.CategoryTimePressure)
	}
	if got["a2"].Reasoning == "" {
		t.Error("a2 reasoning is empty")
	}
}

func TestSuggestDropsUnknownCategory(t *testing.T) {
	mock := llm.NewMockProvider(mockSuggestions(t, `{"suggestions":[
		{"answer_id":"a2","category":"Carelessness","reasoning":"made up category"},
		{"answer_id":"a3","category":"Blind Guess","reasoning":"left blank"}
	]}`))
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a2", QuestionID: "q2", UserAnswer: "356", Correct: false},
		{ID: "a3", QuestionID: "q3", UserAnswer: "", Correct: false},
	}

	got, err := c.Suggest(context.Background(), testQuestions, answers)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if _, ok := got["a2"]; ok {
		t.Error("unknown category should be dropped")
	}
	if got["a3"].Category != exam.CategoryBlindGuess {
		t.Errorf("a3 category = %q, want %q", got["a3"].Category, exam.CategoryBlindGuess)
	}
}

func TestSuggestDropsUnknownAnswerID(t *testing.T) {
	mock := llm.NewMockProvider(mockSuggestions(t, `{"suggestions":[
		{"answer_id":"phantom","category":"Trap","reasoning":"hallucinated id"},
		{"answer_id":"a2","category":"Overthinking","reasoning":"changed a right answer"}
	]}`))
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a2", QuestionID: "q2", UserAnswer: "360", Correct: false},
	}

	got, err := c.Suggest(context.Background(), testQuestions, answers)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(got))
	}
	if got["a2"].Category != exam.CategoryOverthinking {
		t.Errorf("a2 category = %q, want %q", got["a2"].Category, exam.CategoryOverthinking)
	}
}

func TestSuggestProviderErrorSurfaces(t *testing.T) {
	wantErr := errors.New("boom")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a2", QuestionID: "q2", UserAnswer: "356", Correct: false},
	}

	_, err := c.Suggest(context.Background(), testQuestions, answers)
	if err == nil {
		t.Fatal("expected error from provider failure")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestSuggestMalformedJSONSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(mockSuggestions(t, `{"suggestions": not json`))
	c := NewClassifier(mock, DefaultConfig())

	answers := []exam.Answer{
		{ID: "a2", QuestionID: "q2", UserAnswer: "356", Correct: false},
	}

	_, err := c.Suggest(context.Background(), testQuestions, answers)
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestSchemaEnumMatchesTaxonomy(t *testing.T) {
	props := SuggestionSchema.Definition["properties"].(map[string]any)
	items := props["suggestions"].(map[string]any)["items"].(map[string]any)
	cat := items["properties"].(map[string]any)["category"].(map[string]any)
	enum := cat["enum"].([]any)

	if len(enum) != len(exam.Categories()) {
		t.Fatalf("enum size = %d, want %d", len(enum), len(exam.Categories()))
	}
	for i, c := range exam.Categories() {
		if enum[i] != string(c) {
			t.Errorf("enum[%d] = %v, want %q", i, enum[i], c)
		}
	}
}
