// Package papergen generates daily mock papers via the LLM.
package papergen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

// QuestionCount is the fixed size of a daily paper.
const QuestionCount = 30

// Config holds configuration for the LLM paper generator.
type Config struct {
	MaxTokens   int
	Temperature float64
	Questions   int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.9,
		Questions:   QuestionCount,
	}
}

// Generator produces daily papers for one exam.
type Generator struct {
	provider llm.Provider
	records  exam.RecordStore
	cfg      Config

	now func() time.Time
}

// New creates an LLM-backed paper generator writing to records.
func New(provider llm.Provider, records exam.RecordStore, cfg Config) *Generator {
	return &Generator{provider: provider, records: records, cfg: cfg, now: time.Now}
}

type questionOutput struct {
	Section          string   `json:"section"`
	Text             string   `json:"text"`
	Options          []string `json:"options"`
	CorrectAnswer    string   `json:"correct_answer"`
	IsVerifiedSource bool     `json:"is_verified_source"`
	TrapExplanation  string   `json:"trap_explanation"`
}

type paperOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate builds one daily paper for the profile's exam, persists its
// questions and the paper record in available status, and returns the paper.
// Recovery mode requests foundation-level difficulty after a losing streak.
func (g *Generator) Generate(ctx context.Context, profile *exam.Profile, difficulty int, recovery bool) (*exam.Paper, error) {
	ctx = llm.WithPurpose(ctx, "paper-gen")

	examName := "General Knowledge"
	ownerID := ""
	if profile != nil {
		examName = profile.ExamName
		ownerID = profile.ID
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: paperSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPaperMessage(examName, g.cfg.Questions, recovery)},
		},
		Schema:      PaperSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM paper generation failed: %w", err)
	}

	var raw paperOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse paper response: %w", err)
	}
	if err := validatePaper(raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	questions := make([]exam.Question, len(raw.Questions))
	for i, q := range raw.Questions {
		questions[i] = exam.Question{
			ID:              uuid.NewString(),
			Section:         q.Section,
			Text:            q.Text,
			Options:         q.Options,
			CorrectAnswer:   q.CorrectAnswer,
			VerifiedSource:  q.IsVerifiedSource,
			TrapExplanation: q.TrapExplanation,
		}
	}

	paper := exam.Paper{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Status:          exam.StatusAvailable,
		DifficultyLevel: difficulty,
		RecoveryMode:    recovery,
		CreatedAt:       g.now(),
	}

	if err := g.records.SaveQuestions(ctx, paper.ID, questions); err != nil {
		return nil, fmt.Errorf("persist questions: %w", err)
	}
	if err := g.records.SavePaper(ctx, paper); err != nil {
		return nil, fmt.Errorf("persist paper: %w", err)
	}
	return &paper, nil
}

// validatePaper enforces the structural minimum: the requested question
// count and 4 options with the correct answer among them.
func validatePaper(raw paperOutput) error {
	if len(raw.Questions) == 0 {
		return fmt.Errorf("no questions returned")
	}
	for i, q := range raw.Questions {
		if len(q.Options) < 4 {
			return fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		found := false
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %d: correct answer not among options", i)
		}
	}
	return nil
}

const paperSystemPrompt = `You are a senior academic examiner composing a high-stakes daily mock paper.

Instructions:
- Divide the paper into logical sections based on the actual syllabus of the named exam (e.g. UPSC: Polity, History, Economy; Science: Physics, Chemistry, Biology).
- Each question has exactly 4 options and the correct answer must be one of them, verbatim.
- Mark is_verified_source true for roughly three quarters of the questions.
- trap_explanation names the distractor pattern the question uses.
- Questions must be challenging and include exam-specific traps.`

func buildPaperMessage(examName string, count int, recovery bool) string {
	difficulty := "Standard High-Stakes (Brutal)"
	if recovery {
		difficulty = "Recovery Mode (Foundation focus)"
	}
	return fmt.Sprintf("Exam: %s\nQuestions: %d\nDifficulty: %s", examName, count, difficulty)
}
