// Package classify turns a submitted paper's incorrect answers into
// mistake category suggestions via the LLM.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

// Config holds configuration for the LLM classifier.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// Suggestion is one classified answer from the LLM.
type Suggestion struct {
	Category  exam.MistakeCategory
	Reasoning string
}

// Classifier suggests mistake categories for incorrect answers.
type Classifier struct {
	provider llm.Provider
	cfg      Config
}

// NewClassifier creates an LLM-backed classifier.
func NewClassifier(provider llm.Provider, cfg Config) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// mistakeCase is one incorrect answer as presented to the LLM.
type mistakeCase struct {
	AnswerID        string
	Section         string
	QuestionText    string
	Options         []string
	CorrectAnswer   string
	UserAnswer      string
	TimeSpentSecs   int
	TrapExplanation string
}

type suggestionOutput struct {
	Suggestions []struct {
		AnswerID  string `json:"answer_id"`
		Category  string `json:"category"`
		Reasoning string `json:"reasoning"`
	} `json:"suggestions"`
}

// Suggest classifies the incorrect answers among the given records, keyed by
// answer ID. Correct and unanswered-but-correct entries are never sent.
// Entries the LLM returns with an unknown answer ID or a category outside the
// fixed taxonomy are dropped; the remaining suggestions are still returned.
func (c *Classifier) Suggest(ctx context.Context, questions []exam.Question, answers []exam.Answer) (map[string]Suggestion, error) {
	ctx = llm.WithPurpose(ctx, "mistake-classification")

	byQuestion := make(map[string]exam.Question, len(questions))
	for _, q := range questions {
		byQuestion[q.ID] = q
	}

	var cases []mistakeCase
	valid := make(map[string]bool)
	for _, a := range answers {
		if a.Correct {
			continue
		}
		q, ok := byQuestion[a.QuestionID]
		if !ok {
			continue
		}
		valid[a.ID] = true
		cases = append(cases, mistakeCase{
			AnswerID:        a.ID,
			Section:         q.Section,
			QuestionText:    q.Text,
			Options:         q.Options,
			CorrectAnswer:   q.CorrectAnswer,
			UserAnswer:      a.UserAnswer,
			TimeSpentSecs:   a.TimeSpentSecs,
			TrapExplanation: q.TrapExplanation,
		})
	}
	if len(cases) == 0 {
		return map[string]Suggestion{}, nil
	}

	userMsg, err := buildClassifyMessage(cases)
	if err != nil {
		return nil, fmt.Errorf("build classification prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SuggestionSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM classification failed: %w", err)
	}

	var raw suggestionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}

	out := make(map[string]Suggestion, len(raw.Suggestions))
	for _, s := range raw.Suggestions {
		if !valid[s.AnswerID] {
			continue
		}
		if !exam.ValidCategory(s.Category) {
			continue
		}
		out[s.AnswerID] = Suggestion{
			Category:  exam.MistakeCategory(s.Category),
			Reasoning: s.Reasoning,
		}
	}
	return out, nil
}

const classifySystemPrompt = `You are an expert exam coach analyzing a candidate's mock test performance. For each incorrect answer, determine which mistake category best explains the error.

Categories:
- "Knowledge Gap": the candidate did not know the fact or concept.
- "Trap": the question was designed to mislead and the candidate fell for the distractor.
- "Overthinking": the candidate likely second-guessed a correct instinct.
- "Time Pressure": very little or far too much time was spent, suggesting a rushed or panicked choice.
- "Blind Guess": no answer or a random pick with no supporting pattern.

Instructions:
- Use ONLY the categories listed above, spelled exactly as shown.
- Copy answer_id values exactly from the input.
- An empty user answer usually indicates "Blind Guess" or "Time Pressure" depending on time spent.
- Keep reasoning to one sentence.`

var classifyUserTemplate = template.Must(template.New("classify").Parse(`Classify each incorrect answer below.

{{range .}}Answer ID: {{.AnswerID}}
Section: {{.Section}}
Question: {{.QuestionText}}
Options: {{range $i, $o := .Options}}{{if $i}} | {{end}}{{$o}}{{end}}
Correct answer: {{.CorrectAnswer}}
Candidate's answer: {{if .UserAnswer}}{{.UserAnswer}}{{else}}(left blank){{end}}
Time spent: {{.TimeSpentSecs}}s
{{if .TrapExplanation}}Known trap: {{.TrapExplanation}}
{{end}}

{{end}}`))

func buildClassifyMessage(cases []mistakeCase) (string, error) {
	var buf bytes.Buffer
	if err := classifyUserTemplate.Execute(&buf, cases); err != nil {
		return "", err
	}
	return buf.String(), nil
}
