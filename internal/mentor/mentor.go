// Package mentor generates post-exam feedback and a remediation plan.
package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
)

// Config holds configuration for the LLM mentor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Feedback is prose, so the
// temperature runs warmer than classification.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Feedback is the mentor's response for one submitted paper.
type Feedback struct {
	Persona    string
	Feedback   string
	Motivation string
	Plan       []exam.StudyTopic
}

// Placeholder is returned whenever the feedback service fails. The analysis
// view renders it instead of blocking on the error.
func Placeholder() *Feedback {
	return &Feedback{
		Persona:    "Mentor",
		Feedback:   "Feedback is unavailable right now. Your scores and mistake categories above are unaffected.",
		Motivation: "Review your mistakes on your own for now, and try again later.",
	}
}

// Mentor produces persona-voiced feedback from a submitted paper.
type Mentor struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-backed mentor.
func New(provider llm.Provider, cfg Config) *Mentor {
	return &Mentor{provider: provider, cfg: cfg}
}

// Input carries everything the mentor sees about one attempt.
type Input struct {
	Profile   *exam.Profile
	Paper     exam.Paper
	Questions []exam.Question
	Answers   []exam.Answer
}

type feedbackOutput struct {
	Persona    string `json:"persona"`
	Feedback   string `json:"feedback"`
	Motivation string `json:"motivation"`
	Plan       []struct {
		Topic    string `json:"topic"`
		Summary  string `json:"summary"`
		Priority string `json:"priority"`
	} `json:"plan"`
}

// Generate asks the LLM for feedback on a submitted paper. Errors surface to
// the caller; the analysis pipeline substitutes Placeholder on any failure.
func (m *Mentor) Generate(ctx context.Context, in Input) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "mentor-feedback")

	userMsg, err := buildFeedbackMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build feedback prompt: %w", err)
	}

	resp, err := m.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   m.cfg.MaxTokens,
		Temperature: m.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM feedback failed: %w", err)
	}

	var raw feedbackOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse feedback response: %w", err)
	}

	fb := &Feedback{
		Persona:    raw.Persona,
		Feedback:   raw.Feedback,
		Motivation: raw.Motivation,
	}
	for _, p := range raw.Plan {
		prio := exam.PriorityMedium
		if p.Priority == string(exam.PriorityHigh) {
			prio = exam.PriorityHigh
		}
		fb.Plan = append(fb.Plan, exam.StudyTopic{
			Topic:    p.Topic,
			Summary:  p.Summary,
			Priority: prio,
		})
	}
	return fb, nil
}

const feedbackSystemPrompt = `You are a seasoned exam mentor reviewing a candidate's mock test. Speak directly to the candidate in a firm but encouraging voice.

Instructions:
- "persona" is a short mentor archetype name, e.g. "The Drill Sergeant" or "The Strategist", matched to the candidate's performance.
- "feedback" is 2-4 sentences analysing this attempt: section weaknesses, mistake category patterns, time usage.
- "motivation" is 1-2 sentences tied to the candidate's streak and target.
- "plan" lists 2-4 study topics ordered by priority, each with a one-sentence summary of what to do.
- Priority is "High" or "Medium" only.`

var feedbackUserTemplate = template.Must(template.New("feedback").Parse(`{{if .Profile}}Exam: {{.Profile.ExamName}}
Target score: {{.Profile.TargetScore}}
Streak: {{.Profile.StreakCount}} days
{{end}}Score: {{.Paper.Score}}/{{len .Questions}} (accuracy {{.Paper.Accuracy}}%)
Difficulty level: {{.Paper.DifficultyLevel}}

Mistakes:
{{range .Answers}}{{if not .Correct}}- [{{.MistakeCategory}}] question {{.QuestionID}}, answered {{if .UserAnswer}}"{{.UserAnswer}}"{{else}}nothing{{end}}, {{.TimeSpentSecs}}s
{{end}}{{end}}`))

func buildFeedbackMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := feedbackUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
