package store

import (
	"context"
	"fmt"

	"github.com/adityakr/prepdrill/ent"
	entevent "github.com/adityakr/prepdrill/ent/llmrequestevent"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageSummary aggregates request events for one purpose label.
type LLMUsageSummary struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo records LLM API call events. The llm package's logging
// middleware is its only writer.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage aggregates request events by purpose.
	LLMUsage(ctx context.Context) ([]LLMUsageSummary, error)
}

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageSummary, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(entevent.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageSummary)
	var order []string
	for _, row := range rows {
		s := byPurpose[row.Purpose]
		if s == nil {
			s = &LLMUsageSummary{Purpose: row.Purpose}
			byPurpose[row.Purpose] = s
			order = append(order, row.Purpose)
		}
		s.Requests++
		if !row.Success {
			s.Failures++
		}
		s.InputTokens += row.InputTokens
		s.OutputTokens += row.OutputTokens
	}

	out := make([]LLMUsageSummary, 0, len(order))
	for _, p := range order {
		out = append(out, *byPurpose[p])
	}
	return out, nil
}

// NopEventRepo discards all events. Used when no store is open.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error {
	return nil
}

func (NopEventRepo) LLMUsage(context.Context) ([]LLMUsageSummary, error) {
	return nil, nil
}
