package store

import (
	"context"
	"fmt"

	"github.com/adityakr/prepdrill/ent"
	entanswer "github.com/adityakr/prepdrill/ent/answer"
	entpaper "github.com/adityakr/prepdrill/ent/paper"
	entquestion "github.com/adityakr/prepdrill/ent/question"
	"github.com/adityakr/prepdrill/internal/exam"
)

// RecordRepo persists papers, questions and answers. Every write is a
// per-record upsert, durable before the call returns.
type RecordRepo struct {
	client *ent.Client
}

var _ exam.RecordStore = (*RecordRepo)(nil)

// Questions returns a paper's questions ordered by position.
func (r *RecordRepo) Questions(ctx context.Context, paperID string) ([]exam.Question, error) {
	rows, err := r.client.Question.Query().
		Where(entquestion.PaperID(paperID)).
		Order(ent.Asc(entquestion.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for paper %s: %w", paperID, err)
	}

	out := make([]exam.Question, len(rows))
	for i, row := range rows {
		out[i] = exam.Question{
			ID:              row.ID,
			Section:         row.Section,
			Text:            row.Text,
			Options:         row.Options,
			CorrectAnswer:   row.CorrectAnswer,
			VerifiedSource:  row.VerifiedSource,
			TrapExplanation: row.TrapExplanation,
		}
	}
	return out, nil
}

// SaveQuestions persists a freshly generated question set. Questions are
// immutable, so this is create-only.
func (r *RecordRepo) SaveQuestions(ctx context.Context, paperID string, qs []exam.Question) error {
	builders := make([]*ent.QuestionCreate, len(qs))
	for i, q := range qs {
		builders[i] = r.client.Question.Create().
			SetID(q.ID).
			SetPaperID(paperID).
			SetPosition(i).
			SetSection(q.Section).
			SetText(q.Text).
			SetOptions(q.Options).
			SetCorrectAnswer(q.CorrectAnswer).
			SetVerifiedSource(q.VerifiedSource).
			SetTrapExplanation(q.TrapExplanation)
	}
	if _, err := r.client.Question.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save questions for paper %s: %w", paperID, err)
	}
	return nil
}

// Answers returns all answers recorded for a paper.
func (r *RecordRepo) Answers(ctx context.Context, paperID string) ([]exam.Answer, error) {
	rows, err := r.client.Answer.Query().
		Where(entanswer.PaperID(paperID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers for paper %s: %w", paperID, err)
	}

	out := make([]exam.Answer, len(rows))
	for i, row := range rows {
		out[i] = exam.Answer{
			ID:              row.ID,
			PaperID:         row.PaperID,
			QuestionID:      row.QuestionID,
			UserAnswer:      row.UserAnswer,
			Correct:         row.Correct,
			TimeSpentSecs:   row.TimeSpentSecs,
			MistakeCategory: exam.MistakeCategory(row.MistakeCategory),
		}
	}
	return out, nil
}

// SaveAnswer upserts a single answer by ID.
func (r *RecordRepo) SaveAnswer(ctx context.Context, a exam.Answer) error {
	err := r.client.Answer.Create().
		SetID(a.ID).
		SetPaperID(a.PaperID).
		SetQuestionID(a.QuestionID).
		SetUserAnswer(a.UserAnswer).
		SetCorrect(a.Correct).
		SetTimeSpentSecs(a.TimeSpentSecs).
		SetMistakeCategory(string(a.MistakeCategory)).
		OnConflictColumns(entanswer.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save answer %s: %w", a.ID, err)
	}
	return nil
}

// Papers returns all papers, newest first.
func (r *RecordRepo) Papers(ctx context.Context) ([]exam.Paper, error) {
	rows, err := r.client.Paper.Query().
		Order(ent.Desc(entpaper.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query papers: %w", err)
	}

	out := make([]exam.Paper, len(rows))
	for i, row := range rows {
		out[i] = exam.Paper{
			ID:              row.ID,
			OwnerID:         row.OwnerID,
			Status:          exam.PaperStatus(row.Status),
			Score:           row.Score,
			Accuracy:        row.Accuracy,
			DifficultyLevel: row.DifficultyLevel,
			RecoveryMode:    row.RecoveryMode,
			CreatedAt:       row.CreatedAt,
			SubmittedAt:     row.SubmittedAt,
			UnlockedAt:      row.UnlockedAt,
		}
	}
	return out, nil
}

// SavePaper upserts a single paper by ID.
func (r *RecordRepo) SavePaper(ctx context.Context, p exam.Paper) error {
	err := r.client.Paper.Create().
		SetID(p.ID).
		SetOwnerID(p.OwnerID).
		SetStatus(string(p.Status)).
		SetScore(p.Score).
		SetAccuracy(p.Accuracy).
		SetDifficultyLevel(p.DifficultyLevel).
		SetRecoveryMode(p.RecoveryMode).
		SetCreatedAt(p.CreatedAt).
		SetSubmittedAt(p.SubmittedAt).
		SetUnlockedAt(p.UnlockedAt).
		OnConflictColumns(entpaper.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save paper %s: %w", p.ID, err)
	}
	return nil
}
