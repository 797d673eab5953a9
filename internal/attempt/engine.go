// Package attempt drives one timed mock-exam attempt from the first question
// to final submission, producing exactly one scored Paper and one Answer per
// Question.
package attempt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adityakr/prepdrill/internal/exam"
)

// DefaultBudgetSecs is the session budget for a standard 30-question paper.
const DefaultBudgetSecs = 1800

// AnalysisDelay is how long after submission the analysis view unlocks.
const AnalysisDelay = 24 * time.Hour

// Phase is the engine's state-machine state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseSubmitting
	PhaseTerminated
)

// ErrNoAttempt is returned when Submit is called on a terminated engine.
var ErrNoAttempt = errors.New("attempt already terminated")

// Result is the scored outcome of a submitted attempt.
type Result struct {
	Paper   exam.Paper
	Answers []exam.Answer
}

// Engine owns the ephemeral state of one live attempt: the current question
// pointer, per-question elapsed seconds, the countdown, and the wall-clock
// checkpoint for the question being viewed. All entry points serialize on an
// internal mutex so a timer tick and a user-initiated submit can race at
// expiry without submitting twice.
type Engine struct {
	mu sync.Mutex

	store     exam.RecordStore
	paper     exam.Paper
	questions []exam.Question

	index      int
	selected   map[string]string // question ID → chosen option
	elapsed    map[string]int    // question ID → accumulated seconds
	remaining  int               // countdown seconds
	checkpoint time.Time         // when the clock last checked in
	phase      Phase

	// result and its answers are built once, on the first submit, so a
	// retried submit after a persistence fault re-writes the same records.
	result *Result

	now func() time.Time
}

// NewEngine starts an attempt over the given paper in the Active phase.
// budgetSecs <= 0 falls back to DefaultBudgetSecs.
func NewEngine(store exam.RecordStore, paper exam.Paper, questions []exam.Question, budgetSecs int) *Engine {
	if budgetSecs <= 0 {
		budgetSecs = DefaultBudgetSecs
	}
	e := &Engine{
		store:     store,
		paper:     paper,
		questions: questions,
		selected:  make(map[string]string),
		elapsed:   make(map[string]int),
		remaining: budgetSecs,
		now:       time.Now,
	}
	e.checkpoint = e.now()
	return e
}

// SetClock replaces the wall clock. Test hook; also resets the checkpoint so
// elapsed time is measured on the injected clock from the start.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
	e.checkpoint = now()
}

// Phase returns the current state-machine phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Remaining returns the countdown in seconds.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Current returns the active question and its index. ok is false when the
// paper has no questions.
func (e *Engine) Current() (q exam.Question, index int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.questions) == 0 {
		return exam.Question{}, 0, false
	}
	return e.questions[e.index], e.index, true
}

// QuestionCount returns the number of questions in the paper.
func (e *Engine) QuestionCount() int {
	return len(e.questions)
}

// Selected returns the currently recorded option for the given question.
func (e *Engine) Selected(questionID string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected[questionID]
}

// Select records the chosen option for the current question, overwriting any
// prior choice. It does not advance the index and does not touch the clock.
func (e *Engine) Select(option string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseActive || len(e.questions) == 0 {
		return
	}
	e.selected[e.questions[e.index].ID] = option
}

// Next moves to the next question, first attributing the open time interval
// to the question being left. No-op at the last question.
func (e *Engine) Next() {
	e.navigate(1)
}

// Prev moves to the previous question, first attributing the open time
// interval to the question being left. No-op at the first question.
func (e *Engine) Prev() {
	e.navigate(-1)
}

func (e *Engine) navigate(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseActive || len(e.questions) == 0 {
		return
	}
	e.flushElapsed()
	next := e.index + delta
	if next < 0 {
		next = 0
	}
	if next > len(e.questions)-1 {
		next = len(e.questions) - 1
	}
	e.index = next
}

// flushElapsed attributes now-checkpoint to the question currently open and
// resets the checkpoint. Callers hold the mutex. Ordering matters: the time
// belongs to the question being left, never the one being entered.
func (e *Engine) flushElapsed() {
	now := e.now()
	delta := int(now.Sub(e.checkpoint) / time.Second)
	if delta > 0 && len(e.questions) > 0 {
		e.elapsed[e.questions[e.index].ID] += delta
	}
	e.checkpoint = now
}

// Tick advances the countdown by one second. When the countdown reaches zero
// the engine flushes the open interval and submits. Ticks that arrive after
// termination are absorbed as no-ops. The returned Result is non-nil only on
// the tick that triggered submission.
func (e *Engine) Tick(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	if e.phase != PhaseActive {
		e.mu.Unlock()
		return nil, nil
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining > 0 {
		e.mu.Unlock()
		return nil, nil
	}
	e.mu.Unlock()
	return e.Submit(ctx)
}

// Submit flushes the open time interval, scores the paper, and persists one
// Answer per Question plus the updated Paper. It is idempotent from the
// caller's perspective: after termination it returns the prior result and
// writes nothing. If a persistence fault interrupted an earlier submit, a
// retry re-writes the same records (upsert by ID), so no duplicates occur.
func (e *Engine) Submit(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseTerminated:
		return e.result, nil
	case PhaseActive:
		e.flushElapsed()
		e.phase = PhaseSubmitting
		e.buildResult()
	case PhaseSubmitting:
		// Retry after a failed persist; result is already built.
	}

	if err := e.persist(ctx); err != nil {
		return nil, err
	}

	e.phase = PhaseTerminated
	return e.result, nil
}

// buildResult scores the attempt and constructs the answer records.
// Callers hold the mutex.
func (e *Engine) buildResult() {
	now := e.now()

	score := 0
	answers := make([]exam.Answer, 0, len(e.questions))
	for _, q := range e.questions {
		chosen := e.selected[q.ID]
		correct := chosen != "" && chosen == q.CorrectAnswer
		if correct {
			score++
		}

		a := exam.Answer{
			ID:            uuid.New().String(),
			PaperID:       e.paper.ID,
			QuestionID:    q.ID,
			UserAnswer:    chosen,
			Correct:       correct,
			TimeSpentSecs: e.elapsed[q.ID],
		}
		if !correct {
			a.MistakeCategory = exam.DefaultCategory
		}
		answers = append(answers, a)
	}

	paper := e.paper
	paper.Status = exam.StatusSubmitted
	paper.Score = score
	paper.Accuracy = accuracy(score, len(e.questions))
	paper.SubmittedAt = now
	paper.UnlockedAt = now.Add(AnalysisDelay)

	e.result = &Result{Paper: paper, Answers: answers}
}

// persist writes the scored records. A store failure surfaces to the caller:
// the attempt cannot be considered complete until every write lands.
// Callers hold the mutex.
func (e *Engine) persist(ctx context.Context) error {
	for _, a := range e.result.Answers {
		if err := e.store.SaveAnswer(ctx, a); err != nil {
			return fmt.Errorf("save answer for question %s: %w", a.QuestionID, err)
		}
	}
	if err := e.store.SavePaper(ctx, e.result.Paper); err != nil {
		return fmt.Errorf("save paper %s: %w", e.result.Paper.ID, err)
	}
	return nil
}

// accuracy computes round(100 * score / n), with 0 for empty papers.
func accuracy(score, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(n)))
}
