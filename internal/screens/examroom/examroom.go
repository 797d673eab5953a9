// Package examroom runs the timed attempt: countdown, navigation, option
// selection and the final submit, all serialized through Bubble Tea messages
// over one attempt.Engine.
package examroom

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adityakr/prepdrill/internal/analysis"
	"github.com/adityakr/prepdrill/internal/attempt"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/router"
	"github.com/adityakr/prepdrill/internal/screen"
	"github.com/adityakr/prepdrill/internal/screens/debrief"
	"github.com/adityakr/prepdrill/internal/ui/layout"
)

// ExamRoomScreen drives one attempt.
type ExamRoomScreen struct {
	engine    *attempt.Engine
	pipeline  *analysis.Pipeline
	profile   *exam.Profile
	paper     exam.Paper
	questions []exam.Question

	confirming bool
	errMsg     string
}

var _ screen.Screen = (*ExamRoomScreen)(nil)
var _ screen.KeyHintProvider = (*ExamRoomScreen)(nil)

type tickMsg time.Time

type submittedMsg struct {
	result *attempt.Result
	err    error
}

// New starts an attempt over the paper's questions.
func New(records exam.RecordStore, pipeline *analysis.Pipeline, profile *exam.Profile, paper exam.Paper, questions []exam.Question) *ExamRoomScreen {
	budget := attempt.DefaultBudgetSecs * len(questions) / 30
	return &ExamRoomScreen{
		engine:    attempt.NewEngine(records, paper, questions, budget),
		pipeline:  pipeline,
		profile:   profile,
		paper:     paper,
		questions: questions,
	}
}

// answeredAt reports whether the question at position i has a selection.
func (s *ExamRoomScreen) answeredAt(i int) bool {
	if i < 0 || i >= len(s.questions) {
		return false
	}
	return s.engine.Selected(s.questions[i].ID) != ""
}

func (s *ExamRoomScreen) unansweredCount() int {
	n := 0
	for i := range s.questions {
		if !s.answeredAt(i) {
			n++
		}
	}
	return n
}

func (s *ExamRoomScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *ExamRoomScreen) Title() string {
	return "Exam Room"
}

func (s *ExamRoomScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit paper"},
			{Key: "N", Description: "Keep writing"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
	}
}

func (s *ExamRoomScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()

	case submittedMsg:
		return s.handleSubmitted(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ExamRoomScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.engine.Phase() != attempt.PhaseActive {
		return s, nil
	}

	result, err := s.engine.Tick(context.Background())
	if err != nil || result != nil {
		// Countdown hit zero; the engine already submitted.
		return s, func() tea.Msg { return submittedMsg{result: result, err: err} }
	}
	return s, tickCmd()
}

func (s *ExamRoomScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		// Persistence fault. The engine stays in Submitting; S retries with
		// the same records.
		s.errMsg = "Could not save your paper: " + msg.err.Error() + " (press S to retry)"
		s.confirming = false
		return s, nil
	}
	s.errMsg = ""
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: debrief.New(s.pipeline, s.profile, msg.result.Paper.ID),
		}
	}
}

func (s *ExamRoomScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			return s, s.submit()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	if s.engine.Phase() != attempt.PhaseActive {
		// A retry after a failed persist is the only action left.
		if key == "s" || key == "S" {
			return s, s.submit()
		}
		return s, nil
	}

	switch key {
	case "left", "h", "p":
		s.engine.Prev()
	case "right", "l", "n":
		s.engine.Next()
	case "s", "S":
		s.confirming = true
	case "1", "2", "3", "4":
		q, _, ok := s.engine.Current()
		idx := int(key[0] - '1')
		if ok && idx < len(q.Options) {
			s.engine.Select(q.Options[idx])
		}
	}
	return s, nil
}

func (s *ExamRoomScreen) submit() tea.Cmd {
	engine := s.engine
	return func() tea.Msg {
		result, err := engine.Submit(context.Background())
		return submittedMsg{result: result, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
