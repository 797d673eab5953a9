// Package debrief renders the post-mortem of one paper: the accuracy
// headline, mentor feedback, the remediation plan and the failure audit with
// per-answer category overrides.
package debrief

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/adityakr/prepdrill/internal/analysis"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/screen"
	"github.com/adityakr/prepdrill/internal/ui/layout"
)

// DebriefScreen shows the attribution pipeline's output for one paper.
type DebriefScreen struct {
	pipeline *analysis.Pipeline
	profile  *exam.Profile
	paperID  string

	view   *analysis.View
	errMsg string

	// cursor walks the incorrect answers in the failure audit.
	cursor    int
	selecting bool
	catIdx    int

	feedbackPending bool
}

var _ screen.Screen = (*DebriefScreen)(nil)
var _ screen.KeyHintProvider = (*DebriefScreen)(nil)

type mergedMsg struct {
	view *analysis.View
	err  error
}

type debriefedMsg struct {
	view *analysis.View
}

type overriddenMsg struct {
	err error
}

// New creates the debrief screen for a submitted paper.
func New(pipeline *analysis.Pipeline, profile *exam.Profile, paperID string) *DebriefScreen {
	return &DebriefScreen{pipeline: pipeline, profile: profile, paperID: paperID}
}

// Init kicks off the merge phase. Feedback follows once the merged view is
// on screen.
func (s *DebriefScreen) Init() tea.Cmd {
	pipeline := s.pipeline
	paperID := s.paperID
	return func() tea.Msg {
		v, err := pipeline.Merge(context.Background(), paperID)
		return mergedMsg{view: v, err: err}
	}
}

func (s *DebriefScreen) Title() string {
	return "Post-Mortem"
}

func (s *DebriefScreen) KeyHints() []layout.KeyHint {
	if s.selecting {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Category"},
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Mistakes"},
		{Key: "Enter", Description: "Re-categorize"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DebriefScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mergedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.view = msg.view
		s.feedbackPending = true
		return s, s.debriefCmd()

	case debriefedMsg:
		s.view = msg.view
		s.feedbackPending = false
		return s, nil

	case overriddenMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		// Re-derive the view so the stored categories are authoritative.
		return s, s.Init()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DebriefScreen) debriefCmd() tea.Cmd {
	pipeline := s.pipeline
	profile := s.profile
	view := s.view
	return func() tea.Msg {
		pipeline.Debrief(context.Background(), view, profile)
		return debriefedMsg{view: view}
	}
}

// mistakes returns the incorrect answers in audit order.
func (s *DebriefScreen) mistakes() []exam.Answer {
	if s.view == nil {
		return nil
	}
	var out []exam.Answer
	for _, a := range s.view.Answers {
		if !a.Correct {
			out = append(out, a)
		}
	}
	return out
}

func (s *DebriefScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	mistakes := s.mistakes()

	if s.selecting {
		cats := exam.Categories()
		switch msg.String() {
		case "up", "k":
			if s.catIdx > 0 {
				s.catIdx--
			}
		case "down", "j":
			if s.catIdx < len(cats)-1 {
				s.catIdx++
			}
		case "esc":
			s.selecting = false
		case "enter":
			s.selecting = false
			if s.cursor < len(mistakes) {
				return s, s.override(mistakes[s.cursor].ID, cats[s.catIdx])
			}
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(mistakes)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(mistakes) {
			s.selecting = true
			s.catIdx = categoryIndex(mistakes[s.cursor].MistakeCategory)
		}
	}
	return s, nil
}

func (s *DebriefScreen) override(answerID string, category exam.MistakeCategory) tea.Cmd {
	pipeline := s.pipeline
	paperID := s.paperID
	return func() tea.Msg {
		err := pipeline.Override(context.Background(), paperID, answerID, category)
		return overriddenMsg{err: err}
	}
}

func categoryIndex(c exam.MistakeCategory) int {
	for i, cat := range exam.Categories() {
		if cat == c {
			return i
		}
	}
	return 0
}
