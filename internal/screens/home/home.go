// Package home renders the dashboard: streak, zone, paper archive, study
// group stats and the leaderboard, plus the entry points into an attempt.
package home

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adityakr/prepdrill/internal/analysis"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/leaderboard"
	"github.com/adityakr/prepdrill/internal/papergen"
	"github.com/adityakr/prepdrill/internal/router"
	"github.com/adityakr/prepdrill/internal/screen"
	"github.com/adityakr/prepdrill/internal/screens/debrief"
	"github.com/adityakr/prepdrill/internal/screens/examroom"
	"github.com/adityakr/prepdrill/internal/ui/layout"
)

// Deps carries the shared services every screen flow needs.
type Deps struct {
	Records   exam.RecordStore
	Profiles  exam.ProfileStore
	Generator *papergen.Generator
	Pipeline  *analysis.Pipeline
	Board     *leaderboard.Board

	// Now is the dashboard's clock. Nil means time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// HomeScreen is the dashboard.
type HomeScreen struct {
	deps Deps

	profile    *exam.Profile
	papers     []exam.Paper
	groupStats leaderboard.GroupStats
	board      []leaderboard.Entry

	loaded     bool
	generating bool
	errMsg     string
	cursor     int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

type loadedMsg struct {
	profile    *exam.Profile
	papers     []exam.Paper
	groupStats leaderboard.GroupStats
	board      []leaderboard.Entry
	err        error
}

type generatedMsg struct {
	err error
}

type attemptReadyMsg struct {
	paper     exam.Paper
	questions []exam.Question
	err       error
}

// New creates the dashboard screen.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HomeScreen) Title() string {
	return "War Room"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Papers"},
		{Key: "Enter", Description: "Open"},
		{Key: "G", Description: "New paper"},
		{Key: "R", Description: "Refresh"},
	}
}

func (s *HomeScreen) load() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		ctx := context.Background()

		profile, err := deps.Profiles.Profile(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		papers, err := deps.Records.Papers(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := deps.Board.GroupStats(ctx, profile)
		if err != nil {
			return loadedMsg{err: err}
		}
		region, level := "", ""
		if profile != nil {
			region, level = profile.Region, profile.TargetLevel
		}
		board := deps.Board.Leaderboard(profile, region, level)

		return loadedMsg{
			profile:    profile,
			papers:     papers,
			groupStats: stats,
			board:      board,
		}
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.loaded = true
			return s, nil
		}
		s.profile = msg.profile
		s.papers = msg.papers
		s.groupStats = msg.groupStats
		s.board = msg.board
		s.loaded = true
		s.errMsg = ""
		if s.cursor >= len(s.papers) {
			s.cursor = 0
		}
		return s, nil

	case generatedMsg:
		s.generating = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, s.load()

	case attemptReadyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: examroom.New(s.deps.Records, s.deps.Pipeline, s.profile, msg.paper, msg.questions),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.loaded {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.papers)-1 {
			s.cursor++
		}
	case "r", "R":
		return s, s.load()
	case "g", "G":
		if s.deps.Generator == nil {
			s.errMsg = "No LLM provider configured. Set PREPDRILL_GEMINI_API_KEY (or Anthropic/OpenAI) first."
			return s, nil
		}
		if !s.generating {
			s.generating = true
			s.errMsg = ""
			return s, s.generate()
		}
	case "enter":
		if s.cursor < len(s.papers) {
			return s.openPaper(s.papers[s.cursor])
		}
	}
	return s, nil
}

// generate requests a fresh daily paper. Recovery mode kicks in when the
// last submitted paper scored under 40% accuracy.
func (s *HomeScreen) generate() tea.Cmd {
	deps := s.deps
	profile := s.profile
	recovery := false
	difficulty := 3
	for _, p := range s.papers {
		if p.Status == exam.StatusSubmitted || p.Status == exam.StatusAnalyzed {
			recovery = p.Accuracy < 40
			difficulty = p.DifficultyLevel
			if !recovery && p.Accuracy >= 80 && difficulty < 5 {
				difficulty++
			}
			break
		}
	}
	return func() tea.Msg {
		_, err := deps.Generator.Generate(context.Background(), profile, difficulty, recovery)
		return generatedMsg{err: err}
	}
}

// openPaper starts an attempt on an available paper, or opens the debrief
// once a submitted paper has unlocked.
func (s *HomeScreen) openPaper(p exam.Paper) (screen.Screen, tea.Cmd) {
	switch p.Status {
	case exam.StatusAvailable:
		deps := s.deps
		return s, func() tea.Msg {
			questions, err := deps.Records.Questions(context.Background(), p.ID)
			if err != nil {
				return attemptReadyMsg{err: err}
			}
			return attemptReadyMsg{paper: p, questions: questions}
		}
	case exam.StatusSubmitted, exam.StatusAnalyzed:
		if s.deps.now().Before(p.UnlockedAt) {
			s.errMsg = "Analysis is sealed until " + p.UnlockedAt.Format("Jan 2 15:04") + ". Sleep on it."
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: debrief.New(s.deps.Pipeline, s.profile, p.ID),
			}
		}
	}
	return s, nil
}
