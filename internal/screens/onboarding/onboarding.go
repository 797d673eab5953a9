// Package onboarding collects the candidate profile on first launch.
package onboarding

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/router"
	"github.com/adityakr/prepdrill/internal/screen"
	"github.com/adityakr/prepdrill/internal/screens/home"
	"github.com/adityakr/prepdrill/internal/ui/components"
	"github.com/adityakr/prepdrill/internal/ui/layout"
	"github.com/adityakr/prepdrill/internal/ui/theme"
)

type step int

const (
	stepExamName step = iota
	stepTargetScore
	stepDaysToExam
	stepGroupCode
	stepRegion
	stepTargetLevel
)

var levels = []string{"National", "State", "Board"}

// OnboardingScreen walks through the profile questions one at a time.
type OnboardingScreen struct {
	deps home.Deps

	step      step
	input     components.TextInput
	levelMenu components.Menu
	errMsg    string

	examName    string
	targetScore int
	daysToExam  int
	groupCode   string
	region      string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

type savedMsg struct {
	profile *exam.Profile
	err     error
}

// New creates the onboarding screen.
func New(deps home.Deps) *OnboardingScreen {
	return &OnboardingScreen{
		deps:  deps,
		input: components.NewTextInput("e.g. UPSC CSE", false, 40),
	}
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *OnboardingScreen) Title() string {
	return "Enrollment"
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	if s.step == stepTargetLevel {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home.New(s.deps)}
		}

	case tea.KeyMsg:
		if s.step == stepTargetLevel {
			var cmd tea.Cmd
			s.levelMenu, cmd = s.levelMenu.Update(msg)
			return s, cmd
		}
		if msg.String() == "enter" {
			return s.advance()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// advance validates the current answer and moves to the next question.
func (s *OnboardingScreen) advance() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	s.errMsg = ""

	switch s.step {
	case stepExamName:
		if value == "" {
			s.errMsg = "Name the exam you are preparing for."
			return s, nil
		}
		s.examName = value
		s.input = components.NewTextInput("e.g. 110", true, 4)
	case stepTargetScore:
		n, err := s.input.NumericValue()
		if err != nil || n <= 0 {
			s.errMsg = "Target score must be a positive number."
			return s, nil
		}
		s.targetScore = n
		s.input = components.NewTextInput("e.g. 90", true, 4)
	case stepDaysToExam:
		n, err := s.input.NumericValue()
		if err != nil || n <= 0 {
			s.errMsg = "Days until the exam must be a positive number."
			return s, nil
		}
		s.daysToExam = n
		s.input = components.NewTextInput("leave blank to study solo", false, 20)
	case stepGroupCode:
		s.groupCode = value
		s.input = components.NewTextInput("e.g. Delhi NCR", false, 30)
	case stepRegion:
		if value == "" {
			s.errMsg = "Region is used for the leaderboard filter."
			return s, nil
		}
		s.region = value
	}

	s.step++
	if s.step == stepTargetLevel {
		items := make([]components.MenuItem, len(levels))
		for i, lv := range levels {
			lv := lv
			items[i] = components.MenuItem{
				Label:  lv,
				Action: func() tea.Cmd { return s.save(lv) },
			}
		}
		s.levelMenu = components.NewMenu(items)
		return s, nil
	}
	return s, s.input.Init()
}

func (s *OnboardingScreen) save(level string) tea.Cmd {
	profile := &exam.Profile{
		ID:          uuid.NewString(),
		ExamName:    s.examName,
		TargetScore: s.targetScore,
		StreakCount: 0,
		Zone:        exam.ZoneBorderline,
		ExamDate:    time.Now().AddDate(0, 0, s.daysToExam),
		GroupID:     s.groupCode,
		Region:      s.region,
		TargetLevel: level,
	}
	return func() tea.Msg {
		if err := s.deps.Profiles.SaveProfile(context.Background(), *profile); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{profile: profile}
	}
}

var prompts = map[step]string{
	stepExamName:    "Which exam are you preparing for?",
	stepTargetScore: "What score are you targeting?",
	stepDaysToExam:  "How many days until the exam?",
	stepGroupCode:   "Study group code (optional)",
	stepRegion:      "Your region",
	stepTargetLevel: "Competition level",
}

func (s *OnboardingScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("ENROLLMENT"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Six questions. Then the drills begin."))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompts[s.step]))
	b.WriteString("\n\n")

	if s.step == stepTargetLevel {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.levelMenu.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
