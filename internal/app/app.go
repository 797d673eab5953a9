// Package app owns the root Bubble Tea model: the screen router, the framed
// header/footer chrome, and the choice of starting screen.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/router"
	"github.com/adityakr/prepdrill/internal/screen"
	"github.com/adityakr/prepdrill/internal/screens/home"
	"github.com/adityakr/prepdrill/internal/screens/onboarding"
	"github.com/adityakr/prepdrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	deps    home.Deps
	profile *exam.Profile
	width   int
	height  int
}

type profileMsg struct {
	profile *exam.Profile
}

// newAppModel picks the starting screen: enrollment when no profile exists,
// the dashboard otherwise.
func newAppModel(deps home.Deps, profile *exam.Profile) AppModel {
	var start screen.Screen
	if profile == nil {
		start = onboarding.New(deps)
	} else {
		start = home.New(deps)
	}
	return AppModel{
		router:  router.New(start),
		deps:    deps,
		profile: profile,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) loadProfile() tea.Cmd {
	profiles := m.deps.Profiles
	return func() tea.Msg {
		p, err := profiles.Profile(context.Background())
		if err != nil {
			return profileMsg{}
		}
		return profileMsg{profile: p}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileMsg:
		if msg.profile != nil {
			m.profile = msg.profile
		}
		return m, nil

	case router.PushScreenMsg, router.ReplaceScreenMsg, router.PopScreenMsg:
		// Screen changes can follow a profile or streak update. Refresh the
		// header's copy alongside the navigation.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadProfile())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak, daysLeft := 0, 0
	if m.profile != nil {
		streak = m.profile.StreakCount
		daysLeft = int(time.Until(m.profile.ExamDate).Hours() / 24)
		if daysLeft < 0 {
			daysLeft = 0
		}
	}
	header := layout.RenderHeader(title, streak, daysLeft, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	} else if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}, footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the TUI over an already-wired dependency set.
func Run(deps home.Deps) error {
	profile, err := deps.Profiles.Profile(context.Background())
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	p := tea.NewProgram(newAppModel(deps, profile))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
