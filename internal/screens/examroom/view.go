package examroom

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adityakr/prepdrill/internal/ui/theme"
)

func (s *ExamRoomScreen) View(width, height int) string {
	if s.confirming {
		return renderConfirm(width, s.unansweredCount())
	}

	q, idx, ok := s.engine.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  This paper has no questions.")
	}

	var b strings.Builder

	// Countdown and position line. Last five minutes turn red.
	remaining := s.engine.Remaining()
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if remaining <= 300 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	timer := timerStyle.Render(fmt.Sprintf("%02d:%02d", remaining/60, remaining%60))

	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s", q.Section))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  ", idx+1, s.engine.QuestionCount())) + timer

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	b.WriteString(line + right)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderStrip()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Options.
	chosen := s.engine.Selected(q.ID)
	var opts strings.Builder
	for i, opt := range q.Options {
		marker := "  "
		if opt == chosen {
			marker = "● "
		}
		line := fmt.Sprintf("%s%d) %s", marker, i+1, opt)
		if opt == chosen {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

// renderStrip draws one cell per question: answered cells are filled, the
// current one is bracketed.
func (s *ExamRoomScreen) renderStrip() string {
	_, current, ok := s.engine.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	for i := 0; i < s.engine.QuestionCount(); i++ {
		cell := "·"
		if s.answeredAt(i) {
			cell = "■"
		}
		switch {
		case i == current:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("[" + cell + "]"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + cell + " "))
		}
	}
	return b.String()
}

func renderConfirm(width, unanswered int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Submit this paper?"))
	b.WriteString("\n")
	if unanswered > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("%d question(s) unanswered. They will be marked incorrect.", unanswered)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Submit — no second chances"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep writing"))

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
