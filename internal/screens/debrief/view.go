package debrief

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/ui/components"
	"github.com/adityakr/prepdrill/internal/ui/theme"
)

func (s *DebriefScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if s.view == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Grading your paper...")
	}

	var b strings.Builder
	b.WriteString(s.renderHeadline(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxed(width-4, 0))))
	b.WriteString("\n\n")
	b.WriteString(s.renderFeedback(width))
	b.WriteString(s.renderAudit(width))

	if s.selecting {
		b.WriteString("\n")
		b.WriteString(s.renderPicker())
	}
	return b.String()
}

func (s *DebriefScreen) renderHeadline(width int) string {
	p := s.view.Paper

	accStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	switch {
	case p.Accuracy < 40:
		accStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case p.Accuracy < 70:
		accStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("  %d / %d correct", p.Score, len(s.view.Questions)))
	right := accStyle.Render(fmt.Sprintf("%d%% accuracy  ", p.Accuracy))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}

	bar := components.NewProgressBar("", float64(p.Accuracy)/100, false, maxed(width-6, 10))
	return line + right + "\n  " + bar.View()
}

func (s *DebriefScreen) renderFeedback(width int) string {
	var b strings.Builder

	if s.feedbackPending {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Your mentor is reading the paper..."))
		b.WriteString("\n\n")
		return b.String()
	}
	fb := s.view.Feedback
	if fb == nil {
		return ""
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  " + strings.ToUpper(fb.Persona)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(width - 4).Render("  " + fb.Feedback))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).Width(width - 4).
		Render("  " + fb.Motivation))
	b.WriteString("\n")

	if len(fb.Plan) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  STUDY PLAN"))
		b.WriteString("\n")
		for _, t := range fb.Plan {
			mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[" + string(t.Priority) + "]")
			if t.Priority == exam.PriorityHigh {
				mark = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("[High]")
			}
			b.WriteString(fmt.Sprintf("  %s %s", mark,
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Topic)))
			b.WriteString("\n")
			if t.Summary != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 8).
					Render("      " + t.Summary))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (s *DebriefScreen) renderAudit(width int) string {
	mistakes := s.mistakes()
	if len(mistakes) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("  Flawless paper. Nothing to audit.") + "\n"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  FAILURE AUDIT (%d)", len(mistakes))))
	b.WriteString("\n")

	for i, a := range mistakes {
		q := s.questionFor(a.QuestionID)

		prefix := "   "
		if i == s.cursor {
			prefix = " ▸ "
		}
		cat := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(string(a.MistakeCategory))
		given := a.UserAnswer
		if given == "" {
			given = "(blank)"
		}
		line := fmt.Sprintf("%s%s  %s", prefix, cat,
			truncate(q.Text, maxed(width-lipgloss.Width(cat)-30, 20)))
		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")

		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("      you: ") +
				theme.Incorrect.Render(given) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("   correct: ") +
				theme.Correct.Render(q.CorrectAnswer) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   %ds spent", a.TimeSpentSecs)))
			b.WriteString("\n")
			if sug, ok := s.view.Suggestions[a.ID]; ok && sug.Reasoning != "" {
				b.WriteString(theme.Hint.Width(width - 8).
					Render("      analyst: " + sug.Reasoning))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (s *DebriefScreen) renderPicker() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  Why did this one go wrong?"))
	b.WriteString("\n")
	for i, c := range exam.Categories() {
		marker := "   "
		if i == s.catIdx {
			marker = " ● "
		}
		line := marker + string(c)
		if i == s.catIdx {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DebriefScreen) questionFor(id string) exam.Question {
	for _, q := range s.view.Questions {
		if q.ID == id {
			return q
		}
	}
	return exam.Question{}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func maxed(a, b int) int {
	if a > b {
		return a
	}
	return b
}
