package home

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/ui/theme"
)

func (s *HomeScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Opening the war room...")
	}

	var b strings.Builder

	b.WriteString(s.renderStatus(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(s.renderPapers(width))
	b.WriteString("\n")
	b.WriteString(s.renderBoard(width))

	if s.generating {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  Composing today's paper..."))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + s.errMsg))
	}

	return b.String()
}

func (s *HomeScreen) renderStatus(width int) string {
	if s.profile == nil {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  No profile on record.")
	}

	daysLeft := int(s.profile.ExamDate.Sub(s.deps.now()).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	zoneStyle := lipgloss.NewStyle().Foreground(theme.Success)
	switch s.profile.Zone {
	case exam.ZoneBorderline:
		zoneStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	case exam.ZoneDanger:
		zoneStyle = lipgloss.NewStyle().Foreground(theme.Error)
	}

	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("  %s", s.profile.ExamName))
	mid := zoneStyle.Bold(true).Render(string(s.profile.Zone) + " Zone")
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("target %d   streak %dd   D-%d", s.profile.TargetScore, s.profile.StreakCount, daysLeft))

	line := left + "   " + mid
	pad := width - lipgloss.Width(line) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	line += right

	if s.groupStats.TotalMembers > 0 {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Group %s: %d member(s), %d attempted today",
				s.profile.GroupID, s.groupStats.TotalMembers, s.groupStats.AttemptedToday))
	}
	return line
}

func (s *HomeScreen) renderPapers(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  PAPER ARCHIVE"))
	b.WriteString("\n")

	if len(s.papers) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  No papers yet. Press G to generate today's paper."))
		b.WriteString("\n")
		return b.String()
	}

	shown := s.papers
	if len(shown) > 6 {
		shown = shown[:6]
	}
	for i, p := range shown {
		prefix := "   "
		if i == s.cursor {
			prefix = " ▸ "
		}

		label := fmt.Sprintf("%s%s  %s", prefix, p.CreatedAt.Format("Jan 02"), statusLabel(p, s.deps.now()))
		if p.Status == exam.StatusSubmitted || p.Status == exam.StatusAnalyzed {
			label += fmt.Sprintf("  %d pts (%d%%)", p.Score, p.Accuracy)
		}
		if p.RecoveryMode {
			label += "  [recovery]"
		}

		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HomeScreen) renderBoard(width int) string {
	if len(s.board) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  LEADERBOARD"))
	b.WriteString("\n")

	shown := s.board
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, e := range shown {
		line := fmt.Sprintf("   #%d  %-12s %3d pts  %dd streak", e.Rank, e.Name, e.Score, e.Streak)
		if e.CurrentUser {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func statusLabel(p exam.Paper, now time.Time) string {
	switch p.Status {
	case exam.StatusAvailable:
		return "READY — press Enter to sit"
	case exam.StatusSubmitted:
		if now.Before(p.UnlockedAt) {
			return "submitted, sealed"
		}
		return "submitted, analysis ready"
	case exam.StatusAnalyzed:
		return "analyzed"
	}
	return string(p.Status)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
