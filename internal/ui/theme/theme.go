package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: stark exam-hall monochrome with a red warning accent
var (
	Primary   = lipgloss.Color("#FAFAFA") // White
	Secondary = lipgloss.Color("#A1A1AA") // Zinc
	Accent    = lipgloss.Color("#EAB308") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#FAFAFA") // White
	TextDim   = lipgloss.Color("#71717A") // Dim Zinc
	BgDark    = lipgloss.Color("#09090B") // Near Black
	BgCard    = lipgloss.Color("#18181B") // Charcoal
	Border    = lipgloss.Color("#3F3F46") // Zinc Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
