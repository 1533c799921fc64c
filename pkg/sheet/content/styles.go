package content

import "github.com/charmbracelet/lipgloss"

// Colors shared with the sheet chrome.
var (
	Primary   = lipgloss.Color("212")
	Info      = lipgloss.Color("45")
	Muted     = lipgloss.Color("241")
	Highlight = lipgloss.Color("237")
	Bright    = lipgloss.Color("255")
	Normal    = lipgloss.Color("252")
)

// Text styles
var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Bright)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
	Body      = lipgloss.NewStyle()
	Focused   = lipgloss.NewStyle().Foreground(Primary)
)

// List styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(Normal)

	ListItemSelected = lipgloss.NewStyle().
				Background(Highlight).
				Foreground(Bright)

	ListItemFocused = lipgloss.NewStyle().
			Background(Highlight).
			Foreground(Bright).
			Bold(true)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ListMatch = lipgloss.NewStyle().
			Foreground(Info).
			Underline(true)

	FilterPrompt = lipgloss.NewStyle().
			Foreground(Primary)
)
