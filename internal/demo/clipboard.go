package demo

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardMsg reports the outcome of a clipboard write.
type clipboardMsg struct {
	what string
	err  error
}

// copyCmd writes text to the system clipboard off the Update loop.
func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

// formatSummaryAsMarkdown formats the submitted form for the clipboard.
func formatSummaryAsMarkdown(name, size string, confirmed bool, pick string) string {
	var sb strings.Builder

	title := name
	if title == "" {
		title = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("# %s\n", title))
	sb.WriteString(fmt.Sprintf("**Size:** %s | **Saved:** %s\n", orDash(size), checkbox(confirmed)))

	if pick != "" {
		sb.WriteString("\n## Selection\n\n")
		sb.WriteString(pick)
		sb.WriteString("\n")
	}

	return sb.String()
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
