package content

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// markdownSection renders markdown with glamour, caching the output per
// width.
type markdownSection struct {
	source string
	style  string
	width  int
	cached string
}

// MarkdownOption configures a Markdown section.
type MarkdownOption func(*markdownSection)

// WithGlamourStyle selects a glamour standard style such as "dark",
// "light" or "notty".
func WithGlamourStyle(name string) MarkdownOption {
	return func(m *markdownSection) { m.style = name }
}

// Markdown creates a section rendering md.
func Markdown(md string, opts ...MarkdownOption) Section {
	m := &markdownSection{source: md, style: "dark", width: -1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *markdownSection) Render(width int, _ bool) string {
	if width == m.width {
		return m.cached
	}
	m.width = width
	m.cached = renderMarkdown(m.source, m.style, width)
	return m.cached
}

func renderMarkdown(src, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-2, 1)),
	)
	if err != nil {
		return Body.Width(width).Render(src)
	}
	out, err := r.Render(src)
	if err != nil {
		return Body.Width(width).Render(src)
	}
	return strings.Trim(out, "\n")
}

func (*markdownSection) Update(tea.Msg, bool) tea.Cmd { return nil }
func (*markdownSection) Focusable() bool              { return false }
