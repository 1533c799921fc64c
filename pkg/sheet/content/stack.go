package content

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/sheetkit/pkg/twosection"
)

// Section is one part of a Stack.
type Section interface {
	// Render draws the section at width. focused is true when the section
	// holds keyboard focus.
	Render(width int, focused bool) string
	// Update handles msg. focused is true when the section holds keyboard
	// focus; unfocused sections still see non-key messages.
	Update(msg tea.Msg, focused bool) tea.Cmd
	// Focusable reports whether Tab can land on the section.
	Focusable() bool
}

// Stack renders sections vertically.
type Stack struct {
	sections []Section
	focus    int
	width    int
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{focus: -1}
}

// Add appends a section. The first focusable section receives focus.
func (s *Stack) Add(sec Section) *Stack {
	s.sections = append(s.sections, sec)
	if s.focus < 0 && sec.Focusable() {
		s.focus = len(s.sections) - 1
	}
	return s
}

// Focus returns the index of the focused section, or -1.
func (s *Stack) Focus() int { return s.focus }

// Init starts sections that need it.
func (s *Stack) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, sec := range s.sections {
		if in, ok := sec.(interface{ Init() tea.Cmd }); ok {
			cmds = append(cmds, in.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Render draws all sections at width.
func (s *Stack) Render(width int) string {
	s.width = width
	parts := make([]string, 0, len(s.sections))
	for i, sec := range s.sections {
		parts = append(parts, sec.Render(width, i == s.focus))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// View renders the stack clipped to height lines.
func (s *Stack) View(width, height int) string {
	out := s.Render(width)
	if height <= 0 {
		return ""
	}
	lines := strings.Split(out, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Update moves focus on tab/shift+tab and routes everything else. A left
// press focuses the section under it and reaches only that section.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok && m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft {
		return s.click(m)
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab":
			if s.cycle(1) {
				return nil
			}
		case "shift+tab":
			if s.cycle(-1) {
				return nil
			}
		}
		if s.focus >= 0 {
			return s.sections[s.focus].Update(msg, true)
		}
		return nil
	}

	var cmds []tea.Cmd
	for i, sec := range s.sections {
		cmds = append(cmds, sec.Update(msg, i == s.focus))
	}
	return tea.Batch(cmds...)
}

// click finds the section at m.Y as laid out by the last Render.
func (s *Stack) click(m tea.MouseMsg) tea.Cmd {
	row := 0
	for i, sec := range s.sections {
		h := lipgloss.Height(sec.Render(s.width, i == s.focus))
		if m.Y < row+h {
			if sec.Focusable() {
				s.focus = i
			}
			m.Y -= row
			return sec.Update(m, i == s.focus)
		}
		row += h
	}
	return nil
}

// cycle moves focus to the next focusable section in dir. It reports
// whether focus moved.
func (s *Stack) cycle(dir int) bool {
	n := len(s.sections)
	if n == 0 || s.focus < 0 {
		return false
	}
	for step := 1; step < n; step++ {
		i := ((s.focus+dir*step)%n + n) % n
		if s.sections[i].Focusable() {
			s.focus = i
			return true
		}
	}
	return false
}

// Block adapts the stack to a twosection block.
func (s *Stack) Block() twosection.Block {
	return stackBlock{s}
}

type stackBlock struct {
	*Stack
}

func (b stackBlock) View(width int) string { return b.Render(width) }

// textSection renders static wrapped text.
type textSection struct {
	text  string
	style lipgloss.Style
}

// Text creates a static text section.
func Text(s string) Section {
	return textSection{text: s, style: Body}
}

// Heading creates a bold text section.
func Heading(s string) Section {
	return textSection{text: s, style: Title}
}

func (t textSection) Render(width int, _ bool) string {
	return t.style.Width(width).Render(t.text)
}

func (textSection) Update(tea.Msg, bool) tea.Cmd { return nil }
func (textSection) Focusable() bool              { return false }

type spacerSection struct{}

// Spacer creates a blank line.
func Spacer() Section { return spacerSection{} }

func (spacerSection) Render(int, bool) string      { return " " }
func (spacerSection) Update(tea.Msg, bool) tea.Cmd { return nil }
func (spacerSection) Focusable() bool              { return false }
