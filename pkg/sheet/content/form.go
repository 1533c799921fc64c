package content

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// FormDoneMsg is emitted once when a hosted form completes or is aborted.
type FormDoneMsg struct {
	Form  *huh.Form
	State huh.FormState
}

// formSection hosts a huh form.
type formSection struct {
	form     *huh.Form
	reported bool
}

// Form creates a section running f. The form keeps its own key map; esc is
// left to the sheet.
func Form(f *huh.Form) Section {
	return &formSection{form: f.WithShowHelp(false)}
}

func (s *formSection) Init() tea.Cmd {
	return s.form.Init()
}

func (s *formSection) Focusable() bool { return true }

func (s *formSection) Render(width int, _ bool) string {
	return s.form.WithWidth(width).View()
}

func (s *formSection) Update(msg tea.Msg, focused bool) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey && !focused {
		return nil
	}
	if s.form.State != huh.StateNormal {
		return nil
	}
	m, cmd := s.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		s.form = f
	}
	if s.form.State != huh.StateNormal && !s.reported {
		s.reported = true
		done := FormDoneMsg{Form: s.form, State: s.form.State}
		return tea.Batch(cmd, func() tea.Msg { return done })
	}
	return cmd
}
