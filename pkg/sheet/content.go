package sheet

import tea "github.com/charmbracelet/bubbletea"

// Content is anything a sheet can host. The sheet never inspects it beyond
// asking it to render into a box of the given size.
type Content interface {
	View(width, height int) string
}

// Updater is implemented by content that reacts to messages while presented.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Initializer is implemented by content that needs a start-up command when
// it is adopted by a store.
type Initializer interface {
	Init() tea.Cmd
}

// Empty is the placeholder held by a store with nothing to show.
type Empty struct{}

func (Empty) View(int, int) string { return "" }

// isEmpty reports whether c is nil or the placeholder.
func isEmpty(c Content) bool {
	if c == nil {
		return true
	}
	_, ok := c.(Empty)
	return ok
}

// ContentFunc adapts a plain render function to Content.
type ContentFunc func(width, height int) string

func (f ContentFunc) View(width, height int) string { return f(width, height) }
