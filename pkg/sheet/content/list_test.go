package content

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func fruit() []ListItem {
	labels := []string{"apple", "banana", "cherry", "date", "elderberry", "fig", "grape"}
	items := make([]ListItem, len(labels))
	for i, l := range labels {
		items[i] = ListItem{ID: l, Label: l}
	}
	return items
}

func TestListNavigation(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel)

	l.Update(key("down"), true)
	l.Update(key("down"), true)
	if sel != 2 {
		t.Errorf("sel = %d, want 2", sel)
	}
	l.Update(key("up"), true)
	if sel != 1 {
		t.Errorf("sel = %d, want 1", sel)
	}
	l.Update(key("up"), true)
	l.Update(key("up"), true)
	if sel != 0 {
		t.Errorf("sel = %d, want clamped at 0", sel)
	}
	l.Update(tea.KeyMsg{Type: tea.KeyEnd}, true)
	if sel != 6 {
		t.Errorf("end: sel = %d, want 6", sel)
	}
	l.Update(key("down"), true)
	if sel != 6 {
		t.Errorf("sel = %d, want clamped at 6", sel)
	}
	l.Update(tea.KeyMsg{Type: tea.KeyHome}, true)
	if sel != 0 {
		t.Errorf("home: sel = %d, want 0", sel)
	}
}

func TestListIgnoresKeysWhenUnfocused(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel)
	l.Update(key("down"), false)
	if sel != 0 {
		t.Errorf("sel = %d, want 0", sel)
	}
}

func TestListEnterEmitsSelection(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel)
	l.Update(key("down"), true)
	cmd := l.Update(key("enter"), true)
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	msg, ok := cmd().(SelectedMsg)
	if !ok {
		t.Fatalf("msg = %T, want SelectedMsg", cmd())
	}
	if msg.ListID != "fruit" || msg.Item.ID != "banana" {
		t.Errorf("selected = %+v", msg)
	}
}

func TestListScrollIndicators(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel, WithMaxVisible(3))

	out := l.Render(30, true)
	if strings.Contains(out, "more above") || !strings.Contains(out, "more below") {
		t.Errorf("top of list: %q", out)
	}

	sel = 6
	out = l.Render(30, true)
	if !strings.Contains(out, "more above") || strings.Contains(out, "more below") {
		t.Errorf("bottom of list: %q", out)
	}
	if !strings.Contains(out, "grape") || strings.Contains(out, "apple") {
		t.Errorf("selection not scrolled into view: %q", out)
	}
}

func TestListFilter(t *testing.T) {
	sel := 3
	l := List("fruit", fruit(), &sel, WithFilter())

	for _, r := range "ery" {
		l.Update(key(string(r)), true)
	}
	out := l.Render(30, true)
	if !strings.Contains(out, "/ ery") {
		t.Errorf("filter prompt missing: %q", out)
	}
	if !strings.Contains(out, "erry") || strings.Contains(out, "fig") {
		t.Errorf("filtered list = %q", out)
	}
	if sel != 1 {
		t.Errorf("selection should clamp into the filtered items, got %d", sel)
	}

	cmd := l.Update(key("enter"), true)
	msg := cmd().(SelectedMsg)
	if !strings.Contains(msg.Item.Label, "erry") {
		t.Errorf("selected %q from filtered list", msg.Item.Label)
	}

	for range "ery" {
		l.Update(key("backspace"), true)
	}
	if out := l.Render(30, true); !strings.Contains(out, "fig") {
		t.Errorf("clearing the filter should restore items: %q", out)
	}
}

func TestListFilterNoMatches(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel, WithFilter())
	l.Update(key("zzz"), true)
	if out := l.Render(30, true); !strings.Contains(out, "(no items)") {
		t.Errorf("expected empty marker: %q", out)
	}
	if sel != 0 {
		t.Errorf("sel = %d, want 0", sel)
	}
	if cmd := l.Update(key("enter"), true); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestListWithoutFilterIgnoresRunes(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel)
	l.Update(key("z"), true)
	if out := l.Render(30, false); strings.Contains(out, "/ z") || !strings.Contains(out, "apple") {
		t.Errorf("unfiltered list changed: %q", out)
	}
}

func TestHighlight(t *testing.T) {
	out := highlight("banana", []int{0, 2}, ListItemNormal)
	if !strings.Contains(out, "b") || !strings.Contains(out, "n") {
		t.Errorf("highlight dropped characters: %q", out)
	}
}

func TestClamp(t *testing.T) {
	if clamp(-1, 0, 5) != 0 || clamp(9, 0, 5) != 5 || clamp(3, 0, 5) != 3 {
		t.Error("clamp out of range")
	}
}

func TestFormSectionReportsCompletion(t *testing.T) {
	var ok bool
	f := huh.NewForm(huh.NewGroup(huh.NewConfirm().Title("Go?").Value(&ok)))
	s := Form(f)
	if !s.Focusable() {
		t.Fatal("form should take focus")
	}
	if out := s.Render(30, true); !strings.Contains(out, "Go?") {
		t.Errorf("form render = %q", out)
	}

	if cmd := s.Update(key("x"), false); cmd != nil {
		t.Error("unfocused form handled a key")
	}

	fs := s.(*formSection)
	fs.form.State = huh.StateCompleted
	if cmd := s.Update(tea.WindowSizeMsg{Width: 30, Height: 10}, true); cmd != nil {
		t.Error("finished form should ignore further messages")
	}
}

func TestListClickSelects(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		opts   []ListOption
		y      int
		wantID string
	}{
		{"plain list", 0, nil, 1, "banana"},
		{"filter prompt takes the first row", 0, []ListOption{WithFilter()}, 1, "apple"},
		{"scrolled list skips the indicator", 5, nil, 1, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.start
			l := List("fruit", fruit(), &sel, append(tt.opts, WithMaxVisible(3))...)
			l.Render(20, true)

			cmd := l.Update(click(tt.y), true)
			if cmd == nil {
				t.Fatal("click returned no command")
			}
			msg, ok := cmd().(SelectedMsg)
			if !ok {
				t.Fatalf("msg = %T, want SelectedMsg", cmd())
			}
			if msg.Item.ID != tt.wantID || msg.ListID != "fruit" {
				t.Errorf("selected %+v, want %s", msg, tt.wantID)
			}
			if fruit()[sel].ID != tt.wantID {
				t.Errorf("sel = %d, want index of %s", sel, tt.wantID)
			}
		})
	}
}

func TestListClickMisses(t *testing.T) {
	sel := 0
	l := List("fruit", fruit(), &sel, WithMaxVisible(3))
	l.Render(20, true)

	if cmd := l.Update(click(3), true); cmd != nil {
		t.Error("click on the more-below indicator selected an item")
	}
	if cmd := l.Update(click(1), false); cmd != nil || sel != 0 {
		t.Error("unfocused list reacted to a click")
	}
}
