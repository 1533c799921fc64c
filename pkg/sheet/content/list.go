package content

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// ListItem represents an item in a list section.
type ListItem struct {
	ID    string // Unique identifier for this item
	Label string // Display text
	Data  any    // Optional associated data
}

// SelectedMsg is emitted when enter is pressed on a focused list or an item
// is clicked.
type SelectedMsg struct {
	ListID string
	Item   ListItem
}

// ListOption is a functional option for List sections.
type ListOption func(*listSection)

// listSection renders a scrollable list of items.
type listSection struct {
	id           string
	items        []ListItem
	selectedIdx  *int // Pointer to allow external control
	maxVisible   int  // Maximum number of visible items
	scrollOffset int  // Current scroll position
	filterable   bool
	query        string
	matches      []fuzzy.Match

	// where the last Render put the items, for mouse hits
	itemRow int
	shown   int
}

// List creates a list section with selectable items.
// selectedIdx is a pointer to the currently selected index into the visible
// (filtered) items; it can be nil for no selection.
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  5, // Default
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyFilter()
	return s
}

// WithMaxVisible sets the maximum number of visible items.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

// WithFilter lets typing narrow the list with fuzzy matching.
func WithFilter() ListOption {
	return func(s *listSection) {
		s.filterable = true
	}
}

func (s *listSection) Focusable() bool { return true }

// visible returns the items that pass the filter, best match first, with
// the matched positions of each label.
func (s *listSection) visible() ([]ListItem, [][]int) {
	if s.query == "" {
		return s.items, nil
	}
	items := make([]ListItem, len(s.matches))
	positions := make([][]int, len(s.matches))
	for i, m := range s.matches {
		items[i] = s.items[m.Index]
		positions[i] = m.MatchedIndexes
	}
	return items, positions
}

func (s *listSection) applyFilter() {
	if s.query == "" {
		s.matches = nil
	} else {
		labels := make([]string, len(s.items))
		for i, it := range s.items {
			labels[i] = it.Label
		}
		s.matches = fuzzy.Find(s.query, labels)
	}
	items, _ := s.visible()
	if s.selectedIdx != nil {
		*s.selectedIdx = clamp(*s.selectedIdx, 0, max(len(items)-1, 0))
	}
	s.scrollOffset = 0
}

func (s *listSection) Render(contentWidth int, focused bool) string {
	items, positions := s.visible()

	var sb strings.Builder
	if s.filterable && (focused || s.query != "") {
		sb.WriteString(FilterPrompt.Render("/ ") + s.query + "\n")
	}

	s.itemRow, s.shown = strings.Count(sb.String(), "\n"), 0
	if len(items) == 0 {
		sb.WriteString(MutedText.Render("(no items)"))
		return sb.String()
	}

	// Determine visible range
	visibleCount := min(s.maxVisible, len(items))
	selectedIdx := 0
	if s.selectedIdx != nil {
		selectedIdx = *s.selectedIdx
	}

	// Adjust scroll to keep selection visible
	if selectedIdx < s.scrollOffset {
		s.scrollOffset = selectedIdx
	} else if selectedIdx >= s.scrollOffset+visibleCount {
		s.scrollOffset = selectedIdx - visibleCount + 1
	}

	// Clamp scroll offset
	maxScroll := max(0, len(items)-visibleCount)
	s.scrollOffset = clamp(s.scrollOffset, 0, maxScroll)

	if s.scrollOffset > 0 {
		sb.WriteString(MutedText.Render("↑ more above") + "\n")
		s.itemRow++
	}
	s.shown = min(visibleCount, len(items)-s.scrollOffset)

	for i := 0; i < visibleCount; i++ {
		itemIdx := s.scrollOffset + i
		if itemIdx >= len(items) {
			break
		}
		isSelected := s.selectedIdx != nil && *s.selectedIdx == itemIdx

		style := ListItemNormal
		if isSelected && focused {
			style = ListItemFocused
		} else if isSelected {
			style = ListItemSelected
		}

		cursor := "  "
		if isSelected {
			cursor = ListCursor.Render("> ")
		}

		var matched []int
		if positions != nil {
			matched = positions[itemIdx]
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cursor + highlight(items[itemIdx].Label, matched, style))
	}

	if s.scrollOffset+visibleCount < len(items) {
		sb.WriteString("\n" + MutedText.Render("↓ more below"))
	}
	return sb.String()
}

// highlight renders label with the matched byte positions emphasized.
func highlight(label string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(label)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var sb strings.Builder
	for i, r := range label {
		if hit[i] {
			sb.WriteString(ListMatch.Render(string(r)))
			continue
		}
		sb.WriteString(base.Render(string(r)))
	}
	return sb.String()
}

func (s *listSection) Update(msg tea.Msg, focused bool) tea.Cmd {
	if !focused {
		return nil
	}
	if m, ok := msg.(tea.MouseMsg); ok {
		return s.click(m)
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || s.selectedIdx == nil {
		return nil
	}
	items, _ := s.visible()

	switch keyMsg.String() {
	case "up", "ctrl+p":
		if *s.selectedIdx > 0 {
			*s.selectedIdx--
		}
		return nil

	case "down", "ctrl+n":
		if *s.selectedIdx < len(items)-1 {
			*s.selectedIdx++
		}
		return nil

	case "home":
		*s.selectedIdx = 0
		return nil

	case "end":
		*s.selectedIdx = max(len(items)-1, 0)
		return nil

	case "enter":
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(items) {
			item := items[*s.selectedIdx]
			id := s.id
			return func() tea.Msg { return SelectedMsg{ListID: id, Item: item} }
		}
		return nil

	case "backspace":
		if s.filterable && s.query != "" {
			r := []rune(s.query)
			s.query = string(r[:len(r)-1])
			s.applyFilter()
		}
		return nil
	}

	if s.filterable && keyMsg.Type == tea.KeyRunes {
		s.query += string(keyMsg.Runes)
		s.applyFilter()
	}
	return nil
}

// click selects the item on row m.Y and reports it like enter does.
func (s *listSection) click(m tea.MouseMsg) tea.Cmd {
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft || s.selectedIdx == nil {
		return nil
	}
	row := m.Y - s.itemRow
	if row < 0 || row >= s.shown {
		return nil
	}
	items, _ := s.visible()
	idx := s.scrollOffset + row
	if idx >= len(items) {
		return nil
	}
	*s.selectedIdx = idx
	item, id := items[idx], s.id
	return func() tea.Msg { return SelectedMsg{ListID: id, Item: item} }
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
