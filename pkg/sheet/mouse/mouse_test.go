package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
)

// sheetHitMap lays out an 80x24 screen the way a presented sheet does:
// backdrop everywhere, the sheet body from row 6 down, the handle on row 7.
func sheetHitMap() *HitMap {
	hm := NewHitMap()
	hm.AddRectangle("backdrop", cellbuf.Rect(0, 0, 80, 24))
	hm.AddRectangle("sheet", cellbuf.Rect(0, 6, 80, 18))
	hm.AddRectangle("handle", cellbuf.Rect(0, 7, 80, 1))
	return hm
}

func steppedClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestRectContainsExclusiveBounds(t *testing.T) {
	r := FromRectangle(cellbuf.Rect(0, 6, 80, 18))
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 6, true},
		{79, 23, true},
		{80, 6, false},
		{0, 24, false},
		{0, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitMapTopmostWins(t *testing.T) {
	hm := sheetHitMap()
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"above the sheet", 10, 2, "backdrop"},
		{"sheet border", 10, 6, "sheet"},
		{"handle row", 40, 7, "handle"},
		{"content", 10, 15, "sheet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := hm.Test(tt.x, tt.y)
			if r == nil || r.ID != tt.want {
				t.Errorf("Test(%d, %d) = %v, want %s", tt.x, tt.y, r, tt.want)
			}
		})
	}
	if r := hm.Test(90, 2); r != nil {
		t.Errorf("off-screen hit = %v, want nil", r)
	}
}

func TestHitMapSkipsEmptyRectangles(t *testing.T) {
	hm := NewHitMap()
	hm.AddRectangle("handle", cellbuf.Rectangle{})
	hm.AddRect("sheet", 0, 0, 10, 10)
	if n := len(hm.Regions()); n != 1 {
		t.Fatalf("got %d regions, want 1", n)
	}
	hm.Clear()
	if n := len(hm.Regions()); n != 0 {
		t.Errorf("got %d regions after Clear, want 0", n)
	}
}

func TestPressIsClick(t *testing.T) {
	h := NewHandler()
	h.HitMap = sheetHitMap()

	a := h.HandleMouse(tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.Type != ActionClick {
		t.Fatalf("Type = %v, want ActionClick", a.Type)
	}
	if a.Region == nil || a.Region.ID != "backdrop" {
		t.Errorf("Region = %v, want backdrop", a.Region)
	}
}

func TestDoubleClickWindow(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		want ActionType
	}{
		{"quick second press", 100 * time.Millisecond, ActionDoubleClick},
		{"slow second press", time.Second, ActionClick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler()
			h.HitMap = sheetHitMap()
			h.now = steppedClock(tt.gap)
			press := tea.MouseMsg{X: 40, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

			h.HandleMouse(press)
			if got := h.HandleMouse(press).Type; got != tt.want {
				t.Errorf("second press = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragReportsOffsetAndRegion(t *testing.T) {
	h := NewHandler()
	h.HitMap = sheetHitMap()

	h.HandleMouse(tea.MouseMsg{X: 40, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.StartDrag(40, 7, "handle")

	a := h.HandleMouse(tea.MouseMsg{X: 41, Y: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if a.Type != ActionDrag {
		t.Fatalf("motion Type = %v, want ActionDrag", a.Type)
	}
	if a.DragDX != 1 || a.DragDY != 5 {
		t.Errorf("delta = (%d, %d), want (1, 5)", a.DragDX, a.DragDY)
	}
	if a.DragRegion != "handle" {
		t.Errorf("DragRegion = %q, want handle", a.DragRegion)
	}

	a = h.HandleMouse(tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if a.Type != ActionDragEnd {
		t.Fatalf("release Type = %v, want ActionDragEnd", a.Type)
	}
	if a.DragDY != -4 || a.DragRegion != "handle" {
		t.Errorf("release = %+v, want DragDY -4 on handle", a)
	}

	// The gesture is over: motion no longer drags.
	a = h.HandleMouse(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionMotion})
	if a.Type != ActionNone {
		t.Errorf("motion after release = %v, want ActionNone", a.Type)
	}
}

func TestReleaseWithoutDrag(t *testing.T) {
	h := NewHandler()
	h.HitMap = sheetHitMap()
	a := h.HandleMouse(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if a.Type != ActionNone {
		t.Errorf("Type = %v, want ActionNone", a.Type)
	}
}

func TestEndDragCancelsGesture(t *testing.T) {
	h := NewHandler()
	h.StartDrag(10, 10, "sheet")
	h.EndDrag()
	a := h.HandleMouse(tea.MouseMsg{X: 10, Y: 15, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if a.Type != ActionNone {
		t.Errorf("release after EndDrag = %v, want ActionNone", a.Type)
	}
}

func TestWheel(t *testing.T) {
	h := NewHandler()
	h.HitMap = sheetHitMap()
	tests := []struct {
		button tea.MouseButton
		want   ActionType
	}{
		{tea.MouseButtonWheelUp, ActionScrollUp},
		{tea.MouseButtonWheelDown, ActionScrollDown},
		{tea.MouseButtonWheelLeft, ActionNone},
	}
	for _, tt := range tests {
		a := h.HandleMouse(tea.MouseMsg{X: 10, Y: 15, Action: tea.MouseActionPress, Button: tt.button})
		if a.Type != tt.want {
			t.Errorf("button %v: Type = %v, want %v", tt.button, a.Type, tt.want)
		}
	}
	a := h.HandleMouse(tea.MouseMsg{X: 10, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if a.Region == nil || a.Region.ID != "sheet" {
		t.Errorf("wheel Region = %v, want sheet", a.Region)
	}
}
