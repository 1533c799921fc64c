// Package mouse provides hit testing and gesture tracking for Bubble Tea
// mouse events.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
)

// doubleClickWindow is the maximum gap between two clicks on the same region
// for them to count as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// Rect is a screen rectangle in cells. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// FromRectangle converts a cellbuf rectangle.
func FromRectangle(r cellbuf.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Region is a named hit target.
type Region struct {
	ID   string
	Rect Rect
}

// HitMap holds regions for one rendered frame. Regions added later win
// over earlier ones when they overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (h *HitMap) AddRect(id string, x, y, w, h2 int) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}})
}

// AddRectangle registers a region from a cellbuf rectangle. Empty
// rectangles are ignored.
func (h *HitMap) AddRectangle(id string, r cellbuf.Rectangle) {
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: FromRectangle(r)})
}

// Test returns the topmost region at (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse event after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionScrollUp
	ActionScrollDown
	ActionDrag
	ActionDragEnd
)

// Action is the result of HandleMouse. DragRegion names the region a drag
// started on and is set for ActionDrag and ActionDragEnd.
type Action struct {
	Type       ActionType
	Region     *Region
	X, Y       int
	DragDX     int
	DragDY     int
	DragRegion string
}

// ClickResult is the result of HandleClick.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler tracks clicks and drags across mouse events.
type Handler struct {
	HitMap *HitMap

	now         func() time.Time
	lastClickAt time.Time
	lastClickID string
	dragging    bool
	dragStartX  int
	dragStartY  int
	dragRegion  string
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// HandleClick hit tests a click and detects double-clicks.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	now := h.now()
	result := ClickResult{Region: region}
	if region != nil && region.ID == h.lastClickID && now.Sub(h.lastClickAt) <= doubleClickWindow {
		result.IsDoubleClick = true
		h.lastClickID = ""
		h.lastClickAt = time.Time{}
		return result
	}
	if region != nil {
		h.lastClickID = region.ID
	} else {
		h.lastClickID = ""
	}
	h.lastClickAt = now
	return result
}

// StartDrag begins a drag at (x, y) on region. Motion and release events
// report their offset from (x, y) until the drag ends.
func (h *Handler) StartDrag(x, y int, region string) {
	h.dragging = true
	h.dragStartX = x
	h.dragStartY = y
	h.dragRegion = region
}

// DragDelta returns the offset of (x, y) from the drag origin.
func (h *Handler) DragDelta(x, y int) (int, int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag stops the current drag.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

// HandleMouse classifies msg.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			a.Type = ActionScrollDown
		case tea.MouseButtonLeft:
			res := h.HandleClick(msg.X, msg.Y)
			a.Region = res.Region
			a.Type = ActionClick
			if res.IsDoubleClick {
				a.Type = ActionDoubleClick
			}
			return a
		default:
			return a
		}
		a.Region = h.HitMap.Test(msg.X, msg.Y)
		return a

	case tea.MouseActionMotion:
		if h.dragging {
			a.Type = ActionDrag
			a.DragDX, a.DragDY = h.DragDelta(msg.X, msg.Y)
			a.DragRegion = h.dragRegion
		}
		return a

	case tea.MouseActionRelease:
		if h.dragging {
			a.Type = ActionDragEnd
			a.DragDX, a.DragDY = h.DragDelta(msg.X, msg.Y)
			a.DragRegion = h.dragRegion
			h.EndDrag()
		}
		return a
	}
	return a
}
