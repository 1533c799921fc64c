// Package twosection lays out a top and a bottom block in one scrollable
// surface. The bottom block sticks to the bottom edge of the viewport until
// the top block grows into it, after which it follows the top block.
package twosection

import (
	"fmt"
	"log/slog"
	"math"
)

// Item addresses one of the two blocks.
type Item int

const (
	ItemTop Item = iota
	ItemBottom
)

func (i Item) String() string {
	switch i {
	case ItemTop:
		return "top"
	case ItemBottom:
		return "bottom"
	default:
		return fmt.Sprintf("item(%d)", int(i))
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// MaxY is the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// MaxX is the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// Intersects reports whether r and o overlap. Zero-area rectangles overlap
// nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Size is a width and height pair.
type Size struct {
	W, H float64
}

// Attributes describe one laid-out block.
type Attributes struct {
	Item           Item
	MeasuredHeight float64
	Frame          Rect
}

// CollectionLayout is the contract a scroll surface uses to ask a layout
// where its items go.
type CollectionLayout interface {
	Prepare(bounds Rect)
	AttributesForItem(index int) (Attributes, bool)
	AttributesInRect(r Rect) []Attributes
	ContentSize() Size
	ShouldInvalidate(newBounds Rect) bool
	Invalidate()
}

// HeightSource reports the intrinsic height of each block for a width.
type HeightSource interface {
	TopSectionHeight(width float64) float64
	BottomSectionHeight(width float64) float64
}

// Layout is the two-section CollectionLayout.
type Layout struct {
	Source HeightSource
	Logger *slog.Logger

	bounds   Rect
	top      *Attributes
	bottom   *Attributes
	prepared bool
}

var _ CollectionLayout = (*Layout)(nil)

// NewLayout returns a layout reading heights from src.
func NewLayout(src HeightSource) *Layout {
	return &Layout{Source: src}
}

// Prepare computes both frames for bounds. It does nothing when the layout
// is already prepared for the same bounds.
func (l *Layout) Prepare(bounds Rect) {
	if l.prepared && bounds == l.bounds {
		return
	}
	l.bounds = bounds
	width := math.Max(bounds.W, 0)
	viewport := math.Max(bounds.H, 0)

	var h0, h1 float64
	if l.Source != nil {
		h0 = sanitize(l.Source.TopSectionHeight(width))
		h1 = sanitize(l.Source.BottomSectionHeight(width))
	}

	l.top = &Attributes{
		Item:           ItemTop,
		MeasuredHeight: h0,
		Frame:          Rect{X: 0, Y: 0, W: width, H: h0},
	}
	l.bottom = &Attributes{
		Item:           ItemBottom,
		MeasuredHeight: h1,
		Frame:          Rect{X: 0, Y: BottomY(viewport, h0, h1), W: width, H: h1},
	}
	l.prepared = true
}

// BottomY is the bottom block origin: pinned to the viewport bottom, but
// never above the end of the top block.
func BottomY(viewportHeight, topHeight, bottomHeight float64) float64 {
	return math.Max(viewportHeight-bottomHeight, topHeight)
}

// ContentHeight is the scrollable height for a viewport and block heights.
func ContentHeight(viewportHeight, topHeight, bottomHeight float64) float64 {
	return math.Max(viewportHeight, BottomY(viewportHeight, topHeight, bottomHeight)+bottomHeight)
}

// AttributesForItem returns the attributes of block index. Only 0 and 1
// exist; anything else is a caller bug.
func (l *Layout) AttributesForItem(index int) (Attributes, bool) {
	switch index {
	case int(ItemTop):
		if l.top == nil {
			return Attributes{}, false
		}
		return *l.top, true
	case int(ItemBottom):
		if l.bottom == nil {
			return Attributes{}, false
		}
		return *l.bottom, true
	}
	invalidIndex(l.Logger, index)
	return Attributes{}, false
}

// AttributesInRect returns the blocks whose frames intersect r, top first.
func (l *Layout) AttributesInRect(r Rect) []Attributes {
	var out []Attributes
	if l.top != nil && r.Intersects(l.top.Frame) {
		out = append(out, *l.top)
	}
	if l.bottom != nil && r.Intersects(l.bottom.Frame) {
		out = append(out, *l.bottom)
	}
	return out
}

// ContentSize is the full scrollable size.
func (l *Layout) ContentSize() Size {
	if !l.prepared {
		return Size{}
	}
	maxY := 0.0
	if l.bottom != nil {
		maxY = l.bottom.Frame.MaxY()
	}
	return Size{W: math.Max(l.bounds.W, 0), H: math.Max(math.Max(l.bounds.H, 0), maxY)}
}

// ShouldInvalidate is true for any bounds change, origin included: the
// bottom block position depends on the viewport.
func (l *Layout) ShouldInvalidate(newBounds Rect) bool {
	return !l.prepared || newBounds != l.bounds
}

// Invalidate drops the computed frames.
func (l *Layout) Invalidate() {
	l.top = nil
	l.bottom = nil
	l.prepared = false
}

// PreferredAttributes resizes attrs to the intrinsic height of its block at
// the frame width, the way a self-sizing cell answers a fitting query.
func (l *Layout) PreferredAttributes(attrs Attributes) Attributes {
	if l.Source == nil {
		return attrs
	}
	var h float64
	switch attrs.Item {
	case ItemTop:
		h = l.Source.TopSectionHeight(attrs.Frame.W)
	case ItemBottom:
		h = l.Source.BottomSectionHeight(attrs.Frame.W)
	default:
		invalidIndex(l.Logger, int(attrs.Item))
		return attrs
	}
	attrs.Frame.H = sanitize(h)
	attrs.MeasuredHeight = attrs.Frame.H
	return attrs
}

// sanitize maps missing or negative heights to zero.
func sanitize(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	if math.IsInf(h, 1) {
		return math.MaxFloat64 / 4
	}
	return h
}

func invalidIndex(log *slog.Logger, index int) {
	if strictItems {
		panic(fmt.Sprintf("twosection: no item at index %d", index))
	}
	if log == nil {
		log = slog.Default()
	}
	log.Error("twosection: attributes requested for unknown item", "index", index)
}
