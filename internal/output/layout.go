package output

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/marcus/sheetkit/pkg/twosection"
)

// FrameReport describes one prepared two-section layout.
type FrameReport struct {
	Viewport      twosection.Rect  `json:"viewport"`
	TopHeight     float64          `json:"top_height"`
	BottomHeight  float64          `json:"bottom_height"`
	ContentHeight float64          `json:"content_height"`
	Pinned        bool             `json:"pinned"`
	Frames        []FrameAttribute `json:"frames"`
}

// FrameAttribute is one section's placement.
type FrameAttribute struct {
	Item    string          `json:"item"`
	Frame   twosection.Rect `json:"frame"`
	Visible bool            `json:"visible"`
}

type fixedHeights struct{ top, bottom float64 }

func (f fixedHeights) TopSectionHeight(float64) float64    { return f.top }
func (f fixedHeights) BottomSectionHeight(float64) float64 { return f.bottom }

// BuildFrameReport prepares a layout for a viewport of width x height holding
// sections of the given heights. Pinned is true when the bottom section sits
// against the viewport bottom rather than right after the top section.
func BuildFrameReport(width, height, top, bottom float64) FrameReport {
	l := twosection.NewLayout(fixedHeights{top: top, bottom: bottom})
	bounds := twosection.Rect{W: width, H: height}
	l.Prepare(bounds)

	r := FrameReport{
		Viewport:      bounds,
		TopHeight:     top,
		BottomHeight:  bottom,
		ContentHeight: l.ContentSize().H,
	}
	visible := map[twosection.Item]bool{}
	for _, a := range l.AttributesInRect(bounds) {
		visible[a.Item] = true
	}
	for _, item := range []twosection.Item{twosection.ItemTop, twosection.ItemBottom} {
		a, ok := l.AttributesForItem(int(item))
		if !ok {
			continue
		}
		r.Frames = append(r.Frames, FrameAttribute{Item: item.String(), Frame: a.Frame, Visible: visible[item]})
		if item == twosection.ItemBottom {
			r.Pinned = a.Frame.Y > top
		}
	}
	return r
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rect(r twosection.Rect) string {
	return fmt.Sprintf("x=%s y=%s w=%s h=%s", num(r.X), num(r.Y), num(r.W), num(r.H))
}

// Tree renders the report as a tree.
func (r FrameReport) Tree() string {
	root := TreeNode{
		Label:  "viewport",
		Detail: fmt.Sprintf("%sx%s content=%s", num(r.Viewport.W), num(r.Viewport.H), num(r.ContentHeight)),
	}
	for _, f := range r.Frames {
		mark := MarkHidden
		if f.Visible {
			mark = MarkVisible
		}
		if f.Item == twosection.ItemBottom.String() && r.Pinned {
			mark = MarkPinned
		}
		root.Children = append(root.Children, TreeNode{Label: f.Item, Detail: rect(f.Frame), Mark: mark})
	}
	return RenderTree(root, TreeRenderOptions{ShowDetail: true, ShowMarks: true})
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders the report as a bordered table.
func (r FrameReport) Table() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ITEM", "X", "Y", "W", "H", "VISIBLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, f := range r.Frames {
		t.Row(f.Item, num(f.Frame.X), num(f.Frame.Y), num(f.Frame.W), num(f.Frame.H), strconv.FormatBool(f.Visible))
	}
	return t.Render() + "\n" + fmt.Sprintf("content height %s, pinned %t", num(r.ContentHeight), r.Pinned)
}

// JSON renders the report as indented JSON.
func (r FrameReport) JSON() (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode frame report: %w", err)
	}
	return string(b), nil
}
