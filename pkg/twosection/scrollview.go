package twosection

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Block is one section of a ScrollView. It renders at a given width and its
// natural height is the number of lines it produces.
type Block interface {
	View(width int) string
}

// BlockFunc adapts a render function to Block.
type BlockFunc func(width int) string

func (f BlockFunc) View(width int) string { return f(width) }

// Updater is implemented by blocks that react to messages.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Initializer is implemented by blocks that need a start-up command.
type Initializer interface {
	Init() tea.Cmd
}

// ScrollView hosts a top and a bottom block in a viewport, placing them
// with Layout. It renders only the blocks intersecting the visible rect.
type ScrollView struct {
	top    Block
	bottom Block
	layout *Layout
	vp     viewport.Model

	width, height int
	topH, bottomH float64
	measured      bool
}

// NewScrollView builds a scroll view over top and bottom.
func NewScrollView(top, bottom Block) *ScrollView {
	v := &ScrollView{top: top, bottom: bottom}
	v.layout = NewLayout(v)
	v.vp = viewport.New(0, 0)
	v.vp.KeyMap.Up.SetEnabled(false)
	v.vp.KeyMap.Down.SetEnabled(false)
	return v
}

// Layout exposes the underlying layout.
func (v *ScrollView) Layout() *Layout { return v.layout }

// TopSectionHeight implements HeightSource.
func (v *ScrollView) TopSectionHeight(width float64) float64 {
	return naturalHeight(v.top, int(width))
}

// BottomSectionHeight implements HeightSource.
func (v *ScrollView) BottomSectionHeight(width float64) float64 {
	return naturalHeight(v.bottom, int(width))
}

func naturalHeight(b Block, width int) float64 {
	if b == nil || width <= 0 {
		return 0
	}
	s := b.View(width)
	if s == "" {
		return 0
	}
	return float64(lipgloss.Height(s))
}

// SetBlocks swaps the blocks and forces a new layout pass.
func (v *ScrollView) SetBlocks(top, bottom Block) {
	v.top, v.bottom = top, bottom
	v.layout.Invalidate()
	v.refresh()
}

// SetSize resizes the visible viewport.
func (v *ScrollView) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = max(width, 0), max(height, 0)
	v.vp.Width = v.width
	v.vp.Height = v.height
	v.refresh()
}

// Init starts any block initializers.
func (v *ScrollView) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, b := range []Block{v.top, v.bottom} {
		if in, ok := b.(Initializer); ok {
			cmds = append(cmds, in.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update forwards msg to the blocks and scrolls the viewport. A left press
// goes only to the block under it, with Y relative to that block.
func (v *ScrollView) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok && m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft {
		return v.click(m)
	}
	var cmds []tea.Cmd
	for _, b := range []Block{v.top, v.bottom} {
		if u, ok := b.(Updater); ok {
			cmds = append(cmds, u.Update(msg))
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	cmds = append(cmds, cmd)
	v.refresh()
	return tea.Batch(cmds...)
}

func (v *ScrollView) click(m tea.MouseMsg) tea.Cmd {
	y := float64(m.Y + v.vp.YOffset)
	for _, a := range v.layout.AttributesInRect(Rect{Y: y, W: float64(v.width), H: 1}) {
		if y < a.Frame.Y || y >= a.Frame.MaxY() {
			continue
		}
		block := v.top
		if a.Item == ItemBottom {
			block = v.bottom
		}
		u, ok := block.(Updater)
		if !ok {
			return nil
		}
		m.Y = int(y - a.Frame.Y)
		cmd := u.Update(m)
		v.refresh()
		return cmd
	}
	return nil
}

// View renders the visible part of the surface at width x height.
func (v *ScrollView) View(width, height int) string {
	v.SetSize(width, height)
	v.refresh()
	return v.vp.View()
}

// YOffset is the scroll position.
func (v *ScrollView) YOffset() int { return v.vp.YOffset }

// ScrollTo scrolls to y.
func (v *ScrollView) ScrollTo(y int) {
	v.vp.SetYOffset(y)
	v.refresh()
}

// refresh re-prepares the layout when bounds or intrinsic heights changed
// and redraws the surface.
func (v *ScrollView) refresh() {
	bounds := Rect{W: float64(v.width), H: float64(v.height)}
	topH := v.TopSectionHeight(bounds.W)
	bottomH := v.BottomSectionHeight(bounds.W)
	if v.layout.ShouldInvalidate(bounds) || !v.measured || topH != v.topH || bottomH != v.bottomH {
		v.layout.Invalidate()
	}
	v.topH, v.bottomH, v.measured = topH, bottomH, true
	v.layout.Prepare(bounds)

	size := v.layout.ContentSize()
	rows := make([]string, int(size.H))
	visible := Rect{Y: float64(v.vp.YOffset), W: bounds.W, H: bounds.H}
	for _, a := range v.layout.AttributesInRect(visible) {
		block := v.top
		if a.Item == ItemBottom {
			block = v.bottom
		}
		if block == nil {
			continue
		}
		for i, line := range strings.Split(block.View(v.width), "\n") {
			row := int(a.Frame.Y) + i
			if row >= len(rows) {
				break
			}
			rows[row] = ansi.Truncate(line, v.width, "")
		}
	}
	offset := v.vp.YOffset
	v.vp.SetContent(strings.Join(rows, "\n"))
	v.vp.SetYOffset(offset)
}
