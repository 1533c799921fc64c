package sheet

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Frames are the screen rectangles of one rendered sheet, in cells.
type Frames struct {
	Backdrop cellbuf.Rectangle
	Sheet    cellbuf.Rectangle
	Handle   cellbuf.Rectangle
	Content  cellbuf.Rectangle
}

// handleGlyph draws the handle bar.
const handleGlyph = "━"

// View composites the sheet over background, a full-screen view rendered by
// the host. It rebuilds the hit regions and reports the measured content
// height back through SetContentHeight.
func (s *Sheet) View(background string) string {
	width := int(s.env.ScreenWidth)
	height := int(s.env.ScreenHeight)
	if width <= 0 || height <= 0 {
		return background
	}

	state := s.store.State()
	lines := canvas(background, width, height)
	s.frames = s.layoutFrames(state, width, height)

	s.mouse.HitMap.Clear()
	if state != Dismissed {
		s.mouse.HitMap.AddRectangle(RegionBackdrop, s.frames.Backdrop)
		lines = s.dim(lines)
	}
	s.mouse.HitMap.AddRectangle(RegionSheet, s.frames.Sheet)
	s.mouse.HitMap.AddRectangle(RegionHandle, s.frames.Handle)

	top := s.frames.Sheet.Min.Y
	if top >= height {
		return strings.Join(lines, "\n")
	}

	body := s.renderBody(width, height-top)
	for i, line := range body {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= height {
			break
		}
		lines[row] = line
	}
	return strings.Join(lines, "\n")
}

// layoutFrames positions the sheet at the animated top, clipped to the
// screen.
func (s *Sheet) layoutFrames(state State, width, height int) Frames {
	var f Frames
	if state != Dismissed {
		f.Backdrop = cellbuf.Rect(0, 0, width, height)
	}
	top := int(math.Round(s.anim.pos))
	if top >= height {
		return f
	}
	visTop := max(top, 0)
	f.Sheet = cellbuf.Rect(0, visTop, width, height-visTop)

	row := top + 1 // top border
	handleRows := int(math.Round(s.geo.HandleHeight()))
	if handleRows > 0 {
		f.Handle = clipRows(cellbuf.Rect(0, row, width, handleRows), height)
		row += handleRows
	}
	contentRows := int(math.Round(s.geo.ContentHeight(s.env, state, s.dragOffset)))
	f.Content = clipRows(cellbuf.Rect(1, row, max(width-2, 0), contentRows), height)
	return f
}

func clipRows(r cellbuf.Rectangle, height int) cellbuf.Rectangle {
	return r.Intersect(cellbuf.Rect(0, 0, r.Max.X, height))
}

// renderBody draws the border, handle and content, returning at most
// visible lines.
func (s *Sheet) renderBody(width, visible int) []string {
	inner := max(width-2, 0)
	state := s.store.State()
	contentRows := int(math.Round(s.geo.ContentHeight(s.env, state, s.dragOffset)))

	fill := lipgloss.NewStyle().Background(SheetBg).Width(inner)
	var rows []string

	if handleRows := int(math.Round(s.geo.HandleHeight())); handleRows > 0 {
		bar := lipgloss.NewStyle().Foreground(s.style.HandleBar.Color).Background(SheetBg).
			Render(strings.Repeat(handleGlyph, int(s.metrics.HandleWidth)))
		for i := 0; i < handleRows; i++ {
			if i == handleRows/2 {
				rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, bar,
					lipgloss.WithWhitespaceBackground(SheetBg)))
				continue
			}
			rows = append(rows, fill.Render(""))
		}
	}

	rendered := s.store.Content().View(inner, contentRows)
	contentLines := strings.Split(rendered, "\n")
	if rendered == "" {
		contentLines = nil
	}
	// Content is laid out in a box of contentRows, which is its rendered
	// height whether it fills the box or not.
	s.SetContentHeight(float64(max(contentRows, 0)))
	for i := 0; i < contentRows; i++ {
		line := ""
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], inner, "")
		}
		rows = append(rows, fill.Render(line))
	}
	for len(rows) < visible-1 {
		rows = append(rows, fill.Render(""))
	}

	box := lipgloss.NewStyle().
		Border(s.border(), true, true, false, true).
		BorderForeground(SheetBorder).
		BorderBackground(SheetBg).
		Render(strings.Join(rows, "\n"))
	out := strings.Split(box, "\n")
	if len(out) > visible {
		out = out[:visible]
	}
	return out
}

func (s *Sheet) border() lipgloss.Border {
	if s.style.CornerRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// dim renders the background through the cover color.
func (s *Sheet) dim(lines []string) []string {
	if s.style.CoverOpacity <= 0 {
		return lines
	}
	st := lipgloss.NewStyle().Foreground(coverForeground(s.style.CoverColor, s.style.CoverOpacity))
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = st.Render(ansi.Strip(l))
	}
	return out
}

// coverForeground blends the default text color toward the cover color.
func coverForeground(cover lipgloss.Color, opacity float64) lipgloss.Color {
	base, err := colorful.Hex(baseTextHex)
	if err != nil {
		return BackdropText
	}
	c, err := colorful.Hex(string(cover))
	if err != nil {
		return BackdropText
	}
	opacity = math.Min(math.Max(opacity, 0), 1)
	return lipgloss.Color(base.BlendRgb(c, opacity).Clamped().Hex())
}

const baseTextHex = "#d0d0d0"

// canvas splits background into exactly height lines of width cells.
func canvas(background string, width, height int) []string {
	src := strings.Split(background, "\n")
	lines := make([]string, height)
	for i := range lines {
		var l string
		if i < len(src) {
			l = ansi.Truncate(src[i], width, "")
		}
		if w := ansi.StringWidth(l); w < width {
			l += strings.Repeat(" ", width-w)
		}
		lines[i] = l
	}
	return lines
}
