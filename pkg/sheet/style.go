package sheet

import "github.com/charmbracelet/lipgloss"

// State is the presentation state of a sheet.
type State int

const (
	// Dismissed means the sheet is parked below the bottom edge of the screen.
	Dismissed State = iota
	// Presented means the sheet is fully open.
	Presented
)

func (s State) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Presented:
		return "presented"
	default:
		return "unknown"
	}
}

// HandleKind selects how the handle bar is drawn.
type HandleKind int

const (
	HandleKindNone HandleKind = iota
	HandleKindSolid
)

// HandleBar describes the drag affordance at the top of the sheet.
type HandleBar struct {
	Kind  HandleKind
	Color lipgloss.TerminalColor
}

// HandleNone hides the handle bar.
func HandleNone() HandleBar {
	return HandleBar{Kind: HandleKindNone}
}

// HandleSolid draws a solid handle bar in the given color.
func HandleSolid(c lipgloss.TerminalColor) HandleBar {
	return HandleBar{Kind: HandleKindSolid, Color: c}
}

// Solid reports whether the handle bar is rendered.
func (h HandleBar) Solid() bool {
	return h.Kind == HandleKindSolid
}

// Style configures the appearance of a sheet. It is fixed at composition time.
type Style struct {
	HandleBar      HandleBar
	CornerRadius   float64
	MinTopDistance float64
	CoverColor     lipgloss.Color
	CoverOpacity   float64
}

// DefaultStyle returns the style used when none is supplied.
func DefaultStyle(m Metrics) Style {
	return Style{
		HandleBar:      HandleSolid(HandleColor),
		CornerRadius:   10,
		MinTopDistance: m.MinTopDistance,
		CoverColor:     lipgloss.Color("#000000"),
		CoverOpacity:   0.3,
	}
}

// Metrics holds the numeric constants of the sheet geometry and drag model.
type Metrics struct {
	CollapseThreshold   float64
	Damping             float64
	DismissVelocity     float64
	ContentFloor        float64
	ContentMargin       float64
	HandleSectionHeight float64
	HandleWidth         float64
	BottomOverscan      float64
	DefaultSafeTop      float64
	MinTopDistance      float64
}

// PointMetrics is expressed in device points.
func PointMetrics() Metrics {
	return Metrics{
		CollapseThreshold:   -50,
		Damping:             0.3,
		DismissVelocity:     50,
		ContentFloor:        300,
		ContentMargin:       50,
		HandleSectionHeight: 30,
		HandleWidth:         40,
		BottomOverscan:      5,
		DefaultSafeTop:      20,
		MinTopDistance:      110,
	}
}

// TerminalMetrics is expressed in terminal cells.
func TerminalMetrics() Metrics {
	return Metrics{
		CollapseThreshold:   -2,
		Damping:             0.3,
		DismissVelocity:     3,
		ContentFloor:        5,
		ContentMargin:       1,
		HandleSectionHeight: 1,
		HandleWidth:         8,
		BottomOverscan:      1,
		DefaultSafeTop:      0,
		MinTopDistance:      6,
	}
}

// Palette
var (
	HandleColor  = lipgloss.Color("245")
	SheetBg      = lipgloss.Color("235")
	SheetBorder  = lipgloss.Color("240")
	BackdropText = lipgloss.Color("252")
)
