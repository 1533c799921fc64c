package sheet

import "math"

// Environment describes the screen a sheet is drawn on.
type Environment struct {
	ScreenWidth    float64
	ScreenHeight   float64
	SafeTop        float64
	SafeBottom     float64
	KeyboardOffset float64
}

// Geometry computes sheet positions for one style and metrics pair.
type Geometry struct {
	Metrics Metrics
	Style   Style
}

// HandleHeight is the vertical space taken by the handle section.
func (g Geometry) HandleHeight() float64 {
	if g.Style.HandleBar.Solid() {
		return g.Metrics.HandleSectionHeight
	}
	return 0
}

// borderRows is the top border drawn above the handle section.
const borderRows = 1

// ChromeHeight is the space between the sheet top and its content: the top
// border plus the handle section.
func (g Geometry) ChromeHeight() float64 {
	return borderRows + g.HandleHeight()
}

// TopAnchor is where the sheet top rests for a state.
func (g Geometry) TopAnchor(env Environment, s State) float64 {
	if s == Dismissed {
		return env.ScreenHeight
	}
	return g.Style.MinTopDistance
}

// BottomAnchor is the parking position just below the screen.
func (g Geometry) BottomAnchor(env Environment) float64 {
	return env.ScreenHeight + g.Metrics.BottomOverscan
}

// Position is the sheet top for a state and live drag offset.
func (g Geometry) Position(env Environment, s State, dragOffset float64) float64 {
	if s == Dismissed {
		return g.BottomAnchor(env) - dragOffset
	}
	pos := g.TopAnchor(env, s) + dragOffset - env.KeyboardOffset
	return math.Max(pos, env.SafeTop)
}

// ContentHeight is the height given to hosted content: what is left below
// the sheet chrome above the bottom safe area and margin. It never drops
// below the content floor so a drag cannot collapse it.
func (g Geometry) ContentHeight(env Environment, s State, dragOffset float64) float64 {
	h := env.ScreenHeight - g.TopAnchor(env, s) - dragOffset - g.ChromeHeight() - env.SafeBottom - g.Metrics.ContentMargin
	return math.Max(h, g.Metrics.ContentFloor)
}
