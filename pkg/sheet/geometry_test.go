package sheet

import "testing"

func pointGeometry() Geometry {
	m := PointMetrics()
	return Geometry{Metrics: m, Style: DefaultStyle(m)}
}

func TestPosition(t *testing.T) {
	g := pointGeometry()
	env := Environment{ScreenWidth: 375, ScreenHeight: 812, SafeTop: 20}

	tests := []struct {
		name     string
		state    State
		drag     float64
		keyboard float64
		want     float64
	}{
		{"presented at rest", Presented, 0, 0, 110},
		{"presented dragged down", Presented, 80, 0, 190},
		{"presented clamped at safe top", Presented, -200, 0, 20},
		{"keyboard lifts sheet", Presented, 0, 50, 60},
		{"dismissed parks below screen", Dismissed, 0, 0, 817},
		{"dismissed pulled up", Dismissed, 40, 0, 777},
		{"keyboard ignored when dismissed", Dismissed, 0, 300, 817},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := env
			e.KeyboardOffset = tt.keyboard
			if got := g.Position(e, tt.state, tt.drag); got != tt.want {
				t.Errorf("Position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentHeight(t *testing.T) {
	g := pointGeometry()
	env := Environment{ScreenHeight: 812, SafeBottom: 34}

	// 31 = top border + handle section.
	if got := g.ContentHeight(env, Presented, 0); got != 812-110-31-34-50 {
		t.Errorf("ContentHeight = %v, want %v", got, 812-110-31-34-50)
	}
	if got := g.ContentHeight(env, Presented, 500); got != 300 {
		t.Errorf("dragged ContentHeight = %v, want floor 300", got)
	}
	if got := g.ContentHeight(env, Dismissed, 0); got != 300 {
		t.Errorf("dismissed ContentHeight = %v, want floor 300", got)
	}
}

func TestContentHeightGrowsWithUpwardDrag(t *testing.T) {
	g := pointGeometry()
	env := Environment{ScreenHeight: 812}
	rest := g.ContentHeight(env, Presented, 0)
	pulled := g.ContentHeight(env, Presented, -59)
	if pulled != rest+59 {
		t.Errorf("pulled = %v, want %v", pulled, rest+59)
	}
}

func TestContentFitsAboveSafeArea(t *testing.T) {
	m := TerminalMetrics()
	g := Geometry{Metrics: m, Style: DefaultStyle(m)}
	env := Environment{ScreenWidth: 80, ScreenHeight: 24, SafeBottom: 1}

	top := g.Position(env, Presented, 0)
	bottom := top + g.ChromeHeight() + g.ContentHeight(env, Presented, 0)
	if want := env.ScreenHeight - env.SafeBottom - m.ContentMargin; bottom != want {
		t.Errorf("content ends at %v, want %v", bottom, want)
	}
}

func TestChromeHeight(t *testing.T) {
	g := pointGeometry()
	if got := g.ChromeHeight(); got != 31 {
		t.Errorf("ChromeHeight = %v, want 31", got)
	}
	g.Style.HandleBar = HandleNone()
	if got := g.ChromeHeight(); got != 1 {
		t.Errorf("ChromeHeight without handle = %v, want 1", got)
	}
}

func TestHandleHeight(t *testing.T) {
	g := pointGeometry()
	if g.HandleHeight() != 30 {
		t.Errorf("solid handle height = %v, want 30", g.HandleHeight())
	}
	g.Style.HandleBar = HandleNone()
	if g.HandleHeight() != 0 {
		t.Errorf("no handle height = %v, want 0", g.HandleHeight())
	}
}

func TestAnchors(t *testing.T) {
	g := pointGeometry()
	env := Environment{ScreenHeight: 600}
	if got := g.TopAnchor(env, Presented); got != 110 {
		t.Errorf("presented anchor = %v", got)
	}
	if got := g.TopAnchor(env, Dismissed); got != 600 {
		t.Errorf("dismissed anchor = %v", got)
	}
	if got := g.BottomAnchor(env); got != 605 {
		t.Errorf("bottom anchor = %v", got)
	}
}
