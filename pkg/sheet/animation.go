package sheet

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// Spring configures the interpolating spring used for every transition.
type Spring struct {
	Stiffness       float64
	Damping         float64
	InitialVelocity float64
	FPS             int
}

// DefaultSpring is a stiff, lightly underdamped spring.
func DefaultSpring() Spring {
	return Spring{Stiffness: 300, Damping: 30, InitialVelocity: 10, FPS: 60}
}

// frameMsg advances the animation of the sheet with the matching id.
type frameMsg struct {
	id   int64
	loop int
}

const settleEpsilon = 0.01

// animator moves a value toward a target along a damped spring. Unit mass
// is assumed, so angular frequency is sqrt(stiffness).
type animator struct {
	spring   harmonica.Spring
	cfg      Spring
	pos      float64
	vel      float64
	target   float64
	running  bool
	loop     int
	interval time.Duration
}

func newAnimator(cfg Spring) animator {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	omega := math.Sqrt(math.Max(cfg.Stiffness, 0))
	ratio := 1.0
	if omega > 0 {
		ratio = cfg.Damping / (2 * omega)
	}
	return animator{
		spring:   harmonica.NewSpring(harmonica.FPS(cfg.FPS), omega, ratio),
		cfg:      cfg,
		interval: time.Second / time.Duration(cfg.FPS),
	}
}

// animateTo starts (or retargets) the animation. It reports whether a new
// frame loop must be started.
func (a *animator) animateTo(target float64) bool {
	a.target = target
	if a.settled() {
		a.pos = target
		a.vel = 0
		a.running = false
		return false
	}
	if a.running {
		return false
	}
	if a.vel == 0 {
		a.vel = math.Copysign(a.cfg.InitialVelocity, target-a.pos)
	}
	a.running = true
	a.loop++
	return true
}

// jumpTo moves to target without animating, cancelling any running
// animation.
func (a *animator) jumpTo(target float64) {
	a.pos = target
	a.target = target
	a.vel = 0
	a.running = false
}

// step advances one frame and reports whether another frame is needed.
func (a *animator) step() bool {
	if !a.running {
		return false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if a.settled() {
		a.pos = a.target
		a.vel = 0
		a.running = false
	}
	return a.running
}

func (a *animator) settled() bool {
	return math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
}

// current reports whether msg belongs to the running frame loop.
func (a *animator) current(msg frameMsg) bool {
	return a.running && msg.loop == a.loop
}

func (a *animator) tick(id int64) tea.Cmd {
	loop := a.loop
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return frameMsg{id: id, loop: loop}
	})
}
