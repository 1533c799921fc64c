package sheet

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/marcus/sheetkit/pkg/sheet/mouse"
)

// Hit region IDs registered by the sheet on every render.
const (
	RegionBackdrop = "sheet.backdrop"
	RegionSheet    = "sheet.body"
	RegionHandle   = "sheet.handle"
)

// KeyMap holds the sheet's own key bindings. Every other key goes to the
// hosted content.
type KeyMap struct {
	Dismiss key.Binding
}

// DefaultKeyMap dismisses on esc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithMetrics sets the geometry constants. The default is TerminalMetrics.
func WithMetrics(m Metrics) Option {
	return func(s *Sheet) { s.metrics = m }
}

// WithSpring sets the transition spring.
func WithSpring(sp Spring) Option {
	return func(s *Sheet) { s.spring = sp }
}

// WithKeyMap overrides the key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(s *Sheet) { s.keys = km }
}

// WithSheetLogger sets the logger.
func WithSheetLogger(l *slog.Logger) Option {
	return func(s *Sheet) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source used for velocity estimation.
func WithClock(now func() time.Time) Option {
	return func(s *Sheet) { s.now = now }
}

var sheetIDs atomic.Int64

// Sheet draws a Store's content as a resizable, draggable panel over a
// background view.
type Sheet struct {
	id         int64
	store      *Store
	style      Style
	metrics    Metrics
	spring     Spring
	geo        Geometry
	translator Translator
	keys       KeyMap
	env        Environment
	log        *slog.Logger
	now        func() time.Time

	mouse    *mouse.Handler
	velocity *VelocityTracker
	drag     *DragState

	dragOffset    float64
	dragMoved     bool
	contentHeight float64
	anim          animator
	frames        Frames
	unsubscribe   func()
}

// New builds a sheet bound to store.
func New(store *Store, style Style, opts ...Option) *Sheet {
	s := &Sheet{
		id:      sheetIDs.Add(1),
		store:   store,
		style:   style,
		metrics: TerminalMetrics(),
		spring:  DefaultSpring(),
		keys:    DefaultKeyMap(),
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		mouse:   mouse.NewHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.geo = Geometry{Metrics: s.metrics, Style: s.style}
	s.translator = NewTranslator(s.metrics)
	s.velocity = NewVelocityTracker(s.now)
	s.env.SafeTop = s.metrics.DefaultSafeTop
	s.anim = newAnimator(s.spring)
	s.anim.jumpTo(s.target())
	s.unsubscribe = store.Subscribe(s.observe)
	return s
}

// Close detaches the sheet from its store.
func (s *Sheet) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Store returns the store the sheet renders.
func (s *Sheet) Store() *Store { return s.store }

// Style returns the sheet style.
func (s *Sheet) Style() Style { return s.style }

// Environment returns the current screen description.
func (s *Sheet) Environment() Environment { return s.env }

// SetSize updates the screen size.
func (s *Sheet) SetSize(width, height int) {
	s.env.ScreenWidth = float64(width)
	s.env.ScreenHeight = float64(height)
}

// SetSafeArea sets insets the sheet must keep clear of.
func (s *Sheet) SetSafeArea(top, bottom float64) {
	s.env.SafeTop = top
	s.env.SafeBottom = bottom
}

// SetKeyboardOffset lifts a presented sheet by off units.
func (s *Sheet) SetKeyboardOffset(off float64) {
	s.env.KeyboardOffset = off
}

// SetContentHeight is the measurement callback for the hosted content's
// rendered height. The rubber-band limit depends on it.
func (s *Sheet) SetContentHeight(h float64) {
	s.contentHeight = h
}

// ContentHeight returns the last measured content height.
func (s *Sheet) ContentHeight() float64 { return s.contentHeight }

// DragOffset returns the live drag offset.
func (s *Sheet) DragOffset() float64 { return s.dragOffset }

// Dragging reports whether a gesture is in progress.
func (s *Sheet) Dragging() bool { return s.drag != nil }

// Position returns the currently drawn sheet top.
func (s *Sheet) Position() float64 { return s.anim.pos }

// Animating reports whether a transition is running.
func (s *Sheet) Animating() bool { return s.anim.running }

// Frames returns the rectangles of the last render.
func (s *Sheet) Frames() Frames { return s.frames }

// target is where the sheet top belongs right now.
func (s *Sheet) target() float64 {
	return s.geo.Position(s.env, s.store.State(), s.dragOffset)
}

func (s *Sheet) observe(c Change) {
	if c.Transitioned() && s.drag != nil {
		s.cancelDrag()
	}
}

// Init implements the Bubble Tea component contract.
func (s *Sheet) Init() tea.Cmd {
	return nil
}

// Update handles sheet messages, store messages, and input while the sheet
// is on screen.
func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if handled, cmd := s.store.Update(msg); handled {
		cmds = append(cmds, cmd)
		cmds = append(cmds, s.sync())
		return tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		if !s.anim.running {
			s.anim.jumpTo(s.target())
		}
		cmds = append(cmds, s.forward(msg))

	case frameMsg:
		if msg.id != s.id || !s.anim.current(msg) {
			return nil
		}
		if s.anim.step() {
			return s.anim.tick(s.id)
		}
		return nil

	case ChangeMsg:
		// handled by sync below

	case tea.KeyMsg:
		if s.store.State() != Presented {
			return nil
		}
		if key.Matches(msg, s.keys.Dismiss) {
			cmds = append(cmds, s.store.Dismiss())
			break
		}
		cmds = append(cmds, s.forward(msg))

	case tea.MouseMsg:
		cmds = append(cmds, s.handleMouse(msg))

	default:
		cmds = append(cmds, s.forward(msg))
	}

	cmds = append(cmds, s.sync())
	return tea.Batch(cmds...)
}

// sync retargets the animation when the resting position moved.
func (s *Sheet) sync() tea.Cmd {
	t := s.target()
	if s.drag != nil {
		s.anim.jumpTo(t)
		return nil
	}
	if t == s.anim.target && (s.anim.running || s.anim.pos == t) {
		return nil
	}
	if s.anim.animateTo(t) {
		return s.anim.tick(s.id)
	}
	return nil
}

func (s *Sheet) forward(msg tea.Msg) tea.Cmd {
	if u, ok := s.store.Content().(Updater); ok {
		return u.Update(msg)
	}
	return nil
}

func (s *Sheet) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := s.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return nil
		}
		switch action.Region.ID {
		case RegionBackdrop:
			return s.store.Dismiss()
		case RegionSheet, RegionHandle:
			s.beginDrag(action.X, action.Y, action.Region.ID)
		}

	case mouse.ActionDrag:
		s.moveDrag(action.Y, float64(action.DragDY))

	case mouse.ActionDragEnd:
		if s.drag != nil && !s.dragMoved && action.DragDX == 0 && action.DragDY == 0 {
			return s.tap(action)
		}
		return s.endDrag(action.Y, float64(action.DragDY))

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if s.store.State() == Presented {
			return s.forward(msg)
		}
	}
	return nil
}

func (s *Sheet) beginDrag(x, y int, region string) {
	s.mouse.StartDrag(x, y, region)
	s.drag = &DragState{}
	s.dragMoved = false
	s.velocity.Reset()
	s.velocity.Add(float64(y))
	s.anim.jumpTo(s.anim.pos)
}

func (s *Sheet) moveDrag(y int, translation float64) {
	if s.drag == nil {
		return
	}
	s.velocity.Add(float64(y))
	if translation != 0 {
		s.dragMoved = true
	}
	off := s.translator.Offset(translation, s.contentHeight, s.env.ScreenHeight, s.geo.HandleHeight())
	// The content limit moves with the offset it produced, so pulling
	// further up must never let the sheet sink back.
	if translation < s.drag.TranslationY && off > s.dragOffset {
		off = s.dragOffset
	}
	s.drag.TranslationY = translation
	s.dragOffset = off
	s.anim.jumpTo(s.target())
}

// tap ends a press that never moved. A tap inside the content box reaches
// the content as a press in content coordinates.
func (s *Sheet) tap(action mouse.Action) tea.Cmd {
	region := action.DragRegion
	s.drag = nil
	s.dragOffset = 0
	if region != RegionSheet || s.store.State() != Presented {
		return nil
	}
	box := s.frames.Content
	if !cellbuf.Pos(action.X, action.Y).In(box) {
		return nil
	}
	s.log.Debug("sheet tap", "x", action.X-box.Min.X, "y", action.Y-box.Min.Y)
	return s.forward(tea.MouseMsg{
		X:      action.X - box.Min.X,
		Y:      action.Y - box.Min.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

func (s *Sheet) endDrag(y int, translation float64) tea.Cmd {
	if s.drag == nil {
		return nil
	}
	s.velocity.Add(float64(y))
	s.drag.TranslationY = translation
	s.drag.PredictedEndTranslationY = s.velocity.Project(translation)
	state := s.store.State()
	commit := s.translator.Decide(state, *s.drag)
	s.log.Debug("sheet drag end",
		"translation", s.drag.TranslationY,
		"predicted", s.drag.PredictedEndTranslationY,
		"commit", commit.String())

	s.drag = nil
	s.dragOffset = 0

	switch {
	case commit == Dismissed:
		return s.store.Dismiss()
	case state == Dismissed:
		p := Presented
		return s.store.UpdateContent(nil, &p)
	}
	return nil
}

func (s *Sheet) cancelDrag() {
	s.drag = nil
	s.dragOffset = 0
	s.mouse.EndDrag()
}
