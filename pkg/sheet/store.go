package sheet

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultClearDelay matches the settle time of the exit animation.
const DefaultClearDelay = 300 * time.Millisecond

// Change is published to subscribers after every mutation of a Store.
type Change struct {
	From           State
	To             State
	ContentChanged bool
}

// Transitioned reports whether the state changed.
func (c Change) Transitioned() bool {
	return c.From != c.To
}

// ChangeMsg carries a published Change through the Update loop so that
// components can react to it with commands.
type ChangeMsg struct {
	Change Change
}

// ClearContentMsg is delivered by the command returned from Dismiss once the
// exit animation has settled.
type ClearContentMsg struct {
	Generation uint64
}

// PresentMsg, DismissMsg and UpdateContentMsg let goroutines outside the
// Update loop drive a store through tea.Program.Send.
type PresentMsg struct {
	Content Content
}

type DismissMsg struct{}

type UpdateContentMsg struct {
	Content Content
	State   *State
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithOnDismiss registers the callback fired once per dismissal.
func WithOnDismiss(fn func()) StoreOption {
	return func(s *Store) {
		s.onDismiss = fn
	}
}

// WithClearDelay overrides how long dismissed content is kept alive.
func WithClearDelay(d time.Duration) StoreOption {
	return func(s *Store) {
		if d >= 0 {
			s.clearDelay = d
		}
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store holds the presentation state of one sheet and the content it hosts.
//
// A Store is owned by the Bubble Tea Update loop: every method must be called
// from Update (or from code Update calls). Other goroutines go through the
// message types above.
type Store struct {
	state      State
	content    Content
	onDismiss  func()
	clearDelay time.Duration
	generation uint64
	observers  map[int]func(Change)
	nextID     int
	log        *slog.Logger
}

// NewStore returns a dismissed store holding the empty placeholder.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:      Dismissed,
		content:    Empty{},
		clearDelay: DefaultClearDelay,
		observers:  make(map[int]func(Change)),
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State { return s.state }

// Content returns the hosted content, Empty when there is none.
func (s *Store) Content() Content { return s.content }

// SetOnDismiss replaces the dismissal callback.
func (s *Store) SetOnDismiss(fn func()) { s.onDismiss = fn }

// Subscribe registers fn for every published change. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// Present shows content. On an already presented sheet the content is
// swapped in place.
func (s *Store) Present(content Content) tea.Cmd {
	if content == nil {
		content = Empty{}
	}
	from := s.state
	s.content = content
	s.state = Presented
	s.log.Debug("sheet present", "from", from.String(), "swap", from == Presented)
	return tea.Batch(
		s.publish(Change{From: from, To: Presented, ContentChanged: true}),
		initContent(content),
	)
}

// Dismiss hides the sheet. It is a no-op when already dismissed; otherwise it
// fires the dismissal callback and returns the deferred clear command.
func (s *Store) Dismiss() tea.Cmd {
	if s.state == Dismissed {
		return nil
	}
	s.state = Dismissed
	s.generation++
	gen := s.generation
	s.log.Debug("sheet dismiss", "generation", gen)
	if s.onDismiss != nil {
		s.onDismiss()
	}
	return tea.Batch(
		s.publish(Change{From: Presented, To: Dismissed}),
		tea.Tick(s.clearDelay, func(time.Time) tea.Msg {
			return ClearContentMsg{Generation: gen}
		}),
	)
}

// UpdateContent applies a partial update. A nil content or nil state leaves
// that field untouched.
func (s *Store) UpdateContent(content Content, state *State) tea.Cmd {
	var cmds []tea.Cmd
	if content != nil {
		s.content = content
		s.log.Debug("sheet content update", "state", s.state.String())
		cmds = append(cmds,
			s.publish(Change{From: s.state, To: s.state, ContentChanged: true}),
			initContent(content),
		)
	}
	if state != nil {
		switch *state {
		case Dismissed:
			cmds = append(cmds, s.Dismiss())
		case Presented:
			if s.state != Presented {
				s.state = Presented
				s.log.Debug("sheet present", "from", Dismissed.String(), "swap", false)
				cmds = append(cmds, s.publish(Change{From: Dismissed, To: Presented}))
			}
		}
	}
	return tea.Batch(cmds...)
}

// HandleClear drops the hosted content if msg belongs to the latest
// dismissal and the sheet has stayed dismissed. It reports whether content
// was cleared.
func (s *Store) HandleClear(msg ClearContentMsg) (bool, tea.Cmd) {
	if s.state != Dismissed || msg.Generation != s.generation {
		s.log.Debug("sheet clear skipped", "generation", msg.Generation, "state", s.state.String())
		return false, nil
	}
	if isEmpty(s.content) {
		return false, nil
	}
	s.content = Empty{}
	return true, s.publish(Change{From: Dismissed, To: Dismissed, ContentChanged: true})
}

// Update routes the store's own messages. It reports whether msg was handled.
func (s *Store) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearContentMsg:
		_, cmd := s.HandleClear(msg)
		return true, cmd
	case PresentMsg:
		return true, s.Present(msg.Content)
	case DismissMsg:
		return true, s.Dismiss()
	case UpdateContentMsg:
		return true, s.UpdateContent(msg.Content, msg.State)
	}
	return false, nil
}

func (s *Store) publish(c Change) tea.Cmd {
	for _, fn := range s.observers {
		fn(c)
	}
	return func() tea.Msg { return ChangeMsg{Change: c} }
}

func initContent(c Content) tea.Cmd {
	if in, ok := c.(Initializer); ok {
		return in.Init()
	}
	return nil
}
