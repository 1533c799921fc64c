// Package demo is the interactive host used by `sheetkit demo`. It owns a
// background screen with a single action that presents a two-section
// scroll view in a sheet.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/sheetkit/internal/config"
	"github.com/marcus/sheetkit/pkg/sheet"
	"github.com/marcus/sheetkit/pkg/sheet/content"
	"github.com/marcus/sheetkit/pkg/sheet/mouse"
	"github.com/marcus/sheetkit/pkg/twosection"
)

const regionShow = "demo.show"

// KeyMap holds the host bindings active while the sheet is dismissed.
type KeyMap struct {
	Show key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the demo bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Show: key.NewBinding(key.WithKeys("enter", " ", "s"), key.WithHelp("enter", "show content")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the root Bubble Tea model of the demo.
type Model struct {
	store *sheet.Store
	sheet *sheet.Sheet
	keys  KeyMap
	log   *slog.Logger
	mouse *mouse.Handler

	width, height int
	status        string
	dismissals    int
	presented     int

	// form values
	name    string
	size    string
	confirm bool
	pick    int
	picked  string
}

// New builds the demo from cfg.
func New(cfg config.Config, log *slog.Logger) *Model {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m := &Model{
		keys:   DefaultKeyMap(),
		log:    log,
		mouse:  mouse.NewHandler(),
		status: "ready",
	}
	m.store = sheet.NewStore(
		sheet.WithClearDelay(cfg.Animation.ClearDelay),
		sheet.WithLogger(log),
		sheet.WithOnDismiss(m.onDismiss),
	)
	m.sheet = sheet.New(m.store, cfg.SheetStyle(),
		sheet.WithMetrics(cfg.Metrics()),
		sheet.WithSpring(cfg.Spring()),
		sheet.WithSheetLogger(log),
	)
	return m
}

// Store exposes the sheet store.
func (m *Model) Store() *sheet.Store { return m.store }

// Sheet exposes the sheet component.
func (m *Model) Sheet() *sheet.Sheet { return m.sheet }

// Status is the last status line.
func (m *Model) Status() string { return m.status }

// Dismissals counts onDismiss callbacks.
func (m *Model) Dismissals() int { return m.dismissals }

func (m *Model) onDismiss() {
	m.dismissals++
	m.status = "sheet dismissed"
	m.log.Info("sheet dismissed", "count", m.dismissals)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.sheet.Init()
}

// Show presents freshly built content.
func (m *Model) Show() tea.Cmd {
	m.presented++
	m.name, m.size, m.confirm, m.picked = "", "", false, ""
	m.status = "sheet presented"
	m.log.Info("present content", "count", m.presented)
	return m.store.Present(m.buildContent())
}

func (m *Model) buildContent() sheet.Content {
	top := content.New().
		Add(content.Markdown(topMarkdown))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.name),
			huh.NewSelect[string]().
				Title("Size").
				Options(huh.NewOptions("small", "medium", "large")...).
				Value(&m.size),
			huh.NewConfirm().Title("Save?").Value(&m.confirm),
		),
	)

	items := make([]content.ListItem, 0, len(sampleItems))
	for i, label := range sampleItems {
		items = append(items, content.ListItem{ID: fmt.Sprintf("item-%d", i), Label: label})
	}
	m.pick = 0

	bottom := content.New().
		Add(content.Heading("Pinned to the bottom")).
		Add(content.Form(form)).
		Add(content.Spacer()).
		Add(content.List("samples", items, &m.pick, content.WithFilter(), content.WithMaxVisible(4)))

	return twosection.NewScrollView(top.Block(), bottom.Block())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || m.store.State() == sheet.Dismissed) {
			return m, tea.Quit
		}
		if m.store.State() == sheet.Dismissed {
			if key.Matches(msg, m.keys.Show) {
				return m, m.Show()
			}
			return m, nil
		}

	case tea.MouseMsg:
		if m.store.State() == sheet.Dismissed {
			action := m.mouse.HandleMouse(msg)
			if action.Type == mouse.ActionClick && action.Region != nil && action.Region.ID == regionShow {
				return m, m.Show()
			}
		}

	case content.FormDoneMsg:
		if msg.State == huh.StateCompleted {
			m.status = fmt.Sprintf("saved %q (%s, confirmed=%t)", m.name, m.size, m.confirm)
			m.log.Info("form completed", "name", m.name, "size", m.size)
			summary := formatSummaryAsMarkdown(m.name, m.size, m.confirm, m.picked)
			return m, tea.Batch(m.store.Dismiss(), copyCmd("summary", summary))
		}
		m.status = "form aborted"
		return m, nil

	case content.SelectedMsg:
		m.status = "selected " + msg.Item.Label
		m.picked = msg.Item.Label
		m.log.Debug("list selection", "list", msg.ListID, "item", msg.Item.ID)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", "what", msg.what, "err", msg.err)
			return m, nil
		}
		m.status += " · copied " + msg.what
		return m, nil

	case sheet.ChangeMsg:
		m.log.Debug("sheet change", "from", msg.Change.From.String(), "to", msg.Change.To.String())
	}

	return m, m.sheet.Update(msg)
}

var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(content.Primary).
			Foreground(content.Bright).
			Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(content.Muted)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.sheet.View(m.background())
}

// background draws the host screen and registers the button hit region.
func (m *Model) background() string {
	button := buttonStyle.Render("Show Content")
	bw, bh := lipgloss.Width(button), lipgloss.Height(button)
	bx := max((m.width-bw)/2, 0)
	by := max((m.height-bh)/2, 0)

	m.mouse.HitMap.Clear()
	m.mouse.HitMap.AddRect(regionShow, bx, by, bw, bh)

	rows := strings.Split(button, "\n")
	lines := make([]string, m.height)
	for i := range lines {
		if r := i - by; r >= 0 && r < len(rows) {
			lines[i] = strings.Repeat(" ", bx) + rows[r]
		}
	}
	lines[len(lines)-1] = statusStyle.Render(truncate(" "+m.status+" · enter to open · q to quit", m.width))
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, max(width, 0), "")
}

const topMarkdown = `# Resizable sheet

Drag the **handle** down to dismiss, or press **esc**. Clicking the dimmed
backdrop also closes the sheet.

This section scrolls with the content. The section below stays pinned to the
bottom of the sheet when everything fits, and follows this one when it does
not.`

var sampleItems = []string{
	"Apples", "Bananas", "Cherries", "Dates", "Elderberries",
	"Figs", "Grapes", "Honeydew", "Kiwis", "Lemons",
}
