// Package tui provides the Bubble Tea slideshow interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wrapped/internal/document"
	"github.com/verte-zerg/wrapped/internal/slides"
	"github.com/verte-zerg/wrapped/internal/slideshow"
)

const (
	progressGap      = 1
	progressSegment  = "━"
	defaultSegmentSz = 3
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→/click", "next")),
		Prev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model implements the Bubble Tea slideshow UI.
type Model struct {
	doc   *document.Document
	deck  []slides.Slide
	ctrl  *slideshow.Controller
	views []slides.View

	keys keyMap
	help help.Model

	width  int
	height int
}

var (
	litStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	unlitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a slideshow over doc starting at the first slide.
// Listeners are notified after every slide change.
func NewModel(doc *document.Document, listeners ...slideshow.Listener) *Model {
	deck := slides.Deck()
	m := &Model{
		doc:   doc,
		deck:  deck,
		ctrl:  slideshow.New(len(deck)),
		views: make([]slides.View, len(deck)),
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.ctrl.OnChange(func(slideshow.Change) { m.refreshViews() })
	for _, fn := range listeners {
		m.ctrl.OnChange(fn)
	}
	m.refreshViews()
	return m
}

// Cursor returns the index of the visible slide.
func (m *Model) Cursor() int {
	return m.ctrl.Cursor()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.ctrl.Advance()
		case key.Matches(msg, m.keys.Prev):
			m.ctrl.Retreat()
		}
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ctrl.Advance()
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	active := m.views[m.ctrl.Cursor()]
	if m.width == 0 || m.height == 0 {
		return slides.Render(active, 0, 0)
	}
	progress := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderProgress())
	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter())
	if m.height < 3 {
		return progress
	}
	body := slides.Render(active, m.width, m.height-2)
	return progress + "\n" + body + "\n" + footer
}

func (m *Model) refreshViews() {
	for i, s := range m.deck {
		m.views[i] = s.View(m.ctrl.IsActive(i), m.doc)
	}
}

// renderProgress draws one segment per slide; segments up to the cursor
// are lit.
func (m *Model) renderProgress() string {
	n := len(m.deck)
	size := defaultSegmentSz
	if m.width > 0 {
		size = (m.width - (n-1)*progressGap) / n
	}
	if size < 1 {
		size = 1
	}
	segment := strings.Repeat(progressSegment, size)
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i <= m.ctrl.Cursor() {
			parts = append(parts, litStyle.Render(segment))
		} else {
			parts = append(parts, unlitStyle.Render(segment))
		}
	}
	return strings.Join(parts, strings.Repeat(" ", progressGap))
}

func (m *Model) renderFooter() string {
	position := fmt.Sprintf("%d/%d", m.ctrl.Cursor()+1, m.ctrl.Len())
	return footerStyle.Render(position) + "  " + m.help.View(m.keys)
}
