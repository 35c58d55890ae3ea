package slides

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	columnGap   = 4
	minPanelW   = 28
	emptyMarker = "nothing logged"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	heroStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5F5F5"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E5E5"))
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D4D4D4"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3F3F46")).
			Align(lipgloss.Center)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5F5F5"))
	panelStyle     = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#27272A"))
	panelRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3A3A3"))
	panelValStyle = lipgloss.NewStyle().Bold(true)
)

// Render draws an active view centred in a width x height area. Inactive
// views render as the empty string. Non-positive sizes skip the placement.
func Render(v View, width, height int) string {
	if !v.Active {
		return ""
	}
	parts := make([]string, 0, len(v.Blocks)*2+2)
	if v.Title != "" {
		parts = append(parts, titleStyle.Foreground(v.Theme.Accent).Render(v.Title))
	}
	for _, b := range v.Blocks {
		out := b.render(width, v.Theme)
		if out == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, out)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if width <= 0 || height <= 0 {
		return content
	}
	var opts []lipgloss.WhitespaceOption
	if v.Theme.Background != "" {
		opts = append(opts, lipgloss.WithWhitespaceBackground(v.Theme.Background))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content, opts...)
}

func (t Text) render(_ int, theme Theme) string {
	if t.Value == "" {
		return ""
	}
	switch t.Kind {
	case TextHero:
		return heroStyle.Foreground(theme.Accent).Render(t.Value)
	case TextHeading:
		return headingStyle.Render(t.Value)
	case TextMuted:
		return mutedStyle.Render(t.Value)
	default:
		return bodyStyle.Render(t.Value)
	}
}

func (s Stats) render(width int, theme Theme) string {
	if len(s) == 0 {
		return ""
	}
	cards := make([]string, 0, len(s))
	for _, stat := range s {
		cards = append(cards, statCard(stat, theme))
	}
	return joinFitting(cards, width, 1)
}

func statCard(s Stat, theme Theme) string {
	lines := []string{
		cardValueStyle.Foreground(theme.Accent).Render(s.Value),
		mutedStyle.Render(strings.ToUpper(s.Label)),
	}
	if s.Note != "" {
		lines = append(lines, mutedStyle.Render(s.Note))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (p Panel) render(_ int, theme Theme) string {
	accent := p.Accent
	if accent == "" {
		accent = theme.Accent
	}
	lines := []string{titleStyle.Foreground(accent).Render(strings.ToUpper(p.Title))}
	if len(p.Rows) == 0 {
		lines = append(lines, mutedStyle.Render(emptyMarker))
	}
	cells := make([][]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		cells = append(cells, []string{row.Left, row.Right})
	}
	for _, row := range padTable(cells, map[int]bool{1: true}) {
		lines = append(lines, panelRowStyle.Render(row[0])+strings.Repeat(" ", columnGap)+panelValStyle.Render(row[1]))
	}
	body := strings.Join(lines, "\n")
	if w := lipgloss.Width(body); w < minPanelW {
		body = lipgloss.NewStyle().Width(minPanelW).Render(body)
	}
	return panelStyle.Render(body)
}

func (c Columns) render(width int, theme Theme) string {
	if len(c) == 0 {
		return ""
	}
	panels := make([]string, 0, len(c))
	for _, p := range c {
		panels = append(panels, p.render(width, theme))
	}
	return joinFitting(panels, width, columnGap)
}

// joinFitting places items side by side when they fit in width and stacks
// them otherwise.
func joinFitting(items []string, width, gap int) string {
	total := 0
	for i, item := range items {
		if i > 0 {
			total += gap
		}
		total += lipgloss.Width(item)
	}
	if width > 0 && total > width {
		return lipgloss.JoinVertical(lipgloss.Center, items...)
	}
	spacer := strings.Repeat(" ", gap)
	row := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			row = append(row, spacer)
		}
		row = append(row, item)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}
