package slides

import "github.com/charmbracelet/lipgloss"

// TextKind selects how a Text block is styled.
type TextKind int

const (
	TextBody TextKind = iota
	TextHero
	TextHeading
	TextMuted
)

// Theme carries the per-slide colours.
type Theme struct {
	Accent     lipgloss.Color
	Background lipgloss.Color
}

// View is the visual description of one slide.
type View struct {
	Active bool
	Name   string
	Title  string
	Theme  Theme
	Blocks []Block
}

// Block is one vertically stacked part of a slide.
type Block interface {
	render(width int, theme Theme) string
}

// Text is a single centred line.
type Text struct {
	Value string
	Kind  TextKind
}

// Stat is one big number with a caption.
type Stat struct {
	Value string
	Label string
	Note  string
}

// Stats lays out stat cards side by side.
type Stats []Stat

// Row is a label/value pair in a panel.
type Row struct {
	Left  string
	Right string
}

// Panel is a titled list of rows.
type Panel struct {
	Title  string
	Rows   []Row
	Accent lipgloss.Color
}

// Columns lays out panels side by side.
type Columns []Panel

// Chart is the stacked monthly sessions chart.
type Chart struct {
	Bars []MonthBar
}

// Panel returns the first panel titled title, looking inside columns too.
func (v View) Panel(title string) (Panel, bool) {
	for _, b := range v.Blocks {
		switch b := b.(type) {
		case Panel:
			if b.Title == title {
				return b, true
			}
		case Columns:
			for _, p := range b {
				if p.Title == title {
					return p, true
				}
			}
		}
	}
	return Panel{}, false
}

// Texts returns the values of all text blocks in order.
func (v View) Texts() []string {
	var out []string
	for _, b := range v.Blocks {
		if t, ok := b.(Text); ok {
			out = append(out, t.Value)
		}
	}
	return out
}
