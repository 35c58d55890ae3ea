package slides

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	chartHeight = 10
	barGap      = 1
	barBlock    = "█"
	legendMark  = "■"
)

type segment struct {
	name  string
	color lipgloss.Color
}

var (
	segmentRun   = segment{name: "Running", color: lipgloss.Color("#06B6D4")}
	segmentCycle = segment{name: "Cycling", color: lipgloss.Color("#22C55E")}
	segmentGym   = segment{name: "Gym", color: lipgloss.Color("#EC4899")}
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func (c Chart) render(width int, _ Theme) string {
	if len(c.Bars) == 0 {
		return ""
	}
	barWidth := chartBarWidth(len(c.Bars), width)
	levels := stackLevels(c.Bars, chartHeight)

	lines := make([]string, 0, chartHeight+2)
	lines = append(lines, renderLegend())
	for y := 0; y < chartHeight; y++ {
		level := chartHeight - y
		var row strings.Builder
		for i, bounds := range levels {
			if i > 0 {
				row.WriteString(strings.Repeat(" ", barGap))
			}
			row.WriteString(barCell(bounds, level, barWidth))
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, axisStyle.Render(axisLabels(c.Bars, barWidth)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// chartBarWidth picks the widest bar (3, 2 or 1 cells) that fits width.
func chartBarWidth(bars, width int) int {
	for _, w := range []int{3, 2} {
		if width <= 0 || bars*(w+barGap)-barGap <= width {
			return w
		}
	}
	return 1
}

// stackLevels returns, per bar, the cumulative top level of the run, cycle
// and gym segments scaled to height.
func stackLevels(bars []MonthBar, height int) [][3]int {
	maxTotal := 0
	for _, b := range bars {
		if t := b.Run + b.Cycle + b.Gym; t > maxTotal {
			maxTotal = t
		}
	}
	out := make([][3]int, len(bars))
	if maxTotal == 0 {
		return out
	}
	scale := func(v int) int {
		return int(math.Round(float64(v) * float64(height) / float64(maxTotal)))
	}
	for i, b := range bars {
		out[i] = [3]int{
			scale(b.Run),
			scale(b.Run + b.Cycle),
			scale(b.Run + b.Cycle + b.Gym),
		}
	}
	return out
}

func barCell(bounds [3]int, level, width int) string {
	var seg *segment
	switch {
	case level <= bounds[0]:
		seg = &segmentRun
	case level <= bounds[1]:
		seg = &segmentCycle
	case level <= bounds[2]:
		seg = &segmentGym
	}
	if seg == nil {
		return strings.Repeat(" ", width)
	}
	return lipgloss.NewStyle().Foreground(seg.color).Render(strings.Repeat(barBlock, width))
}

func axisLabels(bars []MonthBar, width int) string {
	var b strings.Builder
	for i, bar := range bars {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", barGap))
		}
		label := runewidth.Truncate(bar.Name, width, "")
		b.WriteString(runewidth.FillRight(label, width))
	}
	return b.String()
}

func renderLegend() string {
	parts := make([]string, 0, 3)
	for _, seg := range []segment{segmentRun, segmentCycle, segmentGym} {
		mark := lipgloss.NewStyle().Foreground(seg.color).Render(legendMark)
		parts = append(parts, mark+" "+seg.name)
	}
	return strings.Join(parts, "  ")
}
