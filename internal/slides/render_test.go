package slides

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderInactiveIsEmpty(t *testing.T) {
	v := Deck()[slideTotals].View(false, nil)
	if out := Render(v, 80, 24); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRenderFillsArea(t *testing.T) {
	v := Deck()[slideStreak].View(true, nil)
	out := Render(v, 60, 20)
	if got := lipgloss.Height(out); got != 20 {
		t.Fatalf("expected height 20, got %d", got)
	}
	if got := lipgloss.Width(out); got != 60 {
		t.Fatalf("expected width 60, got %d", got)
	}
	if !strings.Contains(out, "Unstoppable") || !strings.Contains(out, "DAY STREAK") {
		t.Fatalf("missing slide text:\n%s", out)
	}
}

func TestRenderPanelRows(t *testing.T) {
	v := View{Active: true, Blocks: []Block{Panel{Title: "Top 5 Distance", Rows: []Row{
		{Left: "2025-09-14", Right: "21.4 km"},
		{Left: "2025-08-31", Right: "8.2 km"},
	}}}}
	out := Render(v, 0, 0)
	lines := strings.Split(out, "\n")
	first, second := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "2025-09-14") {
			first = i
		}
		if strings.Contains(line, "2025-08-31") {
			second = i
		}
	}
	if first < 0 || second != first+1 {
		t.Fatalf("rows not rendered in order:\n%s", out)
	}
	if strings.Contains(out, emptyMarker) {
		t.Fatalf("unexpected empty marker:\n%s", out)
	}
	if lipgloss.Width(lines[first]) != lipgloss.Width(lines[second]) {
		t.Fatalf("rows not aligned:\n%s", out)
	}
}

func TestJoinFittingStacksWhenNarrow(t *testing.T) {
	items := []string{"aaaa", "bbbb"}
	if got := joinFitting(items, 20, 2); lipgloss.Height(got) != 1 {
		t.Fatalf("expected side by side, got %q", got)
	}
	if got := joinFitting(items, 6, 2); lipgloss.Height(got) != 2 {
		t.Fatalf("expected stacked, got %q", got)
	}
}
