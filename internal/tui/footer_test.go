package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wrapped/internal/document"
)

func TestRenderFooterFormats(t *testing.T) {
	m := NewModel(&document.Document{})
	m.ctrl.Advance()
	m.ctrl.Advance()
	out := m.renderFooter()
	if !containsAll(out, []string{"3/10", "next", "back", "quit"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestRenderProgressLightsUpToCursor(t *testing.T) {
	m := NewModel(&document.Document{})
	m.width = 39
	m.ctrl.Advance()
	m.ctrl.Advance()

	out := m.renderProgress()
	segments := strings.Split(out, " ")
	if len(segments) != 10 {
		t.Fatalf("expected 10 segments, got %d: %q", len(segments), out)
	}
	lit := litStyle.Render(strings.Repeat(progressSegment, 3))
	unlit := unlitStyle.Render(strings.Repeat(progressSegment, 3))
	for i, seg := range segments {
		want := unlit
		if i <= 2 {
			want = lit
		}
		if seg != want {
			t.Fatalf("segment %d: expected %q, got %q", i, want, seg)
		}
	}
	if got := lipgloss.Width(out); got != 39 {
		t.Fatalf("expected width 39, got %d", got)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
