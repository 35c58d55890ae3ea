package slides

import (
	"strings"
	"testing"
)

func TestPadTableAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Benböj", "#1"},
		{"Chins", "#10"},
		{"Hantelpress"},
	}
	rightAlign := map[int]bool{1: true}

	padded := padTable(rows, rightAlign)
	if len(padded) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(padded))
	}
	lines := make([]string, 0, len(padded))
	for _, row := range padded {
		lines = append(lines, strings.Join(row, " "))
	}
	if lines[0] != "Benböj       #1" {
		t.Fatalf("unexpected row line: %q", lines[0])
	}
	if lines[1] != "Chins       #10" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Hantelpress    " {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestPadTableEmpty(t *testing.T) {
	if got := padTable(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestDisplayWidthWide(t *testing.T) {
	if got := displayWidth("跑步"); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}
