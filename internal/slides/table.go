package slides

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// padTable pads every cell to its column width so rows line up when joined.
func padTable(rows [][]string, rightAlignCols map[int]bool) [][]string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, colCount)
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			padded[i] = padCell(cell, widths[i], rightAlignCols[i])
		}
		out = append(out, padded)
	}
	return out
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
