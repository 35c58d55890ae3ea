// Package slides maps the statistics document onto the ten wrapped slides
// and renders them with lipgloss.
package slides

import (
	"fmt"
	"math"
	"sort"

	"github.com/verte-zerg/wrapped/internal/document"
)

// MonthNames is 1-indexed; index 0 is unused.
var MonthNames = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthBar is one month of the stacked sessions chart.
type MonthBar struct {
	Month int
	Name  string
	Run   int
	Cycle int
	Gym   int
	Total int
}

// MonthName returns the short name of month m, or "" when m is not in 1-12.
func MonthName(m int) string {
	if m < 1 || m >= len(MonthNames) {
		return ""
	}
	return MonthNames[m]
}

// FormatKm formats a distance with one decimal, e.g. "10.3 km".
func FormatKm(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// FormatSpeed formats a speed with one decimal, e.g. "28.9 km/h".
func FormatSpeed(kmh float64) string {
	return fmt.Sprintf("%.1f km/h", kmh)
}

// RoundInt rounds to the nearest integer, halves away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// PowerDay returns the weekday with the highest count. Ties go to the first
// entry in input order. ok is false for an empty list.
func PowerDay(days []document.DayCount) (day string, ok bool) {
	if len(days) == 0 {
		return "", false
	}
	best := days[0]
	for _, d := range days[1:] {
		if d.Count > best.Count {
			best = d
		}
	}
	return best.Day, true
}

// MonthlySeries returns the monthly counts with display names, ordered by
// month number. The input is not modified.
func MonthlySeries(monthly []document.MonthCount) []MonthBar {
	out := make([]MonthBar, 0, len(monthly))
	for _, m := range monthly {
		out = append(out, MonthBar{
			Month: m.Month,
			Name:  MonthName(m.Month),
			Run:   m.Run,
			Cycle: m.Cycle,
			Gym:   m.Gym,
			Total: m.Total,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}
