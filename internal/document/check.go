package document

import "fmt"

// MaxRanked is the maximum number of entries in a ranked list.
const MaxRanked = 5

// Issue describes a field that does not follow the document contract.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Check reports contract violations in doc. The slideshow trusts the
// producer and never calls this; it backs the check command.
func Check(doc *Document) []Issue {
	if doc == nil {
		return []Issue{{Field: "document", Message: "missing"}}
	}
	var issues []Issue
	if doc.skipped != "" {
		issues = append(issues, Issue{Field: doc.skipped, Message: "wrong type, ignored"})
	}
	issues = append(issues, checkSummary(doc.Summary)...)
	issues = append(issues, checkHighlights(doc.Highlights)...)
	issues = append(issues, checkMonthly(doc.Charts.Monthly)...)
	if len(doc.Charts.DayOfWeek) == 0 {
		issues = append(issues, Issue{Field: "charts.day_of_week", Message: "empty"})
	}
	return issues
}

func checkSummary(s Summary) []Issue {
	var issues []Issue
	counters := []struct {
		field string
		value float64
	}{
		{"summary.total_sessions", float64(s.TotalSessions)},
		{"summary.total_km", s.TotalKm},
		{"summary.total_km_run", s.TotalKmRun},
		{"summary.total_km_cycle", s.TotalKmCycle},
		{"summary.total_gym", float64(s.TotalGym)},
		{"summary.total_cardio", float64(s.TotalCardio)},
		{"summary.total_hours", s.TotalHours},
	}
	for _, c := range counters {
		if c.value < 0 {
			issues = append(issues, Issue{Field: c.field, Message: fmt.Sprintf("negative value %g", c.value)})
		}
	}
	return issues
}

func checkHighlights(h Highlights) []Issue {
	var issues []Issue
	if h.LongestStreak < 0 {
		issues = append(issues, Issue{Field: "highlights.longest_streak", Message: fmt.Sprintf("negative value %d", h.LongestStreak)})
	}
	if h.BestGymMonth != nil && (h.BestGymMonth.Month < 1 || h.BestGymMonth.Month > 12) {
		issues = append(issues, Issue{Field: "highlights.best_gym_month.month", Message: fmt.Sprintf("month %d out of range 1-12", h.BestGymMonth.Month)})
	}
	issues = append(issues, checkRanked("highlights.top_5_longest_runs", h.Top5LongestRuns, byDistance)...)
	issues = append(issues, checkRanked("highlights.top_5_fastest_runs", h.Top5FastestRuns, bySpeed)...)
	issues = append(issues, checkRanked("highlights.top_5_longest_rides", h.Top5LongestRides, byDistance)...)
	issues = append(issues, checkRanked("highlights.top_5_fastest_rides", h.Top5FastestRides, bySpeed)...)
	return issues
}

func byDistance(item RankedItem) (float64, bool) {
	return item.DistanceKm, true
}

// Pace-only entries carry no comparable key.
func bySpeed(item RankedItem) (float64, bool) {
	if item.SpeedKmh <= 0 {
		return 0, false
	}
	return item.SpeedKmh, true
}

func checkRanked(field string, items []RankedItem, key func(RankedItem) (float64, bool)) []Issue {
	var issues []Issue
	if len(items) > MaxRanked {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("has %d entries, want at most %d", len(items), MaxRanked)})
	}
	prev, hasPrev := 0.0, false
	for i, item := range items {
		v, ok := key(item)
		if !ok {
			continue
		}
		if hasPrev && v > prev {
			issues = append(issues, Issue{Field: fmt.Sprintf("%s[%d]", field, i), Message: "not sorted in descending order"})
			break
		}
		prev, hasPrev = v, true
	}
	return issues
}

func checkMonthly(monthly []MonthCount) []Issue {
	var issues []Issue
	seen := make(map[int]bool, len(monthly))
	for i, m := range monthly {
		if m.Month < 1 || m.Month > 12 {
			issues = append(issues, Issue{Field: fmt.Sprintf("charts.monthly[%d].month", i), Message: fmt.Sprintf("month %d out of range 1-12", m.Month)})
			continue
		}
		if seen[m.Month] {
			issues = append(issues, Issue{Field: fmt.Sprintf("charts.monthly[%d].month", i), Message: fmt.Sprintf("duplicate month %d", m.Month)})
			continue
		}
		seen[m.Month] = true
	}
	for month := 1; month <= 12; month++ {
		if !seen[month] {
			issues = append(issues, Issue{Field: "charts.monthly", Message: fmt.Sprintf("missing month %d", month)})
		}
	}
	return issues
}
