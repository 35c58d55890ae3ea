// Package document defines the precomputed yearly statistics document and
// helpers to load and check it.
package document

// Document is the aggregated statistics for one training year. It is built
// offline, loaded once and never mutated afterwards.
type Document struct {
	Year       int           `json:"year"`
	Summary    Summary       `json:"summary"`
	Highlights Highlights    `json:"highlights"`
	Charts     Charts        `json:"charts"`
	GymLog     []GymEntry    `json:"gym_log,omitempty"`
	CardioLog  []CardioEntry `json:"cardio_log,omitempty"`

	skipped string
}

// SkippedField returns the path of the first field that was ignored during
// decoding because of a type mismatch, or "" when every field decoded.
func (d *Document) SkippedField() string {
	return d.skipped
}

// Summary holds the yearly counters.
type Summary struct {
	TotalSessions int     `json:"total_sessions"`
	TotalKm       float64 `json:"total_km"`
	TotalKmRun    float64 `json:"total_km_run"`
	TotalKmCycle  float64 `json:"total_km_cycle"`
	TotalGym      int     `json:"total_gym"`
	TotalCardio   int     `json:"total_cardio"`
	TotalHours    float64 `json:"total_hours"`
}

// Highlights holds derived superlatives. Ranked lists are already sorted by
// the producer and must be displayed as given.
type Highlights struct {
	LongestRun       float64      `json:"longest_run"`
	LongestRide      float64      `json:"longest_ride"`
	MostActiveMonth  string       `json:"most_active_month"`
	TopExercises     []string     `json:"top_exercises"`
	LongestStreak    int          `json:"longest_streak"`
	BestRunWeek      *BestWeek    `json:"best_run_week"`
	BestCycleWeek    *BestWeek    `json:"best_cycle_week"`
	BestGymMonth     *BestMonth   `json:"best_gym_month"`
	Top5LongestRuns  []RankedItem `json:"top_5_longest_runs"`
	Top5FastestRuns  []RankedItem `json:"top_5_fastest_runs"`
	Top5LongestRides []RankedItem `json:"top_5_longest_rides"`
	Top5FastestRides []RankedItem `json:"top_5_fastest_rides"`
}

// BestWeek is the ISO week with the largest distance.
type BestWeek struct {
	Week     int     `json:"week"`
	Distance float64 `json:"distance"`
}

// BestMonth is the calendar month (1-12) with the most sessions.
type BestMonth struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// RankedItem is one leaderboard entry. Speed and pace are only present in
// speed rankings.
type RankedItem struct {
	Date       string  `json:"date"`
	DistanceKm float64 `json:"distance_km"`
	SpeedKmh   float64 `json:"speed_kmh,omitempty"`
	Pace       string  `json:"pace,omitempty"`
}

// Charts holds chart-ready series.
type Charts struct {
	Monthly   []MonthCount `json:"monthly"`
	DayOfWeek []DayCount   `json:"day_of_week"`
}

// MonthCount is the per-category session count for one month.
type MonthCount struct {
	Month int `json:"month"`
	Run   int `json:"run"`
	Cycle int `json:"cycle"`
	Gym   int `json:"gym"`
	Walk  int `json:"walk,omitempty"`
	Total int `json:"total"`
}

// DayCount is the activity count for one weekday.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// GymEntry is one gym workout from the raw log.
type GymEntry struct {
	Date      string   `json:"date"`
	Exercises []string `json:"exercises"`
}

// CardioEntry is one cardio activity from the raw log.
type CardioEntry struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	DistanceKm  float64 `json:"distance_km"`
	DurationSec float64 `json:"duration_sec,omitempty"`
	SpeedKmh    float64 `json:"speed_kmh,omitempty"`
}
