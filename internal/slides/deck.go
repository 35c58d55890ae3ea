package slides

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wrapped/internal/document"
)

// Renderer builds the view of one slide. It must not keep state.
type Renderer func(active bool, doc *document.Document) View

// Slide is one entry of the deck.
type Slide struct {
	Name   string
	Render Renderer
}

// View renders the slide, treating a nil document as empty.
func (s Slide) View(active bool, doc *document.Document) View {
	if doc == nil {
		doc = &document.Document{}
	}
	v := s.Render(active, doc)
	v.Active = active
	v.Name = s.Name
	return v
}

// Panel titles shared with tests and the print command.
const (
	PanelLifts       = "Most Frequent Lifts"
	PanelTopDistance = "Top 5 Distance"
	PanelTopSpeed    = "Top 5 Speed"
)

var (
	colorPurple = lipgloss.Color("#C084FC")
	colorBlue   = lipgloss.Color("#60A5FA")
	colorOrange = lipgloss.Color("#F97316")
	colorYellow = lipgloss.Color("#EAB308")
	colorPink   = lipgloss.Color("#EC4899")
	colorCyan   = lipgloss.Color("#22D3EE")
	colorGreen  = lipgloss.Color("#4ADE80")

	bgBlack  = lipgloss.Color("#000000")
	bgGray   = lipgloss.Color("#111827")
	bgPurple = lipgloss.Color("#1E0B36")
	bgNavy   = lipgloss.Color("#0B1733")
)

// Deck returns the ten slides in presentation order.
func Deck() []Slide {
	return []Slide{
		{Name: "intro", Render: introSlide},
		{Name: "totals", Render: totalsSlide},
		{Name: "streak", Render: streakSlide},
		{Name: "monthly", Render: monthlySlide},
		{Name: "peak", Render: peakSlide},
		{Name: "gym", Render: gymSlide},
		{Name: "cardio", Render: cardioSlide},
		{Name: "running", Render: runningSlide},
		{Name: "cycling", Render: cyclingSlide},
		{Name: "outro", Render: outroSlide},
	}
}

func introSlide(_ bool, doc *document.Document) View {
	year := ""
	if doc.Year > 0 {
		year = strconv.Itoa(doc.Year)
	}
	return View{
		Theme: Theme{Accent: colorPink, Background: bgPurple},
		Blocks: []Block{
			Text{Value: year, Kind: TextHero},
			Text{Value: "TRAINING WRAPPED", Kind: TextHeading},
			Text{Value: "Click or use arrow keys", Kind: TextMuted},
		},
	}
}

func totalsSlide(_ bool, doc *document.Document) View {
	return View{
		Title: "The Grind",
		Theme: Theme{Accent: colorBlue, Background: bgBlack},
		Blocks: []Block{
			Stats{
				{Value: strconv.Itoa(doc.Summary.TotalSessions), Label: "Total Sessions"},
				{Value: strconv.Itoa(RoundInt(doc.Summary.TotalHours)), Label: "Hours Sweating"},
			},
		},
	}
}

func streakSlide(_ bool, doc *document.Document) View {
	return View{
		Title: "Unstoppable",
		Theme: Theme{Accent: colorOrange, Background: bgGray},
		Blocks: []Block{
			Text{Value: strconv.Itoa(doc.Highlights.LongestStreak), Kind: TextHero},
			Text{Value: "DAY STREAK", Kind: TextHeading},
			Text{Value: "You kept showing up.", Kind: TextMuted},
		},
	}
}

func monthlySlide(_ bool, doc *document.Document) View {
	blocks := []Block{
		Chart{Bars: MonthlySeries(doc.Charts.Monthly)},
		Text{Value: "Sessions per Month", Kind: TextMuted},
	}
	if doc.Highlights.MostActiveMonth != "" {
		blocks = append(blocks, Text{Value: "Busiest month: " + doc.Highlights.MostActiveMonth, Kind: TextMuted})
	}
	return View{
		Title:  "Year in Review",
		Theme:  Theme{Accent: colorPurple, Background: bgBlack},
		Blocks: blocks,
	}
}

func peakSlide(_ bool, doc *document.Document) View {
	h := doc.Highlights
	var stats Stats
	if h.BestRunWeek != nil {
		stats = append(stats, Stat{
			Value: fmt.Sprintf("%d km", RoundInt(h.BestRunWeek.Distance)),
			Label: "Best Run Week",
			Note:  fmt.Sprintf("Week %d", h.BestRunWeek.Week),
		})
	}
	if h.BestCycleWeek != nil {
		stats = append(stats, Stat{
			Value: fmt.Sprintf("%d km", RoundInt(h.BestCycleWeek.Distance)),
			Label: "Best Bike Week",
			Note:  fmt.Sprintf("Week %d", h.BestCycleWeek.Week),
		})
	}
	if h.BestGymMonth != nil {
		label := "Sessions"
		if name := MonthName(h.BestGymMonth.Month); name != "" {
			label = "Sessions in " + name
		}
		stats = append(stats, Stat{
			Value: strconv.Itoa(h.BestGymMonth.Count),
			Label: label,
			Note:  "Best Gym Month",
		})
	}
	return View{
		Title:  "Peak Performance",
		Theme:  Theme{Accent: colorYellow, Background: bgGray},
		Blocks: []Block{stats},
	}
}

func gymSlide(_ bool, doc *document.Document) View {
	rows := make([]Row, 0, len(doc.Highlights.TopExercises))
	for i, ex := range doc.Highlights.TopExercises {
		rows = append(rows, Row{Left: ex, Right: fmt.Sprintf("#%d", i+1)})
	}
	return View{
		Title: "Iron Paradise",
		Theme: Theme{Accent: colorPink, Background: bgGray},
		Blocks: []Block{
			Text{Value: strconv.Itoa(doc.Summary.TotalGym), Kind: TextHero},
			Text{Value: "GYM SESSIONS", Kind: TextHeading},
			Panel{Title: PanelLifts, Rows: rows, Accent: colorPink},
		},
	}
}

func cardioSlide(_ bool, doc *document.Document) View {
	s := doc.Summary
	return View{
		Title: "On The Move",
		Theme: Theme{Accent: colorCyan, Background: bgNavy},
		Blocks: []Block{
			Stats{
				{Value: FormatKm(doc.Highlights.LongestRun), Label: "Longest Run"},
				{Value: FormatKm(doc.Highlights.LongestRide), Label: "Longest Ride"},
			},
			Text{Value: strconv.Itoa(RoundInt(s.TotalKm)), Kind: TextHero},
			Text{Value: "TOTAL KILOMETERS", Kind: TextHeading},
			Text{Value: cardioBreakdown(s), Kind: TextMuted},
		},
	}
}

func cardioBreakdown(s document.Summary) string {
	parts := []string{
		fmt.Sprintf("%d km running", RoundInt(s.TotalKmRun)),
		fmt.Sprintf("%d km cycling", RoundInt(s.TotalKmCycle)),
	}
	if s.TotalCardio > 0 {
		parts = append([]string{fmt.Sprintf("%d cardio sessions", s.TotalCardio)}, parts...)
	}
	return strings.Join(parts, " · ")
}

func runningSlide(_ bool, doc *document.Document) View {
	h := doc.Highlights
	return View{
		Title: "Running Hall of Fame",
		Theme: Theme{Accent: colorCyan, Background: bgBlack},
		Blocks: []Block{
			Columns{
				{Title: PanelTopDistance, Rows: distanceRows(h.Top5LongestRuns), Accent: colorCyan},
				{Title: PanelTopSpeed, Rows: runSpeedRows(h.Top5FastestRuns), Accent: colorYellow},
			},
		},
	}
}

func cyclingSlide(_ bool, doc *document.Document) View {
	h := doc.Highlights
	return View{
		Title: "Cycling Hall of Fame",
		Theme: Theme{Accent: colorGreen, Background: bgBlack},
		Blocks: []Block{
			Columns{
				{Title: PanelTopDistance, Rows: distanceRows(h.Top5LongestRides), Accent: colorGreen},
				{Title: PanelTopSpeed, Rows: rideSpeedRows(h.Top5FastestRides), Accent: colorYellow},
			},
		},
	}
}

func outroSlide(_ bool, doc *document.Document) View {
	next := "See you next year."
	if doc.Year > 0 {
		next = fmt.Sprintf("See you in %d.", doc.Year+1)
	}
	blocks := []Block{
		Text{Value: "You Crushed It!", Kind: TextHero},
		Text{Value: next, Kind: TextBody},
	}
	if day, ok := PowerDay(doc.Charts.DayOfWeek); ok {
		blocks = append(blocks, Text{Value: day + "s are your power days.", Kind: TextMuted})
	}
	return View{
		Theme:  Theme{Accent: colorYellow, Background: bgBlack},
		Blocks: blocks,
	}
}

// Ranked rows keep the producer's order.
func distanceRows(items []document.RankedItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{Left: item.Date, Right: FormatKm(item.DistanceKm)})
	}
	return rows
}

func runSpeedRows(items []document.RankedItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		value := FormatSpeed(item.SpeedKmh)
		if item.Pace != "" {
			value = item.Pace + " /km"
		}
		rows = append(rows, Row{Left: item.Date, Right: value})
	}
	return rows
}

func rideSpeedRows(items []document.RankedItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{Left: item.Date, Right: FormatSpeed(item.SpeedKmh)})
	}
	return rows
}
