package slides

import (
	"testing"

	"github.com/verte-zerg/wrapped/internal/document"
)

func TestMonthName(t *testing.T) {
	cases := map[int]string{0: "", 1: "Jan", 6: "Jun", 12: "Dec", 13: "", -1: ""}
	for month, want := range cases {
		if got := MonthName(month); got != want {
			t.Fatalf("MonthName(%d) = %q, want %q", month, got, want)
		}
	}
}

func TestFormatKm(t *testing.T) {
	cases := map[float64]string{10.333: "10.3 km", 0: "0.0 km", 21.46: "21.5 km", 5.04: "5.0 km"}
	for in, want := range cases {
		if got := FormatKm(in); got != want {
			t.Fatalf("FormatKm(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundInt(t *testing.T) {
	cases := map[float64]int{141.7: 142, 141.2: 141, 2.5: 3, 0: 0, 1874.62: 1875}
	for in, want := range cases {
		if got := RoundInt(in); got != want {
			t.Fatalf("RoundInt(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestPowerDayFirstMax(t *testing.T) {
	days := []document.DayCount{{Day: "Mon", Count: 5}, {Day: "Wed", Count: 9}, {Day: "Fri", Count: 9}}
	day, ok := PowerDay(days)
	if !ok || day != "Wed" {
		t.Fatalf("expected Wed, got %q (ok=%v)", day, ok)
	}
}

func TestPowerDayEmpty(t *testing.T) {
	if day, ok := PowerDay(nil); ok || day != "" {
		t.Fatalf("expected no power day, got %q (ok=%v)", day, ok)
	}
}

func TestMonthlySeriesSortsByMonth(t *testing.T) {
	monthly := []document.MonthCount{
		{Month: 3, Run: 3, Total: 3},
		{Month: 1, Gym: 1, Total: 1},
		{Month: 2, Cycle: 2, Total: 2},
	}
	bars := MonthlySeries(monthly)
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	for i, want := range []string{"Jan", "Feb", "Mar"} {
		if bars[i].Month != i+1 || bars[i].Name != want {
			t.Fatalf("bar %d: got month %d %q, want %d %q", i, bars[i].Month, bars[i].Name, i+1, want)
		}
	}
	if bars[1].Cycle != 2 || bars[2].Run != 3 || bars[0].Gym != 1 {
		t.Fatalf("counts not carried over: %+v", bars)
	}
	if monthly[0].Month != 3 {
		t.Fatalf("input was reordered")
	}
}

func TestMonthlySeriesEmpty(t *testing.T) {
	if bars := MonthlySeries(nil); len(bars) != 0 {
		t.Fatalf("expected no bars, got %d", len(bars))
	}
}
