package calendar

import (
	"testing"

	"github.com/coolbeans/prazo/pkg/types"
)

func date(y, m, d int) types.Date {
	return types.Date{Year: y, Month: m, Day: d}
}

func TestIsBusinessDay(t *testing.T) {
	cal := New()
	cases := []struct {
		name             string
		date             types.Date
		considerHolidays bool
		want             bool
	}{
		{"ordinary monday", date(2025, 3, 10), true, true},
		{"saturday", date(2025, 3, 8), true, false},
		{"sunday", date(2025, 3, 9), true, false},
		{"good friday", date(2025, 4, 18), true, false},
		{"good friday ignoring holidays", date(2025, 4, 18), false, true},
		{"tiradentes", date(2025, 4, 21), true, false},
		{"optional observance still counts", date(2025, 12, 31), true, true},
		{"corpus christi 2025", date(2025, 6, 19), true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.IsBusinessDay(tc.date, tc.considerHolidays); got != tc.want {
				t.Errorf("IsBusinessDay(%v, %v) = %v, want %v",
					tc.date, tc.considerHolidays, got, tc.want)
			}
		})
	}
}

func TestAddBusinessDays(t *testing.T) {
	cal := New()
	cases := []struct {
		name string
		date types.Date
		n    int
		want types.Date
	}{
		{"zero returns date unchanged", date(2025, 3, 10), 0, date(2025, 3, 10)},
		{"one from friday skips weekend", date(2025, 3, 14), 1, date(2025, 3, 17)},
		{"fifteen from monday", date(2025, 3, 10), 15, date(2025, 3, 31)},
		{"five across easter holidays", date(2025, 4, 16), 5, date(2025, 4, 25)},
		{"one across year boundary", date(2024, 12, 30), 1, date(2024, 12, 31)},
		{"one across new year", date(2024, 12, 31), 1, date(2025, 1, 2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.AddBusinessDays(tc.date, tc.n); !got.Equal(tc.want) {
				t.Errorf("AddBusinessDays(%v, %d) = %v, want %v", tc.date, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddBusinessDaysMonotonic(t *testing.T) {
	cal := New()
	start := date(2025, 2, 28)

	previous := start
	for n := 1; n <= 60; n++ {
		result := cal.AddBusinessDays(start, n)
		if !result.After(previous) {
			t.Fatalf("AddBusinessDays(%v, %d) = %v, not after %v", start, n, result, previous)
		}
		if !cal.IsBusinessDay(result, true) {
			t.Fatalf("AddBusinessDays(%v, %d) = %v is not a business day", start, n, result)
		}
		previous = result
	}
}

func TestCountBusinessDays(t *testing.T) {
	cal := New()
	cases := []struct {
		name  string
		start types.Date
		end   types.Date
		want  int
	}{
		{"inclusive three-week span", date(2025, 3, 10), date(2025, 3, 31), 16},
		{"single business day", date(2025, 3, 10), date(2025, 3, 10), 1},
		{"single weekend day", date(2025, 3, 8), date(2025, 3, 8), 0},
		{"end before start", date(2025, 3, 10), date(2025, 3, 9), 0},
		{"easter week", date(2025, 4, 14), date(2025, 4, 20), 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.CountBusinessDays(tc.start, tc.end); got != tc.want {
				t.Errorf("CountBusinessDays(%v, %v) = %d, want %d",
					tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestAddCalendarDaysRollsForwardOnly(t *testing.T) {
	cal := New()
	cases := []struct {
		name string
		date types.Date
		n    int
		want types.Date
	}{
		{"lands on business day", date(2025, 3, 10), 3, date(2025, 3, 13)},
		{"lands on saturday rolls to monday", date(2025, 3, 10), 5, date(2025, 3, 17)},
		{"lands on holiday chain rolls past it", date(2025, 4, 17), 1, date(2025, 4, 22)},
		{"zero on business day stays", date(2025, 3, 10), 0, date(2025, 3, 10)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.AddCalendarDays(tc.date, tc.n); !got.Equal(tc.want) {
				t.Errorf("AddCalendarDays(%v, %d) = %v, want %v", tc.date, tc.n, got, tc.want)
			}
		})
	}
}

func TestNextPreviousBusinessDayAreStrict(t *testing.T) {
	cal := New()

	// Monday: next must be Tuesday, not Monday itself.
	if got := cal.NextBusinessDay(date(2025, 3, 10)); !got.Equal(date(2025, 3, 11)) {
		t.Errorf("NextBusinessDay(Mon) = %v, want 2025-03-11", got)
	}
	// Monday: previous must be Friday.
	if got := cal.PreviousBusinessDay(date(2025, 3, 17)); !got.Equal(date(2025, 3, 14)) {
		t.Errorf("PreviousBusinessDay(Mon) = %v, want 2025-03-14", got)
	}
	// Tuesday after Easter Monday-equivalent: previous from Apr 22 skips
	// Tiradentes (Mon 21), the weekend, and Good Friday back to Thu 17.
	if got := cal.PreviousBusinessDay(date(2025, 4, 22)); !got.Equal(date(2025, 4, 17)) {
		t.Errorf("PreviousBusinessDay(2025-04-22) = %v, want 2025-04-17", got)
	}
}
