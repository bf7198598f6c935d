package calendar

import "github.com/coolbeans/prazo/pkg/types"

// IsBusinessDay reports whether the date is a forensic business day:
// not a weekend and, when considerHolidays is true, not a national holiday.
// Optional observances never exclude a date.
func (c *Calendar) IsBusinessDay(date types.Date, considerHolidays bool) bool {
	if isWeekend(date) {
		return false
	}
	if considerHolidays && c.IsNationalHoliday(date) {
		return false
	}
	return true
}

// CountBusinessDays counts business days from start to end inclusive.
// Returns 0 when end is before start.
func (c *Calendar) CountBusinessDays(start, end types.Date) int {
	count := 0
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if c.IsBusinessDay(d, true) {
			count++
		}
	}
	return count
}

// AddBusinessDays returns the date on which the n-th business day after
// date is reached. Steps one calendar day at a time, counting only
// business days. n = 0 returns date unchanged; for n > 0 the result is
// always a business day strictly after date.
func (c *Calendar) AddBusinessDays(date types.Date, n int) types.Date {
	counted := 0
	for counted < n {
		date = date.AddDays(1)
		if c.IsBusinessDay(date, true) {
			counted++
		}
	}
	return date
}

// AddCalendarDays adds n calendar days, then rolls forward day by day
// until landing on a business day. The roll is forward-only: a deadline
// landing on a non-business day is deferred, never accelerated.
func (c *Calendar) AddCalendarDays(date types.Date, n int) types.Date {
	date = date.AddDays(n)
	for !c.IsBusinessDay(date, true) {
		date = date.AddDays(1)
	}
	return date
}

// NextBusinessDay returns the first business day strictly after date.
func (c *Calendar) NextBusinessDay(date types.Date) types.Date {
	return c.AddBusinessDays(date, 1)
}

// PreviousBusinessDay returns the last business day strictly before date.
func (c *Calendar) PreviousBusinessDay(date types.Date) types.Date {
	for {
		date = date.AddDays(-1)
		if c.IsBusinessDay(date, true) {
			return date
		}
	}
}
