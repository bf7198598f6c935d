// Package calendar computes the Brazilian forensic holiday calendar and
// performs business-day arithmetic over it. Holiday sets are a pure
// function of the civil year: fixed national dates plus the movable dates
// derived from Easter by the Gregorian computus.
package calendar

import (
	"sort"
	"sync"
	"time"

	"github.com/coolbeans/prazo/pkg/types"
)

// HolidayKind classifies how a holiday enters the calendar.
type HolidayKind string

const (
	// KindFixedNational is a fixed-date national holiday (e.g., Sep 7).
	KindFixedNational HolidayKind = "fixed-national"

	// KindComputedMovable is an Easter-relative holiday (e.g., Good Friday).
	KindComputedMovable HolidayKind = "computed-movable"

	// KindRegionalOptional is an optional observance that only some courts
	// and regions honor. Never counted against business days.
	KindRegionalOptional HolidayKind = "regional-optional"
)

// Holiday is a named calendar date within one civil year.
type Holiday struct {
	Date types.Date  `json:"date"`
	Name string      `json:"name"`
	Kind HolidayKind `json:"kind"`
}

// fixedHoliday is a month-day entry independent of year.
type fixedHoliday struct {
	Month int
	Day   int
	Name  string
	Kind  HolidayKind
}

// Fixed national holidays observed by every Brazilian court.
var fixedNational = []fixedHoliday{
	{1, 1, "Confraternização Universal", KindFixedNational},
	{4, 21, "Tiradentes", KindFixedNational},
	{5, 1, "Dia do Trabalho", KindFixedNational},
	{9, 7, "Independência do Brasil", KindFixedNational},
	{10, 12, "Nossa Senhora Aparecida", KindFixedNational},
	{11, 2, "Finados", KindFixedNational},
	{11, 15, "Proclamação da República", KindFixedNational},
	{12, 25, "Natal", KindFixedNational},
}

// Optional observances. Some courts suspend service on these dates, but
// they never suspend procedural deadlines.
var optionalObservances = []fixedHoliday{
	{10, 28, "Dia do Servidor Público", KindRegionalOptional},
	{11, 20, "Consciência Negra", KindRegionalOptional},
	{12, 24, "Véspera de Natal", KindRegionalOptional},
	{12, 31, "Véspera de Ano Novo", KindRegionalOptional},
}

// Easter returns Easter Sunday for the given year in the proleptic
// Gregorian calendar (Meeus/Jones/Butcher computus).
func Easter(year int) types.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return types.Date{Year: year, Month: month, Day: day}
}

// MovableHolidays returns the Easter-relative holidays for a year:
// Carnival and the following day, Good Friday, and Corpus Christi.
func MovableHolidays(year int) []Holiday {
	easter := Easter(year)
	return []Holiday{
		{Date: easter.AddDays(-47), Name: "Carnaval", Kind: KindComputedMovable},
		{Date: easter.AddDays(-46), Name: "Quarta-feira de Cinzas", Kind: KindComputedMovable},
		{Date: easter.AddDays(-2), Name: "Sexta-feira Santa", Kind: KindComputedMovable},
		{Date: easter.AddDays(60), Name: "Corpus Christi", Kind: KindComputedMovable},
	}
}

// yearSet is the closure of all holidays applicable to one civil year.
type yearSet struct {
	national map[types.Date]Holiday // fixed-national + computed-movable
	optional map[types.Date]Holiday
}

func buildYearSet(year int) *yearSet {
	set := &yearSet{
		national: make(map[types.Date]Holiday),
		optional: make(map[types.Date]Holiday),
	}
	for _, fixed := range fixedNational {
		h := Holiday{
			Date: types.Date{Year: year, Month: fixed.Month, Day: fixed.Day},
			Name: fixed.Name,
			Kind: fixed.Kind,
		}
		set.national[h.Date] = h
	}
	for _, movable := range MovableHolidays(year) {
		set.national[movable.Date] = movable
	}
	for _, fixed := range optionalObservances {
		h := Holiday{
			Date: types.Date{Year: year, Month: fixed.Month, Day: fixed.Day},
			Name: fixed.Name,
			Kind: fixed.Kind,
		}
		set.optional[h.Date] = h
	}
	return set
}

// Calendar answers holiday membership and business-day queries. Year sets
// are derived deterministically from the year number and memoized; the
// cache is safe for concurrent use.
type Calendar struct {
	mu    sync.RWMutex
	years map[int]*yearSet
}

// New creates an empty calendar. Year sets are generated on demand.
func New() *Calendar {
	return &Calendar{years: make(map[int]*yearSet)}
}

// forYear returns the memoized holiday closure for a year.
func (c *Calendar) forYear(year int) *yearSet {
	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return set
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok := c.years[year]; ok {
		return set
	}
	set = buildYearSet(year)
	c.years[year] = set
	return set
}

// IsNationalHoliday reports whether the date is a fixed national or
// computed movable holiday. Membership always uses the holiday set of the
// date's own year, so Dec 31 / Jan 1 boundaries resolve correctly.
func (c *Calendar) IsNationalHoliday(date types.Date) bool {
	_, ok := c.forYear(date.Year).national[date]
	return ok
}

// IsOptionalObservance reports whether the date is an optional observance.
func (c *Calendar) IsOptionalObservance(date types.Date) bool {
	_, ok := c.forYear(date.Year).optional[date]
	return ok
}

// HolidayOn returns the national holiday falling on the date, if any.
func (c *Calendar) HolidayOn(date types.Date) (Holiday, bool) {
	holiday, ok := c.forYear(date.Year).national[date]
	return holiday, ok
}

// ForYear returns all holidays of a year (national first, then optional),
// sorted by date.
func (c *Calendar) ForYear(year int) []Holiday {
	set := c.forYear(year)
	holidays := make([]Holiday, 0, len(set.national)+len(set.optional))
	for _, h := range set.national {
		holidays = append(holidays, h)
	}
	for _, h := range set.optional {
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// HolidaysBetween returns every national holiday from start to end
// inclusive, in date order.
func (c *Calendar) HolidaysBetween(start, end types.Date) []Holiday {
	var holidays []Holiday
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if holiday, ok := c.HolidayOn(d); ok {
			holidays = append(holidays, holiday)
		}
	}
	return holidays
}

// isWeekend reports whether the date falls on a Saturday or Sunday.
func isWeekend(date types.Date) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
