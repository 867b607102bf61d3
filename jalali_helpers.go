package jalali

import (
	"fmt"
	"time"
)

// Add returns a copy of d moved by n units; d is left unchanged. Years and
// months keep the day of the month where possible and clamp it otherwise,
// so adding a month and subtracting it again does not always round-trip.
// The other units are exact instant arithmetic.
func (d *Date) Add(u Unit, n int) *Date {
	return d.Clone().AddInPlace(u, n)
}

// Subtract returns a copy of d moved back by n units.
func (d *Date) Subtract(u Unit, n int) *Date {
	return d.Add(u, -n)
}

// AddInPlace moves d by n units and returns d.
func (d *Date) AddInPlace(u Unit, n int) *Date {
	if d.err != nil {
		return d
	}
	switch u {
	case Years:
		return d.SetYear(d.Year() + n)
	case Months:
		return d.SetMonth(d.Month() + Month(n))
	case Weeks:
		return d.set(d.t.AddDate(0, 0, 7*n))
	case Days:
		return d.set(d.t.AddDate(0, 0, n))
	case Hours:
		return d.setClock(d.Hour()+n, d.Minute(), d.Second(), d.Millisecond())
	case Minutes:
		return d.setClock(d.Hour(), d.Minute()+n, d.Second(), d.Millisecond())
	case Seconds:
		return d.setClock(d.Hour(), d.Minute(), d.Second()+n, d.Millisecond())
	case Milliseconds:
		return d.setClock(d.Hour(), d.Minute(), d.Second(), d.Millisecond()+n)
	}
	return d.fail(fmt.Errorf("%w %v", ErrUnknownUnit, u))
}

// SubtractInPlace moves d back by n units and returns d.
func (d *Date) SubtractInPlace(u Unit, n int) *Date {
	return d.AddInPlace(u, -n)
}

// StartOf returns a copy of d set to the first millisecond of its unit.
// Weeks start on the locale's first weekday.
func (d *Date) StartOf(u Unit) *Date {
	c := d.Clone()
	if c.err != nil {
		return c
	}

	j := d.Jalali()
	jdn := d.JulianDay()
	switch u {
	case Years:
		jdn, _ = JalaliToJulian(j.Year, 1, 1)
	case Months:
		jdn, _ = JalaliToJulian(j.Year, int(j.Month), 1)
	case Weeks:
		jdn -= daysSince(weekdayOf(jdn), d.locale().WeekStart)
	case Days:
	case Hours:
		return c.set(atJulian(jdn, d.Hour(), 0, 0, 0))
	case Minutes:
		return c.set(atJulian(jdn, d.Hour(), d.Minute(), 0, 0))
	case Seconds:
		return c.set(atJulian(jdn, d.Hour(), d.Minute(), d.Second(), 0))
	case Milliseconds:
		return c
	default:
		return c.fail(fmt.Errorf("%w %v", ErrUnknownUnit, u))
	}
	return c.set(atJulian(jdn, 0, 0, 0, 0))
}

// EndOf returns a copy of d set to the last millisecond of its unit, one
// millisecond before the start of the next one.
func (d *Date) EndOf(u Unit) *Date {
	start := d.StartOf(u)
	if start.err != nil {
		return start
	}

	var next time.Time
	switch u {
	case Years:
		next = start.t.AddDate(0, 0, YearLength(start.Year()))
	case Months:
		next = start.t.AddDate(0, 0, start.MonthLength())
	case Weeks:
		next = start.t.AddDate(0, 0, 7)
	case Days:
		next = start.t.AddDate(0, 0, 1)
	case Hours:
		next = start.t.Add(time.Hour)
	case Minutes:
		next = start.t.Add(time.Minute)
	case Seconds:
		next = start.t.Add(time.Second)
	case Milliseconds:
		next = start.t.Add(time.Millisecond)
	}
	return start.set(next.Add(-time.Millisecond))
}

// WeekNumber returns the week of the Jalali year containing d. Week 1
// begins on the first locale week start on or after 1 Farvardin; days
// before it belong to week 0. WeekNumber returns 0 when d carries an error
// or lies outside the supported years.
func (d *Date) WeekNumber() int {
	if d.err != nil {
		return 0
	}
	j, err := JulianToJalali(d.JulianDay())
	if err != nil {
		return 0
	}
	newYear, err := JalaliToJulian(j.Year, 1, 1)
	if err != nil {
		return 0
	}
	first := newYear + daysSince(d.locale().WeekStart, weekdayOf(newYear))
	return floorDiv(d.JulianDay()-first, 7) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
