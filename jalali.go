// Package jalali converts dates between the Solar Hijri (Jalali/Persian) and
// Gregorian calendars and provides a mutable Jalali date value.
//
// Leap years follow the break-point algorithm: a table of 20 historical
// years splits Jalali history into runs of 33-year cycles. Conversions go
// through the Julian Day Number and use closed-form integer arithmetic only.
// The supported range is Jalali years -61 through 3177.
//
// Basic usage with the conversion functions:
//
//	jy, jm, jd, _ := jalali.ToJalali(2024, 3, 20)  // 1403, 1, 1
//	gy, gm, gd, _ := jalali.ToGregorian(1403, 1, 1) // 2024, 3, 20
//	jalali.IsLeapYear(1403)                          // true
//
// A Date wraps a wall-clock instant with millisecond precision. It is time
// zone naive: the clock fields are taken as given and never shifted.
//
//	d, _ := jalali.Parse("1403/01/01 3:30 pm")
//	d.AddInPlace(jalali.Months, 1).SetDay(31)
//	d.Format("YYYY/MM/DD hh:mm A") // "۱۴۰۳/۰۲/۳۱ ۰۳:۳۰ PM"
//
// A Date must not be mutated from several goroutines at once; use Clone to
// hand out independent copies.
package jalali

import (
	"fmt"
	"time"
)

// Date is a Jalali calendar date and time of day.
//
// Mutating methods change the receiver and return it so calls can be
// chained. The first failing mutation, for instance one that moves the date
// outside the supported years, leaves the instant unchanged and is recorded;
// every later mutation is then a no-op. Check Err after a chain.
//
// The zero Date formats with the Persian locale but holds no supported
// date; build one with New, FromJalali or Parse.
type Date struct {
	t   time.Time // wall clock, carried in UTC, millisecond precision
	loc *Locale
	err error
}

// now is replaced in tests.
var now = time.Now

var (
	minJulian = mustJulian(MinYear, 1, 1)
	maxJulian = mustJulian(MaxYear, 12, MonthLength(MaxYear, 12))
)

func mustJulian(year, month, day int) int {
	jdn, err := JalaliToJulian(year, month, day)
	if err != nil {
		panic(err)
	}
	return jdn
}

// Now returns the current wall-clock time.
func Now() *Date {
	return New(now())
}

// New returns the Date showing the wall-clock fields of t. Sub-millisecond
// precision and the location of t are dropped. If t falls outside the
// supported years the returned Date carries ErrInvalidYear.
func New(t time.Time) *Date {
	d := &Date{loc: Persian}
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/int(time.Millisecond)*int(time.Millisecond), time.UTC)
	if err := checkRange(wall); err != nil {
		d.err = err
		return d
	}
	d.t = wall
	return d
}

// FromUnixMilli returns the Date whose wall clock, read as UTC, is ms
// milliseconds after the Unix epoch.
func FromUnixMilli(ms int64) *Date {
	return New(time.UnixMilli(ms).UTC())
}

// FromJalali returns the Date for the given Jalali components.
func FromJalali(year, month, day, hour, minute, second, ms int) (*Date, error) {
	if !IsValid(year, month, day, hour, minute, second, ms) {
		return nil, fmt.Errorf("%w: %d/%02d/%02d %02d:%02d:%02d.%03d",
			ErrInvalidValue, year, month, day, hour, minute, second, ms)
	}
	jdn, err := JalaliToJulian(year, month, day)
	if err != nil {
		return nil, err
	}
	return &Date{t: atJulian(jdn, hour, minute, second, ms), loc: Persian}, nil
}

// checkRange reports whether a wall clock lies inside the supported years.
func checkRange(t time.Time) error {
	jdn := julianOf(t)
	if jdn < minJulian || jdn > maxJulian {
		return fmt.Errorf("%w: gregorian date %s is outside the supported range",
			ErrInvalidYear, t.Format(time.DateOnly))
	}
	return nil
}

// atJulian builds the wall clock for a Julian Day Number and a time of day.
// Out-of-range clock fields are normalized.
func atJulian(jdn, hour, minute, second, ms int) time.Time {
	y, m, d := JulianToGregorian(jdn)
	return time.Date(y, time.Month(m), d, hour, minute, second, ms*int(time.Millisecond), time.UTC)
}

// set stores t unless the date already failed or t is out of range.
func (d *Date) set(t time.Time) *Date {
	if d.err != nil {
		return d
	}
	if err := checkRange(t); err != nil {
		d.err = err
		return d
	}
	d.t = t
	return d
}

// fail records err unless an earlier error is already recorded.
func (d *Date) fail(err error) *Date {
	if d.err == nil {
		d.err = err
	}
	return d
}

// Err returns the first error recorded by a mutation, or nil.
func (d *Date) Err() error { return d.err }

// Clone returns an independent copy of d, including any recorded error.
func (d *Date) Clone() *Date {
	c := *d
	return &c
}

// Locale returns the locale used by Format.
func (d *Date) Locale() *Locale { return d.locale() }

func (d *Date) locale() *Locale {
	if d.loc == nil {
		return Persian
	}
	return d.loc
}

// WithLocale sets the locale used by Format and returns d. A nil locale
// selects Persian.
func (d *Date) WithLocale(l *Locale) *Date {
	if l == nil {
		l = Persian
	}
	d.loc = l
	return d
}

// Jalali returns the Jalali calendar date, or the zero YMD when the
// instant lies outside the supported years, as it does for a Date that New
// rejected.
func (d *Date) Jalali() YMD {
	j, _ := JulianToJalali(julianOf(d.t))
	return j
}

// Year returns the Jalali year.
func (d *Date) Year() int { return d.Jalali().Year }

// Month returns the Jalali month.
func (d *Date) Month() Month { return d.Jalali().Month }

// Day returns the day of the Jalali month.
func (d *Date) Day() int { return d.Jalali().Day }

// Hour returns the hour, 0..23.
func (d *Date) Hour() int { return d.t.Hour() }

// Minute returns the minute, 0..59.
func (d *Date) Minute() int { return d.t.Minute() }

// Second returns the second, 0..59.
func (d *Date) Second() int { return d.t.Second() }

// Millisecond returns the millisecond, 0..999.
func (d *Date) Millisecond() int { return d.t.Nanosecond() / int(time.Millisecond) }

// Weekday returns the day of the week.
func (d *Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns the wall clock as a time.Time in UTC.
func (d *Date) Time() time.Time { return d.t }

// UnixMilli returns the wall clock, read as UTC, in milliseconds since the
// Unix epoch.
func (d *Date) UnixMilli() int64 { return d.t.UnixMilli() }

// JulianDay returns the Julian Day Number of the date.
func (d *Date) JulianDay() int { return julianOf(d.t) }

// IsLeapYear reports whether the Jalali year of d is a leap year.
func (d *Date) IsLeapYear() bool { return IsLeapYear(d.Year()) }

// MonthLength returns the number of days in the Jalali month of d.
func (d *Date) MonthLength() int {
	j := d.Jalali()
	return MonthLength(j.Year, int(j.Month))
}

// SetYear moves d to the same month and day of another Jalali year. The day
// is clamped to the length of the target month.
func (d *Date) SetYear(year int) *Date {
	if d.err != nil {
		return d
	}
	if err := checkYear(year); err != nil {
		return d.fail(err)
	}
	j := d.Jalali()
	return d.setJalali(year, j.Month, min(j.Day, MonthLength(year, int(j.Month))))
}

// SetMonth moves d to another month. Months past Esfand carry into later
// years and months before Farvardin borrow from earlier years, so
// SetMonth(0) is Esfand of the previous year. The day is clamped to the
// length of the target month.
func (d *Date) SetMonth(month Month) *Date {
	if d.err != nil {
		return d
	}
	j := d.Jalali()
	idx := int(month) - 1
	year := j.Year + floorDiv(idx, 12)
	m := floorMod(idx, 12) + 1
	if err := checkYear(year); err != nil {
		return d.fail(err)
	}
	return d.setJalali(year, Month(m), min(j.Day, MonthLength(year, m)))
}

// SetDay moves d to another day of the same month, clamped to
// [1, MonthLength].
func (d *Date) SetDay(day int) *Date {
	if d.err != nil {
		return d
	}
	j := d.Jalali()
	day = max(1, min(day, MonthLength(j.Year, int(j.Month))))
	return d.setJalali(j.Year, j.Month, day)
}

func (d *Date) setJalali(year int, month Month, day int) *Date {
	jdn, err := JalaliToJulian(year, int(month), day)
	if err != nil {
		return d.fail(err)
	}
	return d.set(atJulian(jdn, d.Hour(), d.Minute(), d.Second(), d.Millisecond()))
}

// SetHour sets the hour. Values outside 0..23 roll into adjacent days.
func (d *Date) SetHour(hour int) *Date {
	return d.setClock(hour, d.Minute(), d.Second(), d.Millisecond())
}

// SetMinute sets the minute. Values outside 0..59 roll into adjacent hours.
func (d *Date) SetMinute(minute int) *Date {
	return d.setClock(d.Hour(), minute, d.Second(), d.Millisecond())
}

// SetSecond sets the second. Values outside 0..59 roll into adjacent minutes.
func (d *Date) SetSecond(second int) *Date {
	return d.setClock(d.Hour(), d.Minute(), second, d.Millisecond())
}

// SetMillisecond sets the millisecond. Values outside 0..999 roll into
// adjacent seconds.
func (d *Date) SetMillisecond(ms int) *Date {
	return d.setClock(d.Hour(), d.Minute(), d.Second(), ms)
}

func (d *Date) setClock(hour, minute, second, ms int) *Date {
	if d.err != nil {
		return d
	}
	return d.set(atJulian(d.JulianDay(), hour, minute, second, ms))
}

// Before reports whether d is earlier than other.
func (d *Date) Before(other *Date) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d *Date) After(other *Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other show the same instant.
func (d *Date) Equal(other *Date) bool { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d *Date) Compare(other *Date) int { return d.t.Compare(other.t) }
