package jalali

import (
	"fmt"
	"time"
)

// Month is a Jalali month, Farvardin = 1.
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

// String returns the English transliteration of the month name.
func (m Month) String() string {
	if m < Farvardin || m > Esfand {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return English.Months[m-1]
}

// YMD is a Jalali calendar date without a time of day. It is comparable and
// can be used as a map key.
type YMD struct {
	Year  int
	Month Month
	Day   int
}

// Valid reports whether the date exists in the Jalali calendar.
func (d YMD) Valid() bool {
	return IsValidDate(d.Year, int(d.Month), d.Day)
}

// JulianDay returns the Julian Day Number of the date.
func (d YMD) JulianDay() (int, error) {
	return JalaliToJulian(d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of the week. Unsupported years report Sunday.
func (d YMD) Weekday() time.Weekday {
	jdn, err := d.JulianDay()
	if err != nil {
		return time.Sunday
	}
	return weekdayOf(jdn)
}

// String formats the date as YYYY/MM/DD with ASCII digits.
func (d YMD) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d falls earlier than other.
func (d YMD) Before(other YMD) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls later than other.
func (d YMD) After(other YMD) bool {
	return other.Before(d)
}

// InRange reports whether d lies in [from, to], inclusive.
func (d YMD) InRange(from, to YMD) bool {
	return !d.Before(from) && !to.Before(d)
}
