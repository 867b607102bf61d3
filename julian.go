package jalali

import "time"

// GregorianToJulian returns the Julian Day Number of a proleptic Gregorian
// date. Years are shifted by 100100 so every intermediate value stays
// non-negative and truncating division behaves as floor division.
func GregorianToJulian(year, month, day int) int {
	jdn := (year+(month-8)/6+100100)*1461/4 + (153*((month+9)%12)+2)/5 + day - 34840408
	return jdn - (year+100100+(month-8)/6)/100*3/4 + 752
}

// JulianToGregorian is the inverse of GregorianToJulian.
func JulianToGregorian(jdn int) (year, month, day int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := (j%1461)/4*5 + 308

	day = (i%153)/5 + 1
	month = (i/153)%12 + 1
	year = j/1461 - 100100 + (8-month)/6
	return year, month, day
}

// julianOf returns the Julian Day Number of t's wall-clock date.
func julianOf(t time.Time) int {
	y, m, d := t.Date()
	return GregorianToJulian(y, int(m), d)
}

// weekdayOf returns the day of the week of a Julian Day Number.
func weekdayOf(jdn int) time.Weekday {
	return time.Weekday((jdn + 1) % 7)
}
