package jalali

import "fmt"

// JalaliToJulian returns the Julian Day Number of a Jalali date. Month and
// day are not validated: a day past the end of its month rolls forward.
func JalaliToJulian(year, month, day int) (int, error) {
	info, err := calculateJalali(year)
	if err != nil {
		return 0, err
	}
	return newYearJulian(info) + (month-1)*31 - month/7*(month-7) + day - 1, nil
}

// JulianToJalali returns the Jalali date of a Julian Day Number.
func JulianToJalali(jdn int) (YMD, error) {
	gy, _, _ := JulianToGregorian(jdn)
	year := gy - 621
	// The last ten weeks of MaxYear fall in a Gregorian year whose Jalali
	// candidate is past the break table.
	if year > MaxYear {
		year = MaxYear
	}

	info, err := calculateJalali(year)
	if err != nil {
		return YMD{}, err
	}

	k := jdn - newYearJulian(info)
	if k >= 0 {
		if k <= 185 {
			return YMD{Year: year, Month: Month(1 + k/31), Day: k%31 + 1}, nil
		}
		k -= 186
	} else {
		year--
		if err := checkYear(year); err != nil {
			return YMD{}, err
		}
		k += 179
		if IsLeapYear(year) {
			k++
		}
	}

	d := YMD{Year: year, Month: Month(7 + k/30), Day: k%30 + 1}
	if d.Month > Esfand || d.Day > MonthLength(year, int(d.Month)) {
		return YMD{}, fmt.Errorf("%w %d", ErrInvalidYear, year+1)
	}
	return d, nil
}

// ToJalali converts a Gregorian date to the Jalali calendar.
func ToJalali(gy, gm, gd int) (jy, jm, jd int, err error) {
	jdn := GregorianToJulian(gy, gm, gd)
	if y, m, d := JulianToGregorian(jdn); y != gy || m != gm || d != gd {
		return 0, 0, 0, fmt.Errorf("%w: gregorian date %d-%02d-%02d", ErrInvalidValue, gy, gm, gd)
	}
	j, err := JulianToJalali(jdn)
	if err != nil {
		return 0, 0, 0, err
	}
	return j.Year, int(j.Month), j.Day, nil
}

// ToGregorian converts a Jalali date to the Gregorian calendar.
func ToGregorian(jy, jm, jd int) (gy, gm, gd int, err error) {
	if err := checkYear(jy); err != nil {
		return 0, 0, 0, err
	}
	if !IsValidDate(jy, jm, jd) {
		return 0, 0, 0, fmt.Errorf("%w: jalali date %d/%02d/%02d", ErrInvalidValue, jy, jm, jd)
	}
	jdn, err := JalaliToJulian(jy, jm, jd)
	if err != nil {
		return 0, 0, 0, err
	}
	gy, gm, gd = JulianToGregorian(jdn)
	return gy, gm, gd, nil
}

// MonthLength returns the number of days in a Jalali month, or 0 when the
// year or month is out of range.
func MonthLength(year, month int) int {
	switch {
	case checkYear(year) != nil, month < 1, month > 12:
		return 0
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeapYear(year):
		return 30
	default:
		return 29
	}
}

// YearLength returns 366 for leap years, 365 for common years and 0 for
// unsupported years.
func YearLength(year int) int {
	if checkYear(year) != nil {
		return 0
	}
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsValidDate reports whether year/month/day names an existing Jalali date.
func IsValidDate(year, month, day int) bool {
	return day >= 1 && day <= MonthLength(year, month)
}

// IsValid reports whether the Jalali date and the time of day are all in
// range. Every bound must hold.
func IsValid(year, month, day, hour, minute, second, ms int) bool {
	return IsValidDate(year, month, day) && validClock(hour, minute, second, ms)
}

func validClock(hour, minute, second, ms int) bool {
	return hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59 &&
		ms >= 0 && ms <= 999
}

// WeekRange returns the Saturday and the Friday of the week containing the
// Jalali date.
func WeekRange(year, month, day int) (first, last YMD, err error) {
	if !IsValidDate(year, month, day) {
		return YMD{}, YMD{}, fmt.Errorf("%w: jalali date %d/%02d/%02d", ErrInvalidValue, year, month, day)
	}
	jdn, err := JalaliToJulian(year, month, day)
	if err != nil {
		return YMD{}, YMD{}, err
	}
	start := jdn - daysSince(weekdayOf(jdn), weekStart)
	if first, err = JulianToJalali(start); err != nil {
		return YMD{}, YMD{}, err
	}
	if last, err = JulianToJalali(start + 6); err != nil {
		return YMD{}, YMD{}, err
	}
	return first, last, nil
}
