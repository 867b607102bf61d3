package jalali

import (
	"strconv"
	"strings"
)

// Default layouts.
const (
	DefaultLayout   = "YYYY/MM/DD HH:mm:ss"
	GregorianLayout = "YYYY-MM-DD HH:mm:ss"
)

// Format renders d in the Jalali calendar. Recognized tokens:
//
//	YYYY  year
//	MMMM  month name
//	MM    month, two digits
//	DD    day of month, two digits
//	dddd  weekday name
//	dd    short weekday name
//	HH    hour 00-23
//	hh    hour 01-12
//	a A   am/pm, AM/PM; tokens only when the layout contains hh
//	mm    minute
//	ss    second
//	SSS   millisecond
//
// Any other text is copied unchanged. If the locale has native digits,
// every ASCII digit of the result is replaced by its native glyph.
func (d *Date) Format(layout string) string {
	j := d.Jalali()
	return d.format(layout, j.Year, int(j.Month), j.Day, false)
}

// FormatGregorian renders d in the Gregorian calendar with the tokens of
// Format. The name tokens MMMM, dddd and dd are copied unchanged.
func (d *Date) FormatGregorian(layout string) string {
	y, m, day := d.t.Date()
	return d.format(layout, y, int(m), day, true)
}

// Gregorian renders d with GregorianLayout.
func (d *Date) Gregorian() string {
	return d.FormatGregorian(GregorianLayout)
}

// String renders d with DefaultLayout.
func (d *Date) String() string {
	return d.Format(DefaultLayout)
}

func (d *Date) format(layout string, year, month, day int, gregorian bool) string {
	hour := d.Hour()
	meridiem := strings.Contains(layout, "hh")
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	marker := "am"
	if hour >= 12 {
		marker = "pm"
	}

	var b strings.Builder
	for i := 0; i < len(layout); {
		rest := layout[i:]
		switch {
		case strings.HasPrefix(rest, "YYYY"):
			b.WriteString(strconv.Itoa(year))
			i += 4
		case strings.HasPrefix(rest, "MMMM"):
			switch {
			case gregorian:
				b.WriteString("MMMM")
			case month >= 1 && month <= 12:
				b.WriteString(d.locale().Months[month-1])
			}
			i += 4
		case strings.HasPrefix(rest, "MM"):
			b.WriteString(pad(month, 2))
			i += 2
		case strings.HasPrefix(rest, "DD"):
			b.WriteString(pad(day, 2))
			i += 2
		case !gregorian && strings.HasPrefix(rest, "dddd"):
			b.WriteString(d.locale().Weekdays[d.Weekday()])
			i += 4
		case !gregorian && strings.HasPrefix(rest, "dd"):
			b.WriteString(d.locale().WeekdaysShort[d.Weekday()])
			i += 2
		case strings.HasPrefix(rest, "HH"):
			b.WriteString(pad(hour, 2))
			i += 2
		case strings.HasPrefix(rest, "hh"):
			b.WriteString(pad(hour12, 2))
			i += 2
		case strings.HasPrefix(rest, "mm"):
			b.WriteString(pad(d.Minute(), 2))
			i += 2
		case strings.HasPrefix(rest, "ss"):
			b.WriteString(pad(d.Second(), 2))
			i += 2
		case strings.HasPrefix(rest, "SSS"):
			b.WriteString(pad(d.Millisecond(), 3))
			i += 3
		case meridiem && rest[0] == 'a':
			b.WriteString(marker)
			i++
		case meridiem && rest[0] == 'A':
			b.WriteString(strings.ToUpper(marker))
			i++
		default:
			b.WriteByte(rest[0])
			i++
		}
	}
	return d.locale().Localize(b.String())
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
