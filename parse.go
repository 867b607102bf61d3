package jalali

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// fieldPattern matches the numeric runs of free-form date text: year,
// month, day, hour, minute, second and millisecond, in that order.
var fieldPattern = regexp.MustCompile(`\d\d?\d?\d?`)

// fields holds the seven components extracted from free-form text.
type fields struct {
	year, month, day, hour, minute, second, ms int
}

// Parse reads a Jalali date and time from free-form text such as
// "1403/01/01", "۱۴۰۳-۰۱-۰۱ ۱۵:۳۰" or "1403/1/1 3:30:05.5 pm".
//
// Persian and Arabic-Indic digits are accepted. Up to seven runs of one to
// four digits are read as year, month, day, hour, minute, second and
// millisecond; missing trailing fields are zero. A "-" that opens the text
// negates the year, so the years before 1 that Format writes read back. If
// the text contains "am" or "pm" the hour is read on a 12-hour clock. A
// one- or two-digit millisecond field is a fraction of a second: ".5" is
// 500 ms and ".25" is 250 ms.
func Parse(text string) (*Date, error) {
	f, err := extract(text)
	if err != nil {
		return nil, err
	}
	if !IsValid(f.year, f.month, f.day, f.hour, f.minute, f.second, f.ms) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	return FromJalali(f.year, f.month, f.day, f.hour, f.minute, f.second, f.ms)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Date {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseGregorian reads a Gregorian date and time from free-form text using
// the rules of Parse.
func ParseGregorian(text string) (*Date, error) {
	f, err := extract(text)
	if err != nil {
		return nil, err
	}
	t := time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second,
		f.ms*int(time.Millisecond), time.UTC)
	if y, m, d := t.Date(); y != f.year || int(m) != f.month || d != f.day ||
		!validClock(f.hour, f.minute, f.second, f.ms) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	d := New(t)
	if d.err != nil {
		return nil, d.err
	}
	return d, nil
}

func extract(text string) (fields, error) {
	value := normalizeDigits(text)
	spans := fieldPattern.FindAllStringIndex(value, 7)
	matches := make([]string, 0, 7)
	for _, span := range spans {
		matches = append(matches, value[span[0]:span[1]])
	}
	for len(matches) < 7 {
		matches = append(matches, "0")
	}

	var n [7]int
	for i, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			return fields{}, fmt.Errorf("%w: %q", ErrInvalidValue, text)
		}
		n[i] = v
	}
	if len(spans) > 0 && strings.TrimSpace(value[:spans[0][0]]) == "-" {
		n[0] = -n[0]
	}

	return fields{
		year:   n[0],
		month:  n[1],
		day:    n[2],
		hour:   normalizeHour(value, n[3]),
		minute: n[4],
		second: n[5],
		ms:     normalizeMillisecond(matches[6]),
	}, nil
}

// normalizeHour converts a 12-hour clock reading to 0..23 when text holds
// an am/pm marker. It returns -1 for hours that cannot be combined with a
// marker.
func normalizeHour(text string, hour int) int {
	lower := strings.ToLower(text)
	marker := ""
	if strings.Contains(lower, "am") {
		marker = "am"
	}
	if strings.Contains(lower, "pm") {
		marker = "pm"
	}

	switch {
	case marker == "am" && hour == 12:
		return 0
	case marker == "pm" && hour >= 1 && hour <= 11:
		return hour + 12
	case marker != "" && hour > 12:
		return -1
	}
	return hour
}

// normalizeMillisecond scales short fields as fractions of a second. It
// returns -1 for fields longer than three digits.
func normalizeMillisecond(field string) int {
	v, _ := strconv.Atoi(field)
	switch len(field) {
	case 1:
		return v * 100
	case 2:
		return v * 10
	case 3:
		return v
	}
	return -1
}
