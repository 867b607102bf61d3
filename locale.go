package jalali

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// weekStart is the first day of the Jalali week.
const weekStart = time.Saturday

// Locale controls how a Date is rendered: digit glyphs, month and weekday
// names and the first day of the week. It never affects arithmetic.
// A Locale may be built by hand or copied from Persian or English and
// edited; a zero Digits array renders ASCII digits.
type Locale struct {
	Tag           language.Tag
	Digits        [10]rune
	Months        [12]string
	Weekdays      [7]string // indexed by time.Weekday
	WeekdaysShort [7]string // indexed by time.Weekday
	WeekStart     time.Weekday
}

// Persian is the default locale: Persian digits and names.
var Persian = &Locale{
	Tag:           language.Persian,
	Digits:        [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'},
	Months:        [12]string{"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور", "مهر", "آبان", "آذر", "دی", "بهمن", "اسفند"},
	Weekdays:      [7]string{"یکشنبه", "دوشنبه", "سه شنبه", "چهارشنبه", "پنجشنبه", "جمعه", "شنبه"},
	WeekdaysShort: [7]string{"ی", "د", "س", "چ", "پ", "ج", "ش"},
	WeekStart:     weekStart,
}

// English renders Jalali dates with ASCII digits and transliterated names.
var English = &Locale{
	Tag:           language.English,
	Digits:        asciiDigitSet,
	Months:        [12]string{"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar", "Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand"},
	Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	WeekStart:     weekStart,
}

var (
	locales = []*Locale{Persian, English}
	matcher = language.NewMatcher([]language.Tag{language.Persian, language.English})
)

var asciiDigitSet = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// LookupLocale returns the supported locale matching a BCP 47 tag such as
// "fa", "fa-IR" or "en-US".
func LookupLocale(tag string) (*Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownLocale, tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocale, tag)
	}
	return locales[idx], nil
}

// String returns the BCP 47 tag of the locale.
func (l *Locale) String() string {
	return l.Tag.String()
}

// NativeDigits reports whether the locale renders digits other than ASCII.
func (l *Locale) NativeDigits() bool {
	return l.Digits != asciiDigitSet && l.Digits != [10]rune{}
}

// Localize replaces the ASCII digits in s with the locale's digit glyphs.
func (l *Locale) Localize(s string) string {
	if !l.NativeDigits() {
		return s
	}
	digits := l.Digits
	out, _, err := transform.String(runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits[r-'0']
		}
		return r
	}), s)
	if err != nil {
		return s
	}
	return out
}

// asciiDigits maps Persian and Arabic-Indic digits to ASCII.
var asciiDigits = runes.Map(func(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	}
	return r
})

// normalizeDigits rewrites native digits in s as ASCII.
func normalizeDigits(s string) string {
	out, _, err := transform.String(asciiDigits, s)
	if err != nil {
		return s
	}
	return out
}

// daysSince returns how many days back from wd the most recent start falls.
func daysSince(wd, start time.Weekday) int {
	return (int(wd) - int(start) + 7) % 7
}
