package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"date only", "1403/01/01", "1403/01/01 00:00:00.000"},
		{"single digit fields", "1403/1/1 3:00 pm", "1403/01/01 15:00:00.000"},
		{"midnight am", "1403/01/01 12:15 am", "1403/01/01 00:15:00.000"},
		{"noon upper case PM", "1403/01/01 12:15 PM", "1403/01/01 12:15:00.000"},
		{"morning am", "1403/01/01 9:05 am", "1403/01/01 09:05:00.000"},
		{"one digit fraction", "1403/01/01 10:20:30.5", "1403/01/01 10:20:30.500"},
		{"two digit fraction", "1403/01/01 10:20:30.25", "1403/01/01 10:20:30.250"},
		{"three digit fraction", "1403/01/01 10:20:30.007", "1403/01/01 10:20:30.007"},
		{"persian digits", "۱۴۰۳/۰۱/۰۱ ۱۵:۳۰", "1403/01/01 15:30:00.000"},
		{"arabic-indic digits", "١٤٠٣/٠١/٠١", "1403/01/01 00:00:00.000"},
		{"iso-like separators", "1403-01-01T08:05", "1403/01/01 08:05:00.000"},
		{"leap day", "1399/12/30", "1399/12/30 00:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stamp(d))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no digits", "tomorrow"},
		{"leap day of common year", "1400/12/30"},
		{"month 13", "1403/13/01"},
		{"Mehr 31", "1403/07/31"},
		{"hour 24", "1403/01/01 24:00"},
		{"hour past 12 with marker", "1403/01/01 13:00 pm"},
		{"four digit fraction", "1403/01/01 10:20:30.1234"},
		{"minute 60", "1403/01/01 10:60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestParse_UnsupportedYear(t *testing.T) {
	t.Parallel()

	_, err := Parse("3178/01/01")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParse_NegativeYear(t *testing.T) {
	t.Parallel()

	d, err := Parse("-61/01/01")
	require.NoError(t, err)
	assert.Equal(t, YMD{-61, Farvardin, 1}, d.Jalali())

	d, err = Parse(" -5/06/31 10:00")
	require.NoError(t, err)
	assert.Equal(t, YMD{-5, Shahrivar, 31}, d.Jalali())
	assert.Equal(t, 10, d.Hour())

	d, err = Parse("1403-01-02")
	require.NoError(t, err)
	assert.Equal(t, YMD{1403, Farvardin, 2}, d.Jalali(), "dash separators are not signs")

	_, err = Parse("-62/01/01")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { MustParse("1403/01/01") })
	assert.Panics(t, func() { MustParse("1400/12/30") })
}

func TestParseGregorian(t *testing.T) {
	t.Parallel()

	d, err := ParseGregorian("2024-03-20 15:05")
	require.NoError(t, err)
	assert.Equal(t, "1403/01/01 15:05:00.000", stamp(d))
	assert.Equal(t, time.Date(2024, time.March, 20, 15, 5, 0, 0, time.UTC), d.Time())

	d, err = ParseGregorian("۲۰۲۵/۰۳/۲۰ ۱۱:۰۰ pm")
	require.NoError(t, err)
	assert.Equal(t, "1403/12/30 23:00:00.000", stamp(d))

	_, err = ParseGregorian("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseGregorian("2024-03-20 24:00")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseGregorian("3800-01-01")
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestNormalizeHour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		hour int
		want int
	}{
		{"10:00", 10, 10},
		{"12:00 am", 12, 0},
		{"12:00 pm", 12, 12},
		{"1:00 pm", 1, 13},
		{"11:00 PM", 11, 23},
		{"0:00 am", 0, 0},
		{"13:00 am", 13, -1},
		{"am then pm", 3, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHour(tt.text, tt.hour), "normalizeHour(%q, %d)", tt.text, tt.hour)
	}
}

func TestNormalizeMillisecond(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 500, normalizeMillisecond("5"))
	assert.Equal(t, 250, normalizeMillisecond("25"))
	assert.Equal(t, 7, normalizeMillisecond("007"))
	assert.Equal(t, -1, normalizeMillisecond("1234"))
}
