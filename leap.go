package jalali

import "fmt"

// breaks holds the Jalali years at which the 33-year leap cycle changes
// shape. Supported years are [breaks[0], breaks[len(breaks)-1]).
var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

const (
	// MinYear is the first supported Jalali year.
	MinYear = -61
	// MaxYear is the last supported Jalali year.
	MaxYear = 3177
)

// yearInfo is the result of placing a Jalali year inside the break table.
type yearInfo struct {
	gregorianYear int // Gregorian year in which the Jalali year begins
	march         int // day of March of 1 Farvardin
	leap          int // leap phase, 0 means leap year
}

// checkYear reports ErrInvalidYear for years outside the break table.
func checkYear(year int) error {
	if year < breaks[0] || year >= breaks[len(breaks)-1] {
		return fmt.Errorf("%w %d", ErrInvalidYear, year)
	}
	return nil
}

// locateRun returns the break point starting the run that contains year and
// the length of that run.
func locateRun(year int) (start, jump int) {
	start = breaks[0]
	for _, next := range breaks[1:] {
		jump = next - start
		if year < next {
			break
		}
		start = next
	}
	return start, jump
}

// leapPhase computes the leap phase of year within the run [start, start+jump).
func leapPhase(year, start, jump int) int {
	n := year - start
	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap
}

// calculateLeap returns the leap phase of a Jalali year.
func calculateLeap(year int) (int, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	start, jump := locateRun(year)
	return leapPhase(year, start, jump), nil
}

// calculateJalali accumulates leap days over every run up to year and
// derives the March day on which the year begins.
func calculateJalali(year int) (yearInfo, error) {
	if err := checkYear(year); err != nil {
		return yearInfo{}, err
	}

	gy := year + 621
	leapJ := -14
	start := breaks[0]
	jump := 0
	for _, next := range breaks[1:] {
		jump = next - start
		if year < next {
			break
		}
		leapJ += jump/33*8 + (jump%33)/4
		start = next
	}

	n := year - start
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	return yearInfo{
		gregorianYear: gy,
		march:         20 + leapJ - leapG,
		leap:          leapPhase(year, start, jump),
	}, nil
}

// LeapPhase returns the position of year in its four-year leap sub-cycle,
// 0 through 4. Phase 0 marks a leap year.
func LeapPhase(year int) (int, error) {
	return calculateLeap(year)
}

// IsLeapYear reports whether the Jalali year has 366 days. Unsupported
// years report false.
func IsLeapYear(year int) bool {
	leap, err := calculateLeap(year)
	return err == nil && leap == 0
}

// NewYear returns the Gregorian date of 1 Farvardin of the Jalali year.
func NewYear(year int) (gy, gm, gd int, err error) {
	info, err := calculateJalali(year)
	if err != nil {
		return 0, 0, 0, err
	}
	return info.gregorianYear, 3, info.march, nil
}

// newYearJulian returns the Julian Day Number of 1 Farvardin.
func newYearJulian(info yearInfo) int {
	return GregorianToJulian(info.gregorianYear, 3, info.march)
}
