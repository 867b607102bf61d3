package jalali

import (
	"fmt"
	"strings"
)

// Unit is a span of calendar or clock time used by Add, StartOf and EndOf.
type Unit int

const (
	Milliseconds Unit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

var unitNames = [...]string{"millisecond", "second", "minute", "hour", "day", "week", "month", "year"}

// String returns the singular lower-case name of u, as ParseUnit reads it.
func (u Unit) String() string {
	if u < Milliseconds || u > Years {
		return fmt.Sprintf("%%!Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit accepts singular and plural unit names, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for u, n := range unitNames {
		if n == name {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownUnit, s)
}
