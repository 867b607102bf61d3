package jalali

import "errors"

// ErrInvalidYear is returned when a Jalali year lies outside the range
// covered by the break-point table, [-61, 3177].
var ErrInvalidYear = errors.New("jalali: invalid year")

// ErrInvalidValue is returned when date or time components do not name an
// existing moment, e.g. text that Parse cannot turn into a valid date.
var ErrInvalidValue = errors.New("jalali: invalid value")

// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
var ErrUnknownUnit = errors.New("jalali: unknown unit")

// ErrUnknownLocale is returned by LookupLocale when no supported locale matches.
var ErrUnknownLocale = errors.New("jalali: unknown locale")
