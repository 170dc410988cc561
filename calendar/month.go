package calendar

import (
	"time"
)

// Month is a 1-based month number, 1 (January) through 12 (December).
type Month uint8

const (
	// MinMonth is January.
	MinMonth Month = 1

	// MaxMonth is December.
	MaxMonth Month = 12
)

// daysInMonth is indexed by 1-based month; February holds its common-year length.
var daysInMonth = [...]uint8{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// NewMonth returns a Month iff m is a valid 1-based month number.
func NewMonth[T Integer](m T) (Month, error) {
	i, ok := toInt64(m)
	if !ok {
		return 0, overflowError(ErrInvalidMonth)
	}

	if i < int64(MinMonth) || i > int64(MaxMonth) {
		return 0, valueError(ErrInvalidMonth, i)
	}

	return Month(i), nil
}

// Valid reports whether m is within MinMonth..MaxMonth.
func (m Month) Valid() bool {
	return MinMonth <= m && m <= MaxMonth
}

// DaysInMonth returns the number of days in m, using 29 for February when leap is set.
func (m Month) DaysInMonth(leap bool) int {
	invariant(m.Valid(), "month out of range")

	if m == 2 && leap {
		return 29
	}

	return int(daysInMonth[m])
}

// DaysIn returns the number of days in m for the given year.
func (m Month) DaysIn(y Year) int {
	return m.DaysInMonth(y.IsLeapYear())
}

// TimeMonth converts m to the standard library representation.
func (m Month) TimeMonth() time.Month {
	return time.Month(m)
}

// Int returns the month as an int.
func (m Month) Int() int {
	return int(m)
}

// String returns the English month name, e.g. "March".
func (m Month) String() string {
	return time.Month(m).String()
}
