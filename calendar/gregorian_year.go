package calendar

import (
	"strconv"
)

// GregorianYear is a supported year in proleptic Gregorian numbering, which has no year 0.
type GregorianYear int32

const (
	// MinGregorianYear is the earliest supported Gregorian year, MinAstroYear - 1 (8192 BC).
	MinGregorianYear GregorianYear = GregorianYear(MinAstroYear) - 1

	// MaxGregorianYear is the latest supported Gregorian year, equal to MaxAstroYear.
	MaxGregorianYear GregorianYear = GregorianYear(MaxAstroYear)
)

// NewGregorianYear returns a GregorianYear iff y is a supported, non-zero Gregorian year.
func NewGregorianYear[T Integer](y T) (GregorianYear, error) {
	i, ok := toInt64(y)
	if !ok {
		return 0, overflowError(ErrInvalidGregorianYear)
	}

	if i < int64(MinGregorianYear) || i > int64(MaxGregorianYear) {
		return 0, valueError(ErrUnsupportedYear, i)
	}

	if i == 0 {
		return 0, valueError(ErrInvalidGregorianYear, i)
	}

	return GregorianYear(i), nil
}

// Valid reports whether gy is within the supported range and not zero.
func (gy GregorianYear) Valid() bool {
	return MinGregorianYear <= gy && gy <= MaxGregorianYear && gy != 0
}

// GregorianYear returns gy.
func (gy GregorianYear) GregorianYear() GregorianYear {
	return gy
}

// AstroYear converts gy to astronomical numbering: positive years are unchanged,
// negative years move up by one so that 1 BC becomes year 0.
func (gy GregorianYear) AstroYear() AstroYear {
	if gy > 0 {
		return AstroYear(gy)
	}

	invariant(gy != 0, "Gregorian year 0")

	return AstroYear(gy + 1)
}

// IsLeapYear reports whether February of gy has 29 days.
// The rule is applied to the astronomical value, so 1 BC, 5 BC, 9 BC... are leap years.
func (gy GregorianYear) IsLeapYear() bool {
	return gy.AstroYear().IsLeapYear()
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func (gy GregorianYear) DaysInYear() int {
	return daysInYear(gy.IsLeapYear())
}

// Int32 returns the Gregorian year value.
func (gy GregorianYear) Int32() int32 {
	return int32(gy)
}

func (gy GregorianYear) String() string {
	return strconv.Itoa(int(gy))
}
