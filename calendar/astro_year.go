package calendar

import (
	"strconv"
)

// AstroYear is a supported year in astronomical numbering.
//
// Astronomical year numbering is the conventional numbering with values below 1 shifted up by one
// to remove the gap at zero: 1 BC is year 0, 2 BC is year -1.
type AstroYear int32

const (
	// MinAstroYear is the earliest supported astronomical year, MinGregorianYear + 1.
	MinAstroYear AstroYear = -8191

	// MaxAstroYear is the latest supported astronomical year, equal to MaxGregorianYear.
	MaxAstroYear AstroYear = 8191
)

// NewAstroYear returns an AstroYear iff y is within MinAstroYear..MaxAstroYear. Zero is valid.
func NewAstroYear[T Integer](y T) (AstroYear, error) {
	i, ok := toInt64(y)
	if !ok {
		return 0, overflowError(ErrUnsupportedYear)
	}

	if i < int64(MinAstroYear) || i > int64(MaxAstroYear) {
		return 0, valueError(ErrUnsupportedYear, i)
	}

	return AstroYear(i), nil
}

// Valid reports whether ay is within the supported range.
func (ay AstroYear) Valid() bool {
	return MinAstroYear <= ay && ay <= MaxAstroYear
}

// AstroYear returns ay.
func (ay AstroYear) AstroYear() AstroYear {
	return ay
}

// GregorianYear converts ay to conventional numbering: positive years are unchanged,
// year 0 becomes -1 and every other non-positive year moves down by one.
func (ay AstroYear) GregorianYear() GregorianYear {
	if ay > 0 {
		return GregorianYear(ay)
	}

	gy := GregorianYear(ay - 1)
	invariant(gy.Valid() || !ay.Valid(), "astro year maps outside the Gregorian range")

	return gy
}

// IsLeapYear reports whether February of ay has 29 days.
func (ay AstroYear) IsLeapYear() bool {
	return IsLeapAstroYear(int32(ay))
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func (ay AstroYear) DaysInYear() int {
	return daysInYear(ay.IsLeapYear())
}

// Int32 returns the astronomical year value.
func (ay AstroYear) Int32() int32 {
	return int32(ay)
}

func (ay AstroYear) String() string {
	return strconv.Itoa(int(ay))
}
