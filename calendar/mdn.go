package calendar

import (
	"strconv"
	"time"
)

// Mdn is a millennium day number: a linear day count with 2000-03-01 fixed at 0.
//
//	2000-02-29 = -1
//	2000-03-01 =  0
//	2000-03-02 =  1
//
// Values are only meaningful within MinMdn..MaxMdn; obtain them from NewMdn or the encoders.
type Mdn int32

const (
	// MinMdn is the first supported day number, January 1, 8192 BC.
	MinMdn Mdn = -3722246

	// MaxMdn is the last supported day number, December 31, AD 8191.
	MaxMdn Mdn = 2261521
)

const (
	daysIn1Year    int32 = daysInCommonYear
	daysIn4Years   int32 = 4*daysIn1Year + 1   // most 4-year blocks
	daysIn100Years int32 = 25*daysIn4Years - 1 // most 100-year blocks
	daysIn400Years int32 = 4*daysIn100Years + 1

	// weekdayOfEpoch is the weekday of 2000-03-01.
	weekdayOfEpoch = int32(time.Wednesday)

	// unixEpochMdn is the day number of 1970-01-01.
	unixEpochMdn Mdn = -11017

	secondsPerDay = 24 * 60 * 60
)

// NewMdn returns an Mdn iff i is within MinMdn..MaxMdn.
func NewMdn[T Integer](i T) (Mdn, error) {
	v, ok := toInt64(i)
	if !ok {
		return 0, overflowError(ErrOutOfMdnRange)
	}

	if v < int64(MinMdn) || v > int64(MaxMdn) {
		return 0, valueError(ErrOutOfMdnRange, v)
	}

	return Mdn(v), nil
}

// Valid reports whether n is within MinMdn..MaxMdn.
func (n Mdn) Valid() bool {
	return MinMdn <= n && n <= MaxMdn
}

// Int32 returns the day number.
func (n Mdn) Int32() int32 {
	return int32(n)
}

// AddDays returns the day number days after n (before n for negative days).
func (n Mdn) AddDays(days int) (Mdn, error) {
	return NewMdn(int64(n) + int64(days))
}

// DaysSince returns the signed number of days from other to n.
func (n Mdn) DaysSince(other Mdn) int {
	return int(n) - int(other)
}

// Weekday returns the day of the week of n.
func (n Mdn) Weekday() time.Weekday {
	return time.Weekday(floorMod(int32(n)+weekdayOfEpoch, 7))
}

// Time returns midnight UTC at the start of day n.
// The standard library numbers years astronomically, so 1 BC is year 0 there.
func (n Mdn) Time() time.Time {
	days := int64(n) - int64(unixEpochMdn)

	return time.Unix(days*secondsPerDay, 0).UTC()
}

// MdnFromTime returns the day number of t's calendar date in t's own location.
func MdnFromTime(t time.Time) (Mdn, error) {
	y, m, d := t.Date()

	ay, err := NewAstroYear(y)
	if err != nil {
		return 0, err
	}

	return MdnFromYMD(ay, Month(m), Day(d))
}

func (n Mdn) String() string {
	return strconv.FormatInt(int64(n), 10)
}
