package tai

import (
	"fmt"
	"strings"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	nanosPerSecond   = int64(1_000_000_000)
	nanosPerDay      = secondsPerDay * nanosPerSecond
)

// Clock is a time of day.
//
// Second is 60 only for the leap second of a UTC leap second day; TAI clocks never read 60.
type Clock struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (c Clock) valid(allowLeapSecond bool) bool {
	maxSecond := 59
	if allowLeapSecond {
		maxSecond = 60
	}

	return c.Hour >= 0 && c.Hour < 24 &&
		c.Minute >= 0 && c.Minute < 60 &&
		c.Second >= 0 && c.Second <= maxSecond &&
		c.Nanosecond >= 0 && int64(c.Nanosecond) < nanosPerSecond
}

func (c Clock) isLeapSecond() bool {
	return c.Hour == 23 && c.Minute == 59 && c.Second == 60
}

func (c Clock) secondOfDay() int64 {
	return int64(c.Hour)*secondsPerHour + int64(c.Minute)*secondsPerMinute + int64(c.Second)
}

func clockFromSecondOfDay(sec int64, nsec int64) Clock {
	return Clock{
		Hour:       int(sec / secondsPerHour),
		Minute:     int(sec % secondsPerHour / secondsPerMinute),
		Second:     int(sec % secondsPerMinute),
		Nanosecond: int(nsec),
	}
}

// String formats c as HH:MM:SS, followed by a nine digit fraction when Nanosecond is not zero.
func (c Clock) String() string {
	if c.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}

	return fmt.Sprintf("%02d:%02d:%02d.%09d", c.Hour, c.Minute, c.Second, c.Nanosecond)
}

// Time is an instant on the TAI timescale.
//
// The zero value is 2000-03-01 00:00:00 TAI. Time values are comparable with ==.
type Time struct {
	day  calendar.Mdn
	nsec int64 // [0, nanosPerDay)
}

// New returns the TAI instant at clock c on the given TAI day.
func New(day calendar.Mdn, c Clock) (Time, error) {
	if !day.Valid() {
		return Time{}, fmt.Errorf("%w: %d", calendar.ErrOutOfMdnRange, day)
	}

	if !c.valid(false) {
		return Time{}, fmt.Errorf("%w: %s", ErrInvalidClock, c)
	}

	return Time{day: day, nsec: c.secondOfDay()*nanosPerSecond + int64(c.Nanosecond)}, nil
}

// FromDate returns the TAI instant at clock c on the given TAI calendar date.
func FromDate(d calendar.Date, c Clock) (Time, error) {
	if !d.Valid() {
		return Time{}, &calendar.DateError{Date: d}
	}

	day, err := d.Mdn()
	if err != nil {
		return Time{}, err
	}

	return New(day, c)
}

// fromSeconds builds a Time from seconds since the epoch day plus a nanosecond remainder.
func fromSeconds(sec int64, nsec int64) (Time, error) {
	day := floorDiv(sec, secondsPerDay)

	mdn, err := calendar.NewMdn(day)
	if err != nil {
		return Time{}, err
	}

	return Time{day: mdn, nsec: (sec-day*secondsPerDay)*nanosPerSecond + nsec}, nil
}

// seconds returns whole seconds since 2000-03-01 00:00:00 TAI and the nanosecond remainder.
func (t Time) seconds() (int64, int64) {
	return int64(t.day)*secondsPerDay + t.nsec/nanosPerSecond, t.nsec % nanosPerSecond
}

// Day returns the TAI day number of t.
func (t Time) Day() calendar.Mdn {
	return t.day
}

// Date returns the TAI calendar date of t.
func (t Time) Date() calendar.Date {
	return t.day.Date()
}

// Clock returns the TAI time of day of t.
func (t Time) Clock() Clock {
	return clockFromSecondOfDay(t.nsec/nanosPerSecond, t.nsec%nanosPerSecond)
}

// AddDays returns t moved by n whole TAI days.
func (t Time) AddDays(n int) (Time, error) {
	day, err := t.day.AddDays(n)
	if err != nil {
		return Time{}, err
	}

	return Time{day: day, nsec: t.nsec}, nil
}

// SubDays returns t moved back by n whole TAI days.
func (t Time) SubDays(n int) (Time, error) {
	return t.AddDays(-n)
}

// AddSeconds returns t moved by the given number of SI seconds.
func (t Time) AddSeconds(n int64) (Time, error) {
	sec, nsec := t.seconds()
	return fromSeconds(sec+n, nsec)
}

// Compare returns -1 if t is before u, 0 if they are equal and +1 if t is after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.day < u.day:
		return -1
	case t.day > u.day:
		return 1
	case t.nsec < u.nsec:
		return -1
	case t.nsec > u.nsec:
		return 1
	default:
		return 0
	}
}

// String formats t as "YYYY-MM-DD HH:MM:SS[.fffffffff] TAI".
// Dates before AD 1 carry the " BC" marker right after the date.
func (t Time) String() string {
	var b strings.Builder

	b.WriteString(t.Date().String())
	b.WriteByte(' ')
	b.WriteString(t.Clock().String())
	b.WriteString(" TAI")

	return b.String()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
