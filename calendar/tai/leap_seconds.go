package tai

import (
	"fmt"
	"slices"
	"sort"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

// baseOffsetSeconds is TAI−UTC from 1972-01-01 until the first leap second.
const baseOffsetSeconds = 10

var (
	// utcStartDay is 1972-01-01, the first day with an integral TAI−UTC offset.
	utcStartDay = mustMdn(1972, 1, 1)

	defaultLeapSecondTable = mustLeapSecondTable(
		calendar.Date{Year: 2025, Month: 12, Day: 31},
		[]calendar.Date{
			{Year: 1972, Month: 6, Day: 30},
			{Year: 1972, Month: 12, Day: 31},
			{Year: 1973, Month: 12, Day: 31},
			{Year: 1974, Month: 12, Day: 31},
			{Year: 1975, Month: 12, Day: 31},
			{Year: 1976, Month: 12, Day: 31},
			{Year: 1977, Month: 12, Day: 31},
			{Year: 1978, Month: 12, Day: 31},
			{Year: 1979, Month: 12, Day: 31},
			{Year: 1981, Month: 6, Day: 30},
			{Year: 1982, Month: 6, Day: 30},
			{Year: 1983, Month: 6, Day: 30},
			{Year: 1985, Month: 6, Day: 30},
			{Year: 1987, Month: 12, Day: 31},
			{Year: 1989, Month: 12, Day: 31},
			{Year: 1990, Month: 12, Day: 31},
			{Year: 1992, Month: 6, Day: 30},
			{Year: 1993, Month: 6, Day: 30},
			{Year: 1994, Month: 6, Day: 30},
			{Year: 1995, Month: 12, Day: 31},
			{Year: 1997, Month: 6, Day: 30},
			{Year: 1998, Month: 12, Day: 31},
			{Year: 2005, Month: 12, Day: 31},
			{Year: 2008, Month: 12, Day: 31},
			{Year: 2012, Month: 6, Day: 30},
			{Year: 2015, Month: 6, Day: 30},
			{Year: 2016, Month: 12, Day: 31},
		},
	)
)

// LeapSecondTable lists the UTC days that ended with a positive leap second (23:59:60).
//
// KnownAsOf is the last UTC day for which the table is known to be complete.
// A LeapSecondTable is immutable and safe for concurrent use.
type LeapSecondTable struct {
	leapDays  []calendar.Mdn
	taiStarts []int64 // TAI second at which the offset after leapDays[i] takes effect
	knownAsOf calendar.Mdn
}

// DefaultLeapSecondTable returns the built-in table: 27 leap seconds from 1972-06-30 to 2016-12-31,
// complete through 2025-12-31 (IERS Bulletin C 70).
func DefaultLeapSecondTable() *LeapSecondTable {
	return defaultLeapSecondTable
}

// NewLeapSecondTable validates and builds a table.
//
// Leap days must be the last day of a month, fall on or after 1972-01-01, be strictly increasing
// and not come after knownAsOf.
func NewLeapSecondTable(knownAsOf calendar.Date, leapDays []calendar.Date) (*LeapSecondTable, error) {
	known, err := validTableDay(knownAsOf)
	if err != nil {
		return nil, fmt.Errorf("%w: known as of: %w", ErrInvalidLeapSecondTable, err)
	}

	table := &LeapSecondTable{
		leapDays:  make([]calendar.Mdn, 0, len(leapDays)),
		taiStarts: make([]int64, 0, len(leapDays)),
		knownAsOf: known,
	}

	for i, d := range leapDays {
		day, err := validTableDay(d)
		if err != nil {
			return nil, fmt.Errorf("%w: leap day %d: %w", ErrInvalidLeapSecondTable, i, err)
		}

		if int(d.Day) != d.Month.DaysIn(d.Year) {
			return nil, fmt.Errorf("%w: leap day %s is not the last day of its month", ErrInvalidLeapSecondTable, d)
		}

		if i > 0 && day <= table.leapDays[i-1] {
			return nil, fmt.Errorf("%w: leap day %s is not after %s", ErrInvalidLeapSecondTable, d, leapDays[i-1])
		}

		if day > known {
			return nil, fmt.Errorf("%w: leap day %s is after known as of %s", ErrInvalidLeapSecondTable, d, knownAsOf)
		}

		offsetAfter := int64(baseOffsetSeconds + i + 1)
		table.leapDays = append(table.leapDays, day)
		table.taiStarts = append(table.taiStarts, (int64(day)+1)*secondsPerDay+offsetAfter)
	}

	return table, nil
}

func validTableDay(d calendar.Date) (calendar.Mdn, error) {
	if !d.Valid() {
		return 0, &calendar.DateError{Date: d}
	}

	day, err := d.Mdn()
	if err != nil {
		return 0, err
	}

	if day < utcStartDay {
		return 0, fmt.Errorf("%s is before 1972-01-01", d)
	}

	return day, nil
}

// Len returns the number of leap seconds in the table.
func (t *LeapSecondTable) Len() int {
	return len(t.leapDays)
}

// LeapDays returns the leap second days in ascending order.
func (t *LeapSecondTable) LeapDays() []calendar.Date {
	dates := make([]calendar.Date, len(t.leapDays))
	for i, day := range t.leapDays {
		dates[i] = day.Date()
	}

	return dates
}

// KnownAsOf returns the last UTC day the table is known to be complete for.
func (t *LeapSecondTable) KnownAsOf() calendar.Date {
	return t.knownAsOf.Date()
}

// IsLeapDay reports whether the UTC day ends with a leap second.
func (t *LeapSecondTable) IsLeapDay(day calendar.Mdn) bool {
	_, found := slices.BinarySearch(t.leapDays, day)
	return found
}

// OffsetAt returns TAI−UTC in seconds at the start of the given UTC day.
//
// exact is false before 1972-01-01, where 10 seconds is only an approximation, and after KnownAsOf,
// where further leap seconds may have been announced.
func (t *LeapSecondTable) OffsetAt(day calendar.Mdn) (seconds int, exact bool) {
	before := sort.Search(len(t.leapDays), func(i int) bool {
		return t.leapDays[i] >= day
	})

	return baseOffsetSeconds + before, day >= utcStartDay && day <= t.knownAsOf
}

// lookupTAI finds the offset that applies at a TAI second.
// leap is true when sec is the inserted second 23:59:60 of a leap day.
func (t *LeapSecondTable) lookupTAI(sec int64) (offset int64, leap bool) {
	passed := sort.Search(len(t.taiStarts), func(i int) bool {
		return t.taiStarts[i] > sec
	})

	leap = passed < len(t.taiStarts) && sec == t.taiStarts[passed]-1

	return int64(baseOffsetSeconds + passed), leap
}

func mustMdn(gy, m, d int) calendar.Mdn {
	day, err := calendar.MdnFromGYMD(gy, m, d)
	if err != nil {
		panic(err)
	}

	return day
}

func mustLeapSecondTable(knownAsOf calendar.Date, leapDays []calendar.Date) *LeapSecondTable {
	table, err := NewLeapSecondTable(knownAsOf, leapDays)
	if err != nil {
		panic(err)
	}

	return table
}
