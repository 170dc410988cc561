package calendar

import (
	"strconv"
)

// Day is a 1-based day-of-month number, 1 through 31.
// It has no knowledge of the month it belongs to.
type Day uint8

const (
	// MinDay is the smallest valid day number.
	MinDay Day = 1

	// MaxDay is the largest valid day number.
	MaxDay Day = 31
)

// NewDay returns a Day iff d is a valid 1-based day number.
func NewDay[T Integer](d T) (Day, error) {
	i, ok := toInt64(d)
	if !ok {
		return 0, overflowError(ErrInvalidDay)
	}

	if i < int64(MinDay) || i > int64(MaxDay) {
		return 0, valueError(ErrInvalidDay, i)
	}

	return Day(i), nil
}

// Valid reports whether d is within MinDay..MaxDay.
func (d Day) Valid() bool {
	return MinDay <= d && d <= MaxDay
}

// Int returns the day as an int.
func (d Day) Int() int {
	return int(d)
}

func (d Day) String() string {
	return strconv.Itoa(int(d))
}
